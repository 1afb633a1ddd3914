package payment

import (
	"context"

	"darna-client-service/internal/contextkeys"
	"darna-client-service/internal/core/domain"
	"darna-client-service/internal/core/port"
)

// HeadlessPresenter - реализация границы платежного UI для безголового
// развертывания. Настоящий платежный лист живет в мобильной оболочке;
// здесь передача секрета лишь логируется, а поток завершается отменой,
// чтобы вызывающий код получил честный терминальный результат.
type HeadlessPresenter struct{}

func NewHeadlessPresenter() *HeadlessPresenter {
	return &HeadlessPresenter{}
}

func (p *HeadlessPresenter) PresentWithClientSecret(ctx context.Context, clientSecret string) (domain.PaymentResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "HeadlessPresenter",
	})

	// Сам секрет в лог не пишем
	logger.Info("Payment sheet requested, but no interactive UI is attached", port.Fields{
		"secret_present": clientSecret != "",
	})

	return domain.PaymentResult{
		Outcome: domain.PaymentCanceled,
		Reason:  "no interactive payment UI attached",
	}, nil
}
