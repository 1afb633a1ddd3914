package port

import (
	"context"
	"darna-client-service/internal/core/domain"
)

// PaymentPresenterPort - граница платежного UI.
// Этот слой лишь передает client secret и потребляет терминальный результат.
type PaymentPresenterPort interface {
	PresentWithClientSecret(ctx context.Context, clientSecret string) (domain.PaymentResult, error)
}
