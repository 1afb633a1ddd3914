package usecase

import (
	"context"

	"darna-client-service/internal/contextkeys"
	"darna-client-service/internal/core/domain"
	"darna-client-service/internal/core/port"
)

// StartPurchaseUseCase получает client secret у бэкенда и передает его
// платежному UI. Сам платежный поток - внешний коллаборатор: этот слой
// лишь поставляет секрет и потребляет терминальный результат.
type StartPurchaseUseCase struct {
	intents   port.PaymentIntentPort
	presenter port.PaymentPresenterPort
}

func NewStartPurchaseUseCase(intents port.PaymentIntentPort, presenter port.PaymentPresenterPort) *StartPurchaseUseCase {
	return &StartPurchaseUseCase{intents: intents, presenter: presenter}
}

func (uc *StartPurchaseUseCase) Execute(ctx context.Context, adID string) (*domain.PaymentResult, *domain.Failure) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "StartPurchase",
		"ad_id":    adID,
	})
	ucLogger.Info("Use case started: starting purchase", nil)

	intent, err := uc.intents.CreatePaymentIntent(ctx, adID)
	if err != nil {
		failure := domain.ClassifyError(err)
		ucLogger.Warn("Payment intent creation failed", port.Fields{
			"failure_kind": string(failure.Kind),
			"status_code":  failure.StatusCode,
		})
		return nil, failure
	}

	if intent.ClientSecret == "" {
		ucLogger.Error("Payment intent has no client secret", nil, port.Fields{"intent_id": intent.ID})
		return nil, &domain.Failure{
			Kind:    domain.FailureUnknown,
			Message: "payment intent has no client secret",
		}
	}

	result, err := uc.presenter.PresentWithClientSecret(ctx, intent.ClientSecret)
	if err != nil {
		failure := domain.ClassifyError(err)
		ucLogger.Warn("Payment sheet presentation failed", port.Fields{
			"failure_kind": string(failure.Kind),
		})
		return nil, failure
	}

	ucLogger.Info("Use case finished: purchase flow completed", port.Fields{
		"outcome": string(result.Outcome),
	})
	return &result, nil
}
