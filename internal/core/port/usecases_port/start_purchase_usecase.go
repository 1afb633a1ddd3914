package usecases_port

import (
	"context"
	"darna-client-service/internal/core/domain"
)

type StartPurchaseUseCase interface {
	Execute(ctx context.Context, adID string) (*domain.PaymentResult, *domain.Failure)
}
