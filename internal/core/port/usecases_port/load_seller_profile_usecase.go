package usecases_port

import (
	"context"
	"darna-client-service/internal/core/domain"
)

type LoadSellerProfileUseCase interface {
	Execute(ctx context.Context, sellerID string) (*domain.SellerProfile, *domain.Failure)
}
