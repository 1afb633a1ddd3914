package usecases_port

import (
	"context"
	"darna-client-service/internal/core/domain"
)

type LoadAdByIDUseCase interface {
	Execute(ctx context.Context, adID string) (*domain.Ad, *domain.Failure)
}
