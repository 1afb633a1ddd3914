package usecases_port

import (
	"context"
	"darna-client-service/internal/core/domain"
)

type LoadAdsFeedUseCase interface {
	Execute(ctx context.Context) ([]domain.Ad, *domain.Failure)
}
