package usecases_port

import (
	"context"
	"darna-client-service/internal/core/domain"
)

type LoginUseCase interface {
	Execute(ctx context.Context, email, password string) *domain.Failure
}

type LogoutUseCase interface {
	Execute(ctx context.Context)
}
