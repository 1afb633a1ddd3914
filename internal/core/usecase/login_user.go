package usecase

import (
	"context"

	"darna-client-service/internal/contextkeys"
	"darna-client-service/internal/core/domain"
	"darna-client-service/internal/core/port"
)

// LoginUserUseCase - единственный писатель состояния сессии (кроме логаута).
// Интерсепторы токен только читают.
type LoginUserUseCase struct {
	authAPI port.AuthAPIPort
	session port.SessionStorePort
}

func NewLoginUserUseCase(authAPI port.AuthAPIPort, session port.SessionStorePort) *LoginUserUseCase {
	return &LoginUserUseCase{authAPI: authAPI, session: session}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, email, password string) *domain.Failure {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoginUser",
		"email":    email,
	})
	ucLogger.Info("Use case started: attempting to login user", nil)

	token, err := uc.authAPI.Login(ctx, email, password)
	if err != nil {
		failure := domain.ClassifyError(err)
		ucLogger.Warn("Login failed", port.Fields{
			"failure_kind": string(failure.Kind),
			"status_code":  failure.StatusCode,
		})
		return failure
	}

	uc.session.Set(token)
	ucLogger.Info("Use case finished: user logged in, session token stored", nil)
	return nil
}

// LogoutUserUseCase сбрасывает токен сессии
type LogoutUserUseCase struct {
	session port.SessionStorePort
}

func NewLogoutUserUseCase(session port.SessionStorePort) *LogoutUserUseCase {
	return &LogoutUserUseCase{session: session}
}

func (uc *LogoutUserUseCase) Execute(ctx context.Context) {
	logger := contextkeys.LoggerFromContext(ctx)
	uc.session.Clear()
	logger.WithFields(port.Fields{"use_case": "LogoutUser"}).Info("Session token cleared", nil)
}
