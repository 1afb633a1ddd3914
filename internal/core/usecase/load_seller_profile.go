package usecase

import (
	"context"

	"darna-client-service/internal/contextkeys"
	"darna-client-service/internal/core/domain"
	"darna-client-service/internal/core/port"
)

// LoadSellerProfileUseCase - составная загрузка "репутация, затем отзывы".
// Вызовы идут последовательно; наружу всплывает классификация только
// ПОСЛЕДНЕГО вызова. Сбой первого вызова логируется, но если второй
// успешен, пользователь ошибки не видит - это поведение исходного
// приложения и на него опирается вызывающий UI.
type LoadSellerProfileUseCase struct {
	catalog port.MarketCatalogPort
}

func NewLoadSellerProfileUseCase(catalog port.MarketCatalogPort) *LoadSellerProfileUseCase {
	return &LoadSellerProfileUseCase{catalog: catalog}
}

func (uc *LoadSellerProfileUseCase) Execute(ctx context.Context, sellerID string) (*domain.SellerProfile, *domain.Failure) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "LoadSellerProfile",
		"seller_id": sellerID,
	})
	ucLogger.Info("Use case started: loading seller profile", nil)

	profile := &domain.SellerProfile{Feedbacks: []domain.Feedback{}}

	// Шаг 1: репутация. Токен сессии второй вызов прочитает заново
	// в момент своей отправки - обновление между шагами вступает в силу.
	reputation, repErr := uc.catalog.FetchReputation(ctx, sellerID)
	if repErr != nil {
		failure := domain.ClassifyError(repErr)
		ucLogger.Warn("Reputation load failed, continuing with feedbacks", port.Fields{
			"failure_kind": string(failure.Kind),
			"status_code":  failure.StatusCode,
		})
	} else {
		profile.Reputation = *reputation
	}

	// Шаг 2: отзывы. Его исход - окончательный.
	feedbacks, fbErr := uc.catalog.FetchFeedbacks(ctx, sellerID)
	if fbErr != nil {
		failure := domain.ClassifyError(fbErr)
		ucLogger.Warn("Feedbacks load failed", port.Fields{
			"failure_kind": string(failure.Kind),
			"status_code":  failure.StatusCode,
		})
		return profile, failure
	}
	profile.Feedbacks = feedbacks

	ucLogger.Info("Use case finished: seller profile loaded", port.Fields{
		"feedbacks_count": len(profile.Feedbacks),
	})
	return profile, nil
}
