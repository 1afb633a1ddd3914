package usecase

import (
	"context"

	"darna-client-service/internal/contextkeys"
	"darna-client-service/internal/core/domain"
	"darna-client-service/internal/core/port"
)

type LoadAdsFeedUseCase struct {
	catalog port.MarketCatalogPort
}

func NewLoadAdsFeedUseCase(catalog port.MarketCatalogPort) *LoadAdsFeedUseCase {
	return &LoadAdsFeedUseCase{catalog: catalog}
}

// Execute - основной метод. Сбой возвращается классифицированным значением,
// наверх не пробрасывается ни одной необработанной ошибки.
func (uc *LoadAdsFeedUseCase) Execute(ctx context.Context) ([]domain.Ad, *domain.Failure) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoadAdsFeed",
	})
	ucLogger.Info("Use case started: loading ads feed", nil)

	ads, err := uc.catalog.FetchAds(ctx)
	if err != nil {
		failure := domain.ClassifyError(err)
		ucLogger.Warn("Ads feed load failed", port.Fields{
			"failure_kind": string(failure.Kind),
			"status_code":  failure.StatusCode,
			"user_visible": failure.UserVisible(),
		})
		return nil, failure
	}

	ucLogger.Info("Use case finished: ads feed loaded", port.Fields{"ads_count": len(ads)})
	return ads, nil
}
