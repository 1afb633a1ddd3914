package usecase

import (
	"context"

	"darna-client-service/internal/contextkeys"
	"darna-client-service/internal/core/domain"
	"darna-client-service/internal/core/port"
)

type LoadAdByIDUseCase struct {
	catalog port.MarketCatalogPort
}

func NewLoadAdByIDUseCase(catalog port.MarketCatalogPort) *LoadAdByIDUseCase {
	return &LoadAdByIDUseCase{catalog: catalog}
}

func (uc *LoadAdByIDUseCase) Execute(ctx context.Context, adID string) (*domain.Ad, *domain.Failure) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoadAdByID",
		"ad_id":    adID,
	})
	ucLogger.Info("Use case started: loading ad", nil)

	ad, err := uc.catalog.FetchAdByID(ctx, adID)
	if err != nil {
		failure := domain.ClassifyError(err)
		ucLogger.Warn("Ad load failed", port.Fields{
			"failure_kind": string(failure.Kind),
			"status_code":  failure.StatusCode,
		})
		return nil, failure
	}

	ucLogger.Info("Use case finished: ad loaded", nil)
	return ad, nil
}
