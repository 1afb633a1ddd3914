package port

import (
	"context"
	"darna-client-service/internal/core/domain"
)

// MarketCatalogPort - контракт клиента к API маркетплейса.
// Все вызовы read-only и идемпотентны; ретраи - забота вызывающего слоя.
type MarketCatalogPort interface {
	FetchAds(ctx context.Context) ([]domain.Ad, error)
	FetchAdByID(ctx context.Context, id string) (*domain.Ad, error)
	FetchReputation(ctx context.Context, sellerID string) (*domain.Reputation, error)
	FetchFeedbacks(ctx context.Context, sellerID string) ([]domain.Feedback, error)
}

// PaymentIntentPort - создание платежного намерения на бэкенде
type PaymentIntentPort interface {
	CreatePaymentIntent(ctx context.Context, adID string) (*domain.PaymentIntent, error)
}

// AuthAPIPort - аутентификация на бэкенде.
// Сам клиент токены не проверяет, только получает.
type AuthAPIPort interface {
	Login(ctx context.Context, email, password string) (string, error)
}
