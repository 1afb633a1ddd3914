package usecase

import (
	"context"
	"testing"

	"darna-client-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog - подменный каталог для юзкейс-тестов
type fakeCatalog struct {
	ads           []domain.Ad
	adsErr        error
	ad            *domain.Ad
	adErr         error
	reputation    *domain.Reputation
	reputationErr error
	feedbacks     []domain.Feedback
	feedbacksErr  error

	calls []string
}

func (f *fakeCatalog) FetchAds(ctx context.Context) ([]domain.Ad, error) {
	f.calls = append(f.calls, "FetchAds")
	return f.ads, f.adsErr
}

func (f *fakeCatalog) FetchAdByID(ctx context.Context, id string) (*domain.Ad, error) {
	f.calls = append(f.calls, "FetchAdByID")
	return f.ad, f.adErr
}

func (f *fakeCatalog) FetchReputation(ctx context.Context, sellerID string) (*domain.Reputation, error) {
	f.calls = append(f.calls, "FetchReputation")
	return f.reputation, f.reputationErr
}

func (f *fakeCatalog) FetchFeedbacks(ctx context.Context, sellerID string) ([]domain.Feedback, error) {
	f.calls = append(f.calls, "FetchFeedbacks")
	return f.feedbacks, f.feedbacksErr
}

func TestLoadSellerProfile_BothStepsSucceed(t *testing.T) {
	catalog := &fakeCatalog{
		reputation: &domain.Reputation{SellerID: "s1", Score: 4.2, ReviewsCount: 7},
		feedbacks:  []domain.Feedback{{ID: "f1"}},
	}

	profile, failure := NewLoadSellerProfileUseCase(catalog).Execute(context.Background(), "s1")

	require.Nil(t, failure)
	assert.Equal(t, 4.2, profile.Reputation.Score)
	assert.Len(t, profile.Feedbacks, 1)
	// Шаги идут последовательно: сначала репутация, затем отзывы
	assert.Equal(t, []string{"FetchReputation", "FetchFeedbacks"}, catalog.calls)
}

// Сбой первого шага глотается: наружу всплывает исход последнего вызова.
func TestLoadSellerProfile_ReputationFailureSwallowedWhenFeedbacksSucceed(t *testing.T) {
	catalog := &fakeCatalog{
		reputationErr: domain.ClassifyStatus(500),
		feedbacks:     []domain.Feedback{{ID: "f1"}},
	}

	profile, failure := NewLoadSellerProfileUseCase(catalog).Execute(context.Background(), "s1")

	assert.Nil(t, failure)
	assert.Zero(t, profile.Reputation)
	assert.Len(t, profile.Feedbacks, 1)
}

func TestLoadSellerProfile_FeedbacksFailureSurfacesWithPartialProfile(t *testing.T) {
	catalog := &fakeCatalog{
		reputation:   &domain.Reputation{SellerID: "s1", Score: 4.2},
		feedbacksErr: domain.ClassifyStatus(403),
	}

	profile, failure := NewLoadSellerProfileUseCase(catalog).Execute(context.Background(), "s1")

	require.NotNil(t, failure)
	assert.Equal(t, domain.FailureForbidden, failure.Kind)
	assert.False(t, failure.UserVisible())

	// Частичный профиль возвращается вместе со сбоем
	require.NotNil(t, profile)
	assert.Equal(t, 4.2, profile.Reputation.Score)
	assert.Empty(t, profile.Feedbacks)
}

func TestLoadAdsFeed(t *testing.T) {
	t.Run("успех", func(t *testing.T) {
		catalog := &fakeCatalog{ads: []domain.Ad{{ID: "a1"}}}
		ads, failure := NewLoadAdsFeedUseCase(catalog).Execute(context.Background())
		require.Nil(t, failure)
		assert.Len(t, ads, 1)
	})

	t.Run("сбой классифицируется", func(t *testing.T) {
		catalog := &fakeCatalog{adsErr: domain.ClassifyStatus(503)}
		ads, failure := NewLoadAdsFeedUseCase(catalog).Execute(context.Background())
		assert.Nil(t, ads)
		require.NotNil(t, failure)
		assert.Equal(t, domain.FailureServerError, failure.Kind)
	})
}

func TestLoadAdByID(t *testing.T) {
	catalog := &fakeCatalog{ad: &domain.Ad{ID: "a1", Kind: domain.KindDiscount}}
	ad, failure := NewLoadAdByIDUseCase(catalog).Execute(context.Background(), "a1")
	require.Nil(t, failure)
	assert.Equal(t, "a1", ad.ID)
}
