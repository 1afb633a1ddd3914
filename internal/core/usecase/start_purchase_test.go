package usecase

import (
	"context"
	"errors"
	"testing"

	"darna-client-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIntents struct {
	intent *domain.PaymentIntent
	err    error
}

func (f *fakeIntents) CreatePaymentIntent(ctx context.Context, adID string) (*domain.PaymentIntent, error) {
	return f.intent, f.err
}

type fakePresenter struct {
	gotSecret string
	result    domain.PaymentResult
	err       error
}

func (f *fakePresenter) PresentWithClientSecret(ctx context.Context, clientSecret string) (domain.PaymentResult, error) {
	f.gotSecret = clientSecret
	return f.result, f.err
}

func TestStartPurchase_HappyPath(t *testing.T) {
	intents := &fakeIntents{intent: &domain.PaymentIntent{ID: "pi1", ClientSecret: "sec_1"}}
	presenter := &fakePresenter{result: domain.PaymentResult{Outcome: domain.PaymentCompleted}}

	result, failure := NewStartPurchaseUseCase(intents, presenter).Execute(context.Background(), "ad1")

	require.Nil(t, failure)
	assert.Equal(t, domain.PaymentCompleted, result.Outcome)
	// Презентеру уходит именно client secret, а не идентификатор намерения
	assert.Equal(t, "sec_1", presenter.gotSecret)
}

func TestStartPurchase_IntentCreationFailure(t *testing.T) {
	intents := &fakeIntents{err: domain.ClassifyStatus(500)}
	presenter := &fakePresenter{}

	result, failure := NewStartPurchaseUseCase(intents, presenter).Execute(context.Background(), "ad1")

	assert.Nil(t, result)
	require.NotNil(t, failure)
	assert.Equal(t, domain.FailureServerError, failure.Kind)
	assert.Empty(t, presenter.gotSecret) // до презентера дело не дошло
}

func TestStartPurchase_EmptyClientSecret(t *testing.T) {
	intents := &fakeIntents{intent: &domain.PaymentIntent{ID: "pi1"}}
	presenter := &fakePresenter{}

	result, failure := NewStartPurchaseUseCase(intents, presenter).Execute(context.Background(), "ad1")

	assert.Nil(t, result)
	require.NotNil(t, failure)
	assert.Equal(t, domain.FailureUnknown, failure.Kind)
	assert.Empty(t, presenter.gotSecret)
}

func TestStartPurchase_PresenterFailure(t *testing.T) {
	intents := &fakeIntents{intent: &domain.PaymentIntent{ID: "pi1", ClientSecret: "sec_1"}}
	presenter := &fakePresenter{err: errors.New("sheet crashed")}

	result, failure := NewStartPurchaseUseCase(intents, presenter).Execute(context.Background(), "ad1")

	assert.Nil(t, result)
	require.NotNil(t, failure)
	assert.Equal(t, domain.FailureUnknown, failure.Kind)
}

func TestStartPurchase_CanceledOutcomeIsNotAFailure(t *testing.T) {
	intents := &fakeIntents{intent: &domain.PaymentIntent{ID: "pi1", ClientSecret: "sec_1"}}
	presenter := &fakePresenter{result: domain.PaymentResult{Outcome: domain.PaymentCanceled, Reason: "user dismissed"}}

	result, failure := NewStartPurchaseUseCase(intents, presenter).Execute(context.Background(), "ad1")

	require.Nil(t, failure)
	assert.Equal(t, domain.PaymentCanceled, result.Outcome)
	assert.Equal(t, "user dismissed", result.Reason)
}
