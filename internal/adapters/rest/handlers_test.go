package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"darna-client-service/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

type stubAdsFeedUC struct {
	ads     []domain.Ad
	failure *domain.Failure
}

func (s *stubAdsFeedUC) Execute(ctx context.Context) ([]domain.Ad, *domain.Failure) {
	return s.ads, s.failure
}

type stubAdByIDUC struct {
	ad      *domain.Ad
	failure *domain.Failure
}

func (s *stubAdByIDUC) Execute(ctx context.Context, adID string) (*domain.Ad, *domain.Failure) {
	return s.ad, s.failure
}

type stubProfileUC struct {
	profile *domain.SellerProfile
	failure *domain.Failure
}

func (s *stubProfileUC) Execute(ctx context.Context, sellerID string) (*domain.SellerProfile, *domain.Failure) {
	return s.profile, s.failure
}

type stubPurchaseUC struct {
	result  *domain.PaymentResult
	failure *domain.Failure
	gotAdID string
}

func (s *stubPurchaseUC) Execute(ctx context.Context, adID string) (*domain.PaymentResult, *domain.Failure) {
	s.gotAdID = adID
	return s.result, s.failure
}

type stubLoginUC struct {
	failure  *domain.Failure
	gotEmail string
}

func (s *stubLoginUC) Execute(ctx context.Context, email, password string) *domain.Failure {
	s.gotEmail = email
	return s.failure
}

type stubLogoutUC struct {
	called bool
}

func (s *stubLogoutUC) Execute(ctx context.Context) {
	s.called = true
}

type handlerStubs struct {
	adsFeed  *stubAdsFeedUC
	adByID   *stubAdByIDUC
	profile  *stubProfileUC
	purchase *stubPurchaseUC
	login    *stubLoginUC
	logout   *stubLogoutUC
}

func newTestRouter(s handlerStubs) http.Handler {
	if s.adsFeed == nil {
		s.adsFeed = &stubAdsFeedUC{}
	}
	if s.adByID == nil {
		s.adByID = &stubAdByIDUC{}
	}
	if s.profile == nil {
		s.profile = &stubProfileUC{}
	}
	if s.purchase == nil {
		s.purchase = &stubPurchaseUC{}
	}
	if s.login == nil {
		s.login = &stubLoginUC{}
	}
	if s.logout == nil {
		s.logout = &stubLogoutUC{}
	}

	handlers := NewMarketHandlers(s.adsFeed, s.adByID, s.profile, s.purchase, s.login, s.logout)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ads", handlers.HandleGetAds)
		r.Get("/ads/{id}", handlers.HandleGetAdByID)
		r.Get("/sellers/{id}/profile", handlers.HandleGetSellerProfile)
		r.Post("/purchases", handlers.HandleStartPurchase)
		r.Post("/session/login", handlers.HandleLogin)
		r.Post("/session/logout", handlers.HandleLogout)
	})
	return r
}

func TestHandleGetAds(t *testing.T) {
	router := newTestRouter(handlerStubs{
		adsFeed: &stubAdsFeedUC{ads: []domain.Ad{
			{ID: "a1", Kind: domain.KindDiscount, Category: domain.CategoryFood, Discount: &domain.DiscountDetails{Percent: 30}},
		}},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ads", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, "a1", gjson.Get(body, "0.id").String())
	assert.Equal(t, "discount", gjson.Get(body, "0.kind").String())
	assert.Equal(t, int64(30), gjson.Get(body, "0.discount.percent").Int())
}

func TestHandleGetAds_HiddenFailureIs204(t *testing.T) {
	router := newTestRouter(handlerStubs{
		adsFeed: &stubAdsFeedUC{failure: domain.ClassifyStatus(403)},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ads", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandleGetAdByID(t *testing.T) {
	router := newTestRouter(handlerStubs{
		adByID: &stubAdByIDUC{ad: &domain.Ad{ID: "a1", Kind: domain.KindPromotion, Promotion: &domain.PromotionDetails{Text: "2x1"}}},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ads/a1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2x1", gjson.Get(rec.Body.String(), "promotion.text").String())
}

func TestHandleGetSellerProfile(t *testing.T) {
	router := newTestRouter(handlerStubs{
		profile: &stubProfileUC{profile: &domain.SellerProfile{
			Reputation: domain.Reputation{SellerID: "s1", Score: 4.8, ReviewsCount: 3},
			Feedbacks:  []domain.Feedback{{ID: "f1", Rating: 5}},
		}},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sellers/s1/profile", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 4.8, gjson.Get(body, "reputation.score").Float())
	assert.Equal(t, int64(5), gjson.Get(body, "feedbacks.0.rating").Int())
}

func TestHandleStartPurchase(t *testing.T) {
	purchase := &stubPurchaseUC{result: &domain.PaymentResult{Outcome: domain.PaymentCompleted}}
	router := newTestRouter(handlerStubs{purchase: purchase})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/purchases", strings.NewReader(`{"ad_id":"ad1"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ad1", purchase.gotAdID)
	assert.Equal(t, "completed", gjson.Get(rec.Body.String(), "outcome").String())
}

func TestHandleStartPurchase_BadRequests(t *testing.T) {
	router := newTestRouter(handlerStubs{})

	t.Run("пустое тело", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/purchases", strings.NewReader("")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("нет ad_id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/purchases", strings.NewReader(`{}`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleLogin(t *testing.T) {
	login := &stubLoginUC{}
	router := newTestRouter(handlerStubs{login: login})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login", strings.NewReader(`{"email":"u@example.com","password":"pw"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "u@example.com", login.gotEmail)
}

func TestHandleLogin_MissingCredentials(t *testing.T) {
	router := newTestRouter(handlerStubs{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login", strings.NewReader(`{"email":"u@example.com"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLogout(t *testing.T) {
	logout := &stubLogoutUC{}
	router := newTestRouter(handlerStubs{logout: logout})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/session/logout", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, logout.called)
}
