package marketapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"darna-client-service/internal/contextkeys"
	"darna-client-service/internal/core/domain"
	"darna-client-service/internal/core/port"
)

// Config - настройки клиента к API маркетплейса
type Config struct {
	BaseURL string
	// Timeout - единый бюджет connect/read/write на запрос.
	// Истечение проявляется для классификатора как сетевой сбой.
	Timeout time.Duration
}

// Client отвечает за все взаимодействия с API маркетплейса.
// Классифицированные протокольные сбои возвращаются значениями domain.Failure,
// транспортные ошибки - обернутыми, классификация выполняется вызывающим слоем.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient - конструктор. Цепочка интерсепторов собирается здесь.
func NewClient(cfg Config, tokens port.TokenSourcePort) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newTransport(nil, tokens),
		},
	}
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *Client) doRequest(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Заголовок для сквозной трассировки
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// fetchBody выполняет запрос и возвращает тело успешного ответа.
// Неуспешный статус сразу сводится к классифицированному сбою.
func (c *Client) fetchBody(ctx context.Context, method, url string, reqBody io.Reader) ([]byte, error) {
	resp, err := c.doRequest(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("request to market API failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Тело ошибки не читаем в сообщение: текст для пользователя
		// формирует классификатор, а не бэкенд
		io.Copy(io.Discard, resp.Body)
		return nil, domain.ClassifyStatus(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read market API response: %w", err)
	}
	return body, nil
}

// FetchAds загружает ленту объявлений
func (c *Client) FetchAds(ctx context.Context) ([]domain.Ad, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "MarketAPIClient",
		"method":    "FetchAds",
	})

	body, err := c.fetchBody(ctx, http.MethodGet, c.baseURL+"/api/v1/ads", nil)
	if err != nil {
		return nil, err
	}

	ads := toDomainAds(body, logger)
	logger.Info("Ads fetched and normalized", port.Fields{"ads_count": len(ads)})
	return ads, nil
}

// FetchAdByID загружает одно объявление.
// Эндпоинт одиночный: форму тела выпрямляет интерсептор до декодера.
func (c *Client) FetchAdByID(ctx context.Context, id string) (*domain.Ad, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "MarketAPIClient",
		"method":    "FetchAdByID",
		"ad_id":     id,
	})

	reqURL := fmt.Sprintf("%s/api/v1/ads/%s", c.baseURL, url.PathEscape(id))
	body, err := c.fetchBody(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	ad := toDomainAd(body, logger)
	logger.Info("Ad fetched and normalized", nil)
	return &ad, nil
}

// FetchReputation загружает репутацию продавца (одиночный эндпоинт)
func (c *Client) FetchReputation(ctx context.Context, sellerID string) (*domain.Reputation, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "MarketAPIClient",
		"method":    "FetchReputation",
		"seller_id": sellerID,
	})

	reqURL := fmt.Sprintf("%s/api/v1/sellers/%s/reputation", c.baseURL, url.PathEscape(sellerID))
	body, err := c.fetchBody(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	reputation := toDomainReputation(body, sellerID, logger)
	logger.Info("Reputation fetched", port.Fields{"score": reputation.Score})
	return &reputation, nil
}

// FetchFeedbacks загружает отзывы о продавце
func (c *Client) FetchFeedbacks(ctx context.Context, sellerID string) ([]domain.Feedback, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "MarketAPIClient",
		"method":    "FetchFeedbacks",
		"seller_id": sellerID,
	})

	reqURL := fmt.Sprintf("%s/api/v1/sellers/%s/feedbacks", c.baseURL, url.PathEscape(sellerID))
	body, err := c.fetchBody(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	feedbacks := toDomainFeedbacks(body, logger)
	logger.Info("Feedbacks fetched and normalized", port.Fields{"feedbacks_count": len(feedbacks)})
	return feedbacks, nil
}

// CreatePaymentIntent создает платежное намерение для объявления
func (c *Client) CreatePaymentIntent(ctx context.Context, adID string) (*domain.PaymentIntent, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "MarketAPIClient",
		"method":    "CreatePaymentIntent",
		"ad_id":     adID,
	})

	reqBody, err := json.Marshal(createPaymentIntentRequest{AdID: adID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment intent request: %w", err)
	}

	body, err := c.fetchBody(ctx, http.MethodPost, c.baseURL+"/api/v1/payments/intent", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}

	intent := toDomainPaymentIntent(body)
	logger.Info("Payment intent created", port.Fields{"intent_id": intent.ID})
	return &intent, nil
}

// Login аутентифицирует пользователя и возвращает bearer-токен.
// Сам клиент токен не проверяет и не хранит - это забота хранилища сессии.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	reqBody, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("failed to marshal login request: %w", err)
	}

	body, err := c.fetchBody(ctx, http.MethodPost, c.baseURL+"/api/v1/auth/login", bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login response contains no token")
	}
	return resp.Token, nil
}
