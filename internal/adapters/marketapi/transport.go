package marketapi

import (
	"net/http"
	"time"

	"darna-client-service/internal/contextkeys"
	"darna-client-service/internal/core/port"
)

// authTransport подставляет текущий bearer-токен в каждый исходящий запрос.
// Токен читается из состояния сессии в момент отправки: между вызовами
// одной цепочки обновление токена вступает в силу немедленно.
type authTransport struct {
	next   http.RoundTripper
	tokens port.TokenSourcePort
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Отсутствие токена - не ошибка, запрос уходит неаутентифицированным.
	// Никакого ожидания появления токена здесь нет.
	if token := t.tokens.CurrentToken(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.next.RoundTrip(req)
}

// loggingTransport пишет жизненный цикл запроса через логгер из контекста.
// Стоит в цепочке после authTransport, чтобы в лог попадали итоговые заголовки.
type loggingTransport struct {
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	logger := contextkeys.LoggerFromContext(req.Context()).WithFields(port.Fields{
		"http_method": req.Method,
		"url":         req.URL.String(),
	})

	logger.Debug("Sending request to market API", port.Fields{
		"authenticated": req.Header.Get("Authorization") != "",
	})

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		logger.Error("Request to market API failed", err, port.Fields{
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return resp, err
	}

	logger.Debug("Received response from market API", port.Fields{
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return resp, nil
}

// newTransport собирает цепочку интерсепторов.
// Порядок вложения фиксирован: auth -> logging -> shape -> базовый транспорт.
// На исходящем пути auth выполняется первым, на входящем shape выпрямляет
// тело до того, как его увидит декодер.
func newTransport(base http.RoundTripper, tokens port.TokenSourcePort) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	var rt http.RoundTripper = newShapeTransport(base, singleEntityPaths)
	rt = &loggingTransport{next: rt}
	rt = &authTransport{next: rt, tokens: tokens}
	return rt
}
