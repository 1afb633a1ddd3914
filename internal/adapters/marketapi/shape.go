package marketapi

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"

	"darna-client-service/internal/contextkeys"
	"darna-client-service/internal/core/port"

	"github.com/tidwall/gjson"
)

// singleEntityPaths - эндпоинты, контрактно возвращающие один объект.
// Сервер иногда отвечает на них массивом из одного элемента или пустым
// массивом; шаблон "*" означает один произвольный сегмент пути.
var singleEntityPaths = []string{
	"/api/v1/ads/*",
	"/api/v1/sellers/*/reputation",
	"/api/v1/payments/intent",
}

// shapeTransport выпрямляет форму тела ответа для одиночных эндпоинтов
// строго до того, как тело дойдет до декодера сущностей.
type shapeTransport struct {
	next  http.RoundTripper
	paths []string
}

func newShapeTransport(next http.RoundTripper, paths []string) *shapeTransport {
	return &shapeTransport{next: next, paths: paths}
}

func (t *shapeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil || resp == nil || resp.Body == nil {
		return resp, err
	}

	// Эндпоинты вне настроенного набора не трогаем
	if !matchesAny(req.URL.Path, t.paths) {
		return resp, nil
	}

	body, readErr := io.ReadAll(resp.Body)
	resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}

	fixed, changed := normalizeSingleEntityBody(body)
	if changed {
		logger := contextkeys.LoggerFromContext(req.Context())
		logger.Debug("Rewrote array-shaped response to a single object", port.Fields{
			"path": req.URL.Path,
		})
	}

	replaceBody(resp, fixed)
	return resp, nil
}

// normalizeSingleEntityBody приводит массив к его первому элементу
// (или к пустому объекту-заглушке), объект и мусор возвращает как есть.
// Интерсептор сам никогда не порождает ошибку декодирования.
func normalizeSingleEntityBody(body []byte) ([]byte, bool) {
	if !gjson.ValidBytes(body) {
		return body, false
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return body, false
	}

	elems := parsed.Array()
	if len(elems) == 0 {
		return []byte("{}"), true
	}
	return []byte(elems[0].Raw), true
}

func replaceBody(resp *http.Response, body []byte) {
	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	resp.Header.Set("Content-Length", strconv.Itoa(len(body)))
}

// matchesAny сопоставляет путь запроса с шаблонами по сегментам
func matchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchPath(path, pattern) {
			return true
		}
	}
	return false
}

func matchPath(path, pattern string) bool {
	pathSegs := strings.Split(strings.Trim(path, "/"), "/")
	patternSegs := strings.Split(strings.Trim(pattern, "/"), "/")
	if len(pathSegs) != len(patternSegs) {
		return false
	}
	for i, seg := range patternSegs {
		if seg == "*" {
			if pathSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return true
}
