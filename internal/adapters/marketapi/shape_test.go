package marketapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSingleEntityBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		changed bool
	}{
		{"массив из одного элемента", `[{"_id":"x","title":"t"}]`, `{"_id":"x","title":"t"}`, true},
		{"массив из нескольких элементов", `[{"_id":"a"},{"_id":"b"}]`, `{"_id":"a"}`, true},
		{"пустой массив", `[]`, `{}`, true},
		{"объект проходит как есть", `{"_id":"x"}`, `{"_id":"x"}`, false},
		{"мусор проходит как есть", `not json at all`, `not json at all`, false},
		{"скаляр проходит как есть", `42`, `42`, false},
		{"пустое тело", ``, ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeSingleEntityBody([]byte(tt.body))
			assert.Equal(t, tt.want, string(got))
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestMatchPath(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"/api/v1/ads/abc123", "/api/v1/ads/*", true},
		{"/api/v1/ads", "/api/v1/ads/*", false},
		{"/api/v1/ads/abc/extra", "/api/v1/ads/*", false},
		{"/api/v1/sellers/s1/reputation", "/api/v1/sellers/*/reputation", true},
		{"/api/v1/sellers/s1/feedbacks", "/api/v1/sellers/*/reputation", false},
		{"/api/v1/payments/intent", "/api/v1/payments/intent", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matchPath(tt.path, tt.pattern), "%s vs %s", tt.path, tt.pattern)
	}
}

func TestShapeTransport_RewritesConfiguredPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"x"}]`))
	}))
	defer server.Close()

	client := &http.Client{Transport: newShapeTransport(http.DefaultTransport, singleEntityPaths)}

	resp, err := client.Get(server.URL + "/api/v1/ads/abc")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"x"}`, string(body))
	// Длина тела согласована с переписанным содержимым
	assert.Equal(t, int64(len(body)), resp.ContentLength)
}

func TestShapeTransport_LeavesOtherPathsAlone(t *testing.T) {
	// Списочный эндпоинт законно возвращает массив - его не трогаем
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"a"},{"_id":"b"}]`))
	}))
	defer server.Close()

	client := &http.Client{Transport: newShapeTransport(http.DefaultTransport, singleEntityPaths)}

	resp, err := client.Get(server.URL + "/api/v1/ads")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"_id":"a"},{"_id":"b"}]`, string(body))
}
