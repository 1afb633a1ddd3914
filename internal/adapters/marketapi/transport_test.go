package marketapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"darna-client-service/internal/adapters/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthTransport_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer server.Close()

	store := session.NewStore()
	store.Set("token-1")

	client := &http.Client{Transport: &authTransport{next: http.DefaultTransport, tokens: store}}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer token-1", gotAuth)
}

func TestAuthTransport_NoTokenMeansUnauthenticated(t *testing.T) {
	var gotAuth string
	var hadHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadHeader = r.Header["Authorization"]
	}))
	defer server.Close()

	client := &http.Client{Transport: &authTransport{next: http.DefaultTransport, tokens: session.NewStore()}}

	// Запрос уходит сразу, без ожидания появления токена
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, gotAuth)
	assert.False(t, hadHeader)
}

// Токен читается в момент отправки: смена токена между запросами
// одной цепочки видна следующему запросу немедленно.
func TestAuthTransport_ReadsFreshTokenPerDispatch(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
	}))
	defer server.Close()

	store := session.NewStore()
	client := &http.Client{Transport: &authTransport{next: http.DefaultTransport, tokens: store}}

	store.Set("old")
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	store.Set("new")
	resp, err = client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	store.Clear()
	resp, err = client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"Bearer old", "Bearer new", ""}, seen)
}

func TestNewTransport_ChainOrder(t *testing.T) {
	// Полная цепочка: auth подставляет токен, shape выпрямляет тело
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	store := session.NewStore()
	store.Set("tok")
	client := &http.Client{Transport: newTransport(nil, store)}

	resp, err := client.Get(server.URL + "/api/v1/payments/intent")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, int64(2), resp.ContentLength) // "{}" вместо "[]"
}
