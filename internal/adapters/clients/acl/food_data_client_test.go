package acl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-fdc/internal/adapters/clients"
	"github.com/jsamuelsen/go-fdc/pkg/food"
)

// setupFoodDataClient creates a FoodDataClient backed by a test server.
func setupFoodDataClient(t *testing.T, handler http.HandlerFunc) *FoodDataClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := clients.New(&clients.Config{
		ServiceName: "fdc-test",
		BaseURL:     server.URL,
		AuthFunc: func(r *http.Request) {
			r.SetBasicAuth("DEMO_KEY", "")
		},
	})
	require.NoError(t, err)

	return NewFoodDataClient(FoodDataClientConfig{
		Client: client,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestNewFoodDataClient_PanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() {
		NewFoodDataClient(FoodDataClientConfig{})
	})
}

func TestFoodDataClient_FetchFood(t *testing.T) {
	c := setupFoodDataClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/food/534358", r.URL.Path)
		assert.Equal(t, "full", r.URL.Query().Get("format"))
		assert.Equal(t, []string{"203", "204"}, r.URL.Query()["nutrients"])

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "DEMO_KEY", user)
		assert.Empty(t, pass)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"fdcId":534358,"dataType":"Branded","description":"x"}`))
	})

	format := food.FormatFull
	raw, advisories, err := c.Fetch(context.Background(), EndpointFood, "534358", &QueryParams{
		Format:    &format,
		Nutrients: []int{203, 204},
	})

	require.NoError(t, err)
	assert.Empty(t, advisories)
	assert.JSONEq(t, `{"fdcId":534358,"dataType":"Branded","description":"x"}`, string(raw))
}

func TestFoodDataClient_ValidationNeverReachesNetwork(t *testing.T) {
	var calls atomic.Int32

	c := setupFoodDataClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	})

	_, _, err := c.Fetch(context.Background(), EndpointFoods, "", &QueryParams{FdcIDs: seq(MaxFdcIDs + 1)})
	assert.True(t, food.IsValidation(err))

	_, _, err = c.Fetch(context.Background(), EndpointFood, " ", nil)
	assert.True(t, food.IsValidation(err))

	assert.Zero(t, calls.Load())
}

func TestFoodDataClient_Advisories(t *testing.T) {
	c := setupFoodDataClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/foods/list", r.URL.Path)
		assert.Equal(t, "500", r.URL.Query().Get("pageSize"))
		_, _ = w.Write([]byte(`[]`))
	})

	size := 500
	raw, advisories, err := c.Fetch(context.Background(), EndpointList, "ignored", &QueryParams{PageSize: &size})

	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
	require.Len(t, advisories, 1)
	assert.Equal(t, "Maximum pageSize is 200. pageSize passed is 500", advisories[0].Message)
}

func TestFoodDataClient_ErrorEnvelopes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{name: "rate limit", status: http.StatusTooManyRequests, body: `{"error":{"code":"OVER_RATE_LIMIT","message":"slow down"}}`, check: food.IsRateLimited},
		{name: "invalid key", status: http.StatusForbidden, body: `{"error":{"code":"API_KEY_INVALID"}}`, check: food.IsInvalidCredentials},
		{name: "api error", status: http.StatusBadRequest, body: `{"errors":{"error":[{"code":"X","message":"bad query"}]}}`, check: food.IsAPIError},
		{name: "html", status: http.StatusBadGateway, body: `<html></html>`, check: food.IsTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := setupFoodDataClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, _, err := c.Fetch(context.Background(), EndpointSearch, "", nil)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
		})
	}
}

func TestFoodDataClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := clients.New(&clients.Config{ServiceName: "fdc-test", BaseURL: url})
	require.NoError(t, err)

	c := NewFoodDataClient(FoodDataClientConfig{Client: client})

	_, _, err = c.Fetch(context.Background(), EndpointList, "", nil)
	require.Error(t, err)
	assert.True(t, food.IsTransport(err))
	assert.ErrorIs(t, err, clients.ErrRequestFailed)
}

func TestFoodDataClient_Check(t *testing.T) {
	c := setupFoodDataClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/foods/list", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("pageSize"))
		_, _ = w.Write([]byte(`[]`))
	})

	assert.Equal(t, "fdc-api", c.Name())
	assert.NoError(t, c.Check(context.Background()))
}
