package bootstrap

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-fdc/internal/platform/config"
	"github.com/jsamuelsen/go-fdc/pkg/fdc"
	"github.com/jsamuelsen/go-fdc/pkg/food"
)

func fdcConfig(baseURL string) *config.FDCConfig {
	return &config.FDCConfig{
		APIKey:           "DEMO_KEY",
		BaseURL:          baseURL,
		Timeout:          time.Second,
		BatchConcurrency: 2,
		HealthTimeout:    time.Second,
		Transport: config.TransportConfig{
			MaxIdleConns:        4,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     time.Minute,
		},
	}
}

func TestNewFDC(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/foods/list", r.URL.Path)
		_, _ = io.WriteString(w, `[]`)
	}))
	t.Cleanup(srv.Close)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	stack, err := NewFDC(fdcConfig(srv.URL), logger)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, stack.Client.BaseURL())

	req := fdc.DefaultListRequest()
	req.PageSize = 500

	items, err := stack.Service.ListFoods(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, items)

	// one advisory for the clamped page size, logged once
	assert.Equal(t, 1, strings.Count(logs.String(), "Maximum pageSize is 200"), logs.String())
}

func TestNewFDC_MissingKey(t *testing.T) {
	cfg := fdcConfig("http://localhost")
	cfg.APIKey = ""

	_, err := NewFDC(cfg, slog.Default())
	require.Error(t, err)
	assert.True(t, food.IsValidation(err))
}
