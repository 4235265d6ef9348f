package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-fdc/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                { return s.name }
func (s stubChecker) Check(context.Context) error { return s.err }

func healthEngine(t *testing.T, checkers ...ports.HealthChecker) *gin.Engine {
	t.Helper()

	registry := ports.NewHealthRegistry(0)
	for _, c := range checkers {
		require.NoError(t, registry.Register(c))
	}

	engine := gin.New()
	NewHealthHandler(registry, NewBuildInfo("fdc", "1.2.3", "abc123", "2026-01-01T00:00:00Z")).RegisterRoutes(engine)

	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	return w
}

func TestLiveness(t *testing.T) {
	w := get(healthEngine(t, stubChecker{name: "fdc-api", err: errors.New("down")}), "/-/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "healthy", wantStatus: http.StatusOK, wantBody: "healthy"},
		{name: "unhealthy", err: errors.New("rate limit exceeded"), wantStatus: http.StatusServiceUnavailable, wantBody: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(healthEngine(t, stubChecker{name: "fdc-api", err: tt.err}), "/-/ready")

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp readinessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantBody, resp.Status)
			require.Contains(t, resp.Checks, "fdc-api")

			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), resp.Checks["fdc-api"].Message)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	w := get(healthEngine(t), "/-/build")

	require.Equal(t, http.StatusOK, w.Code)

	var bi BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bi))
	assert.Equal(t, "fdc", bi.Service)
	assert.Equal(t, "1.2.3", bi.Version)
	assert.Equal(t, "abc123", bi.Commit)
	assert.Equal(t, runtime.Version(), bi.GoVersion)
}

func TestMetrics(t *testing.T) {
	w := get(healthEngine(t), "/-/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
