package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/go-fdc/internal/adapters/http/handlers"
	"github.com/jsamuelsen/go-fdc/internal/adapters/http/middleware"
	"github.com/jsamuelsen/go-fdc/internal/platform/telemetry"
)

// RouterConfig contains the handlers and settings of SetupRouter.
type RouterConfig struct {
	// ServiceName names the server spans.
	ServiceName string

	HealthHandler *handlers.HealthHandler
	FoodHandler   *handlers.FoodHandler

	// Timeout bounds /api/v1 requests. Zero disables it.
	Timeout time.Duration
}

// SetupRouter installs the middleware and routes on engine. Middleware order:
//  1. Recovery
//  2. Request ID and correlation ID
//  3. OpenTelemetry spans and HTTP metrics
//  4. Logging, which skips /-/ paths
//  5. Timeout, on /api/v1 only
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging())

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.FoodHandler != nil {
		cfg.FoodHandler.RegisterRoutes(apiV1)
	}
}
