package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/go-fdc/internal/platform/logging"
)

// Logging logs one line per request at a level chosen by status. Paths
// under /-/ are not logged. When a span is active its trace ID is added to
// the context logger, so run it after the telemetry middleware.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/-/") {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			ctx = logging.WithTraceID(ctx, sc.TraceID().String())
			c.Request = c.Request.WithContext(ctx)
		}

		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		logging.FromContext(ctx).LogAttrs(ctx, level, "request completed",
			slog.String("method", c.Request.Method),
			slog.String("route", c.FullPath()),
			slog.String("path", c.Request.URL.Path),
			slog.String("query", c.Request.URL.RawQuery),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}
