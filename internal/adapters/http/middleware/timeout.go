package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/go-fdc/internal/adapters/http/dto"
	"github.com/jsamuelsen/go-fdc/internal/platform/logging"
)

// Timeout bounds the request context. Handlers pass the context to the FDC
// client, so an expired deadline cancels the upstream call. If the deadline
// passed and the handler wrote nothing, a 504 envelope is sent.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}

		logging.FromContext(ctx).WarnContext(ctx, "request timeout",
			slog.String("path", c.Request.URL.Path),
			slog.Duration("timeout", timeout),
		)

		if !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout,
				dto.NewErrorResponse(dto.ErrorCodeTimeout, "request timeout exceeded").WithTraceID(ctx))
		}
	}
}
