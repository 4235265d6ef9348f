package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/go-fdc/internal/adapters/http/dto"
	"github.com/jsamuelsen/go-fdc/internal/platform/logging"
	"github.com/jsamuelsen/go-fdc/pkg/food"
)

// MapError maps an FDC error to an HTTP status code and error response.
// Errors outside the food taxonomy become 500 with a generic message.
func MapError(err error) (int, *dto.ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case food.IsValidation(err):
		resp := dto.NewErrorResponse(dto.ErrorCodeValidation, err.Error())

		var validationErr *food.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{validationErr.Field: validationErr.Message}
		}

		return http.StatusBadRequest, resp

	case food.IsRateLimited(err):
		return http.StatusTooManyRequests, dto.NewErrorResponse(dto.ErrorCodeRateLimited, err.Error())

	case food.IsInvalidCredentials(err):
		// The key belongs to the service, not the caller.
		return http.StatusBadGateway, dto.NewErrorResponse(dto.ErrorCodeUpstream, "upstream rejected the service credentials")

	case food.IsAPIError(err), food.IsMapping(err):
		return http.StatusBadGateway, dto.NewErrorResponse(dto.ErrorCodeUpstream, err.Error())

	case food.IsTransport(err):
		return http.StatusServiceUnavailable, dto.NewErrorResponse(dto.ErrorCodeUnavailable, "upstream unavailable")

	default:
		return http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternal, "an internal error occurred")
	}
}

// RespondWithError writes the mapped error response, with the trace ID
// when a span is active. 5xx errors are logged with the full error.
func RespondWithError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	status, resp := MapError(err)
	resp.WithTraceID(ctx)

	if status >= http.StatusInternalServerError {
		logging.FromContext(ctx).ErrorContext(ctx, "request failed",
			"error", err.Error(),
			"status", status,
			"trace_id", resp.TraceID,
		)
	}

	c.JSON(status, resp)
}

// RespondWithBindingError writes a 400 for a query that failed binding or
// validation.
func RespondWithBindingError(c *gin.Context, err error) {
	var resp *dto.ErrorResponse

	if details := dto.ValidationErrors(err); len(details) > 0 {
		resp = dto.NewErrorResponseWithDetails(dto.ErrorCodeValidation, "request validation failed", details)
	} else {
		resp = dto.NewErrorResponse(dto.ErrorCodeBadRequest, err.Error())
	}

	c.JSON(http.StatusBadRequest, resp.WithTraceID(c.Request.Context()))
}
