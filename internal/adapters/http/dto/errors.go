// Package dto holds the request and response shapes of the HTTP API.
package dto

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// ErrorResponse is the error envelope returned by every endpoint.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is machine-readable, for example "RATE_LIMITED".
	Code string `json:"code"`

	Message string `json:"message"`

	// Details holds per-parameter messages for validation failures.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes.
const (
	ErrorCodeNotFound    = "NOT_FOUND"
	ErrorCodeValidation  = "VALIDATION_ERROR"
	ErrorCodeBadRequest  = "BAD_REQUEST"
	ErrorCodeRateLimited = "RATE_LIMITED"

	// ErrorCodeUpstream covers rejected credentials, API errors and
	// payloads that could not be mapped.
	ErrorCodeUpstream = "UPSTREAM_ERROR"

	ErrorCodeUnavailable = "SERVICE_UNAVAILABLE"
	ErrorCodeTimeout     = "TIMEOUT"
	ErrorCodeInternal    = "INTERNAL_ERROR"
)

// NewErrorResponse creates an error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with per-field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	resp := NewErrorResponse(code, message)
	resp.Error.Details = details

	return resp
}

// WithTraceID sets the trace ID of the active span in ctx, if there is one.
func (e *ErrorResponse) WithTraceID(ctx context.Context) *ErrorResponse {
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		e.TraceID = sc.TraceID().String()
	}

	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrorCodeUpstream:
		return http.StatusBadGateway
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
