package fdc

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*options)

type options struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	onAdvisory func(context.Context, Advisory)
}

// WithBaseURL overrides the API root, for example to target a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient sets the client used for requests. It is never modified.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithTimeout sets a per-request timeout. Zero keeps the HTTP client's own
// setting.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithLogger sets the logger. Advisories are logged on it at WARN.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAdvisoryHandler registers fn to be called for every advisory a call
// produces, after it has been logged.
func WithAdvisoryHandler(fn func(context.Context, Advisory)) Option {
	return func(o *options) {
		o.onAdvisory = fn
	}
}
