package clients

import (
	"net/http"
	"time"
)

// TransportConfig sizes the connection pool of NewHTTPClient.
type TransportConfig struct {
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
}

// NewHTTPClient returns an http.Client with its own pooled transport,
// cloned from http.DefaultTransport. Zero fields keep the default values.
func NewHTTPClient(cfg TransportConfig) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.MaxIdleConns > 0 {
		transport.MaxIdleConns = cfg.MaxIdleConns
	}

	if cfg.MaxIdleConnsPerHost > 0 {
		transport.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost
	}

	if cfg.IdleConnTimeout > 0 {
		transport.IdleConnTimeout = cfg.IdleConnTimeout
	}

	return &http.Client{Transport: transport}
}
