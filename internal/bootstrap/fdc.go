// Package bootstrap builds the FDC client stack from configuration. The
// CLI and the HTTP service share it.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/go-fdc/internal/adapters/clients"
	"github.com/jsamuelsen/go-fdc/internal/app"
	"github.com/jsamuelsen/go-fdc/internal/platform/config"
	"github.com/jsamuelsen/go-fdc/pkg/fdc"
)

// FDC is a configured client and the service wrapping it.
type FDC struct {
	Client  *fdc.Client
	Service *app.FoodService
}

// NewFDC creates the client and service described by cfg. The client logs
// advisories and the service counts them.
func NewFDC(cfg *config.FDCConfig, logger *slog.Logger) (*FDC, error) {
	httpClient := clients.NewHTTPClient(clients.TransportConfig{
		MaxIdleConns:        cfg.Transport.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.Transport.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.Transport.IdleConnTimeout,
	})

	var svc *app.FoodService

	client, err := fdc.New(cfg.APIKey,
		fdc.WithBaseURL(cfg.BaseURL),
		fdc.WithHTTPClient(httpClient),
		fdc.WithTimeout(cfg.Timeout),
		fdc.WithLogger(logger),
		fdc.WithAdvisoryHandler(func(ctx context.Context, a fdc.Advisory) {
			svc.RecordAdvisory(ctx, a)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fdc client: %w", err)
	}

	svc = app.NewFoodService(app.FoodServiceConfig{
		Client:           client,
		Logger:           logger,
		BatchConcurrency: cfg.BatchConcurrency,
	})

	return &FDC{Client: client, Service: svc}, nil
}
