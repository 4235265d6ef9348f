package acl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen/go-fdc/internal/adapters/clients"
	"github.com/jsamuelsen/go-fdc/internal/platform/logging"
)

// FoodDataClientConfig contains configuration for the FDC client adapter.
type FoodDataClientConfig struct {
	// Client is the instrumented HTTP client. Its BaseURL must point at the
	// FDC API root and its AuthFunc must attach the API key.
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger
}

// FoodDataClient performs one validated round trip per call against the
// FDC API and returns the success payload or a classified error.
type FoodDataClient struct {
	client *clients.Client
	logger *slog.Logger
}

// NewFoodDataClient creates the adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewFoodDataClient(cfg FoodDataClientConfig) *FoodDataClient {
	if cfg.Client == nil {
		panic("FoodDataClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &FoodDataClient{
		client: cfg.Client,
		logger: logger,
	}
}

// Fetch validates params, resolves the endpoint and issues the GET. The
// returned payload has already passed envelope inspection. Validation
// failures never reach the network.
func (c *FoodDataClient) Fetch(ctx context.Context, endpoint Endpoint, id string, params *QueryParams) (json.RawMessage, []Advisory, error) {
	path, err := BuildPath(endpoint, id)
	if err != nil {
		return nil, nil, err
	}

	var (
		query      url.Values
		advisories []Advisory
	)

	if params != nil {
		query, advisories, err = params.Encode()
		if err != nil {
			return nil, nil, err
		}
	}

	op := endpoint.Operation()

	for _, a := range advisories {
		c.logger.WarnContext(ctx, a.Message,
			slog.String("operation", op),
			slog.String("field", a.Field))
	}

	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("operation", op),
		slog.String("path", path))

	resp, err := c.client.Get(ctx, path, query)
	if err != nil {
		return nil, advisories, MapClientError(err)
	}

	c.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("operation", op),
		slog.Int("status", resp.StatusCode))

	raw, err := ReadEnvelope(resp)
	if err != nil {
		c.logger.DebugContext(ctx, "fdc request failed",
			slog.String("operation", op),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err))

		return nil, advisories, err
	}

	return raw, advisories, nil
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *FoodDataClient) Name() string {
	return "fdc-api"
}

// Check lists a single food to verify connectivity and credentials.
// Implements ports.HealthChecker.
func (c *FoodDataClient) Check(ctx context.Context) error {
	one := 1

	_, _, err := c.Fetch(ctx, EndpointList, "", &QueryParams{PageSize: &one})

	return err
}
