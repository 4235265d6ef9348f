package fdc

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsamuelsen/go-fdc/internal/adapters/clients"
	"github.com/jsamuelsen/go-fdc/internal/adapters/clients/acl"
	"github.com/jsamuelsen/go-fdc/pkg/food"
)

// DefaultBaseURL is the FoodData Central API root.
const DefaultBaseURL = acl.DefaultBaseURL

// ServiceName identifies the API in logs, spans and metrics.
const ServiceName = "fdc-api"

// Advisory is a non-fatal notice about an argument the API will clamp,
// such as a page size above the documented maximum.
type Advisory = acl.Advisory

// Client calls the FoodData Central API. It holds only immutable
// configuration and is safe for concurrent use.
type Client struct {
	api        *acl.FoodDataClient
	baseURL    string
	logger     *slog.Logger
	onAdvisory func(context.Context, Advisory)
}

// New creates a client authenticating with apiKey.
func New(apiKey string, opts ...Option) (*Client, error) {
	if err := acl.ValidateRequired(apiKey, "apiKey"); err != nil {
		return nil, err
	}

	o := options{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient, err := clients.New(&clients.Config{
		BaseURL:     o.baseURL,
		ServiceName: ServiceName,
		Timeout:     o.timeout,
		HTTPClient:  o.httpClient,
		Logger:      logger,
		AuthFunc: func(req *http.Request) {
			req.SetBasicAuth(apiKey, "")
		},
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		api: acl.NewFoodDataClient(acl.FoodDataClientConfig{
			Client: httpClient,
			Logger: logger,
		}),
		baseURL:    httpClient.BaseURL(),
		logger:     logger,
		onAdvisory: o.onAdvisory,
	}, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetFood fetches one food. An empty format means abridged. Abridged
// reports always map to food.AbridgedFoodItem; full reports map to the
// variant named by the record's dataType.
func (c *Client) GetFood(ctx context.Context, fdcID int, format food.ReportFormat, nutrients ...int) (food.Food, error) {
	format = reportFormat(format)

	raw, err := c.GetFoodRaw(ctx, fdcID, format, nutrients...)
	if err != nil {
		return nil, err
	}

	if format == food.FormatFull {
		return acl.TranslateFood(raw)
	}

	return acl.TranslateAbridgedFood(raw)
}

// GetFoodRaw is GetFood without mapping.
func (c *Client) GetFoodRaw(ctx context.Context, fdcID int, format food.ReportFormat, nutrients ...int) (json.RawMessage, error) {
	if err := acl.ValidatePositive(fdcID, "fdcId"); err != nil {
		return nil, err
	}

	return c.fetch(ctx, acl.EndpointFood, strconv.Itoa(fdcID), reportParams(format, nil, nutrients))
}

// GetFoods fetches several foods in one call, in response order.
func (c *Client) GetFoods(ctx context.Context, fdcIDs []int, format food.ReportFormat, nutrients ...int) ([]food.Food, error) {
	format = reportFormat(format)

	raw, err := c.GetFoodsRaw(ctx, fdcIDs, format, nutrients...)
	if err != nil {
		return nil, err
	}

	return acl.TranslateFoods(raw, format)
}

// GetFoodsRaw is GetFoods without mapping.
func (c *Client) GetFoodsRaw(ctx context.Context, fdcIDs []int, format food.ReportFormat, nutrients ...int) (json.RawMessage, error) {
	if len(fdcIDs) == 0 {
		return nil, food.NewValidationError("fdcIds", "is required")
	}

	return c.fetch(ctx, acl.EndpointFoods, "", reportParams(format, fdcIDs, nutrients))
}

// ListFoods fetches one page of abridged foods.
func (c *Client) ListFoods(ctx context.Context, req ListRequest) ([]food.AbridgedFoodItem, error) {
	raw, err := c.ListFoodsRaw(ctx, req)
	if err != nil {
		return nil, err
	}

	return acl.TranslateFoodList(raw)
}

// ListFoodsRaw is ListFoods without mapping.
func (c *Client) ListFoodsRaw(ctx context.Context, req ListRequest) (json.RawMessage, error) {
	return c.fetch(ctx, acl.EndpointList, "", listParams(req))
}

// SearchFoods runs a search and returns one page of results.
func (c *Client) SearchFoods(ctx context.Context, req SearchRequest) (*food.SearchResult, error) {
	raw, err := c.SearchFoodsRaw(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := acl.TranslateSearch(raw)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// SearchFoodsRaw is SearchFoods without mapping.
func (c *Client) SearchFoodsRaw(ctx context.Context, req SearchRequest) (json.RawMessage, error) {
	params := listParams(req.ListRequest)
	params.Query = &req.Query
	params.BrandOwner = req.BrandOwner

	return c.fetch(ctx, acl.EndpointSearch, "", params)
}

// Name returns the health check name for the API.
func (c *Client) Name() string {
	return c.api.Name()
}

// Check verifies that the API answers a one-item list call.
func (c *Client) Check(ctx context.Context) error {
	return c.api.Check(ctx)
}

func (c *Client) fetch(ctx context.Context, endpoint acl.Endpoint, id string, params *acl.QueryParams) (json.RawMessage, error) {
	raw, advisories, err := c.api.Fetch(ctx, endpoint, id, params)

	if c.onAdvisory != nil {
		for _, a := range advisories {
			c.onAdvisory(ctx, a)
		}
	}

	return raw, err
}

func reportFormat(format food.ReportFormat) food.ReportFormat {
	if format == "" {
		return food.FormatAbridged
	}

	return format
}

func reportParams(format food.ReportFormat, fdcIDs, nutrients []int) *acl.QueryParams {
	format = reportFormat(format)

	return &acl.QueryParams{
		Format:    &format,
		FdcIDs:    fdcIDs,
		Nutrients: nutrients,
	}
}

func listParams(req ListRequest) *acl.QueryParams {
	p := &acl.QueryParams{
		DataTypes:  req.DataTypes,
		PageSize:   &req.PageSize,
		PageNumber: &req.PageNumber,
		Reverse:    &req.Reverse,
	}

	if req.SortBy != "" {
		p.SortBy = &req.SortBy
	}

	return p
}
