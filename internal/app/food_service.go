// Package app contains the application services used by the CLI and the
// HTTP service. Services depend on port interfaces only.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/jsamuelsen/go-fdc/internal/adapters/clients/acl"
	"github.com/jsamuelsen/go-fdc/internal/ports"
	"github.com/jsamuelsen/go-fdc/pkg/fdc"
	"github.com/jsamuelsen/go-fdc/pkg/food"
)

// DefaultBatchConcurrency bounds the in-flight calls of a batched GetFoods.
const DefaultBatchConcurrency = 4

// FoodService wraps a FoodDataClient with logging and metrics. It is
// itself a FoodDataClient.
type FoodService struct {
	client      ports.FoodDataClient
	logger      *slog.Logger
	concurrency int
}

// FoodServiceConfig contains the dependencies of FoodService.
type FoodServiceConfig struct {
	Client ports.FoodDataClient
	Logger *slog.Logger

	// BatchConcurrency bounds parallel calls when GetFoods is given more
	// ids than one request accepts. Zero means DefaultBatchConcurrency.
	BatchConcurrency int
}

var _ ports.FoodDataClient = (*FoodService)(nil)

// NewFoodService creates a FoodService. It panics when no client is given.
func NewFoodService(cfg FoodServiceConfig) *FoodService {
	if cfg.Client == nil {
		panic("app: FoodServiceConfig.Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	concurrency := cfg.BatchConcurrency
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	return &FoodService{
		client:      cfg.Client,
		logger:      logger,
		concurrency: concurrency,
	}
}

// RecordAdvisory counts a parameter advisory. Pass it to
// fdc.WithAdvisoryHandler; the client already logs each advisory.
func (s *FoodService) RecordAdvisory(_ context.Context, a fdc.Advisory) {
	clientAdvisories.WithLabelValues(a.Field).Inc()
}

// GetFood fetches one food.
func (s *FoodService) GetFood(ctx context.Context, fdcID int, format food.ReportFormat, nutrients ...int) (food.Food, error) {
	return observe(ctx, s, acl.EndpointFood.Operation(), []slog.Attr{slog.Int("fdc_id", fdcID)},
		func(ctx context.Context) (food.Food, error) {
			return s.client.GetFood(ctx, fdcID, format, nutrients...)
		})
}

// GetFoodRaw fetches one food without mapping.
func (s *FoodService) GetFoodRaw(ctx context.Context, fdcID int, format food.ReportFormat, nutrients ...int) (json.RawMessage, error) {
	return observe(ctx, s, acl.EndpointFood.Operation(), []slog.Attr{slog.Int("fdc_id", fdcID), slog.Bool("raw", true)},
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.GetFoodRaw(ctx, fdcID, format, nutrients...)
		})
}

// GetFoods fetches foods by id. Up to acl.MaxFdcIDs ids go out in one
// call. Longer lists are split into chunks fetched concurrently and the
// results are joined in chunk order. Any failed chunk fails the whole call.
func (s *FoodService) GetFoods(ctx context.Context, fdcIDs []int, format food.ReportFormat, nutrients ...int) ([]food.Food, error) {
	attrs := []slog.Attr{slog.Int("ids", len(fdcIDs))}

	if len(fdcIDs) <= acl.MaxFdcIDs {
		return observe(ctx, s, acl.EndpointFoods.Operation(), attrs,
			func(ctx context.Context) ([]food.Food, error) {
				return s.client.GetFoods(ctx, fdcIDs, format, nutrients...)
			})
	}

	batches := lo.Chunk(fdcIDs, acl.MaxFdcIDs)

	s.logger.DebugContext(ctx, "batching foods request",
		slog.Int("ids", len(fdcIDs)),
		slog.Int("batches", len(batches)),
	)

	return MapBatches(ctx, s.concurrency, batches, func(ctx context.Context, ids []int) ([]food.Food, error) {
		return observe(ctx, s, acl.EndpointFoods.Operation(), []slog.Attr{slog.Int("ids", len(ids))},
			func(ctx context.Context) ([]food.Food, error) {
				return s.client.GetFoods(ctx, ids, format, nutrients...)
			})
	})
}

// GetFoodsRaw fetches foods without mapping. Raw bodies are not merged, so
// the single-call id limit applies.
func (s *FoodService) GetFoodsRaw(ctx context.Context, fdcIDs []int, format food.ReportFormat, nutrients ...int) (json.RawMessage, error) {
	return observe(ctx, s, acl.EndpointFoods.Operation(), []slog.Attr{slog.Int("ids", len(fdcIDs)), slog.Bool("raw", true)},
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.GetFoodsRaw(ctx, fdcIDs, format, nutrients...)
		})
}

// ListFoods fetches one page of abridged foods.
func (s *FoodService) ListFoods(ctx context.Context, req fdc.ListRequest) ([]food.AbridgedFoodItem, error) {
	return observe(ctx, s, acl.EndpointList.Operation(), listAttrs(req),
		func(ctx context.Context) ([]food.AbridgedFoodItem, error) {
			return s.client.ListFoods(ctx, req)
		})
}

// ListFoodsRaw fetches one page without mapping.
func (s *FoodService) ListFoodsRaw(ctx context.Context, req fdc.ListRequest) (json.RawMessage, error) {
	return observe(ctx, s, acl.EndpointList.Operation(), append(listAttrs(req), slog.Bool("raw", true)),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.ListFoodsRaw(ctx, req)
		})
}

// SearchFoods runs a search.
func (s *FoodService) SearchFoods(ctx context.Context, req fdc.SearchRequest) (*food.SearchResult, error) {
	result, err := observe(ctx, s, acl.EndpointSearch.Operation(), searchAttrs(req),
		func(ctx context.Context) (*food.SearchResult, error) {
			return s.client.SearchFoods(ctx, req)
		})
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "search results",
		slog.Int("total_hits", result.TotalHits),
		slog.Int("current_page", result.CurrentPage),
		slog.Int("total_pages", result.TotalPages),
	)

	return result, nil
}

// SearchFoodsRaw runs a search without mapping.
func (s *FoodService) SearchFoodsRaw(ctx context.Context, req fdc.SearchRequest) (json.RawMessage, error) {
	return observe(ctx, s, acl.EndpointSearch.Operation(), append(searchAttrs(req), slog.Bool("raw", true)),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.SearchFoodsRaw(ctx, req)
		})
}

// observe times fn, counts its outcome and logs failures.
func observe[T any](
	ctx context.Context,
	s *FoodService,
	operation string,
	attrs []slog.Attr,
	fn func(context.Context) (T, error),
) (T, error) {
	attrs = append([]slog.Attr{slog.String("operation", operation)}, attrs...)
	s.logger.LogAttrs(ctx, slog.LevelDebug, "calling fdc", attrs...)

	start := time.Now()
	result, err := fn(ctx)
	elapsed := time.Since(start)

	outcome := outcomeFor(err)
	clientCalls.WithLabelValues(operation, outcome).Inc()
	clientCallDuration.WithLabelValues(operation).Observe(elapsed.Seconds())

	attrs = append(attrs,
		slog.String("outcome", outcome),
		slog.Duration("duration", elapsed),
	)

	if err != nil {
		level := slog.LevelError
		if outcome == OutcomeValidation || outcome == OutcomeCanceled {
			level = slog.LevelInfo
		}

		s.logger.LogAttrs(ctx, level, "fdc call failed", append(attrs, slog.Any("error", err))...)

		return result, err
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "fdc call completed", attrs...)

	return result, nil
}

// outcomeFor classifies err into an outcome label.
func outcomeFor(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case food.IsValidation(err):
		return OutcomeValidation
	case food.IsRateLimited(err):
		return OutcomeRateLimited
	case food.IsInvalidCredentials(err):
		return OutcomeInvalidCredentials
	case food.IsAPIError(err):
		return OutcomeAPIError
	case errors.Is(err, context.Canceled):
		return OutcomeCanceled
	case food.IsTransport(err):
		return OutcomeTransport
	case food.IsMapping(err):
		return OutcomeMapping
	default:
		return OutcomeError
	}
}

func listAttrs(req fdc.ListRequest) []slog.Attr {
	return []slog.Attr{
		slog.Int("page_size", req.PageSize),
		slog.Int("page_number", req.PageNumber),
	}
}

func searchAttrs(req fdc.SearchRequest) []slog.Attr {
	return append(listAttrs(req.ListRequest), slog.String("query", req.Query))
}
