// Package ports defines the interfaces the application layer depends on.
// Adapters implement them; the app package never sees a concrete client.
//
// Methods take a context first, return pkg/food records and report
// failures with the food error taxonomy.
package ports

import (
	"context"
	"encoding/json"

	"github.com/jsamuelsen/go-fdc/pkg/fdc"
	"github.com/jsamuelsen/go-fdc/pkg/food"
)

// FoodDataClient is the FoodData Central API as seen by the application.
// *fdc.Client implements it.
type FoodDataClient interface {
	// GetFood fetches one food. Abridged reports map to
	// food.AbridgedFoodItem; full reports map by dataType.
	GetFood(ctx context.Context, fdcID int, format food.ReportFormat, nutrients ...int) (food.Food, error)
	GetFoodRaw(ctx context.Context, fdcID int, format food.ReportFormat, nutrients ...int) (json.RawMessage, error)

	// GetFoods fetches up to 20 foods in one call.
	GetFoods(ctx context.Context, fdcIDs []int, format food.ReportFormat, nutrients ...int) ([]food.Food, error)
	GetFoodsRaw(ctx context.Context, fdcIDs []int, format food.ReportFormat, nutrients ...int) (json.RawMessage, error)

	// ListFoods fetches one page of abridged foods.
	ListFoods(ctx context.Context, req fdc.ListRequest) ([]food.AbridgedFoodItem, error)
	ListFoodsRaw(ctx context.Context, req fdc.ListRequest) (json.RawMessage, error)

	// SearchFoods runs a search and returns one page of results.
	SearchFoods(ctx context.Context, req fdc.SearchRequest) (*food.SearchResult, error)
	SearchFoodsRaw(ctx context.Context, req fdc.SearchRequest) (json.RawMessage, error)
}

var _ FoodDataClient = (*fdc.Client)(nil)
