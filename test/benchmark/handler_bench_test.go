package benchmark

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	fdchttp "github.com/jsamuelsen/go-fdc/internal/adapters/http"
	"github.com/jsamuelsen/go-fdc/internal/adapters/http/handlers"
	"github.com/jsamuelsen/go-fdc/internal/app"
	"github.com/jsamuelsen/go-fdc/internal/platform/logging"
	"github.com/jsamuelsen/go-fdc/internal/platform/output"
	"github.com/jsamuelsen/go-fdc/internal/ports"
	"github.com/jsamuelsen/go-fdc/pkg/fdc"
	"github.com/jsamuelsen/go-fdc/pkg/food"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
	logging.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// staticClient answers every call with the same records and no network.
type staticClient struct {
	item   food.AbridgedFoodItem
	result *food.SearchResult
}

func (s *staticClient) GetFood(context.Context, int, food.ReportFormat, ...int) (food.Food, error) {
	return s.item, nil
}

func (s *staticClient) GetFoodRaw(context.Context, int, food.ReportFormat, ...int) (json.RawMessage, error) {
	return json.RawMessage(`{"fdcId":1}`), nil
}

func (s *staticClient) GetFoods(_ context.Context, ids []int, _ food.ReportFormat, _ ...int) ([]food.Food, error) {
	out := make([]food.Food, len(ids))
	for i := range ids {
		out[i] = s.item
	}

	return out, nil
}

func (s *staticClient) GetFoodsRaw(context.Context, []int, food.ReportFormat, ...int) (json.RawMessage, error) {
	return json.RawMessage(`[]`), nil
}

func (s *staticClient) ListFoods(context.Context, fdc.ListRequest) ([]food.AbridgedFoodItem, error) {
	return []food.AbridgedFoodItem{s.item, s.item, s.item}, nil
}

func (s *staticClient) ListFoodsRaw(context.Context, fdc.ListRequest) (json.RawMessage, error) {
	return json.RawMessage(`[]`), nil
}

func (s *staticClient) SearchFoods(context.Context, fdc.SearchRequest) (*food.SearchResult, error) {
	return s.result, nil
}

func (s *staticClient) SearchFoodsRaw(context.Context, fdc.SearchRequest) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

var _ ports.FoodDataClient = (*staticClient)(nil)

func newStaticClient() *staticClient {
	item := food.AbridgedFoodItem{
		FoodItem: food.FoodItem{FdcID: 747448, DataType: food.DataTypeFoundation, Description: "Strawberries, raw"},
	}

	return &staticClient{
		item:   item,
		result: &food.SearchResult{TotalHits: 1, CurrentPage: 1, TotalPages: 1},
	}
}

func benchmarkRouter() *gin.Engine {
	svc := app.NewFoodService(app.FoodServiceConfig{
		Client: newStaticClient(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	engine := gin.New()
	fdchttp.SetupRouter(engine, fdchttp.RouterConfig{
		ServiceName:   "bench",
		HealthHandler: handlers.NewHealthHandler(ports.NewHealthRegistry(0), handlers.NewBuildInfo("fdc", "1.0.0", "abc123", "")),
		FoodHandler:   handlers.NewFoodHandler(svc),
	})

	return engine
}

func benchmarkRoute(b *testing.B, path string) {
	b.Helper()

	engine := benchmarkRouter()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			b.Fatalf("status %d: %s", w.Code, w.Body.String())
		}
	}
}

func BenchmarkLiveness(b *testing.B) {
	benchmarkRoute(b, "/-/live")
}

func BenchmarkGetFood(b *testing.B) {
	benchmarkRoute(b, "/api/v1/foods/747448?format=abridged&nutrients=203,204")
}

func BenchmarkGetFoods_Batched(b *testing.B) {
	benchmarkRoute(b, "/api/v1/foods?fdcIds=1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20,21,22,23,24,25")
}

func BenchmarkListFoods(b *testing.B) {
	benchmarkRoute(b, "/api/v1/foods/list?dataType=Foundation&pageSize=3")
}

func BenchmarkSearchFoods(b *testing.B) {
	benchmarkRoute(b, "/api/v1/foods/search?query=strawberries")
}

func BenchmarkTableOutput(b *testing.B) {
	items, _ := newStaticClient().ListFoods(context.Background(), fdc.DefaultListRequest())
	w := output.NewWriter(output.FormatTable, io.Discard)

	b.ReportAllocs()

	for b.Loop() {
		if err := w.Write(items); err != nil {
			b.Fatal(err)
		}
	}
}
