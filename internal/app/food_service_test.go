package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-fdc/internal/mocks"
	"github.com/jsamuelsen/go-fdc/pkg/fdc"
	"github.com/jsamuelsen/go-fdc/pkg/food"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func abridged(id int) food.Food {
	return food.AbridgedFoodItem{FoodItem: food.FoodItem{FdcID: id, DataType: food.DataTypeFoundation}}
}

func newService(t *testing.T) (*FoodService, *mocks.MockFoodDataClient) {
	t.Helper()

	client := mocks.NewMockFoodDataClient(t)

	return NewFoodService(FoodServiceConfig{Client: client, Logger: discardLogger()}), client
}

func TestNewFoodService_PanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() {
		NewFoodService(FoodServiceConfig{Logger: discardLogger()})
	})
}

func TestNewFoodService_Defaults(t *testing.T) {
	svc := NewFoodService(FoodServiceConfig{Client: mocks.NewMockFoodDataClient(t)})

	assert.NotNil(t, svc.logger)
	assert.Equal(t, DefaultBatchConcurrency, svc.concurrency)
}

func TestFoodService_GetFood(t *testing.T) {
	svc, client := newService(t)
	client.On("GetFood", mock.Anything, 534358, food.FormatFull, []int{203}).Return(abridged(534358), nil)

	before := testutil.ToFloat64(clientCalls.WithLabelValues("get_food", OutcomeSuccess))

	f, err := svc.GetFood(context.Background(), 534358, food.FormatFull, 203)
	require.NoError(t, err)
	assert.Equal(t, 534358, f.Base().FdcID)
	assert.InDelta(t, before+1, testutil.ToFloat64(clientCalls.WithLabelValues("get_food", OutcomeSuccess)), 0)
}

func TestFoodService_GetFood_CountsFailure(t *testing.T) {
	svc, client := newService(t)
	client.On("GetFood", mock.Anything, 1, food.FormatAbridged, []int(nil)).
		Return(nil, food.ErrorForCode(http.StatusTooManyRequests, food.CodeOverRateLimit, ""))

	before := testutil.ToFloat64(clientCalls.WithLabelValues("get_food", OutcomeRateLimited))

	_, err := svc.GetFood(context.Background(), 1, food.FormatAbridged)
	require.Error(t, err)
	assert.True(t, food.IsRateLimited(err))
	assert.InDelta(t, before+1, testutil.ToFloat64(clientCalls.WithLabelValues("get_food", OutcomeRateLimited)), 0)
}

func TestFoodService_GetFoods_SingleCall(t *testing.T) {
	svc, client := newService(t)
	ids := lo.RangeFrom(1, 20)
	client.On("GetFoods", mock.Anything, ids, food.FormatAbridged, []int(nil)).
		Return(lo.Map(ids, func(id, _ int) food.Food { return abridged(id) }), nil).Once()

	foods, err := svc.GetFoods(context.Background(), ids, food.FormatAbridged)
	require.NoError(t, err)
	assert.Len(t, foods, 20)
}

func TestFoodService_GetFoods_Batched(t *testing.T) {
	svc, client := newService(t)
	ids := lo.RangeFrom(1, 45)

	for _, chunk := range lo.Chunk(ids, 20) {
		client.On("GetFoods", mock.Anything, chunk, food.FormatFull, []int{203}).
			Return(lo.Map(chunk, func(id, _ int) food.Food { return abridged(id) }), nil).Once()
	}

	foods, err := svc.GetFoods(context.Background(), ids, food.FormatFull, 203)
	require.NoError(t, err)
	require.Len(t, foods, 45)
	assert.Equal(t, ids, lo.Map(foods, func(f food.Food, _ int) int { return f.Base().FdcID }))
	client.AssertNumberOfCalls(t, "GetFoods", 3)
}

func TestFoodService_GetFoods_BatchFailure(t *testing.T) {
	svc, client := newService(t)
	ids := lo.RangeFrom(1, 30)
	chunks := lo.Chunk(ids, 20)

	client.On("GetFoods", mock.Anything, chunks[0], food.FormatAbridged, []int(nil)).
		Return([]food.Food{abridged(1)}, nil).Maybe()
	client.On("GetFoods", mock.Anything, chunks[1], food.FormatAbridged, []int(nil)).
		Return(nil, food.NewAPIError(http.StatusBadRequest, "SOME_OTHER_CODE", "bad query")).Once()

	foods, err := svc.GetFoods(context.Background(), ids, food.FormatAbridged)
	require.Error(t, err)
	assert.Nil(t, foods)
	assert.True(t, food.IsAPIError(err))
	assert.Contains(t, err.Error(), "bad query")
}

func TestFoodService_ListAndSearch(t *testing.T) {
	svc, client := newService(t)
	list := fdc.DefaultListRequest()
	search := fdc.DefaultSearchRequest("cheddar")

	client.On("ListFoods", mock.Anything, list).Return([]food.AbridgedFoodItem{}, nil)
	client.On("SearchFoods", mock.Anything, search).Return(&food.SearchResult{TotalHits: 42, CurrentPage: 1, TotalPages: 2}, nil)
	client.On("SearchFoodsRaw", mock.Anything, search).Return(json.RawMessage(`{"totalHits":42}`), nil)

	items, err := svc.ListFoods(context.Background(), list)
	require.NoError(t, err)
	assert.Empty(t, items)

	result, err := svc.SearchFoods(context.Background(), search)
	require.NoError(t, err)
	assert.Equal(t, 42, result.TotalHits)

	raw, err := svc.SearchFoodsRaw(context.Background(), search)
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalHits":42}`, string(raw))
}

func TestFoodService_RecordAdvisory(t *testing.T) {
	svc, _ := newService(t)
	counter := clientAdvisories.WithLabelValues("pageSize")
	before := testutil.ToFloat64(counter)

	svc.RecordAdvisory(context.Background(), fdc.Advisory{Field: "pageSize", Message: "Maximum pageSize is 200. pageSize passed is 201"})

	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0)
}

func TestOutcomeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: OutcomeSuccess},
		{name: "validation", err: food.NewValidationError("fdcId", "must be positive"), want: OutcomeValidation},
		{name: "rate limit", err: food.ErrorForCode(429, food.CodeOverRateLimit, ""), want: OutcomeRateLimited},
		{name: "invalid key", err: food.ErrorForCode(403, food.CodeAPIKeyInvalid, ""), want: OutcomeInvalidCredentials},
		{name: "api", err: food.NewAPIError(400, "SOME_OTHER_CODE", "bad query"), want: OutcomeAPIError},
		{name: "canceled", err: food.NewTransportError(0, context.Canceled), want: OutcomeCanceled},
		{name: "transport", err: food.NewTransportError(503, errors.New("unavailable")), want: OutcomeTransport},
		{name: "mapping", err: food.NewMissingKeyError("SearchResult", "totalHits"), want: OutcomeMapping},
		{name: "other", err: errors.New("boom"), want: OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outcomeFor(tt.err))
		})
	}
}
