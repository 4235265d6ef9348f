// Package mocks provides testify mocks of the ports interfaces.
package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen/go-fdc/internal/ports"
	"github.com/jsamuelsen/go-fdc/pkg/fdc"
	"github.com/jsamuelsen/go-fdc/pkg/food"
)

// MockFoodDataClient is a mock of ports.FoodDataClient. Variadic nutrient
// ids are matched as a single []int argument.
type MockFoodDataClient struct {
	mock.Mock
}

var _ ports.FoodDataClient = (*MockFoodDataClient)(nil)

// NewMockFoodDataClient creates a mock whose expectations are asserted
// when the test ends.
func NewMockFoodDataClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFoodDataClient {
	m := &MockFoodDataClient{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFoodDataClient) GetFood(ctx context.Context, fdcID int, format food.ReportFormat, nutrients ...int) (food.Food, error) {
	args := m.Called(ctx, fdcID, format, nutrients)
	f, _ := args.Get(0).(food.Food)

	return f, args.Error(1)
}

func (m *MockFoodDataClient) GetFoodRaw(ctx context.Context, fdcID int, format food.ReportFormat, nutrients ...int) (json.RawMessage, error) {
	args := m.Called(ctx, fdcID, format, nutrients)
	raw, _ := args.Get(0).(json.RawMessage)

	return raw, args.Error(1)
}

func (m *MockFoodDataClient) GetFoods(ctx context.Context, fdcIDs []int, format food.ReportFormat, nutrients ...int) ([]food.Food, error) {
	args := m.Called(ctx, fdcIDs, format, nutrients)
	foods, _ := args.Get(0).([]food.Food)

	return foods, args.Error(1)
}

func (m *MockFoodDataClient) GetFoodsRaw(ctx context.Context, fdcIDs []int, format food.ReportFormat, nutrients ...int) (json.RawMessage, error) {
	args := m.Called(ctx, fdcIDs, format, nutrients)
	raw, _ := args.Get(0).(json.RawMessage)

	return raw, args.Error(1)
}

func (m *MockFoodDataClient) ListFoods(ctx context.Context, req fdc.ListRequest) ([]food.AbridgedFoodItem, error) {
	args := m.Called(ctx, req)
	items, _ := args.Get(0).([]food.AbridgedFoodItem)

	return items, args.Error(1)
}

func (m *MockFoodDataClient) ListFoodsRaw(ctx context.Context, req fdc.ListRequest) (json.RawMessage, error) {
	args := m.Called(ctx, req)
	raw, _ := args.Get(0).(json.RawMessage)

	return raw, args.Error(1)
}

func (m *MockFoodDataClient) SearchFoods(ctx context.Context, req fdc.SearchRequest) (*food.SearchResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*food.SearchResult)

	return result, args.Error(1)
}

func (m *MockFoodDataClient) SearchFoodsRaw(ctx context.Context, req fdc.SearchRequest) (json.RawMessage, error) {
	args := m.Called(ctx, req)
	raw, _ := args.Get(0).(json.RawMessage)

	return raw, args.Error(1)
}
