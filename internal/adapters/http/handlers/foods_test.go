package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-fdc/internal/adapters/http/dto"
	"github.com/jsamuelsen/go-fdc/internal/mocks"
	"github.com/jsamuelsen/go-fdc/pkg/fdc"
	"github.com/jsamuelsen/go-fdc/pkg/food"
)

func foodEngine(t *testing.T) (*gin.Engine, *mocks.MockFoodDataClient) {
	t.Helper()

	client := mocks.NewMockFoodDataClient(t)
	engine := gin.New()
	NewFoodHandler(client).RegisterRoutes(engine.Group("/api/v1"))

	return engine, client
}

func abridged(id int, description string) food.AbridgedFoodItem {
	return food.AbridgedFoodItem{
		FoodItem: food.FoodItem{FdcID: id, DataType: food.DataTypeFoundation, Description: description},
	}
}

func decodeError(t *testing.T, body []byte) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))

	return resp
}

func TestGetFood(t *testing.T) {
	engine, client := foodEngine(t)
	client.On("GetFood", mock.Anything, 747448, food.FormatFull, []int{203, 204}).
		Return(abridged(747448, "Strawberries, raw"), nil)

	w := get(engine, "/api/v1/foods/747448?format=full&nutrients=203,204")

	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.EqualValues(t, 747448, got["fdcId"])
	assert.Equal(t, "Strawberries, raw", got["description"])
}

func TestGetFood_Raw(t *testing.T) {
	engine, client := foodEngine(t)
	client.On("GetFoodRaw", mock.Anything, 1, food.ReportFormat(""), []int(nil)).
		Return(json.RawMessage(`{"fdcId":1,"extra":true}`), nil)

	w := get(engine, "/api/v1/foods/1?raw=true")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"fdcId":1,"extra":true}`, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestGetFood_NonNumericID(t *testing.T) {
	engine, _ := foodEngine(t)

	w := get(engine, "/api/v1/foods/apple")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w.Body.Bytes())
	assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "fdcId")
}

func TestGetFoods(t *testing.T) {
	engine, client := foodEngine(t)
	client.On("GetFoods", mock.Anything, []int{1, 2, 3}, food.FormatAbridged, []int(nil)).
		Return([]food.Food{abridged(1, "a"), abridged(2, "b"), abridged(3, "c")}, nil)

	w := get(engine, "/api/v1/foods?fdcIds=1,2&fdcIds=3&format=abridged")

	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[2]["description"])
}

func TestGetFoods_MissingIDs(t *testing.T) {
	engine, _ := foodEngine(t)

	w := get(engine, "/api/v1/foods")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w.Body.Bytes())
	assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "fdcIds")
}

func TestListFoods(t *testing.T) {
	engine, client := foodEngine(t)

	want := fdc.DefaultListRequest()
	want.DataTypes = []food.DataType{food.DataTypeBranded}
	want.PageSize = 10
	want.PageNumber = 2
	want.SortBy = food.SortByPublishedDate
	want.Reverse = true

	client.On("ListFoods", mock.Anything, want).Return([]food.AbridgedFoodItem{abridged(1, "a")}, nil)

	w := get(engine, "/api/v1/foods/list?dataType=Branded&pageSize=10&pageNumber=2&sortBy=publishedDate&sortOrder=desc")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fdcId":1`)
}

func TestListFoods_BadPageSize(t *testing.T) {
	engine, _ := foodEngine(t)

	w := get(engine, "/api/v1/foods/list?pageSize=many")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeBadRequest, decodeError(t, w.Body.Bytes()).Error.Code)
}

func TestSearchFoods(t *testing.T) {
	engine, client := foodEngine(t)

	want := fdc.DefaultSearchRequest("cheddar")
	want.BrandOwner = "Kraft"

	client.On("SearchFoods", mock.Anything, want).Return(&food.SearchResult{TotalHits: 42, CurrentPage: 1, TotalPages: 2}, nil)

	w := get(engine, "/api/v1/foods/search?query=cheddar&brandOwner=Kraft")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalHits":42`)
}

func TestSearchFoods_RawError(t *testing.T) {
	engine, client := foodEngine(t)
	client.On("SearchFoodsRaw", mock.Anything, fdc.DefaultSearchRequest("")).
		Return(nil, food.NewValidationError("query", "is required"))

	w := get(engine, "/api/v1/foods/search?raw=true")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "is required", decodeError(t, w.Body.Bytes()).Error.Details["query"])
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "validation", err: food.NewValidationError("pageSize", "must be at least 1"), wantStatus: http.StatusBadRequest, wantCode: dto.ErrorCodeValidation},
		{name: "rate limited", err: food.ErrorForCode(http.StatusTooManyRequests, food.CodeOverRateLimit, "slow down"), wantStatus: http.StatusTooManyRequests, wantCode: dto.ErrorCodeRateLimited},
		{name: "invalid credentials", err: food.ErrorForCode(http.StatusForbidden, food.CodeAPIKeyInvalid, "bad key"), wantStatus: http.StatusBadGateway, wantCode: dto.ErrorCodeUpstream},
		{name: "api error", err: food.NewAPIError(http.StatusBadRequest, "SOME_OTHER_CODE", "bad query"), wantStatus: http.StatusBadGateway, wantCode: dto.ErrorCodeUpstream},
		{name: "mapping", err: food.NewMappingError("food", "unknown dataType"), wantStatus: http.StatusBadGateway, wantCode: dto.ErrorCodeUpstream},
		{name: "transport", err: food.NewTransportError(0, errors.New("connection refused")), wantStatus: http.StatusServiceUnavailable, wantCode: dto.ErrorCodeUnavailable},
		{name: "wrapped transport", err: fmt.Errorf("batch: %w", food.NewTransportError(0, errors.New("eof"))), wantStatus: http.StatusServiceUnavailable, wantCode: dto.ErrorCodeUnavailable},
		{name: "other", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: dto.ErrorCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}

	status, resp := MapError(nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp)
}

func TestMapError_CredentialsHidden(t *testing.T) {
	_, resp := MapError(food.ErrorForCode(http.StatusForbidden, food.CodeAPIKeyInvalid, "key abc is invalid"))

	assert.NotContains(t, resp.Error.Message, "abc")
}
