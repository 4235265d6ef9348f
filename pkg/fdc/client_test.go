package fdc

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-fdc/pkg/food"
)

const brandedFull = `{
	"fdcId": 534358, "dataType": "Branded", "description": "NUT 'N BERRY MIX",
	"brandOwner": "Kar Nut Products Company", "gtinUpc": "077034085228",
	"foodNutrients": [{"id": 1, "amount": 17.86, "nutrient": {"id": 1003, "number": "203", "name": "Protein"}}]
}`

const searchPage = `{
	"foodSearchCriteria": {"query": "cheddar", "pageSize": 25, "pageNumber": 1},
	"totalHits": 42, "currentPage": 1, "totalPages": 2,
	"foods": [
		{"fdcId": 1, "dataType": "Branded", "description": "CHEDDAR", "brandOwner": "Kraft", "gtinUpc": "1"},
		{"fdcId": 2, "dataType": "SR Legacy", "description": "Cheese, cheddar", "ndbNumber": 1009}
	]
}`

func TestNew(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
	assert.True(t, food.IsValidation(err))

	c, err := New("DEMO_KEY")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	c, err = New("DEMO_KEY", WithBaseURL("http://localhost:9999/fdc/"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/fdc", c.BaseURL())
}

func TestNew_DoesNotMutateHTTPClient(t *testing.T) {
	own := &http.Client{Timeout: time.Minute}

	_, err := New("DEMO_KEY", WithHTTPClient(own), WithTimeout(time.Second))
	require.NoError(t, err)
	assert.Equal(t, time.Minute, own.Timeout)
}

func TestGetFood_Abridged(t *testing.T) {
	c, fake := newTestClient(t)
	fake.reply("/food/534358", http.StatusOK, brandedFull)

	f, err := c.GetFood(context.Background(), 534358, "")
	require.NoError(t, err)

	item, ok := f.(food.AbridgedFoodItem)
	require.True(t, ok, "got %T", f)
	assert.Equal(t, "Kar Nut Products Company", *item.Brand)
	assert.Nil(t, item.NdbID)
	assert.Equal(t, "abridged", fake.lastQuery().Get("format"))

	user, pass, ok := fake.lastRequest().BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "DEMO_KEY", user)
	assert.Empty(t, pass)
}

func TestGetFood_Full(t *testing.T) {
	c, fake := newTestClient(t)
	fake.reply("/food/534358", http.StatusOK, brandedFull)

	f, err := c.GetFood(context.Background(), 534358, food.FormatFull, 203, 204)
	require.NoError(t, err)

	item, ok := f.(food.BrandedFoodItem)
	require.True(t, ok, "got %T", f)
	assert.Equal(t, "077034085228", item.GtinUpc)
	assert.Equal(t, "full", fake.lastQuery().Get("format"))
	assert.Equal(t, []string{"203", "204"}, fake.lastQuery()["nutrients"])
}

func TestGetFood_InvalidID(t *testing.T) {
	c, fake := newTestClient(t)

	_, err := c.GetFood(context.Background(), 0, food.FormatFull)
	require.Error(t, err)
	assert.True(t, food.IsValidation(err))
	assert.Zero(t, fake.callCount())
}

func TestGetFoodRaw(t *testing.T) {
	c, fake := newTestClient(t)
	fake.reply("/food/534358", http.StatusOK, brandedFull)

	raw, err := c.GetFoodRaw(context.Background(), 534358, food.FormatFull)
	require.NoError(t, err)
	assert.JSONEq(t, brandedFull, string(raw))
}

func TestGetFoods(t *testing.T) {
	c, fake := newTestClient(t)
	fake.reply("/foods", http.StatusOK, `[
		{"fdcId": 2, "dataType": "Foundation", "description": "second"},
		{"fdcId": 1, "dataType": "Survey (FNDDS)", "description": "first", "foodCode": 1}
	]`)

	foods, err := c.GetFoods(context.Background(), []int{2, 1}, "")
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, 2, foods[0].Base().FdcID)
	assert.Equal(t, 1, foods[1].Base().FdcID)
	assert.Equal(t, []string{"2", "1"}, fake.lastQuery()["fdcIds"])

	full, err := c.GetFoods(context.Background(), []int{2, 1}, food.FormatFull)
	require.NoError(t, err)
	assert.Equal(t, food.KindFoundation, full[0].Kind())
	assert.Equal(t, food.KindSurvey, full[1].Kind())
}

func TestGetFoods_Limits(t *testing.T) {
	c, fake := newTestClient(t)

	_, err := c.GetFoods(context.Background(), nil, "")
	assert.True(t, food.IsValidation(err))

	ids := make([]int, 21)
	for i := range ids {
		ids[i] = i + 1
	}

	_, err = c.GetFoods(context.Background(), ids, "")
	assert.True(t, food.IsValidation(err))

	nutrients := make([]int, 26)
	_, err = c.GetFoods(context.Background(), []int{1}, "", nutrients...)
	assert.True(t, food.IsValidation(err))

	assert.Zero(t, fake.callCount())
}

func TestListFoods_Defaults(t *testing.T) {
	c, fake := newTestClient(t)
	fake.reply("/foods/list", http.StatusOK, `[{"fdcId": 1, "dataType": "Foundation", "description": "a", "ndbNumber": 9}]`)

	list, err := c.ListFoods(context.Background(), DefaultListRequest())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "9", *list[0].NdbID)

	q := fake.lastQuery()
	assert.Equal(t, []string{"Foundation", "SR Legacy"}, q["dataType"])
	assert.Equal(t, "5", q.Get("pageSize"))
	assert.Equal(t, "1", q.Get("pageNumber"))
	assert.Equal(t, "lowercaseDescription.keyword", q.Get("sortBy"))
	assert.Equal(t, "asc", q.Get("sortOrder"))
}

func TestListFoods_ZeroRequestRejected(t *testing.T) {
	c, fake := newTestClient(t)

	_, err := c.ListFoods(context.Background(), ListRequest{})
	assert.True(t, food.IsValidation(err))
	assert.Zero(t, fake.callCount())
}

func TestListFoods_AdvisoryDoesNotBlock(t *testing.T) {
	var got []Advisory

	c, fake := newTestClient(t, WithAdvisoryHandler(func(_ context.Context, a Advisory) {
		got = append(got, a)
	}))
	fake.reply("/foods/list", http.StatusOK, `[]`)

	req := DefaultListRequest()
	req.PageSize = 201

	list, err := c.ListFoods(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, list)
	require.Len(t, got, 1)
	assert.Equal(t, "Maximum pageSize is 200. pageSize passed is 201", got[0].Message)
}

func TestSearchFoods(t *testing.T) {
	c, fake := newTestClient(t)
	fake.reply("/foods/search", http.StatusOK, searchPage)

	req := DefaultSearchRequest("cheddar")
	req.Reverse = true

	result, err := c.SearchFoods(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 42, result.TotalHits)
	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, 2, result.TotalPages)
	require.Len(t, result.Foods, 2)
	assert.Equal(t, 1, result.Foods[0].FdcID)
	assert.Equal(t, 2, result.Foods[1].FdcID)
	assert.Equal(t, "1009", *result.Foods[1].NdbID)

	q := fake.lastQuery()
	assert.Equal(t, "cheddar", q.Get("query"))
	assert.Equal(t, "25", q.Get("pageSize"))
	assert.Equal(t, "desc", q.Get("sortOrder"))
	assert.NotContains(t, q, "brandOwner")
}

func TestSearchFoods_Brand(t *testing.T) {
	c, fake := newTestClient(t)
	fake.reply("/foods/search", http.StatusOK, searchPage)

	req := DefaultSearchRequest("cheddar")
	req.BrandOwner = "Kraft"

	_, err := c.SearchFoods(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Kraft", fake.lastQuery().Get("brandOwner"))
}

func TestClient_ErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{name: "rate limit", status: http.StatusTooManyRequests, body: `{"error":{"code":"OVER_RATE_LIMIT"}}`, check: food.IsRateLimited},
		{name: "invalid key", status: http.StatusForbidden, body: `{"error":{"code":"API_KEY_INVALID"}}`, check: food.IsInvalidCredentials},
		{name: "api error", status: http.StatusBadRequest, body: `{"errors":{"error":[{"code":"SOME_OTHER_CODE","message":"bad query"}]}}`, check: food.IsAPIError},
		{name: "not json", status: http.StatusInternalServerError, body: `oops`, check: food.IsTransport},
		{name: "missing key", status: http.StatusOK, body: `{"totalHits": 1}`, check: food.IsMapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, fake := newTestClient(t)
			fake.reply("/foods/search", tt.status, tt.body)

			_, err := c.SearchFoods(context.Background(), DefaultSearchRequest("x"))
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected kind: %v", err)
		})
	}
}

func TestClient_Check(t *testing.T) {
	c, fake := newTestClient(t)
	fake.reply("/foods/list", http.StatusOK, `[]`)

	assert.Equal(t, ServiceName, c.Name())
	require.NoError(t, c.Check(context.Background()))
	assert.Equal(t, "1", fake.lastQuery().Get("pageSize"))
}
