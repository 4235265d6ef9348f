package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/go-fdc/internal/adapters/http/dto"
	"github.com/jsamuelsen/go-fdc/internal/ports"
	"github.com/jsamuelsen/go-fdc/pkg/fdc"
	"github.com/jsamuelsen/go-fdc/pkg/food"
)

// FoodHandler serves the /foods endpoints. Every endpoint accepts raw=true
// to return the upstream body unmapped.
type FoodHandler struct {
	client ports.FoodDataClient
}

// NewFoodHandler creates a food handler.
func NewFoodHandler(client ports.FoodDataClient) *FoodHandler {
	return &FoodHandler{client: client}
}

// RegisterRoutes mounts the food routes on rg.
//
//	GET /foods?fdcIds=
//	GET /foods/list
//	GET /foods/search?query=
//	GET /foods/:id
func (h *FoodHandler) RegisterRoutes(rg *gin.RouterGroup) {
	foods := rg.Group("/foods")
	foods.GET("", h.GetFoods)
	foods.GET("/list", h.ListFoods)
	foods.GET("/search", h.SearchFoods)
	foods.GET("/:id", h.GetFood)
}

// GetFood handles GET /foods/:id.
func (h *FoodHandler) GetFood(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondWithError(c, food.NewValidationErrorWithValue("fdcId", "must be an integer", c.Param("id")))
		return
	}

	var q dto.ReportQuery
	if err := dto.BindQuery(c, &q); err != nil {
		RespondWithBindingError(c, err)
		return
	}

	ctx := c.Request.Context()

	if q.Raw {
		raw, err := h.client.GetFoodRaw(ctx, id, q.ReportFormat(), q.NutrientNumbers()...)
		respondRaw(c, raw, err)

		return
	}

	item, err := h.client.GetFood(ctx, id, q.ReportFormat(), q.NutrientNumbers()...)
	respond(c, item, err)
}

// GetFoods handles GET /foods.
func (h *FoodHandler) GetFoods(c *gin.Context) {
	var q dto.FoodsQuery
	if err := dto.BindQuery(c, &q); err != nil {
		RespondWithBindingError(c, err)
		return
	}

	ctx := c.Request.Context()

	if q.Raw {
		raw, err := h.client.GetFoodsRaw(ctx, q.IDs(), q.ReportFormat(), q.NutrientNumbers()...)
		respondRaw(c, raw, err)

		return
	}

	items, err := h.client.GetFoods(ctx, q.IDs(), q.ReportFormat(), q.NutrientNumbers()...)
	respond(c, items, err)
}

// ListFoods handles GET /foods/list.
func (h *FoodHandler) ListFoods(c *gin.Context) {
	var q dto.ListQuery
	if err := dto.BindQuery(c, &q); err != nil {
		RespondWithBindingError(c, err)
		return
	}

	ctx := c.Request.Context()
	req := q.Request(fdc.DefaultListPageSize)

	if q.Raw {
		raw, err := h.client.ListFoodsRaw(ctx, req)
		respondRaw(c, raw, err)

		return
	}

	items, err := h.client.ListFoods(ctx, req)
	respond(c, items, err)
}

// SearchFoods handles GET /foods/search.
func (h *FoodHandler) SearchFoods(c *gin.Context) {
	var q dto.SearchQuery
	if err := dto.BindQuery(c, &q); err != nil {
		RespondWithBindingError(c, err)
		return
	}

	ctx := c.Request.Context()
	req := q.Request()

	if q.Raw {
		raw, err := h.client.SearchFoodsRaw(ctx, req)
		respondRaw(c, raw, err)

		return
	}

	result, err := h.client.SearchFoods(ctx, req)
	respond(c, result, err)
}

func respond(c *gin.Context, v any, err error) {
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, v)
}

func respondRaw(c *gin.Context, raw json.RawMessage, err error) {
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}
