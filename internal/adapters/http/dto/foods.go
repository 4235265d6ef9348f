package dto

import (
	"strings"

	"github.com/samber/lo"

	"github.com/jsamuelsen/go-fdc/pkg/fdc"
	"github.com/jsamuelsen/go-fdc/pkg/food"
)

// ReportQuery holds the parameters shared by the food report endpoints.
// Range and enum checks are left to the client so that the API and the
// library reject the same inputs.
type ReportQuery struct {
	Format    string   `form:"format"`
	Nutrients []string `form:"nutrients" validate:"omitempty,intlist"`
	Raw       bool     `form:"raw"`
}

// ReportFormat returns the requested format.
func (q *ReportQuery) ReportFormat() food.ReportFormat {
	return food.ReportFormat(q.Format)
}

// NutrientNumbers flattens repeated and comma separated nutrients.
// Call it after validation.
func (q *ReportQuery) NutrientNumbers() []int {
	return joinInts(q.Nutrients)
}

// FoodsQuery is the query of GET /foods.
type FoodsQuery struct {
	ReportQuery

	FdcIDs []string `form:"fdcIds" validate:"required,intlist"`
}

// IDs flattens repeated and comma separated fdcIds.
func (q *FoodsQuery) IDs() []int {
	return joinInts(q.FdcIDs)
}

// ListQuery is the query of GET /foods/list. Absent values take the
// client defaults.
type ListQuery struct {
	DataTypes  []string `form:"dataType"`
	PageSize   *int     `form:"pageSize"`
	PageNumber *int     `form:"pageNumber"`
	SortBy     string   `form:"sortBy"`
	SortOrder  string   `form:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Reverse    bool     `form:"reverse"`
	Raw        bool     `form:"raw"`
}

// Request converts q into a list request. defaultPageSize applies when
// pageSize is absent.
func (q *ListQuery) Request(defaultPageSize int) fdc.ListRequest {
	req := fdc.DefaultListRequest()
	req.PageSize = defaultPageSize

	types := lo.FlatMap(q.DataTypes, func(s string, _ int) []string {
		return lo.Compact(lo.Map(strings.Split(s, ","), func(p string, _ int) string {
			return strings.TrimSpace(p)
		}))
	})
	if len(types) > 0 {
		req.DataTypes = lo.Map(types, func(s string, _ int) food.DataType { return food.DataType(s) })
	}

	if q.PageSize != nil {
		req.PageSize = *q.PageSize
	}

	if q.PageNumber != nil {
		req.PageNumber = *q.PageNumber
	}

	if q.SortBy != "" {
		req.SortBy, _ = food.ParseSorting(q.SortBy)
	}

	req.Reverse = q.Reverse || q.SortOrder == "desc"

	return req
}

// SearchQuery is the query of GET /foods/search.
type SearchQuery struct {
	ListQuery

	Query      string `form:"query"`
	BrandOwner string `form:"brandOwner"`
}

// Request converts q into a search request.
func (q *SearchQuery) Request() fdc.SearchRequest {
	return fdc.SearchRequest{
		ListRequest: q.ListQuery.Request(fdc.DefaultSearchPageSize),
		Query:       q.Query,
		BrandOwner:  q.BrandOwner,
	}
}

func joinInts(values []string) []int {
	ints := lo.FlatMap(values, func(s string, _ int) []int {
		n, _ := SplitInts(s)
		return n
	})
	if len(ints) == 0 {
		return nil
	}

	return ints
}
