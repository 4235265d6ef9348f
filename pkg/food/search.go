package food

import "fmt"

// FoodSearchCriteria is the search request the API echoes back.
type FoodSearchCriteria struct {
	Query      *string  `json:"query,omitempty"      yaml:"query,omitempty"`
	DataType   []string `json:"dataType,omitempty"   yaml:"dataType,omitempty"`
	PageSize   *int     `json:"pageSize,omitempty"   yaml:"pageSize,omitempty"`
	PageNumber *int     `json:"pageNumber,omitempty" yaml:"pageNumber,omitempty"`
	SortBy     *string  `json:"sortBy,omitempty"     yaml:"sortBy,omitempty"`
	SortOrder  *string  `json:"sortOrder,omitempty"  yaml:"sortOrder,omitempty"`
	BrandOwner *string  `json:"brandOwner,omitempty" yaml:"brandOwner,omitempty"`
}

func (c FoodSearchCriteria) Fields() Fields {
	var dataTypes any
	if c.DataType != nil {
		dataTypes = c.DataType
	}

	return Fields{
		{"query", opt(c.Query)},
		{"dataType", dataTypes},
		{"pageSize", opt(c.PageSize)},
		{"pageNumber", opt(c.PageNumber)},
		{"sortBy", opt(c.SortBy)},
		{"sortOrder", opt(c.SortOrder)},
		{"brandOwner", opt(c.BrandOwner)},
	}
}

func (c FoodSearchCriteria) String() string { return c.Fields().String() }

// SearchResult is one page of a food search.
type SearchResult struct {
	Criteria    FoodSearchCriteria     `json:"foodSearchCriteria" yaml:"foodSearchCriteria"`
	TotalHits   int                    `json:"totalHits"          yaml:"totalHits"`
	CurrentPage int                    `json:"currentPage"        yaml:"currentPage"`
	TotalPages  int                    `json:"totalPages"         yaml:"totalPages"`
	Foods       []SearchResultFoodItem `json:"foods"              yaml:"foods"`
}

func (r SearchResult) Fields() Fields {
	return Fields{
		{"criteria", r.Criteria.Fields()},
		{"totalHits", r.TotalHits},
		{"currentPage", r.CurrentPage},
		{"totalPages", r.TotalPages},
		{"foods", recordList(r.Foods)},
	}
}

func (r SearchResult) String() string {
	return fmt.Sprintf("page %d of %d, %d hits", r.CurrentPage, r.TotalPages, r.TotalHits)
}
