package acl

import (
	"encoding/json"

	"github.com/jsamuelsen/go-fdc/pkg/food"
)

// TranslateSearch maps one page of search results. Every top-level key is
// required, while the echoed criteria keys are all optional.
func TranslateSearch(raw json.RawMessage) (food.SearchResult, error) {
	d, err := DecodeResponse[searchResultDTO](raw, "SearchResult")
	if err != nil {
		return food.SearchResult{}, err
	}

	r := newFieldReader("SearchResult")
	criteria := need(r, "foodSearchCriteria", d.Criteria)
	totalHits := need(r, "totalHits", d.TotalHits)
	currentPage := need(r, "currentPage", d.CurrentPage)
	totalPages := need(r, "totalPages", d.TotalPages)
	foodDTOs := need(r, "foods", d.Foods)

	if r.err != nil {
		return food.SearchResult{}, r.err
	}

	foods, err := TranslateSlice(foodDTOs, translateSearchResultFood)
	if err != nil {
		return food.SearchResult{}, err
	}

	if foods == nil {
		foods = []food.SearchResultFoodItem{}
	}

	return food.SearchResult{
		Criteria:    translateSearchCriteria(&criteria),
		TotalHits:   totalHits,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		Foods:       foods,
	}, nil
}

func translateSearchCriteria(d *searchCriteriaDTO) food.FoodSearchCriteria {
	return food.FoodSearchCriteria{
		Query:      d.Query,
		DataType:   d.DataType,
		PageSize:   d.PageSize,
		PageNumber: d.PageNumber,
		SortBy:     d.SortBy,
		SortOrder:  d.SortOrder,
		BrandOwner: d.BrandOwner,
	}
}
