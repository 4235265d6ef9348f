package fdc

import "github.com/jsamuelsen/go-fdc/pkg/food"

// Defaults used by DefaultListRequest and DefaultSearchRequest.
const (
	DefaultListPageSize   = 5
	DefaultSearchPageSize = 25
)

// ListRequest selects one page of the food list. Start from
// DefaultListRequest; a zero PageSize or PageNumber is rejected.
type ListRequest struct {
	DataTypes  []food.DataType
	PageSize   int
	PageNumber int
	SortBy     food.Sorting
	Reverse    bool
}

// DefaultListRequest returns the first five Foundation and SR Legacy foods
// sorted by description, ascending.
func DefaultListRequest() ListRequest {
	return ListRequest{
		DataTypes:  []food.DataType{food.DataTypeFoundation, food.DataTypeSRLegacy},
		PageSize:   DefaultListPageSize,
		PageNumber: 1,
		SortBy:     food.SortByDescription,
	}
}

// SearchRequest is a ListRequest plus the search terms. An empty
// BrandOwner is not sent.
type SearchRequest struct {
	ListRequest

	Query      string
	BrandOwner string
}

// DefaultSearchRequest returns a search for query with the list defaults
// and a page size of 25.
func DefaultSearchRequest(query string) SearchRequest {
	list := DefaultListRequest()
	list.PageSize = DefaultSearchPageSize

	return SearchRequest{
		ListRequest: list,
		Query:       query,
	}
}
