package acl

import (
	"net/url"
	"strings"

	"github.com/jsamuelsen/go-fdc/pkg/food"
)

// DefaultBaseURL is the FoodData Central API root.
const DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1"

// Endpoint is an FDC API path template.
type Endpoint string

const (
	EndpointFood   Endpoint = "food/{id}"
	EndpointFoods  Endpoint = "foods"
	EndpointList   Endpoint = "foods/list"
	EndpointSearch Endpoint = "foods/search"
)

const idPlaceholder = "{id}"

// Operation returns a short operation name for logs and metrics.
func (e Endpoint) Operation() string {
	switch e {
	case EndpointFood:
		return "get_food"
	case EndpointFoods:
		return "get_foods"
	case EndpointList:
		return "list_foods"
	case EndpointSearch:
		return "search_foods"
	default:
		return string(e)
	}
}

// BuildPath resolves the endpoint template. The food endpoint requires a
// non-empty id; every other endpoint ignores it.
func BuildPath(e Endpoint, id string) (string, error) {
	if !strings.Contains(string(e), idPlaceholder) {
		return "/" + string(e), nil
	}

	if err := ValidateRequired(strings.TrimSpace(id), "fdcId"); err != nil {
		return "", err
	}

	return "/" + strings.Replace(string(e), idPlaceholder, url.PathEscape(id), 1), nil
}

// ValidateRequired checks that a required field is not empty.
// Returns a *food.ValidationError if the field is empty.
func ValidateRequired(value, fieldName string) error {
	if value == "" {
		return food.NewValidationError(fieldName, "is required")
	}

	return nil
}

// ValidatePositive checks that a numeric value is positive.
// Returns a *food.ValidationError if the value is not positive.
func ValidatePositive[T ~int | ~int64 | ~float64](value T, fieldName string) error {
	if value <= 0 {
		return food.NewValidationErrorWithValue(fieldName, "must be positive", value)
	}

	return nil
}
