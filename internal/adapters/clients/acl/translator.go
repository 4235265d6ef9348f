package acl

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/jsamuelsen/go-fdc/pkg/food"
)

// DecodeResponse decodes a JSON payload into the target DTO type. A payload
// of the wrong shape is a *food.MappingError for entity.
func DecodeResponse[T any](raw json.RawMessage, entity string) (*T, error) {
	if len(raw) == 0 {
		return nil, food.NewMappingError(entity, "empty payload")
	}

	var result T
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, food.NewMappingError(entity, fmt.Sprintf("decoding payload: %v", err))
	}

	return &result, nil
}

// Translator is a function type that translates an external DTO to a domain type.
// The function should validate the external data and return a mapping
// error if a required key is missing.
type Translator[External any, Domain any] func(ext *External) (Domain, error)

// TranslateSlice applies a translator function to a slice of external DTOs.
// If any translation fails, returns the first error encountered.
// A nil input yields a nil result so absence is preserved.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]D, error) {
	if items == nil {
		return nil, nil
	}

	result := make([]D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, translated)
	}

	return result, nil
}

// translateOptional maps a nested object only when it is present.
func translateOptional[E any, D any](item *E, translate Translator[E, D]) (*D, error) {
	if item == nil {
		return nil, nil
	}

	translated, err := translate(item)
	if err != nil {
		return nil, err
	}

	return &translated, nil
}

// fieldReader collects the first missing required key while a translator
// reads a DTO, so field reads stay linear.
type fieldReader struct {
	entity string
	err    error
}

func newFieldReader(entity string) *fieldReader {
	return &fieldReader{entity: entity}
}

// need returns *p, recording a missing-key error when p is nil.
func need[T any](r *fieldReader, key string, p *T) T {
	if p == nil {
		if r.err == nil {
			r.err = food.NewMissingKeyError(r.entity, key)
		}

		var zero T

		return zero
	}

	return *p
}

// readBase reads the fields shared by every food record.
func readBase(r *fieldReader, d *foodItemDTO) food.FoodItem {
	return food.FoodItem{
		FdcID:       need(r, "fdcId", d.FdcID),
		DataType:    food.DataType(need(r, "dataType", d.DataType)),
		Description: strings.TrimSpace(need(r, "description", d.Description)),
	}
}

// text converts an optional lenient string to *string.
func text(s *flexString) *string {
	if s == nil {
		return nil
	}

	v := string(*s)

	return &v
}

// firstOf returns the first non-nil pointer, reading alternative keys in
// priority order.
func firstOf[T any](ptrs ...*T) *T {
	return lo.FindOrElse(ptrs, nil, func(p *T) bool { return p != nil })
}

// textOr keeps a non-empty string or falls back to the placeholder.
func textOr(s *string, placeholder string) food.Defaulted[string] {
	if s == nil || *s == "" {
		return food.Missing[string](placeholder)
	}

	return food.Value(*s)
}

// numberOr keeps a non-zero amount or falls back to the placeholder.
func numberOr(n *float64, placeholder string) food.Defaulted[float64] {
	if n == nil || *n == 0 {
		return food.Missing[float64](placeholder)
	}

	return food.Value(*n)
}

// listOr keeps a non-empty list or falls back to the placeholder.
func listOr[T any](items []T, placeholder string) food.Defaulted[[]T] {
	if len(items) == 0 {
		return food.Missing[[]T](placeholder)
	}

	return food.Value(items)
}
