package food

import (
	"encoding/json"
	"fmt"
)

// Defaulted holds either a value reported by the API or the placeholder text
// used when the API left the field out.
type Defaulted[T any] struct {
	value       T
	present     bool
	placeholder string
}

// Value returns a Defaulted carrying v.
func Value[T any](v T) Defaulted[T] {
	return Defaulted[T]{value: v, present: true}
}

// Missing returns a Defaulted carrying only the placeholder text.
func Missing[T any](placeholder string) Defaulted[T] {
	return Defaulted[T]{placeholder: placeholder}
}

// Get returns the value and whether it was present.
func (d Defaulted[T]) Get() (T, bool) {
	return d.value, d.present
}

// IsPresent reports whether the API supplied a value.
func (d Defaulted[T]) IsPresent() bool {
	return d.present
}

// Placeholder returns the placeholder text, or "" when a value is present.
func (d Defaulted[T]) Placeholder() string {
	if d.present {
		return ""
	}

	return d.placeholder
}

// Or returns the value if present, otherwise fallback.
func (d Defaulted[T]) Or(fallback T) T {
	if d.present {
		return d.value
	}

	return fallback
}

func (d Defaulted[T]) String() string {
	if !d.present {
		return d.placeholder
	}

	return fmt.Sprint(d.value)
}

// MarshalJSON renders the value, or the placeholder as a JSON string.
func (d Defaulted[T]) MarshalJSON() ([]byte, error) {
	if !d.present {
		return json.Marshal(d.placeholder)
	}

	return json.Marshal(d.value)
}

// MarshalYAML renders the value, or the placeholder as a YAML string.
func (d Defaulted[T]) MarshalYAML() (any, error) {
	if !d.present {
		return d.placeholder, nil
	}

	return d.value, nil
}
