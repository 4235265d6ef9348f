package food

import (
	"fmt"
	"strings"
)

// Field is one named attribute of a record.
type Field struct {
	Name  string
	Value any
}

// Fields is the ordered attribute list of a record, used for display and
// diagnostics.
type Fields []Field

// Get returns the value stored under name.
func (f Fields) Get(name string) (any, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}

	return nil, false
}

// Names returns the attribute names in order.
func (f Fields) Names() []string {
	names := make([]string, len(f))
	for i, field := range f {
		names[i] = field.Name
	}

	return names
}

func (f Fields) String() string {
	var b strings.Builder

	b.WriteByte('{')

	for i, field := range f {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%s: %v", field.Name, field.Value)
	}

	b.WriteByte('}')

	return b.String()
}

// Fielder is implemented by every record in this package.
type Fielder interface {
	Fields() Fields
}

// opt unwraps an optional scalar so that absent values display as <nil>
// instead of a pointer address.
func opt[T any](p *T) any {
	if p == nil {
		return nil
	}

	return *p
}

// optRecord is opt for nested records, keeping nil distinct from a zero record.
func optRecord[T Fielder](p *T) any {
	if p == nil {
		return nil
	}

	return (*p).Fields()
}

// recordList turns a record slice into a list of their field sets.
func recordList[T Fielder](items []T) any {
	if items == nil {
		return nil
	}

	out := make([]Fields, len(items))
	for i, item := range items {
		out[i] = item.Fields()
	}

	return out
}
