// Package output renders fdc results as JSON, YAML or an aligned table.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/go-fdc/pkg/food"
)

// Format is an output format name.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// ErrTableRaw is returned when a raw API body is requested as a table.
var ErrTableRaw = errors.New("table output is not available for raw responses")

// SupportedFormats lists the accepted format names.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTable)}
}

// ParseFormat validates a format name. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatYAML, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want one of %s)", s, strings.Join(SupportedFormats(), ", "))
	}
}

// Writer serializes values to an io.Writer in one format.
type Writer struct {
	format Format
	out    io.Writer
}

// NewWriter creates a Writer. Unknown formats fall back to JSON.
func NewWriter(format Format, out io.Writer) *Writer {
	if _, err := ParseFormat(string(format)); err != nil {
		format = FormatJSON
	}

	return &Writer{format: format, out: out}
}

// Write renders v. A json.RawMessage is an unmapped API body: it is
// re-indented for JSON and converted for YAML.
func (w *Writer) Write(v any) error {
	if raw, ok := v.(json.RawMessage); ok {
		return w.writeRaw(raw)
	}

	switch w.format {
	case FormatYAML:
		return w.writeYAML(v)
	case FormatTable:
		return w.writeTable(v)
	default:
		return w.writeJSON(v)
	}
}

func (w *Writer) writeJSON(v any) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}

	return nil
}

func (w *Writer) writeYAML(v any) error {
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}

	return enc.Close()
}

func (w *Writer) writeRaw(raw json.RawMessage) error {
	switch w.format {
	case FormatTable:
		return ErrTableRaw
	case FormatYAML:
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("decoding raw response: %w", err)
		}

		return w.writeYAML(doc)
	default:
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("decoding raw response: %w", err)
		}

		return w.writeJSON(doc)
	}
}

func (w *Writer) writeTable(v any) error {
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)

	switch t := v.(type) {
	case *food.SearchResult:
		fmt.Fprintf(tw, "%s\n\n", t)
		writeRows(tw, lo.Map(t.Foods, func(f food.SearchResultFoodItem, _ int) food.Food { return f }))
	case []food.Food:
		writeRows(tw, t)
	case []food.AbridgedFoodItem:
		writeRows(tw, lo.Map(t, func(f food.AbridgedFoodItem, _ int) food.Food { return f }))
	case food.Fielder:
		writeFields(tw, t.Fields())
	default:
		return fmt.Errorf("table output is not available for %T", v)
	}

	return tw.Flush()
}

func writeRows(w io.Writer, foods []food.Food) {
	if len(foods) == 0 {
		fmt.Fprintln(w, "<empty>")
		return
	}

	fmt.Fprintln(w, "FDC ID\tDATA TYPE\tDESCRIPTION\tBRAND")

	for _, f := range foods {
		base := f.Base()
		brand, _ := f.Fields().Get("brand")
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", base.FdcID, base.DataType, base.Description, cell(brand))
	}
}

func writeFields(w io.Writer, fields food.Fields) {
	fmt.Fprintln(w, "FIELD\tVALUE")

	for _, f := range fields {
		fmt.Fprintf(w, "%s\t%s\n", f.Name, cell(f.Value))
	}
}

// cell renders one table value. Nested lists collapse to a count.
func cell(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case []food.Fields:
		return fmt.Sprintf("[%d items]", len(t))
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
