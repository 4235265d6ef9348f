package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/go-fdc/pkg/food"
)

func ptr[T any](v T) *T { return &v }

func brandedAbridged() food.AbridgedFoodItem {
	return food.AbridgedFoodItem{
		FoodItem:        food.FoodItem{FdcID: 534358, DataType: food.DataTypeBranded, Description: "NUT 'N BERRY MIX"},
		Nutrients:       food.Missing[[]food.AbridgedFoodNutrient](food.NoNutrientData),
		PublicationDate: food.Value("4/1/2019"),
		Brand:           ptr("Kar Nut Products Company"),
		GtinUpc:         ptr("077034085228"),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatJSON},
		{in: "json", want: FormatJSON},
		{in: " YAML ", want: FormatYAML},
		{in: "table", want: FormatTable},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "json, yaml, table")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatJSON, &buf).Write(brandedAbridged()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.InDelta(t, 534358, doc["fdcId"], 0)
	assert.Equal(t, "Kar Nut Products Company", doc["brandOwner"])
	assert.Equal(t, food.NoNutrientData, doc["foodNutrients"])
	assert.NotContains(t, doc, "ndbNumber")
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatYAML, &buf).Write(brandedAbridged()))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 534358, doc["fdcId"])
	assert.Equal(t, "Branded", doc["dataType"])
	assert.Equal(t, "4/1/2019", doc["publicationDate"])
}

func TestWrite_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter("xml", &buf).Write(map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a":1}`, buf.String())
}

func TestWrite_TableRecord(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Write(brandedAbridged()))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "brand")
	assert.Contains(t, out, "Kar Nut Products Company")
	assert.Contains(t, out, food.NoNutrientData)
	assert.Contains(t, out, "ndbId")
}

func TestWrite_TableList(t *testing.T) {
	foundation := food.AbridgedFoodItem{
		FoodItem: food.FoodItem{FdcID: 747447, DataType: food.DataTypeFoundation, Description: "Broccoli, raw"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Write([]food.AbridgedFoodItem{brandedAbridged(), foundation}))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "FDC ID")
	assert.Contains(t, string(lines[1]), "Kar Nut Products Company")
	assert.Contains(t, string(lines[2]), "Broccoli, raw")
	assert.Contains(t, string(lines[2]), "-")
}

func TestWrite_TableSearch(t *testing.T) {
	result := &food.SearchResult{
		TotalHits:   42,
		CurrentPage: 1,
		TotalPages:  2,
		Foods:       []food.SearchResultFoodItem{{AbridgedFoodItem: brandedAbridged()}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Write(result))

	out := buf.String()
	assert.Contains(t, out, "page 1 of 2, 42 hits")
	assert.Contains(t, out, "534358")
}

func TestWrite_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Write([]food.Food{}))
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestWrite_Raw(t *testing.T) {
	raw := json.RawMessage(`{"fdcId":1,"description":"x"}`)

	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatJSON, &buf).Write(raw))
	assert.JSONEq(t, string(raw), buf.String())
	assert.Contains(t, buf.String(), "\n  ")

	buf.Reset()
	require.NoError(t, NewWriter(FormatYAML, &buf).Write(raw))
	assert.Contains(t, buf.String(), "fdcId: 1")

	err := NewWriter(FormatTable, &buf).Write(raw)
	require.ErrorIs(t, err, ErrTableRaw)
}

func TestWrite_TableUnsupported(t *testing.T) {
	err := NewWriter(FormatTable, &bytes.Buffer{}).Write(42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "int")
}
