package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const brandedFood = `{
	"fdcId": 534358, "dataType": "Branded", "description": "NUT 'N BERRY MIX",
	"brandOwner": "Kar Nut Products Company", "gtinUpc": "077034085228",
	"foodNutrients": []
}`

const listPage = `[
	{"fdcId": 747448, "dataType": "Foundation", "description": "Strawberries, raw", "ndbNumber": "9316"},
	{"fdcId": 167512, "dataType": "SR Legacy", "description": "Biscuits", "ndbNumber": 18634}
]`

const searchPage = `{
	"foodSearchCriteria": {"query": "cheddar"},
	"totalHits": 42, "currentPage": 1, "totalPages": 2,
	"foods": [{"fdcId": 1, "dataType": "Branded", "description": "CHEDDAR", "brandOwner": "Kraft"}]
}`

// fakeAPI serves canned bodies by path and records the queries it saw.
type fakeAPI struct {
	mu      sync.Mutex
	bodies  map[string]string
	status  int
	queries []url.Values
	srv     *httptest.Server
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	f := &fakeAPI{bodies: map[string]string{}, status: http.StatusOK}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.queries = append(f.queries, r.URL.Query())
		body, ok := f.bodies[r.URL.Path]
		status := f.status
		f.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(f.srv.Close)

	return f
}

func (f *fakeAPI) lastQuery() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queries) == 0 {
		return nil
	}

	return f.queries[len(f.queries)-1]
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.queries)
}

func runCLI(t *testing.T, api *fakeAPI, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer

	argv := []string{name, "--api-key", "DEMO_KEY", "--log-level", "error"}
	if api != nil {
		argv = append(argv, "--base-url", api.srv.URL)
	}

	code = run(context.Background(), append(argv, args...), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestGet(t *testing.T) {
	api := newFakeAPI(t)
	api.bodies["/food/534358"] = brandedFood

	code, stdout, stderr := runCLI(t, api, "get", "--nutrient", "203,204", "--nutrient", "205", "534358")

	require.Equal(t, 0, code, stderr)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.EqualValues(t, 534358, got["fdcId"])
	assert.Equal(t, "NUT 'N BERRY MIX", got["description"])

	q := api.lastQuery()
	assert.Equal(t, "abridged", q.Get("format"))
	assert.Equal(t, []string{"203", "204", "205"}, q["nutrients"])
}

func TestGet_Raw(t *testing.T) {
	api := newFakeAPI(t)
	api.bodies["/food/534358"] = brandedFood

	code, stdout, stderr := runCLI(t, api, "--raw", "get", "--format", "full", "534358")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `"gtinUpc": "077034085228"`)
	assert.Equal(t, "full", api.lastQuery().Get("format"))
}

func TestGet_BadArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing id", args: []string{"get"}, want: "exactly one FDC ID"},
		{name: "not a number", args: []string{"get", "abc"}, want: `invalid FDC ID "abc"`},
		{name: "bad nutrient", args: []string{"get", "--nutrient", "x", "1"}, want: `invalid nutrient number "x"`},
		{name: "zero id", args: []string{"get", "0"}, want: "fdcId"},
		{name: "bad format", args: []string{"get", "--format", "huge", "1"}, want: "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t)

			code, _, stderr := runCLI(t, api, tt.args...)

			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, "error: ")
			assert.Contains(t, stderr, tt.want)
			assert.Zero(t, api.calls())
		})
	}
}

func TestFoods_Table(t *testing.T) {
	api := newFakeAPI(t)
	api.bodies["/foods"] = `[` + brandedFood + `]`

	code, stdout, stderr := runCLI(t, api, "-o", "table", "foods", "534358")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "FDC ID")
	assert.Contains(t, stdout, "534358")
	assert.Equal(t, "534358", api.lastQuery().Get("fdcIds"))
}

func TestList(t *testing.T) {
	api := newFakeAPI(t)
	api.bodies["/foods/list"] = listPage

	code, stdout, stderr := runCLI(t, api, "-o", "yaml", "list",
		"--data-type", "branded", "--data-type", "sr",
		"--page-size", "2", "--page", "3", "--sort", "fdcId", "--reverse")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Strawberries, raw")

	q := api.lastQuery()
	assert.Equal(t, []string{"Branded", "SR Legacy"}, q["dataType"])
	assert.Equal(t, "2", q.Get("pageSize"))
	assert.Equal(t, "3", q.Get("pageNumber"))
	assert.Equal(t, "fdcId", q.Get("sortBy"))
	assert.Equal(t, "desc", q.Get("sortOrder"))
}

func TestList_UnknownDataType(t *testing.T) {
	code, _, stderr := runCLI(t, nil, "list", "--data-type", "dessert")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unknown data type "dessert"`)
}

func TestSearch(t *testing.T) {
	api := newFakeAPI(t)
	api.bodies["/foods/search"] = searchPage

	code, stdout, stderr := runCLI(t, api, "-o", "table", "search", "--brand", "Kraft", "sharp", "cheddar")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "CHEDDAR")

	q := api.lastQuery()
	assert.Equal(t, "sharp cheddar", q.Get("query"))
	assert.Equal(t, "Kraft", q.Get("brandOwner"))
	assert.Equal(t, "25", q.Get("pageSize"))
}

func TestSearch_RateLimited(t *testing.T) {
	api := newFakeAPI(t)
	api.status = http.StatusTooManyRequests
	api.bodies["/foods/search"] = `{"error": {"code": "OVER_RATE_LIMIT", "message": "slow down"}}`

	code, stdout, stderr := runCLI(t, api, "search", "cheddar")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "error: ")
}

func TestRawTableRejected(t *testing.T) {
	api := newFakeAPI(t)
	api.bodies["/foods/list"] = listPage

	code, _, stderr := runCLI(t, api, "--raw", "-o", "table", "list")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "table")
}

func TestMissingAPIKey(t *testing.T) {
	t.Setenv("FDC_API_KEY", "")

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{name, "get", "1"}, &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "FDC_API_KEY")
}

func TestUnknownOutputFormat(t *testing.T) {
	api := newFakeAPI(t)

	code, _, stderr := runCLI(t, api, "-o", "xml", "list")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unknown output format "xml"`)
	assert.Zero(t, api.calls())
}

func TestParseDataType(t *testing.T) {
	tests := map[string]string{
		"foundation":     "Foundation",
		"SR":             "SR Legacy",
		"SR Legacy":      "SR Legacy",
		"Branded":        "Branded",
		"survey":         "Survey (FNDDS)",
		"survey (fndds)": "Survey (FNDDS)",
	}

	for in, want := range tests {
		got, err := parseDataType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, string(got))
	}
}
