package fdc

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeFDC is an in-process stand-in for the FDC API. Each route replies
// with a canned status and body and records the queries it received.
type fakeFDC struct {
	server *httptest.Server

	mu       sync.Mutex
	routes   map[string]fakeReply
	requests []*http.Request
	queries  []url.Values
}

type fakeReply struct {
	status int
	body   string
}

func newFakeFDC() *fakeFDC {
	f := &fakeFDC{routes: map[string]fakeReply{}}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))

	return f
}

func (f *fakeFDC) Close() {
	f.server.Close()
}

func (f *fakeFDC) URL() string {
	return f.server.URL
}

func (f *fakeFDC) reply(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.routes[path] = fakeReply{status: status, body: body}
}

func (f *fakeFDC) lastQuery() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queries) == 0 {
		return nil
	}

	return f.queries[len(f.queries)-1]
}

func (f *fakeFDC) lastRequest() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.requests) == 0 {
		return nil
	}

	return f.requests[len(f.requests)-1]
}

func (f *fakeFDC) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.requests)
}

func (f *fakeFDC) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r)
	f.queries = append(f.queries, r.URL.Query())
	reply, ok := f.routes[r.URL.Path]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"no route"}}`))

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.status)
	_, _ = io.WriteString(w, reply.body)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestClient returns a Client pointed at a fresh fake server.
func newTestClient(t *testing.T, opts ...Option) (*Client, *fakeFDC) {
	t.Helper()

	fake := newFakeFDC()
	t.Cleanup(fake.Close)

	opts = append([]Option{WithBaseURL(fake.URL()), WithLogger(discardLogger())}, opts...)

	client, err := New("DEMO_KEY", opts...)
	require.NoError(t, err)

	return client, fake
}
