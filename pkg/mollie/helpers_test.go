package mollie_test

import (
	"context"
	"net/http"
	"sync"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// fakeConnector answers requests from canned bodies keyed by request path.
type fakeConnector struct {
	mu       sync.Mutex
	bodies   map[string]string
	failures map[string]error
	requests []*mollie.Request
}

func newFakeConnector() *fakeConnector {
	return &fakeConnector{
		bodies:   make(map[string]string),
		failures: make(map[string]error),
	}
}

func (f *fakeConnector) on(path, body string) *fakeConnector {
	f.bodies[path] = body

	return f
}

func (f *fakeConnector) fail(path string, err error) *fakeConnector {
	f.failures[path] = err

	return f
}

func (f *fakeConnector) Send(_ context.Context, req *mollie.Request) (*mollie.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)

	if err, ok := f.failures[req.Path]; ok {
		return nil, err
	}

	body, ok := f.bodies[req.Path]
	if !ok {
		return nil, mollie.ParseAPIError(http.StatusNotFound, []byte(`{"status":404,"title":"Not Found","detail":"No such resource"}`))
	}

	return mollie.NewResponse(http.StatusOK, nil, []byte(body)), nil
}

func (f *fakeConnector) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	paths := make([]string, 0, len(f.requests))
	for _, req := range f.requests {
		paths = append(paths, req.Path)
	}

	return paths
}

func jsonResponse(body string) *mollie.Response {
	return mollie.NewResponse(http.StatusOK, nil, []byte(body))
}
