package client_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mollie-client/internal/auth"
	. "github.com/fivetwenty-io/mollie-client/internal/client"
	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

const testAPIKey = "test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM"

func newTestClient(t *testing.T, handler http.HandlerFunc, configure ...func(*mollie.Config)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := &mollie.Config{
		APIKey:     testAPIKey,
		BaseURL:    server.URL + "/v2",
		HTTPClient: server.Client(),
	}

	for _, fn := range configure {
		fn(config)
	}

	c, err := New(context.Background(), config)
	require.NoError(t, err)

	return c
}

func writeJSON(writer http.ResponseWriter, status int, body string) {
	writer.Header().Set("Content-Type", "application/hal+json")
	writer.WriteHeader(status)
	_, _ = io.WriteString(writer, body)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), nil)
		require.ErrorIs(t, err, mollie.ErrConfigRequired)
	})

	t.Run("requires credentials", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), &mollie.Config{})
		require.ErrorIs(t, err, mollie.ErrAPIKeyRequired)
	})

	t.Run("rejects malformed API key", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), &mollie.Config{APIKey: "foo"})
		require.ErrorIs(t, err, auth.ErrInvalidAPIKey)
	})

	t.Run("rejects unknown HTTP handle", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), &mollie.Config{APIKey: testAPIKey, HTTPClient: "not a client"})
		require.ErrorIs(t, err, mollie.ErrUnrecognizedClient)
	})

	t.Run("access token wins over API key", func(t *testing.T) {
		t.Parallel()

		c, err := New(context.Background(), &mollie.Config{APIKey: testAPIKey, AccessToken: "access_abc"})
		require.NoError(t, err)

		token, err := c.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "access_abc", token)
	})

	t.Run("exposes every resource client", func(t *testing.T) {
		t.Parallel()

		c, err := New(context.Background(), &mollie.Config{APIKey: testAPIKey})
		require.NoError(t, err)

		var client mollie.Client = c

		assert.NotNil(t, client.Payments())
		assert.NotNil(t, client.PaymentRefunds())
		assert.NotNil(t, client.Refunds())
		assert.NotNil(t, client.PaymentCaptures())
		assert.NotNil(t, client.PaymentChargebacks())
		assert.NotNil(t, client.PaymentLinks())
		assert.NotNil(t, client.Methods())
		assert.NotNil(t, client.Wallets())
		assert.NotNil(t, client.Orders())
		assert.NotNil(t, client.OrderLines())
		assert.NotNil(t, client.Shipments())
		assert.NotNil(t, client.Customers())
		assert.NotNil(t, client.Subscriptions())
		assert.NotNil(t, client.Sessions())
		assert.NotNil(t, client.Settlements())
		assert.NotNil(t, client.Permissions())
		assert.NotNil(t, client.SalesInvoices())
		assert.NotNil(t, client.OrganizationPartners())
		assert.NotNil(t, client.Connector())
		require.NoError(t, c.Close())
	})
}

func TestClient_Metrics(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(writer, http.StatusOK, `{"resource":"payment","id":"tr_7UhSN1zuXS","status":"open"}`)
	}, func(config *mollie.Config) {
		config.MetricsRegisterer = registry
	})

	_, err := c.Payments().Get(context.Background(), "tr_7UhSN1zuXS", nil)
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(registry, "mollie_client_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestClient_Cache(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		calls.Add(1)
		writeJSON(writer, http.StatusOK, `{"count":1,"_embedded":{"methods":[{"resource":"method","id":"ideal","description":"iDEAL"}]},"_links":{}}`)
	}, func(config *mollie.Config) {
		config.Cache = mollie.DefaultCacheConfig()
	})

	for range 2 {
		methods, err := c.Methods().ListEnabled(context.Background(), nil)
		require.NoError(t, err)
		require.Equal(t, 1, methods.Len())
		assert.Equal(t, "ideal", methods.Items[0].ID)
	}

	assert.Equal(t, int32(1), calls.Load())
	require.NoError(t, c.Close())
}

func TestClient_APIError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(writer, http.StatusNotFound, `{"status":404,"title":"Not Found","detail":"No payment exists with token tr_unknown."}`)
	})

	_, err := c.Payments().Get(context.Background(), "tr_unknown", nil)
	require.Error(t, err)
	assert.True(t, mollie.IsNotFound(err))

	require.IsType(t, &mollie.APIError{}, err)
	assert.Contains(t, err.Error(), "No payment exists")

	_, err = c.Payments().Page(context.Background(), nil)
	assert.IsType(t, &mollie.APIError{}, err)

	err = c.Customers().Delete(context.Background(), "cst_unknown")
	assert.IsType(t, &mollie.APIError{}, err)
}

func TestClient_InvalidIDNeverSent(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		calls.Add(1)
		writeJSON(writer, http.StatusOK, `{}`)
	})

	ctx := context.Background()

	_, err := c.Payments().Get(ctx, "ord_wrong", nil)
	require.ErrorIs(t, err, mollie.ErrInvalidResourceID)

	_, err = c.PaymentRefunds().Get(ctx, "tr_ok", "", nil)
	require.ErrorIs(t, err, mollie.ErrInvalidResourceID)

	err = c.Customers().Delete(ctx, "tr_wrong")
	require.ErrorIs(t, err, mollie.ErrInvalidResourceID)

	_, err = c.Subscriptions().Get(ctx, "cst_ok", "tr_wrong", nil)
	require.ErrorIs(t, err, mollie.ErrInvalidResourceID)

	iterator := c.PaymentRefunds().Iterator("bad", nil, false)
	assert.False(t, iterator.Next(ctx))
	require.ErrorIs(t, iterator.Err(), mollie.ErrInvalidResourceID)

	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_TransportHeaders(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer "+testAPIKey, request.Header.Get("Authorization"))
		assert.NotEmpty(t, request.Header.Get("Idempotency-Key"))
		assert.True(t, strings.HasPrefix(request.Header.Get("User-Agent"), "mollie-client-go/"))
		writeJSON(writer, http.StatusCreated, `{"resource":"customer","id":"cst_8wmqcHMN4U","name":"Jane"}`)
	}, func(config *mollie.Config) {
		config.UserAgent = "mollie-client-go/test"
	})

	customer, err := c.Customers().Create(context.Background(), mollie.Payload{"name": "Jane"})
	require.NoError(t, err)
	assert.Equal(t, "cst_8wmqcHMN4U", customer.ID)
}

type route struct {
	status int
	body   string
}

// recorder answers requests from a route table keyed by "METHOD /path" and
// keeps what it received.
type recorder struct {
	routes map[string]route

	mu   sync.Mutex
	seen []string
}

func newRecorder(routes map[string]route) *recorder {
	return &recorder{routes: routes}
}

func (r *recorder) handle(writer http.ResponseWriter, request *http.Request) {
	key := request.Method + " " + request.URL.Path

	r.mu.Lock()
	r.seen = append(r.seen, key+"?"+request.URL.RawQuery)
	r.mu.Unlock()

	answer, ok := r.routes[key]
	if !ok {
		writeJSON(writer, http.StatusNotFound, `{"status":404,"title":"Not Found","detail":"no route for `+key+`"}`)

		return
	}

	if answer.status == http.StatusNoContent {
		writer.WriteHeader(http.StatusNoContent)

		return
	}

	writeJSON(writer, answer.status, answer.body)
}

func (r *recorder) requests() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.seen...)
}
