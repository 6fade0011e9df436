package mollie_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

var errTransport = errors.New("connection reset")

func TestInterceptorChain_Order(t *testing.T) {
	t.Parallel()

	var calls []string

	chain := mollie.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *mollie.Request) error {
		calls = append(calls, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *mollie.Request) error {
		calls = append(calls, "second")

		return nil
	})

	req := mollie.NewRequest(mollie.MethodGet, "payments", nil, nil, mollie.PaymentCollectionKind)
	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), req))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	chain := mollie.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *mollie.Request) error {
		return errTransport
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *mollie.Request) error {
		t.Error("second interceptor must not run")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), mollie.NewRequest(mollie.MethodGet, "methods", nil, nil, nil))
	require.ErrorIs(t, err, errTransport)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	req := mollie.NewRequest(mollie.MethodGet, "methods", nil, nil, nil)

	err := mollie.HeaderInterceptor(map[string]string{"X-Mollie-Plugin": "shop/1.0"})(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "shop/1.0", req.Headers.Get("X-Mollie-Plugin"))
}

func TestRateLimitInterceptor_HonoursContext(t *testing.T) {
	t.Parallel()

	limit := mollie.RateLimitInterceptor(1)
	req := mollie.NewRequest(mollie.MethodGet, "methods", nil, nil, nil)

	require.NoError(t, limit(context.Background(), req))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := limit(ctx, req)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	collector := mollie.NewMetricsCollector()

	var changes int

	collector.SetOnChange(func(endpoint string, metrics *mollie.Metrics) {
		changes++
	})

	ctx := context.Background()
	req := mollie.NewRequest(mollie.MethodGet, "payments", nil, nil, nil)

	require.NoError(t, mollie.MetricsRequestInterceptor(collector)(ctx, req))
	require.NoError(t, mollie.MetricsResponseInterceptor(collector)(ctx, req, mollie.NewResponse(200, nil, nil), nil))
	require.NoError(t, mollie.MetricsResponseInterceptor(collector)(ctx, req, mollie.NewResponse(500, nil, nil), nil))
	require.NoError(t, mollie.MetricsResponseInterceptor(collector)(ctx, req, nil, errTransport))

	metrics := collector.GetMetrics("GET payments")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(3), metrics.TotalRequests)
	assert.Equal(t, int64(2), metrics.TotalErrors)
	assert.Equal(t, 3, changes)
	assert.Nil(t, collector.GetMetrics("GET orders"))
}

func TestPrometheusMetrics(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()

	metrics, err := mollie.NewPrometheusMetrics(registry)
	require.NoError(t, err)

	chain := mollie.NewInterceptorChain()
	metrics.AddTo(chain)

	ctx := context.Background()
	req := mollie.NewRequest(mollie.MethodGet, "payments/tr_WDqYK6vllg", nil, nil, mollie.PaymentKind)

	require.NoError(t, chain.ExecuteRequestInterceptors(ctx, req))
	require.NoError(t, chain.ExecuteResponseInterceptors(ctx, req, mollie.NewResponse(200, nil, []byte(`{}`)), nil))
	require.NoError(t, chain.ExecuteResponseInterceptors(ctx, req, nil, errTransport))

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.Requests().WithLabelValues("GET", "Payment", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.Requests().WithLabelValues("GET", "Payment", "error")), 0)

	expected := `
# HELP mollie_client_requests_total API requests by method, resource and status code.
# TYPE mollie_client_requests_total counter
mollie_client_requests_total{method="GET",resource="Payment",status="200"} 1
mollie_client_requests_total{method="GET",resource="Payment",status="error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "mollie_client_requests_total"))

	count, err := testutil.GatherAndCount(registry, "mollie_client_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = mollie.NewPrometheusMetrics(registry)
	require.Error(t, err, "registering twice must fail")
}

func TestCircuitBreaker(t *testing.T) {
	t.Parallel()

	breaker := mollie.NewCircuitBreaker(&mollie.CircuitBreakerConfig{
		Threshold:        2,
		Timeout:          20 * time.Millisecond,
		SuccessThreshold: 1,
	})

	ctx := context.Background()
	req := mollie.NewRequest(mollie.MethodGet, "methods", nil, nil, nil)
	before := mollie.CircuitBreakerRequestInterceptor(breaker)
	after := mollie.CircuitBreakerResponseInterceptor(breaker)

	require.NoError(t, before(ctx, req))
	require.NoError(t, after(ctx, req, mollie.NewResponse(404, nil, nil), nil))
	assert.Equal(t, "closed", breaker.State(), "client errors do not trip the breaker")

	require.NoError(t, after(ctx, req, mollie.NewResponse(503, nil, nil), nil))
	require.NoError(t, after(ctx, req, nil, errTransport))
	assert.Equal(t, "open", breaker.State())
	require.ErrorIs(t, before(ctx, req), mollie.ErrCircuitBreakerOpen)

	time.Sleep(30 * time.Millisecond)

	require.NoError(t, before(ctx, req))
	assert.Equal(t, "half-open", breaker.State())

	require.NoError(t, after(ctx, req, mollie.NewResponse(200, nil, nil), nil))
	assert.Equal(t, "closed", breaker.State())
}
