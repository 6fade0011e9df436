package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/rehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fivetwenty-io/mollie-client/internal/constants"
	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// StdAdapter sends requests through a plain *http.Client.
type StdAdapter struct {
	debugFlag

	client *http.Client
}

// StdOption configures a StdAdapter.
type StdOption func(*http.Client)

// WithTracing wraps the client transport with OpenTelemetry instrumentation.
func WithTracing() StdOption {
	return func(client *http.Client) {
		client.Transport = otelhttp.NewTransport(transportOf(client))
	}
}

// WithTimeout sets the client timeout.
func WithTimeout(timeout time.Duration) StdOption {
	return func(client *http.Client) {
		client.Timeout = timeout
	}
}

// NewStdAdapter wraps client. A nil client gets a default one with
// constants.DefaultHTTPTimeout. Options modify the client in place.
func NewStdAdapter(client *http.Client, opts ...StdOption) *StdAdapter {
	if client == nil {
		client = &http.Client{Timeout: constants.DefaultHTTPTimeout}
	}

	for _, opt := range opts {
		opt(client)
	}

	return &StdAdapter{client: client}
}

// NewRehttpAdapter sends requests through a rehttp retrying transport.
func NewRehttpAdapter(transport *rehttp.Transport, opts ...StdOption) *StdAdapter {
	return NewStdAdapter(&http.Client{
		Transport: transport,
		Timeout:   constants.DefaultHTTPTimeout,
	}, opts...)
}

// NewRehttpTransport builds a rehttp transport retrying temporary errors and
// 429/5xx responses with exponential jittered backoff.
func NewRehttpTransport(base http.RoundTripper, retryMax int, waitMin, waitMax time.Duration) *rehttp.Transport {
	return rehttp.NewTransport(base,
		rehttp.RetryAll(
			rehttp.RetryMaxRetries(retryMax),
			rehttp.RetryAny(
				rehttp.RetryTemporaryErr(),
				rehttp.RetryStatuses(
					http.StatusTooManyRequests,
					http.StatusBadGateway,
					http.StatusServiceUnavailable,
					http.StatusGatewayTimeout,
				),
			),
		),
		rehttp.ExpJitterDelay(waitMin, waitMax),
	)
}

// Client returns the wrapped client.
func (a *StdAdapter) Client() *http.Client {
	return a.client
}

// SendRequest implements Adapter.
func (a *StdAdapter) SendRequest(ctx context.Context, pending *PendingRequest) (*mollie.Response, error) {
	req := pending.HTTP.WithContext(ctx)
	rewind(req, pending.Body)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, a.transportError(req, err)
	}

	result, err := readResponse(resp)
	if err != nil {
		return nil, a.transportError(req, err)
	}

	return result, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		req.Body = http.NoBody
		req.GetBody = func() (io.ReadCloser, error) { return http.NoBody, nil }

		return
	}

	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
}

func transportOf(client *http.Client) http.RoundTripper {
	if client.Transport != nil {
		return client.Transport
	}

	return http.DefaultTransport
}
