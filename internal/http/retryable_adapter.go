package http

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// RetryableAdapter sends requests through go-retryablehttp. Connection
// errors, 429 and 5xx responses are retried with backoff.
type RetryableAdapter struct {
	debugFlag

	client *retryablehttp.Client
}

// NewRetryableAdapter wraps client as is.
func NewRetryableAdapter(client *retryablehttp.Client) *RetryableAdapter {
	if client == nil {
		client = retryablehttp.NewClient()
		client.Logger = nil
	}

	return &RetryableAdapter{client: client}
}

// NewDefaultRetryableAdapter builds a retrying client from the given options.
// After the last attempt the final response is returned unchanged so the
// connector can turn it into an API error.
func NewDefaultRetryableAdapter(opts Options) *RetryableAdapter {
	client := retryablehttp.NewClient()
	client.RetryMax = opts.retryMax()
	client.RetryWaitMin = opts.retryWaitMin()
	client.RetryWaitMax = opts.retryWaitMax()
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.HTTPClient.Timeout = opts.timeout()

	if opts.Logger != nil {
		client.Logger = &leveledLogger{logger: opts.Logger}
	} else {
		client.Logger = nil
	}

	if opts.Tracing {
		client.HTTPClient.Transport = otelhttp.NewTransport(transportOf(client.HTTPClient))
	}

	return &RetryableAdapter{client: client}
}

// Client returns the wrapped client.
func (a *RetryableAdapter) Client() *retryablehttp.Client {
	return a.client
}

// SendRequest implements Adapter.
func (a *RetryableAdapter) SendRequest(ctx context.Context, pending *PendingRequest) (*mollie.Response, error) {
	req := pending.HTTP.WithContext(ctx)
	rewind(req, pending.Body)

	retryReq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, a.transportError(req, fmt.Errorf("preparing request: %w", err))
	}

	resp, err := a.client.Do(retryReq)
	if err != nil {
		return nil, a.transportError(req, err)
	}

	result, err := readResponse(resp)
	if err != nil {
		return nil, a.transportError(req, err)
	}

	return result, nil
}

// leveledLogger adapts mollie.Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger mollie.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, pairs(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, pairs(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, pairs(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, pairs(keysAndValues))
}

func pairs(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}

// Options configures the adapters built when no handle is supplied.
type Options struct {
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Logger       mollie.Logger
	Tracing      bool
}
