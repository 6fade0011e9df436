package http

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/PuerkitoBio/rehttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/mollie-client/internal/constants"
	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// Factory builds the adapter used when the caller supplies no handle.
type Factory func(opts Options) Adapter

var (
	registryMu sync.Mutex
	registry   []Factory
)

// RegisterDefault appends a default factory. The first registered factory
// wins. Registration happens from init functions selected by build tags.
func RegisterDefault(factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry = append(registry, factory)
}

func registeredDefaults() []Factory {
	registryMu.Lock()
	defer registryMu.Unlock()

	return append([]Factory(nil), registry...)
}

// Picker resolves a transport handle into an Adapter.
type Picker struct {
	defaults []Factory
	opts     Options
}

// NewPicker creates a picker over the factories registered for this build.
func NewPicker(opts Options) *Picker {
	return &Picker{defaults: registeredDefaults(), opts: opts}
}

// NewPickerWithDefaults creates a picker over an explicit factory list.
func NewPickerWithDefaults(opts Options, defaults ...Factory) *Picker {
	return &Picker{defaults: defaults, opts: opts}
}

// Pick returns handle unchanged if it already is an Adapter, wraps the
// supported client types, and builds the default adapter for nil. Any other
// handle fails with mollie.ErrUnrecognizedClient.
func (p *Picker) Pick(handle any) (Adapter, error) {
	switch h := handle.(type) {
	case nil:
		return p.defaultAdapter(), nil
	case Adapter:
		return h, nil
	case *retryablehttp.Client:
		return NewRetryableAdapter(h), nil
	case *http.Client:
		return NewStdAdapter(h), nil
	case *rehttp.Transport:
		return NewRehttpAdapter(h), nil
	default:
		return nil, fmt.Errorf("%w: %T", mollie.ErrUnrecognizedClient, handle)
	}
}

func (p *Picker) defaultAdapter() Adapter {
	for _, factory := range p.defaults {
		if adapter := factory(p.opts); adapter != nil {
			return adapter
		}
	}

	var opts []StdOption
	if p.opts.Tracing {
		opts = append(opts, WithTracing())
	}

	return NewStdAdapter(&http.Client{Timeout: p.opts.timeout()}, opts...)
}

func (o Options) timeout() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}

	return constants.DefaultHTTPTimeout
}

func (o Options) retryMax() int {
	if o.RetryMax > 0 {
		return o.RetryMax
	}

	return constants.LowRetryMax
}

func (o Options) retryWaitMin() time.Duration {
	if o.RetryWaitMin > 0 {
		return o.RetryWaitMin
	}

	return constants.DefaultRetryWaitMin
}

func (o Options) retryWaitMax() time.Duration {
	if o.RetryWaitMax > 0 {
		return o.RetryWaitMax
	}

	return constants.DefaultRetryWaitMax
}
