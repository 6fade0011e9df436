package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/PuerkitoBio/rehttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	molliehttp "github.com/fivetwenty-io/mollie-client/internal/http"
	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

type stubAdapter struct {
	name string
}

func (s *stubAdapter) SendRequest(ctx context.Context, pending *molliehttp.PendingRequest) (*mollie.Response, error) {
	return mollie.NewResponse(http.StatusNoContent, nil, nil), nil
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestPicker_Pick(t *testing.T) {
	t.Parallel()

	t.Run("adapter is returned unchanged", func(t *testing.T) {
		t.Parallel()

		stub := &stubAdapter{name: "custom"}

		adapter, err := molliehttp.NewPicker(molliehttp.Options{}).Pick(stub)
		require.NoError(t, err)
		assert.Same(t, stub, adapter)
	})

	t.Run("http client is wrapped", func(t *testing.T) {
		t.Parallel()

		client := &http.Client{}

		adapter, err := molliehttp.NewPicker(molliehttp.Options{}).Pick(client)
		require.NoError(t, err)

		std, ok := adapter.(*molliehttp.StdAdapter)
		require.True(t, ok)
		assert.Same(t, client, std.Client())
	})

	t.Run("retryablehttp client is wrapped", func(t *testing.T) {
		t.Parallel()

		client := retryablehttp.NewClient()

		adapter, err := molliehttp.NewPicker(molliehttp.Options{}).Pick(client)
		require.NoError(t, err)

		retrying, ok := adapter.(*molliehttp.RetryableAdapter)
		require.True(t, ok)
		assert.Same(t, client, retrying.Client())
	})

	t.Run("rehttp transport is wrapped", func(t *testing.T) {
		t.Parallel()

		transport := rehttp.NewTransport(nil, rehttp.RetryMaxRetries(1), rehttp.ConstDelay(0))

		adapter, err := molliehttp.NewPicker(molliehttp.Options{}).Pick(transport)
		require.NoError(t, err)

		std, ok := adapter.(*molliehttp.StdAdapter)
		require.True(t, ok)
		assert.Same(t, transport, std.Client().Transport)
	})

	t.Run("nil uses the first default factory", func(t *testing.T) {
		t.Parallel()

		first := &stubAdapter{name: "first"}
		second := &stubAdapter{name: "second"}
		picker := molliehttp.NewPickerWithDefaults(molliehttp.Options{},
			func(molliehttp.Options) molliehttp.Adapter { return first },
			func(molliehttp.Options) molliehttp.Adapter { return second },
		)

		adapter, err := picker.Pick(nil)
		require.NoError(t, err)
		assert.Same(t, first, adapter)
	})

	t.Run("nil without defaults falls back to net/http", func(t *testing.T) {
		t.Parallel()

		adapter, err := molliehttp.NewPickerWithDefaults(molliehttp.Options{}).Pick(nil)
		require.NoError(t, err)
		assert.IsType(t, &molliehttp.StdAdapter{}, adapter)
	})

	t.Run("default build registers the retrying adapter", func(t *testing.T) {
		t.Parallel()

		adapter, err := molliehttp.NewPicker(molliehttp.Options{RetryMax: 2}).Pick(nil)
		require.NoError(t, err)

		retrying, ok := adapter.(*molliehttp.RetryableAdapter)
		require.True(t, ok)
		assert.Equal(t, 2, retrying.Client().RetryMax)
	})

	t.Run("unknown handle is rejected", func(t *testing.T) {
		t.Parallel()

		for _, handle := range []any{"http://example.org", 42, struct{}{}, http.DefaultTransport} {
			adapter, err := molliehttp.NewPicker(molliehttp.Options{}).Pick(handle)
			require.ErrorIs(t, err, mollie.ErrUnrecognizedClient)
			assert.Nil(t, adapter)
		}
	})
}

func TestAdapters_Debuggable(t *testing.T) {
	t.Parallel()

	adapters := []molliehttp.Adapter{
		molliehttp.NewStdAdapter(nil),
		molliehttp.NewRetryableAdapter(nil),
		molliehttp.NewRehttpAdapter(molliehttp.NewRehttpTransport(nil, 1, 0, 0)),
	}

	for _, adapter := range adapters {
		debuggable, ok := adapter.(molliehttp.Debuggable)
		require.True(t, ok, "%T", adapter)

		assert.False(t, debuggable.DebuggingIsActive())
		debuggable.EnableDebugging()
		assert.True(t, debuggable.DebuggingIsActive())
		debuggable.DisableDebugging()
		assert.False(t, debuggable.DebuggingIsActive())
	}
}
