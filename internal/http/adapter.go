// Package http sends mollie.Request values over the wire. It holds the
// transport adapters, the picker that turns a user supplied handle into an
// adapter, and the Client connector used by every endpoint.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// PendingRequest is a request ready to be sent. HTTP carries method, URL and
// headers; Body holds the encoded payload so adapters that retry can replay it.
type PendingRequest struct {
	Request *mollie.Request
	HTTP    *http.Request
	Body    []byte
}

// Adapter sends a pending request and returns the buffered response for any
// status code. Transport failures are returned as *mollie.APIError.
type Adapter interface {
	SendRequest(ctx context.Context, pending *PendingRequest) (*mollie.Response, error)
}

// Debuggable is implemented by adapters that can keep the outgoing request
// on the errors they return.
type Debuggable interface {
	EnableDebugging()
	DisableDebugging()
	DebuggingIsActive() bool
}

type debugFlag struct {
	active atomic.Bool
}

func (d *debugFlag) EnableDebugging() {
	d.active.Store(true)
}

func (d *debugFlag) DisableDebugging() {
	d.active.Store(false)
}

func (d *debugFlag) DebuggingIsActive() bool {
	return d.active.Load()
}

func (d *debugFlag) transportError(req *http.Request, err error) *mollie.APIError {
	apiErr := &mollie.APIError{
		Detail: err.Error(),
		Err:    err,
	}

	if d.DebuggingIsActive() {
		apiErr.Request = req
	}

	return apiErr
}

// IsDebugging reports whether adapter has debugging switched on.
func IsDebugging(adapter Adapter) bool {
	debuggable, ok := adapter.(Debuggable)

	return ok && debuggable.DebuggingIsActive()
}

func readResponse(resp *http.Response) (*mollie.Response, error) {
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return mollie.NewResponse(resp.StatusCode, resp.Header, body), nil
}
