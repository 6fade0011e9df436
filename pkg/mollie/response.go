package mollie

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// Response is a fully buffered API response. Every resource hydrated from it
// keeps a reference for diagnostics.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte

	parseOnce sync.Once
	parsed    map[string]interface{}
	parseErr  error
}

// NewResponse creates a response from its raw parts.
func NewResponse(statusCode int, headers http.Header, body []byte) *Response {
	if headers == nil {
		headers = make(http.Header)
	}

	return &Response{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       body,
	}
}

// JSON parses the body on first use. An empty body yields a nil map.
func (r *Response) JSON() (map[string]interface{}, error) {
	r.parseOnce.Do(func() {
		if r.IsEmpty() {
			return
		}

		var parsed map[string]interface{}

		err := json.Unmarshal(r.Body, &parsed)
		if err != nil {
			r.parseErr = fmt.Errorf("parsing response body: %w", err)

			return
		}

		r.parsed = parsed
	})

	return r.parsed, r.parseErr
}

// IsEmpty reports a response without body, such as 204 No Content.
func (r *Response) IsEmpty() bool {
	return r.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(r.Body)) == 0
}

// Successful reports a 2xx status.
func (r *Response) Successful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Failed reports a 4xx or 5xx status.
func (r *Response) Failed() bool {
	return r.StatusCode >= 400
}
