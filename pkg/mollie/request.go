package mollie

import (
	"net/http"
	"net/url"
	"strings"
)

// HTTP methods accepted by the API.
const (
	MethodGet    = http.MethodGet
	MethodPost   = http.MethodPost
	MethodPatch  = http.MethodPatch
	MethodPut    = http.MethodPut
	MethodDelete = http.MethodDelete
)

// Payload is a JSON request body. Values may be nested payloads, slices or
// value objects such as Money.
type Payload map[string]interface{}

// Request describes one API call. Endpoint façades build a new Request per
// call; the transport reads it but never modifies it.
type Request struct {
	// Method is one of the Method constants.
	Method string
	// Path is either relative to the API base URL ("payments/tr_x") or an
	// absolute href taken verbatim from a previous response.
	Path string
	// Body is JSON encoded when non-nil.
	Body interface{}
	// Query is appended to the URL.
	Query url.Values
	// Headers are added to the outgoing request.
	Headers http.Header
	// Target is the kind the response body hydrates into. It is informational
	// for the transport and used by callers that hydrate generically.
	Target Kind
	// Metadata is scratch space for interceptors.
	Metadata map[string]interface{}
}

// NewRequest creates a request for a relative resource path.
func NewRequest(method, path string, body interface{}, query url.Values, target Kind) *Request {
	if payload, ok := body.(Payload); ok && payload == nil {
		body = nil
	}

	return &Request{
		Method: method,
		Path:   strings.TrimPrefix(path, "/"),
		Body:   body,
		Query:  query,
		Target: target,
	}
}

// NewDynamicGetRequest creates a GET for an absolute href. Pagination uses it
// to follow _links entries without rebuilding the URL locally.
func NewDynamicGetRequest(href string, target Kind) *Request {
	return &Request{
		Method: MethodGet,
		Path:   href,
		Target: target,
	}
}

// IsAbsolute reports whether Path is a full URL.
func (r *Request) IsAbsolute() bool {
	return strings.HasPrefix(r.Path, "http://") || strings.HasPrefix(r.Path, "https://")
}

// HasBody reports whether the request carries a payload.
func (r *Request) HasBody() bool {
	return r.Body != nil
}

// Clone returns a copy whose headers, query and payload maps can be changed
// without affecting r.
func (r *Request) Clone() *Request {
	clone := *r

	if r.Headers != nil {
		clone.Headers = r.Headers.Clone()
	}

	if r.Query != nil {
		clone.Query = make(url.Values, len(r.Query))
		for key, values := range r.Query {
			clone.Query[key] = append([]string(nil), values...)
		}
	}

	if r.Metadata != nil {
		clone.Metadata = make(map[string]interface{}, len(r.Metadata))
		for key, value := range r.Metadata {
			clone.Metadata[key] = value
		}
	}

	if payload, ok := r.Body.(Payload); ok {
		copied := make(Payload, len(payload))
		for key, value := range payload {
			copied[key] = value
		}

		clone.Body = copied
	}

	return &clone
}
