package mollie

import "context"

// Connector sends requests on behalf of resources and collections. The
// internal HTTP client implements it; tests may supply their own.
type Connector interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Resource is implemented by every hydrated domain object. Types satisfy it
// by embedding BaseResource.
type Resource interface {
	base() *BaseResource
}

// EmbedsResources is implemented by resources whose payload may contain an
// _embedded object. The map must name every key the API can emit there.
type EmbedsResources interface {
	Resource
	EmbeddedResourcesMap() map[string]Kind
}

// BaseResource holds what every hydrated resource shares: the connector and
// response it came from, fields the schema does not declare, and hydrated
// embedded children.
type BaseResource struct {
	connector Connector
	response  *Response

	// Extra keeps JSON fields without a struct field, so nothing returned by
	// newer API versions is dropped.
	Extra map[string]interface{} `json:"-" yaml:"-"`
	// Embedded holds hydrated children keyed by their _embedded key.
	Embedded map[string]interface{} `json:"-" yaml:"-"`
}

func (b *BaseResource) base() *BaseResource {
	return b
}

func (b *BaseResource) bind(connector Connector, response *Response) {
	b.connector = connector
	b.response = response
}

// Connector returns the connector the resource was hydrated with.
func (b *BaseResource) Connector() Connector {
	return b.connector
}

// Response returns the response the resource was hydrated from.
func (b *BaseResource) Response() *Response {
	return b.response
}

// Link represents a single HAL link.
type Link struct {
	Href string `json:"href"           yaml:"href"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Links maps relation names to links. A relation the API sends as null is
// kept as a nil entry.
type Links map[string]*Link

// Get returns the link for rel or nil.
func (l Links) Get(rel string) *Link {
	if l == nil {
		return nil
	}

	return l[rel]
}

// Has reports whether rel is present with a non-empty href.
func (l Links) Has(rel string) bool {
	link := l.Get(rel)

	return link != nil && link.Href != ""
}

// Href returns the href for rel or an empty string.
func (l Links) Href(rel string) string {
	if !l.Has(rel) {
		return ""
	}

	return l[rel].Href
}

// AnyResource holds a payload without a fixed schema, such as an Apple Pay
// merchant session.
type AnyResource struct {
	BaseResource `yaml:",inline"`

	Fields map[string]interface{} `json:"fields"`
}

// Get returns a top-level field.
func (r *AnyResource) Get(key string) interface{} {
	return r.Fields[key]
}

// String returns a top-level field as a string, or "" when absent or not a string.
func (r *AnyResource) String(key string) string {
	value, _ := r.Fields[key].(string)

	return value
}

func (r *AnyResource) fill(fields map[string]interface{}) {
	r.Fields = make(map[string]interface{}, len(fields))
	for key, value := range fields {
		r.Fields[key] = value
	}
}

// fillable resources take the whole payload instead of schema decoding.
type fillable interface {
	fill(fields map[string]interface{})
}
