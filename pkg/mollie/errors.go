package mollie

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	// ErrUnrecognizedClient is returned when the supplied HTTP handle is
	// neither an adapter nor a supported client.
	ErrUnrecognizedClient = errors.New("the provided http client or adapter was not recognized")
	// ErrInvalidArgument reports caller misuse, such as hydrating without a response.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnrecognizedType is returned when a kind cannot produce a resource or collection.
	ErrUnrecognizedType = errors.New("unrecognized resource type")
	// ErrEmbeddedResourcesNotParseable matches every EmbeddedResourcesNotParseableError.
	ErrEmbeddedResourcesNotParseable = errors.New("embedded resources not parseable")
	// ErrInvalidResourceID is returned when an id lacks the expected prefix.
	ErrInvalidResourceID = errors.New("invalid resource id")
	// ErrLinesRequired is returned when cancelling order lines without a lines array.
	ErrLinesRequired = errors.New("a lines array is required")
	// ErrNotBound is returned when a resource or collection has no connector.
	ErrNotBound = errors.New("resource is not bound to a connector")
	// ErrConfigRequired is returned when no config is given.
	ErrConfigRequired = errors.New("config is required")
	// ErrAPIKeyRequired is returned when the config holds no credentials.
	ErrAPIKeyRequired = errors.New("API key or access token is required")
	// ErrCacheMiss is returned by caches when a key is absent or expired.
	ErrCacheMiss = errors.New("key not found")
	// ErrCacheEntryExpired is returned by caches for an expired entry.
	ErrCacheEntryExpired = errors.New("entry expired")
)

// EmbeddedResourcesNotParseableError names the resource type and the
// _embedded key that has no declared mapping.
type EmbeddedResourcesNotParseableError struct {
	Resource string
	Key      string
}

// Error implements the error interface.
func (e *EmbeddedResourcesNotParseableError) Error() string {
	return fmt.Sprintf("resource %s does not have a mapping for embedded resource %s", e.Resource, e.Key)
}

// Is lets errors.Is match ErrEmbeddedResourcesNotParseable.
func (e *EmbeddedResourcesNotParseableError) Is(target error) bool {
	return target == ErrEmbeddedResourcesNotParseable
}

// InvalidResourceIDError is returned before a request is sent when an id is
// empty or lacks the prefix of its resource type.
type InvalidResourceIDError struct {
	Kind   string
	ID     string
	Prefix string
}

// Error implements the error interface.
func (e *InvalidResourceIDError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("invalid %s id: empty", e.Kind)
	}

	return fmt.Sprintf("invalid %s id '%s': an id should start with '%s'", e.Kind, e.ID, e.Prefix)
}

// Is lets errors.Is match ErrInvalidResourceID.
func (e *InvalidResourceIDError) Is(target error) bool {
	return target == ErrInvalidResourceID
}

// APIError is returned for non-2xx responses and for transport failures.
// Request is only populated when the adapter that sent it had debugging on.
type APIError struct {
	StatusCode       int    `json:"status"`
	Title            string `json:"title"`
	Detail           string `json:"detail"`
	Field            string `json:"field,omitempty"`
	DocumentationURL string `json:"-"`
	Body             []byte `json:"-"`

	Request *http.Request `json:"-"`
	Err     error         `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	message := e.Detail
	if message == "" {
		message = e.Title
	}

	if e.StatusCode == 0 {
		return "Error while sending request: " + message
	}

	if e.Field != "" {
		return fmt.Sprintf("Error executing API call (%d: %s): %s. Field: %s", e.StatusCode, e.Title, message, e.Field)
	}

	return fmt.Sprintf("Error executing API call (%d: %s): %s", e.StatusCode, e.Title, message)
}

// Unwrap returns the transport cause, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// ParseAPIError builds an APIError from an error response body. Bodies that
// are not problem JSON still produce an error carrying the status and raw body.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Title:      http.StatusText(statusCode),
		Body:       body,
	}

	var problem struct {
		Status int    `json:"status"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
		Field  string `json:"field"`
		Links  Links  `json:"_links"`
	}

	if json.Unmarshal(body, &problem) != nil {
		apiErr.Detail = string(body)

		return apiErr
	}

	if problem.Title != "" {
		apiErr.Title = problem.Title
	}

	apiErr.Detail = problem.Detail
	apiErr.Field = problem.Field

	if doc := problem.Links.Get("documentation"); doc != nil {
		apiErr.DocumentationURL = doc.Href
	}

	return apiErr
}

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsUnprocessable checks if the error is a 422 validation failure.
func IsUnprocessable(err error) bool {
	return hasStatus(err, http.StatusUnprocessableEntity)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}
