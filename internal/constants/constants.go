package constants

import "time"

// API endpoint.
const (
	// DefaultBaseURL is the root of the v2 payments API.
	DefaultBaseURL = "https://api.mollie.com/v2"

	// DefaultUserAgent is sent when the config does not override it.
	DefaultUserAgent = "mollie-client-go"

	// ClientVersion is reported in the User-Agent header.
	ClientVersion = "1.0.0"
)

// Header names.
const (
	// HeaderIdempotencyKey carries the per-request idempotency key.
	HeaderIdempotencyKey = "Idempotency-Key"

	// HeaderAuthorization carries the bearer token.
	HeaderAuthorization = "Authorization"

	// HeaderContentType is the request content type.
	HeaderContentType = "Content-Type"

	// HeaderAccept is the accepted response type.
	HeaderAccept = "Accept"

	// HeaderUserAgent identifies the client.
	HeaderUserAgent = "User-Agent"

	// ContentTypeJSON is used for every request body.
	ContentTypeJSON = "application/json"

	// ContentTypeProblemJSON is returned by the API for errors.
	ContentTypeProblemJSON = "application/hal+json"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 5

	// LowRetryMax is used for operations that should retry fewer times.
	LowRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// ExtendedRetryWaitMax is used for operations that need longer waits.
	ExtendedRetryWaitMax = 30 * time.Second
)

// Pagination limits.
const (
	// DefaultPageSize is the page size the API uses when none is given.
	DefaultPageSize = 50

	// MaxPageSize is the largest page the API accepts.
	MaxPageSize = 250

	// DefaultBatchConcurrency is the number of batch requests in flight at once.
	DefaultBatchConcurrency = 5
)

// Cache defaults.
const (
	// DefaultCacheSize is the default number of entries kept in memory.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is how long a cached GET response stays valid.
	DefaultCacheTTL = 5 * time.Minute

	// DefaultCacheBucket is the NATS KV bucket used for responses.
	DefaultCacheBucket = "mollie_responses"

	// DefaultCacheKeyPrefix prefixes Redis keys.
	DefaultCacheKeyPrefix = "mollie:response:"
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusNoContent is returned for deletes and cancels without body.
	HTTPStatusNoContent = 204

	// HTTPStatusBadRequest represents a client error.
	HTTPStatusBadRequest = 400

	// HTTPStatusInternalServerError represents server errors.
	HTTPStatusInternalServerError = 500
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"
)

// Circuit breaker defaults.
const (
	// CircuitBreakerThreshold is the number of failures before the circuit opens.
	CircuitBreakerThreshold = 5

	// CircuitBreakerTimeout is how long the circuit stays open.
	CircuitBreakerTimeout = 60 * time.Second

	// CircuitBreakerSuccessThreshold is the number of successes that close a half-open circuit.
	CircuitBreakerSuccessThreshold = 2

	// StatusOpen marks an open circuit.
	StatusOpen = "open"

	// StatusHalfOpen marks a circuit probing for recovery.
	StatusHalfOpen = "half-open"

	// StatusClosed marks a closed circuit.
	StatusClosed = "closed"
)
