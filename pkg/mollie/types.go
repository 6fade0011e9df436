package mollie

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PaymentsClient defines operations on payments.
type PaymentsClient interface {
	Create(ctx context.Context, body Payload, params *QueryParams) (*Payment, error)
	Get(ctx context.Context, id string, params *QueryParams) (*Payment, error)
	Update(ctx context.Context, id string, body Payload) (*Payment, error)
	Cancel(ctx context.Context, id string, body Payload) (*Payment, error)
	Page(ctx context.Context, params *QueryParams) (*Collection[*Payment], error)
	Iterator(params *QueryParams, backwards bool) *LazyCollection[*Payment]
}

// PaymentRefundsClient defines refund operations scoped to one payment.
type PaymentRefundsClient interface {
	Create(ctx context.Context, paymentID string, body Payload) (*Refund, error)
	Get(ctx context.Context, paymentID, refundID string, params *QueryParams) (*Refund, error)
	Cancel(ctx context.Context, paymentID, refundID string) error
	Page(ctx context.Context, paymentID string, params *QueryParams) (*Collection[*Refund], error)
	Iterator(paymentID string, params *QueryParams, backwards bool) *LazyCollection[*Refund]
}

// RefundsClient lists refunds across all payments.
type RefundsClient interface {
	Page(ctx context.Context, params *QueryParams) (*Collection[*Refund], error)
	Iterator(params *QueryParams, backwards bool) *LazyCollection[*Refund]
}

// PaymentCapturesClient defines capture operations scoped to one payment.
type PaymentCapturesClient interface {
	Create(ctx context.Context, paymentID string, body Payload) (*Capture, error)
	Get(ctx context.Context, paymentID, captureID string, params *QueryParams) (*Capture, error)
	Page(ctx context.Context, paymentID string, params *QueryParams) (*Collection[*Capture], error)
	Iterator(paymentID string, params *QueryParams, backwards bool) *LazyCollection[*Capture]
}

// PaymentChargebacksClient lists chargebacks of one payment.
type PaymentChargebacksClient interface {
	Page(ctx context.Context, paymentID string, params *QueryParams) (*Collection[*Chargeback], error)
	Iterator(paymentID string, params *QueryParams, backwards bool) *LazyCollection[*Chargeback]
}

// OrdersClient defines operations on orders.
type OrdersClient interface {
	Create(ctx context.Context, body Payload, params *QueryParams) (*Order, error)
	Get(ctx context.Context, id string, params *QueryParams) (*Order, error)
	Update(ctx context.Context, id string, body Payload) (*Order, error)
	Cancel(ctx context.Context, id string) (*Order, error)
	Page(ctx context.Context, params *QueryParams) (*Collection[*Order], error)
	Iterator(params *QueryParams, backwards bool) *LazyCollection[*Order]
}

// OrderLinesClient defines operations on the lines of an order.
type OrderLinesClient interface {
	Update(ctx context.Context, orderID, lineID string, body Payload) (*Order, error)
	UpdateMultiple(ctx context.Context, orderID string, operations []interface{}) (*Order, error)
	Cancel(ctx context.Context, orderID string, body Payload) error
}

// ShipmentsClient defines shipment operations scoped to one order.
type ShipmentsClient interface {
	Create(ctx context.Context, orderID string, body Payload) (*Shipment, error)
	Get(ctx context.Context, orderID, shipmentID string, params *QueryParams) (*Shipment, error)
	Update(ctx context.Context, orderID, shipmentID string, body Payload) (*Shipment, error)
	List(ctx context.Context, orderID string, params *QueryParams) (*Collection[*Shipment], error)
}

// CustomersClient defines operations on customers.
type CustomersClient interface {
	Create(ctx context.Context, body Payload) (*Customer, error)
	Get(ctx context.Context, id string, params *QueryParams) (*Customer, error)
	Update(ctx context.Context, id string, body Payload) (*Customer, error)
	Delete(ctx context.Context, id string) error
	Page(ctx context.Context, params *QueryParams) (*Collection[*Customer], error)
	Iterator(params *QueryParams, backwards bool) *LazyCollection[*Customer]
}

// SubscriptionsClient defines subscription operations. Page and Iterator
// are scoped to one customer; All and AllIterator span every customer.
type SubscriptionsClient interface {
	Create(ctx context.Context, customerID string, body Payload) (*Subscription, error)
	Get(ctx context.Context, customerID, subscriptionID string, params *QueryParams) (*Subscription, error)
	Update(ctx context.Context, customerID, subscriptionID string, body Payload) (*Subscription, error)
	Cancel(ctx context.Context, customerID, subscriptionID string) (*Subscription, error)
	Page(ctx context.Context, customerID string, params *QueryParams) (*Collection[*Subscription], error)
	Iterator(customerID string, params *QueryParams, backwards bool) *LazyCollection[*Subscription]
	All(ctx context.Context, params *QueryParams) (*Collection[*Subscription], error)
	AllIterator(params *QueryParams, backwards bool) *LazyCollection[*Subscription]
}

// SessionsClient defines operations on checkout sessions.
type SessionsClient interface {
	Create(ctx context.Context, body Payload, params *QueryParams) (*Session, error)
	Get(ctx context.Context, id string, params *QueryParams) (*Session, error)
	Update(ctx context.Context, id string, body Payload) (*Session, error)
	Cancel(ctx context.Context, id string) error
	Page(ctx context.Context, params *QueryParams) (*Collection[*Session], error)
	Iterator(params *QueryParams, backwards bool) *LazyCollection[*Session]
}

// SettlementsClient defines operations on settlements. Get also accepts the
// aliases "next" and "open".
type SettlementsClient interface {
	Get(ctx context.Context, id string) (*Settlement, error)
	Next(ctx context.Context) (*Settlement, error)
	Open(ctx context.Context) (*Settlement, error)
	Page(ctx context.Context, params *QueryParams) (*Collection[*Settlement], error)
	Iterator(params *QueryParams, backwards bool) *LazyCollection[*Settlement]
	Captures(ctx context.Context, settlementID string, params *QueryParams) (*Collection[*Capture], error)
	CapturesIterator(settlementID string, params *QueryParams, backwards bool) *LazyCollection[*Capture]
}

// PaymentLinksClient defines operations on payment links.
type PaymentLinksClient interface {
	Create(ctx context.Context, body Payload) (*PaymentLink, error)
	Get(ctx context.Context, id string) (*PaymentLink, error)
	Update(ctx context.Context, id string, body Payload) (*PaymentLink, error)
	Delete(ctx context.Context, id string) error
	Page(ctx context.Context, params *QueryParams) (*Collection[*PaymentLink], error)
	Iterator(params *QueryParams, backwards bool) *LazyCollection[*PaymentLink]
	Payments(ctx context.Context, paymentLinkID string, params *QueryParams) (*Collection[*Payment], error)
	PaymentsIterator(paymentLinkID string, params *QueryParams, backwards bool) *LazyCollection[*Payment]
}

// MethodsClient defines operations on payment methods.
type MethodsClient interface {
	Get(ctx context.Context, id string, params *QueryParams) (*Method, error)
	ListEnabled(ctx context.Context, params *QueryParams) (*Collection[*Method], error)
	ListAll(ctx context.Context, params *QueryParams) (*Collection[*Method], error)
}

// PermissionsClient defines operations on OAuth permissions.
type PermissionsClient interface {
	Get(ctx context.Context, id string) (*Permission, error)
	List(ctx context.Context) (*Collection[*Permission], error)
}

// SalesInvoicesClient defines operations on sales invoices.
type SalesInvoicesClient interface {
	Create(ctx context.Context, body Payload) (*SalesInvoice, error)
	Get(ctx context.Context, id string, params *QueryParams) (*SalesInvoice, error)
	Update(ctx context.Context, id string, body Payload) (*SalesInvoice, error)
	Delete(ctx context.Context, id string) error
	Page(ctx context.Context, params *QueryParams) (*Collection[*SalesInvoice], error)
	Iterator(params *QueryParams, backwards bool) *LazyCollection[*SalesInvoice]
}

// WalletsClient defines wallet operations.
type WalletsClient interface {
	RequestApplePaySession(ctx context.Context, domain, validationURL string, body Payload) (*AnyResource, error)
}

// OrganizationPartnersClient reads the partner status of the current organization.
type OrganizationPartnersClient interface {
	Status(ctx context.Context) (*Partner, error)
}

// PaymentClients groups the payment related clients.
type PaymentClients interface {
	Payments() PaymentsClient
	PaymentRefunds() PaymentRefundsClient
	Refunds() RefundsClient
	PaymentCaptures() PaymentCapturesClient
	PaymentChargebacks() PaymentChargebacksClient
	PaymentLinks() PaymentLinksClient
	Methods() MethodsClient
	Wallets() WalletsClient
}

// OrderClients groups the order related clients.
type OrderClients interface {
	Orders() OrdersClient
	OrderLines() OrderLinesClient
	Shipments() ShipmentsClient
}

// RecurringClients groups customers, subscriptions and sessions.
type RecurringClients interface {
	Customers() CustomersClient
	Subscriptions() SubscriptionsClient
	Sessions() SessionsClient
}

// OrganizationClients groups organization level clients.
type OrganizationClients interface {
	Settlements() SettlementsClient
	Permissions() PermissionsClient
	SalesInvoices() SalesInvoicesClient
	OrganizationPartners() OrganizationPartnersClient
}

// Client is the full API client.
type Client interface {
	PaymentClients
	OrderClients
	RecurringClients
	OrganizationClients

	// Connector sends raw requests. Use it for endpoints without a façade.
	Connector() Connector
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a mollie.Client.
//
// # Authentication
//
// Provide exactly one of APIKey ("test_..." or "live_...") or AccessToken
// ("access_..."), both sent as a Bearer token. Tokens are not refreshed;
// obtaining an OAuth token is left to the caller.
//
// # Transport
//
// HTTPClient selects the transport. It may be an adapter implementing
// internal/http.Adapter, a *retryablehttp.Client, an *http.Client or a
// *rehttp.Transport. Left nil, the default adapter for the build is used and
// RetryMax, RetryWaitMin and RetryWaitMax apply to it. Anything else fails
// with ErrUnrecognizedClient.
type Config struct {
	// APIKey: organization API key.
	APIKey string
	// AccessToken: OAuth or organization access token.
	AccessToken string
	// BaseURL: defaults to https://api.mollie.com/v2.
	BaseURL string
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string

	// Testmode: sends testmode=true with every relative request. Only
	// meaningful with an access token.
	Testmode bool
	// HTTPTimeout: timeout of the default transport.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures. If 0, a
	// sensible default is used.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug: enables request logging and keeps the outgoing request on
	// returned errors.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// Tracing: wraps the default transport with OpenTelemetry instrumentation.
	Tracing bool
	// DisableIdempotency: stops sending Idempotency-Key headers.
	DisableIdempotency bool

	// HTTPClient: transport handle, see above.
	HTTPClient any
	// Cache: enables response caching of GET requests when set.
	Cache *CacheConfig
	// Interceptors: run around every call.
	Interceptors *InterceptorChain
	// MetricsRegisterer: registers Prometheus collectors for every call when set.
	MetricsRegisterer prometheus.Registerer
}
