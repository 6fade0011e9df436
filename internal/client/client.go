package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fivetwenty-io/mollie-client/internal/auth"
	"github.com/fivetwenty-io/mollie-client/internal/http"
	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// Static errors for err113 compliance.
var (
	ErrNoTokenManagerConfigured = errors.New("no token manager configured")
)

// Client implements the mollie.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	cache        mollie.Cache

	// Resource clients
	payments             mollie.PaymentsClient
	paymentRefunds       mollie.PaymentRefundsClient
	refunds              mollie.RefundsClient
	paymentCaptures      mollie.PaymentCapturesClient
	paymentChargebacks   mollie.PaymentChargebacksClient
	paymentLinks         mollie.PaymentLinksClient
	methods              mollie.MethodsClient
	wallets              mollie.WalletsClient
	orders               mollie.OrdersClient
	orderLines           mollie.OrderLinesClient
	shipments            mollie.ShipmentsClient
	customers            mollie.CustomersClient
	subscriptions        mollie.SubscriptionsClient
	sessions             mollie.SessionsClient
	settlements          mollie.SettlementsClient
	permissions          mollie.PermissionsClient
	salesInvoices        mollie.SalesInvoicesClient
	organizationPartners mollie.OrganizationPartnersClient
}

// createTokenManager picks the credential from config. An access token wins
// over an API key.
func createTokenManager(config *mollie.Config) (auth.TokenManager, error) {
	if config.AccessToken != "" {
		manager, err := auth.NewAccessTokenManager(config.AccessToken)
		if err != nil {
			return nil, fmt.Errorf("configuring access token: %w", err)
		}

		return manager, nil
	}

	if config.APIKey != "" {
		manager, err := auth.NewAPIKeyManager(config.APIKey)
		if err != nil {
			return nil, fmt.Errorf("configuring API key: %w", err)
		}

		return manager, nil
	}

	return nil, mollie.ErrAPIKeyRequired
}

// createAdapter resolves config.HTTPClient into a transport adapter.
func createAdapter(config *mollie.Config) (http.Adapter, error) {
	picker := http.NewPicker(http.Options{
		Timeout:      config.HTTPTimeout,
		RetryMax:     config.RetryMax,
		RetryWaitMin: config.RetryWaitMin,
		RetryWaitMax: config.RetryWaitMax,
		Logger:       config.Logger,
		Tracing:      config.Tracing,
	})

	adapter, err := picker.Pick(config.HTTPClient)
	if err != nil {
		return nil, fmt.Errorf("selecting HTTP adapter: %w", err)
	}

	return adapter, nil
}

// createInterceptors returns the configured chain, extended with Prometheus
// collectors when a registerer is set.
func createInterceptors(config *mollie.Config) (*mollie.InterceptorChain, error) {
	chain := config.Interceptors

	if config.MetricsRegisterer == nil {
		return chain, nil
	}

	metrics, err := mollie.NewPrometheusMetrics(config.MetricsRegisterer)
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	if chain == nil {
		chain = mollie.NewInterceptorChain()
	}

	metrics.AddTo(chain)

	return chain, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *mollie.Config, adapter http.Adapter) []http.Option {
	httpOpts := []http.Option{
		http.WithAdapter(adapter),
		http.WithDebug(config.Debug),
		http.WithTestmode(config.Testmode),
		http.WithIdempotency(!config.DisableIdempotency),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	return httpOpts
}

// New creates a new Mollie API client.
func New(ctx context.Context, config *mollie.Config) (*Client, error) {
	if config == nil {
		return nil, mollie.ErrConfigRequired
	}

	tokenManager, err := createTokenManager(config)
	if err != nil {
		return nil, err
	}

	return NewWithTokenManager(ctx, config, tokenManager)
}

// NewWithTokenManager creates a new Mollie API client with a custom token
// manager. The credential fields of config are ignored.
func NewWithTokenManager(ctx context.Context, config *mollie.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, mollie.ErrConfigRequired
	}

	adapter, err := createAdapter(config)
	if err != nil {
		return nil, err
	}

	interceptors, err := createInterceptors(config)
	if err != nil {
		return nil, err
	}

	httpOpts := createHTTPClientOptions(config, adapter)
	if interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(interceptors))
	}

	client := &Client{tokenManager: tokenManager}

	if config.Cache != nil {
		cache, cacheErr := mollie.NewCacheFromConfig(ctx, config.Cache)
		if cacheErr != nil {
			return nil, fmt.Errorf("creating cache: %w", cacheErr)
		}

		client.cache = cache
		manager := mollie.NewCacheManager(cache, config.Logger)
		httpOpts = append(httpOpts, http.WithCache(manager, config.Cache.CachingPolicy()))
	}

	client.httpClient = http.NewClient(config.BaseURL, tokenManager, httpOpts...)
	client.initializeResourceClients()

	return client, nil
}

// Connector implements mollie.Client.Connector.
func (c *Client) Connector() mollie.Connector {
	return c.httpClient
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// GetToken returns the credential sent as bearer token.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", ErrNoTokenManagerConfigured
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// Close releases connections held by the cache backend, if any.
func (c *Client) Close() error {
	closer, ok := c.cache.(io.Closer)
	if !ok {
		return nil
	}

	err := closer.Close()
	if err != nil {
		return fmt.Errorf("closing cache: %w", err)
	}

	return nil
}

// Resource client accessors

// Payments implements mollie.Client.Payments.
func (c *Client) Payments() mollie.PaymentsClient {
	return c.payments
}

// PaymentRefunds implements mollie.Client.PaymentRefunds.
func (c *Client) PaymentRefunds() mollie.PaymentRefundsClient {
	return c.paymentRefunds
}

// Refunds implements mollie.Client.Refunds.
func (c *Client) Refunds() mollie.RefundsClient {
	return c.refunds
}

// PaymentCaptures implements mollie.Client.PaymentCaptures.
func (c *Client) PaymentCaptures() mollie.PaymentCapturesClient {
	return c.paymentCaptures
}

// PaymentChargebacks implements mollie.Client.PaymentChargebacks.
func (c *Client) PaymentChargebacks() mollie.PaymentChargebacksClient {
	return c.paymentChargebacks
}

// PaymentLinks implements mollie.Client.PaymentLinks.
func (c *Client) PaymentLinks() mollie.PaymentLinksClient {
	return c.paymentLinks
}

// Methods implements mollie.Client.Methods.
func (c *Client) Methods() mollie.MethodsClient {
	return c.methods
}

// Wallets implements mollie.Client.Wallets.
func (c *Client) Wallets() mollie.WalletsClient {
	return c.wallets
}

// Orders implements mollie.Client.Orders.
func (c *Client) Orders() mollie.OrdersClient {
	return c.orders
}

// OrderLines implements mollie.Client.OrderLines.
func (c *Client) OrderLines() mollie.OrderLinesClient {
	return c.orderLines
}

// Shipments implements mollie.Client.Shipments.
func (c *Client) Shipments() mollie.ShipmentsClient {
	return c.shipments
}

// Customers implements mollie.Client.Customers.
func (c *Client) Customers() mollie.CustomersClient {
	return c.customers
}

// Subscriptions implements mollie.Client.Subscriptions.
func (c *Client) Subscriptions() mollie.SubscriptionsClient {
	return c.subscriptions
}

// Sessions implements mollie.Client.Sessions.
func (c *Client) Sessions() mollie.SessionsClient {
	return c.sessions
}

// Settlements implements mollie.Client.Settlements.
func (c *Client) Settlements() mollie.SettlementsClient {
	return c.settlements
}

// Permissions implements mollie.Client.Permissions.
func (c *Client) Permissions() mollie.PermissionsClient {
	return c.permissions
}

// SalesInvoices implements mollie.Client.SalesInvoices.
func (c *Client) SalesInvoices() mollie.SalesInvoicesClient {
	return c.salesInvoices
}

// OrganizationPartners implements mollie.Client.OrganizationPartners.
func (c *Client) OrganizationPartners() mollie.OrganizationPartnersClient {
	return c.organizationPartners
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.payments = NewPaymentsClient(c.httpClient)
	c.paymentRefunds = NewPaymentRefundsClient(c.httpClient)
	c.refunds = NewRefundsClient(c.httpClient)
	c.paymentCaptures = NewPaymentCapturesClient(c.httpClient)
	c.paymentChargebacks = NewPaymentChargebacksClient(c.httpClient)
	c.paymentLinks = NewPaymentLinksClient(c.httpClient)
	c.methods = NewMethodsClient(c.httpClient)
	c.wallets = NewWalletsClient(c.httpClient)
	c.orders = NewOrdersClient(c.httpClient)
	c.orderLines = NewOrderLinesClient(c.httpClient)
	c.shipments = NewShipmentsClient(c.httpClient)
	c.customers = NewCustomersClient(c.httpClient)
	c.subscriptions = NewSubscriptionsClient(c.httpClient)
	c.sessions = NewSessionsClient(c.httpClient)
	c.settlements = NewSettlementsClient(c.httpClient)
	c.permissions = NewPermissionsClient(c.httpClient)
	c.salesInvoices = NewSalesInvoicesClient(c.httpClient)
	c.organizationPartners = NewOrganizationPartnersClient(c.httpClient)
}
