package client

import (
	"context"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// PaymentLinksClient implements mollie.PaymentLinksClient.
type PaymentLinksClient struct {
	connector mollie.Connector
}

// NewPaymentLinksClient creates a new payment links client.
func NewPaymentLinksClient(connector mollie.Connector) *PaymentLinksClient {
	return &PaymentLinksClient{connector: connector}
}

// Create implements mollie.PaymentLinksClient.Create.
func (c *PaymentLinksClient) Create(ctx context.Context, body mollie.Payload) (*mollie.PaymentLink, error) {
	return getOne(ctx, c.connector, mollie.NewCreatePaymentLinkRequest(body), mollie.PaymentLinkKind)
}

// Get implements mollie.PaymentLinksClient.Get.
func (c *PaymentLinksClient) Get(ctx context.Context, id string) (*mollie.PaymentLink, error) {
	err := mollie.GuardID(mollie.PaymentLinkKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewGetPaymentLinkRequest(id), mollie.PaymentLinkKind)
}

// Update implements mollie.PaymentLinksClient.Update.
func (c *PaymentLinksClient) Update(ctx context.Context, id string, body mollie.Payload) (*mollie.PaymentLink, error) {
	err := mollie.GuardID(mollie.PaymentLinkKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewUpdatePaymentLinkRequest(id, body), mollie.PaymentLinkKind)
}

// Delete implements mollie.PaymentLinksClient.Delete.
func (c *PaymentLinksClient) Delete(ctx context.Context, id string) error {
	err := mollie.GuardID(mollie.PaymentLinkKind, id)
	if err != nil {
		return err
	}

	return send(ctx, c.connector, mollie.NewDeletePaymentLinkRequest(id))
}

// Page implements mollie.PaymentLinksClient.Page.
func (c *PaymentLinksClient) Page(ctx context.Context, params *mollie.QueryParams) (*mollie.Collection[*mollie.PaymentLink], error) {
	return getPage(ctx, c.connector, mollie.NewListPaymentLinksRequest(query(params)), mollie.PaymentLinkCollectionKind)
}

// Iterator implements mollie.PaymentLinksClient.Iterator.
func (c *PaymentLinksClient) Iterator(params *mollie.QueryParams, backwards bool) *mollie.LazyCollection[*mollie.PaymentLink] {
	return iterate(c.connector, func() *mollie.Request {
		return mollie.NewListPaymentLinksRequest(query(params))
	}, mollie.PaymentLinkCollectionKind, backwards)
}

// Payments implements mollie.PaymentLinksClient.Payments.
func (c *PaymentLinksClient) Payments(ctx context.Context, paymentLinkID string, params *mollie.QueryParams) (*mollie.Collection[*mollie.Payment], error) {
	err := mollie.GuardID(mollie.PaymentLinkKind, paymentLinkID)
	if err != nil {
		return nil, err
	}

	return getPage(ctx, c.connector, mollie.NewListPaymentLinkPaymentsRequest(paymentLinkID, query(params)), mollie.PaymentCollectionKind)
}

// PaymentsIterator implements mollie.PaymentLinksClient.PaymentsIterator.
func (c *PaymentLinksClient) PaymentsIterator(paymentLinkID string, params *mollie.QueryParams, backwards bool) *mollie.LazyCollection[*mollie.Payment] {
	return mollie.NewLazyCollection(func(ctx context.Context) (*mollie.Collection[*mollie.Payment], error) {
		return c.Payments(ctx, paymentLinkID, params)
	}, backwards)
}

// MethodsClient implements mollie.MethodsClient.
type MethodsClient struct {
	connector mollie.Connector
}

// NewMethodsClient creates a new methods client.
func NewMethodsClient(connector mollie.Connector) *MethodsClient {
	return &MethodsClient{connector: connector}
}

// Get implements mollie.MethodsClient.Get.
func (c *MethodsClient) Get(ctx context.Context, id string, params *mollie.QueryParams) (*mollie.Method, error) {
	err := mollie.GuardID(mollie.MethodKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewGetMethodRequest(id, query(params)), mollie.MethodKind)
}

// ListEnabled implements mollie.MethodsClient.ListEnabled.
func (c *MethodsClient) ListEnabled(ctx context.Context, params *mollie.QueryParams) (*mollie.Collection[*mollie.Method], error) {
	return getPage(ctx, c.connector, mollie.NewListEnabledMethodsRequest(query(params)), mollie.MethodCollectionKind)
}

// ListAll implements mollie.MethodsClient.ListAll.
func (c *MethodsClient) ListAll(ctx context.Context, params *mollie.QueryParams) (*mollie.Collection[*mollie.Method], error) {
	return getPage(ctx, c.connector, mollie.NewListAllMethodsRequest(query(params)), mollie.MethodCollectionKind)
}

// WalletsClient implements mollie.WalletsClient.
type WalletsClient struct {
	connector mollie.Connector
}

// NewWalletsClient creates a new wallets client.
func NewWalletsClient(connector mollie.Connector) *WalletsClient {
	return &WalletsClient{connector: connector}
}

// RequestApplePaySession implements mollie.WalletsClient.RequestApplePaySession.
func (c *WalletsClient) RequestApplePaySession(ctx context.Context, domain, validationURL string, body mollie.Payload) (*mollie.AnyResource, error) {
	return getOne(ctx, c.connector, mollie.NewApplePayPaymentSessionRequest(domain, validationURL, body), mollie.AnyResourceKind)
}
