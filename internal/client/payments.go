package client

import (
	"context"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// PaymentsClient implements mollie.PaymentsClient.
type PaymentsClient struct {
	connector mollie.Connector
}

// NewPaymentsClient creates a new payments client.
func NewPaymentsClient(connector mollie.Connector) *PaymentsClient {
	return &PaymentsClient{connector: connector}
}

// Create implements mollie.PaymentsClient.Create.
func (c *PaymentsClient) Create(ctx context.Context, body mollie.Payload, params *mollie.QueryParams) (*mollie.Payment, error) {
	return getOne(ctx, c.connector, mollie.NewCreatePaymentRequest(body, query(params)), mollie.PaymentKind)
}

// Get implements mollie.PaymentsClient.Get.
func (c *PaymentsClient) Get(ctx context.Context, id string, params *mollie.QueryParams) (*mollie.Payment, error) {
	err := mollie.GuardID(mollie.PaymentKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewGetPaymentRequest(id, query(params)), mollie.PaymentKind)
}

// Update implements mollie.PaymentsClient.Update.
func (c *PaymentsClient) Update(ctx context.Context, id string, body mollie.Payload) (*mollie.Payment, error) {
	err := mollie.GuardID(mollie.PaymentKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewUpdatePaymentRequest(id, body), mollie.PaymentKind)
}

// Cancel implements mollie.PaymentsClient.Cancel.
func (c *PaymentsClient) Cancel(ctx context.Context, id string, body mollie.Payload) (*mollie.Payment, error) {
	err := mollie.GuardID(mollie.PaymentKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewCancelPaymentRequest(id, body), mollie.PaymentKind)
}

// Page implements mollie.PaymentsClient.Page.
func (c *PaymentsClient) Page(ctx context.Context, params *mollie.QueryParams) (*mollie.Collection[*mollie.Payment], error) {
	return getPage(ctx, c.connector, mollie.NewListPaymentsRequest(query(params)), mollie.PaymentCollectionKind)
}

// Iterator implements mollie.PaymentsClient.Iterator.
func (c *PaymentsClient) Iterator(params *mollie.QueryParams, backwards bool) *mollie.LazyCollection[*mollie.Payment] {
	return iterate(c.connector, func() *mollie.Request {
		return mollie.NewListPaymentsRequest(query(params))
	}, mollie.PaymentCollectionKind, backwards)
}

// PaymentRefundsClient implements mollie.PaymentRefundsClient.
type PaymentRefundsClient struct {
	connector mollie.Connector
}

// NewPaymentRefundsClient creates a new payment refunds client.
func NewPaymentRefundsClient(connector mollie.Connector) *PaymentRefundsClient {
	return &PaymentRefundsClient{connector: connector}
}

// Create implements mollie.PaymentRefundsClient.Create.
func (c *PaymentRefundsClient) Create(ctx context.Context, paymentID string, body mollie.Payload) (*mollie.Refund, error) {
	err := mollie.GuardID(mollie.PaymentKind, paymentID)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewCreatePaymentRefundRequest(paymentID, body), mollie.RefundKind)
}

// Get implements mollie.PaymentRefundsClient.Get.
func (c *PaymentRefundsClient) Get(ctx context.Context, paymentID, refundID string, params *mollie.QueryParams) (*mollie.Refund, error) {
	err := guardPair(paymentID, refundID, mollie.RefundKind)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewGetPaymentRefundRequest(paymentID, refundID, query(params)), mollie.RefundKind)
}

// Cancel implements mollie.PaymentRefundsClient.Cancel.
func (c *PaymentRefundsClient) Cancel(ctx context.Context, paymentID, refundID string) error {
	err := guardPair(paymentID, refundID, mollie.RefundKind)
	if err != nil {
		return err
	}

	return send(ctx, c.connector, mollie.NewCancelPaymentRefundRequest(paymentID, refundID))
}

// Page implements mollie.PaymentRefundsClient.Page.
func (c *PaymentRefundsClient) Page(ctx context.Context, paymentID string, params *mollie.QueryParams) (*mollie.Collection[*mollie.Refund], error) {
	err := mollie.GuardID(mollie.PaymentKind, paymentID)
	if err != nil {
		return nil, err
	}

	return getPage(ctx, c.connector, mollie.NewListPaymentRefundsRequest(paymentID, query(params)), mollie.RefundCollectionKind)
}

// Iterator implements mollie.PaymentRefundsClient.Iterator.
func (c *PaymentRefundsClient) Iterator(paymentID string, params *mollie.QueryParams, backwards bool) *mollie.LazyCollection[*mollie.Refund] {
	return mollie.NewLazyCollection(func(ctx context.Context) (*mollie.Collection[*mollie.Refund], error) {
		return c.Page(ctx, paymentID, params)
	}, backwards)
}

func guardPair[T mollie.Resource](paymentID, childID string, child *mollie.ResourceKind[T]) error {
	err := mollie.GuardID(mollie.PaymentKind, paymentID)
	if err != nil {
		return err
	}

	return mollie.GuardID(child, childID)
}

// RefundsClient implements mollie.RefundsClient.
type RefundsClient struct {
	connector mollie.Connector
}

// NewRefundsClient creates a new refunds client.
func NewRefundsClient(connector mollie.Connector) *RefundsClient {
	return &RefundsClient{connector: connector}
}

// Page implements mollie.RefundsClient.Page.
func (c *RefundsClient) Page(ctx context.Context, params *mollie.QueryParams) (*mollie.Collection[*mollie.Refund], error) {
	return getPage(ctx, c.connector, mollie.NewListRefundsRequest(query(params)), mollie.RefundCollectionKind)
}

// Iterator implements mollie.RefundsClient.Iterator.
func (c *RefundsClient) Iterator(params *mollie.QueryParams, backwards bool) *mollie.LazyCollection[*mollie.Refund] {
	return iterate(c.connector, func() *mollie.Request {
		return mollie.NewListRefundsRequest(query(params))
	}, mollie.RefundCollectionKind, backwards)
}

// PaymentCapturesClient implements mollie.PaymentCapturesClient.
type PaymentCapturesClient struct {
	connector mollie.Connector
}

// NewPaymentCapturesClient creates a new payment captures client.
func NewPaymentCapturesClient(connector mollie.Connector) *PaymentCapturesClient {
	return &PaymentCapturesClient{connector: connector}
}

// Create implements mollie.PaymentCapturesClient.Create.
func (c *PaymentCapturesClient) Create(ctx context.Context, paymentID string, body mollie.Payload) (*mollie.Capture, error) {
	err := mollie.GuardID(mollie.PaymentKind, paymentID)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewCreatePaymentCaptureRequest(paymentID, body), mollie.CaptureKind)
}

// Get implements mollie.PaymentCapturesClient.Get.
func (c *PaymentCapturesClient) Get(ctx context.Context, paymentID, captureID string, params *mollie.QueryParams) (*mollie.Capture, error) {
	err := guardPair(paymentID, captureID, mollie.CaptureKind)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewGetPaymentCaptureRequest(paymentID, captureID, query(params)), mollie.CaptureKind)
}

// Page implements mollie.PaymentCapturesClient.Page.
func (c *PaymentCapturesClient) Page(ctx context.Context, paymentID string, params *mollie.QueryParams) (*mollie.Collection[*mollie.Capture], error) {
	err := mollie.GuardID(mollie.PaymentKind, paymentID)
	if err != nil {
		return nil, err
	}

	return getPage(ctx, c.connector, mollie.NewListPaymentCapturesRequest(paymentID, query(params)), mollie.CaptureCollectionKind)
}

// Iterator implements mollie.PaymentCapturesClient.Iterator.
func (c *PaymentCapturesClient) Iterator(paymentID string, params *mollie.QueryParams, backwards bool) *mollie.LazyCollection[*mollie.Capture] {
	return mollie.NewLazyCollection(func(ctx context.Context) (*mollie.Collection[*mollie.Capture], error) {
		return c.Page(ctx, paymentID, params)
	}, backwards)
}

// PaymentChargebacksClient implements mollie.PaymentChargebacksClient.
type PaymentChargebacksClient struct {
	connector mollie.Connector
}

// NewPaymentChargebacksClient creates a new payment chargebacks client.
func NewPaymentChargebacksClient(connector mollie.Connector) *PaymentChargebacksClient {
	return &PaymentChargebacksClient{connector: connector}
}

// Page implements mollie.PaymentChargebacksClient.Page.
func (c *PaymentChargebacksClient) Page(ctx context.Context, paymentID string, params *mollie.QueryParams) (*mollie.Collection[*mollie.Chargeback], error) {
	err := mollie.GuardID(mollie.PaymentKind, paymentID)
	if err != nil {
		return nil, err
	}

	return getPage(ctx, c.connector, mollie.NewListPaymentChargebacksRequest(paymentID, query(params)), mollie.ChargebackCollectionKind)
}

// Iterator implements mollie.PaymentChargebacksClient.Iterator.
func (c *PaymentChargebacksClient) Iterator(paymentID string, params *mollie.QueryParams, backwards bool) *mollie.LazyCollection[*mollie.Chargeback] {
	return mollie.NewLazyCollection(func(ctx context.Context) (*mollie.Collection[*mollie.Chargeback], error) {
		return c.Page(ctx, paymentID, params)
	}, backwards)
}
