package client

import (
	"context"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// OrdersClient implements mollie.OrdersClient.
type OrdersClient struct {
	connector mollie.Connector
}

// NewOrdersClient creates a new orders client.
func NewOrdersClient(connector mollie.Connector) *OrdersClient {
	return &OrdersClient{connector: connector}
}

// Create implements mollie.OrdersClient.Create. Use params.WithEmbed to get
// payments embedded in the answer.
func (c *OrdersClient) Create(ctx context.Context, body mollie.Payload, params *mollie.QueryParams) (*mollie.Order, error) {
	return getOne(ctx, c.connector, mollie.NewCreateOrderRequest(body, query(params)), mollie.OrderKind)
}

// Get implements mollie.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, id string, params *mollie.QueryParams) (*mollie.Order, error) {
	err := mollie.GuardID(mollie.OrderKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewGetOrderRequest(id, query(params)), mollie.OrderKind)
}

// Update implements mollie.OrdersClient.Update.
func (c *OrdersClient) Update(ctx context.Context, id string, body mollie.Payload) (*mollie.Order, error) {
	err := mollie.GuardID(mollie.OrderKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewUpdateOrderRequest(id, body), mollie.OrderKind)
}

// Cancel implements mollie.OrdersClient.Cancel.
func (c *OrdersClient) Cancel(ctx context.Context, id string) (*mollie.Order, error) {
	err := mollie.GuardID(mollie.OrderKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewCancelOrderRequest(id), mollie.OrderKind)
}

// Page implements mollie.OrdersClient.Page.
func (c *OrdersClient) Page(ctx context.Context, params *mollie.QueryParams) (*mollie.Collection[*mollie.Order], error) {
	return getPage(ctx, c.connector, mollie.NewListOrdersRequest(query(params)), mollie.OrderCollectionKind)
}

// Iterator implements mollie.OrdersClient.Iterator.
func (c *OrdersClient) Iterator(params *mollie.QueryParams, backwards bool) *mollie.LazyCollection[*mollie.Order] {
	return iterate(c.connector, func() *mollie.Request {
		return mollie.NewListOrdersRequest(query(params))
	}, mollie.OrderCollectionKind, backwards)
}

// OrderLinesClient implements mollie.OrderLinesClient.
type OrderLinesClient struct {
	connector mollie.Connector
}

// NewOrderLinesClient creates a new order lines client.
func NewOrderLinesClient(connector mollie.Connector) *OrderLinesClient {
	return &OrderLinesClient{connector: connector}
}

// Update implements mollie.OrderLinesClient.Update. The API answers with the
// whole order.
func (c *OrderLinesClient) Update(ctx context.Context, orderID, lineID string, body mollie.Payload) (*mollie.Order, error) {
	err := mollie.GuardID(mollie.OrderKind, orderID)
	if err != nil {
		return nil, err
	}

	err = mollie.GuardID(mollie.OrderLineKind, lineID)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewUpdateOrderLineRequest(orderID, lineID, body), mollie.OrderKind)
}

// UpdateMultiple implements mollie.OrderLinesClient.UpdateMultiple.
func (c *OrderLinesClient) UpdateMultiple(ctx context.Context, orderID string, operations []interface{}) (*mollie.Order, error) {
	err := mollie.GuardID(mollie.OrderKind, orderID)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewUpdateOrderLinesRequest(orderID, operations), mollie.OrderKind)
}

// Cancel implements mollie.OrderLinesClient.Cancel. body must carry a lines
// array; to cancel everything use mollie.Order.CancelAllLines.
func (c *OrderLinesClient) Cancel(ctx context.Context, orderID string, body mollie.Payload) error {
	err := mollie.GuardID(mollie.OrderKind, orderID)
	if err != nil {
		return err
	}

	err = mollie.RequireLines(body)
	if err != nil {
		return err
	}

	return send(ctx, c.connector, mollie.NewCancelOrderLinesRequest(orderID, body))
}

// ShipmentsClient implements mollie.ShipmentsClient.
type ShipmentsClient struct {
	connector mollie.Connector
}

// NewShipmentsClient creates a new shipments client.
func NewShipmentsClient(connector mollie.Connector) *ShipmentsClient {
	return &ShipmentsClient{connector: connector}
}

// Create implements mollie.ShipmentsClient.Create.
func (c *ShipmentsClient) Create(ctx context.Context, orderID string, body mollie.Payload) (*mollie.Shipment, error) {
	err := mollie.GuardID(mollie.OrderKind, orderID)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewCreateShipmentRequest(orderID, body), mollie.ShipmentKind)
}

// Get implements mollie.ShipmentsClient.Get.
func (c *ShipmentsClient) Get(ctx context.Context, orderID, shipmentID string, params *mollie.QueryParams) (*mollie.Shipment, error) {
	err := c.guard(orderID, shipmentID)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewGetShipmentRequest(orderID, shipmentID, query(params)), mollie.ShipmentKind)
}

// Update implements mollie.ShipmentsClient.Update.
func (c *ShipmentsClient) Update(ctx context.Context, orderID, shipmentID string, body mollie.Payload) (*mollie.Shipment, error) {
	err := c.guard(orderID, shipmentID)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewUpdateShipmentRequest(orderID, shipmentID, body), mollie.ShipmentKind)
}

// List implements mollie.ShipmentsClient.List. The API returns every
// shipment of an order on one page.
func (c *ShipmentsClient) List(ctx context.Context, orderID string, params *mollie.QueryParams) (*mollie.Collection[*mollie.Shipment], error) {
	err := mollie.GuardID(mollie.OrderKind, orderID)
	if err != nil {
		return nil, err
	}

	return getPage(ctx, c.connector, mollie.NewListShipmentsRequest(orderID, query(params)), mollie.ShipmentCollectionKind)
}

func (c *ShipmentsClient) guard(orderID, shipmentID string) error {
	err := mollie.GuardID(mollie.OrderKind, orderID)
	if err != nil {
		return err
	}

	return mollie.GuardID(mollie.ShipmentKind, shipmentID)
}
