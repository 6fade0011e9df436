package client

import (
	"context"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// CustomersClient implements mollie.CustomersClient.
type CustomersClient struct {
	connector mollie.Connector
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(connector mollie.Connector) *CustomersClient {
	return &CustomersClient{connector: connector}
}

// Create implements mollie.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, body mollie.Payload) (*mollie.Customer, error) {
	return getOne(ctx, c.connector, mollie.NewCreateCustomerRequest(body), mollie.CustomerKind)
}

// Get implements mollie.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, id string, params *mollie.QueryParams) (*mollie.Customer, error) {
	err := mollie.GuardID(mollie.CustomerKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewGetCustomerRequest(id, query(params)), mollie.CustomerKind)
}

// Update implements mollie.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, id string, body mollie.Payload) (*mollie.Customer, error) {
	err := mollie.GuardID(mollie.CustomerKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewUpdateCustomerRequest(id, body), mollie.CustomerKind)
}

// Delete implements mollie.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, id string) error {
	err := mollie.GuardID(mollie.CustomerKind, id)
	if err != nil {
		return err
	}

	return send(ctx, c.connector, mollie.NewDeleteCustomerRequest(id))
}

// Page implements mollie.CustomersClient.Page.
func (c *CustomersClient) Page(ctx context.Context, params *mollie.QueryParams) (*mollie.Collection[*mollie.Customer], error) {
	return getPage(ctx, c.connector, mollie.NewListCustomersRequest(query(params)), mollie.CustomerCollectionKind)
}

// Iterator implements mollie.CustomersClient.Iterator.
func (c *CustomersClient) Iterator(params *mollie.QueryParams, backwards bool) *mollie.LazyCollection[*mollie.Customer] {
	return iterate(c.connector, func() *mollie.Request {
		return mollie.NewListCustomersRequest(query(params))
	}, mollie.CustomerCollectionKind, backwards)
}

// SubscriptionsClient implements mollie.SubscriptionsClient.
type SubscriptionsClient struct {
	connector mollie.Connector
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(connector mollie.Connector) *SubscriptionsClient {
	return &SubscriptionsClient{connector: connector}
}

// Create implements mollie.SubscriptionsClient.Create.
func (c *SubscriptionsClient) Create(ctx context.Context, customerID string, body mollie.Payload) (*mollie.Subscription, error) {
	err := mollie.GuardID(mollie.CustomerKind, customerID)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewCreateSubscriptionRequest(customerID, body), mollie.SubscriptionKind)
}

// Get implements mollie.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, customerID, subscriptionID string, params *mollie.QueryParams) (*mollie.Subscription, error) {
	err := c.guard(customerID, subscriptionID)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewGetSubscriptionRequest(customerID, subscriptionID, query(params)), mollie.SubscriptionKind)
}

// Update implements mollie.SubscriptionsClient.Update.
func (c *SubscriptionsClient) Update(ctx context.Context, customerID, subscriptionID string, body mollie.Payload) (*mollie.Subscription, error) {
	err := c.guard(customerID, subscriptionID)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewUpdateSubscriptionRequest(customerID, subscriptionID, body), mollie.SubscriptionKind)
}

// Cancel implements mollie.SubscriptionsClient.Cancel. The API answers with
// the canceled subscription.
func (c *SubscriptionsClient) Cancel(ctx context.Context, customerID, subscriptionID string) (*mollie.Subscription, error) {
	err := c.guard(customerID, subscriptionID)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewCancelSubscriptionRequest(customerID, subscriptionID), mollie.SubscriptionKind)
}

// Page implements mollie.SubscriptionsClient.Page.
func (c *SubscriptionsClient) Page(ctx context.Context, customerID string, params *mollie.QueryParams) (*mollie.Collection[*mollie.Subscription], error) {
	err := mollie.GuardID(mollie.CustomerKind, customerID)
	if err != nil {
		return nil, err
	}

	return getPage(ctx, c.connector, mollie.NewListCustomerSubscriptionsRequest(customerID, query(params)), mollie.SubscriptionCollectionKind)
}

// Iterator implements mollie.SubscriptionsClient.Iterator.
func (c *SubscriptionsClient) Iterator(customerID string, params *mollie.QueryParams, backwards bool) *mollie.LazyCollection[*mollie.Subscription] {
	return mollie.NewLazyCollection(func(ctx context.Context) (*mollie.Collection[*mollie.Subscription], error) {
		return c.Page(ctx, customerID, params)
	}, backwards)
}

// All implements mollie.SubscriptionsClient.All.
func (c *SubscriptionsClient) All(ctx context.Context, params *mollie.QueryParams) (*mollie.Collection[*mollie.Subscription], error) {
	return getPage(ctx, c.connector, mollie.NewListSubscriptionsRequest(query(params)), mollie.SubscriptionCollectionKind)
}

// AllIterator implements mollie.SubscriptionsClient.AllIterator.
func (c *SubscriptionsClient) AllIterator(params *mollie.QueryParams, backwards bool) *mollie.LazyCollection[*mollie.Subscription] {
	return iterate(c.connector, func() *mollie.Request {
		return mollie.NewListSubscriptionsRequest(query(params))
	}, mollie.SubscriptionCollectionKind, backwards)
}

func (c *SubscriptionsClient) guard(customerID, subscriptionID string) error {
	err := mollie.GuardID(mollie.CustomerKind, customerID)
	if err != nil {
		return err
	}

	return mollie.GuardID(mollie.SubscriptionKind, subscriptionID)
}

// SessionsClient implements mollie.SessionsClient.
type SessionsClient struct {
	connector mollie.Connector
}

// NewSessionsClient creates a new sessions client.
func NewSessionsClient(connector mollie.Connector) *SessionsClient {
	return &SessionsClient{connector: connector}
}

// Create implements mollie.SessionsClient.Create.
func (c *SessionsClient) Create(ctx context.Context, body mollie.Payload, params *mollie.QueryParams) (*mollie.Session, error) {
	return getOne(ctx, c.connector, mollie.NewCreateSessionRequest(body, query(params)), mollie.SessionKind)
}

// Get implements mollie.SessionsClient.Get.
func (c *SessionsClient) Get(ctx context.Context, id string, params *mollie.QueryParams) (*mollie.Session, error) {
	err := mollie.GuardID(mollie.SessionKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewGetSessionRequest(id, query(params)), mollie.SessionKind)
}

// Update implements mollie.SessionsClient.Update.
func (c *SessionsClient) Update(ctx context.Context, id string, body mollie.Payload) (*mollie.Session, error) {
	err := mollie.GuardID(mollie.SessionKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewUpdateSessionRequest(id, body), mollie.SessionKind)
}

// Cancel implements mollie.SessionsClient.Cancel.
func (c *SessionsClient) Cancel(ctx context.Context, id string) error {
	err := mollie.GuardID(mollie.SessionKind, id)
	if err != nil {
		return err
	}

	return send(ctx, c.connector, mollie.NewCancelSessionRequest(id))
}

// Page implements mollie.SessionsClient.Page.
func (c *SessionsClient) Page(ctx context.Context, params *mollie.QueryParams) (*mollie.Collection[*mollie.Session], error) {
	return getPage(ctx, c.connector, mollie.NewListSessionsRequest(query(params)), mollie.SessionCollectionKind)
}

// Iterator implements mollie.SessionsClient.Iterator.
func (c *SessionsClient) Iterator(params *mollie.QueryParams, backwards bool) *mollie.LazyCollection[*mollie.Session] {
	return iterate(c.connector, func() *mollie.Request {
		return mollie.NewListSessionsRequest(query(params))
	}, mollie.SessionCollectionKind, backwards)
}
