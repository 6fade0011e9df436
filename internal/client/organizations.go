package client

import (
	"context"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

const (
	settlementNext = "next"
	settlementOpen = "open"
)

// SettlementsClient implements mollie.SettlementsClient.
type SettlementsClient struct {
	connector mollie.Connector
}

// NewSettlementsClient creates a new settlements client.
func NewSettlementsClient(connector mollie.Connector) *SettlementsClient {
	return &SettlementsClient{connector: connector}
}

func guardSettlement(id string) error {
	if id == settlementNext || id == settlementOpen {
		return nil
	}

	return mollie.GuardID(mollie.SettlementKind, id)
}

// Get implements mollie.SettlementsClient.Get.
func (c *SettlementsClient) Get(ctx context.Context, id string) (*mollie.Settlement, error) {
	err := guardSettlement(id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewGetSettlementRequest(id), mollie.SettlementKind)
}

// Next implements mollie.SettlementsClient.Next.
func (c *SettlementsClient) Next(ctx context.Context) (*mollie.Settlement, error) {
	return c.Get(ctx, settlementNext)
}

// Open implements mollie.SettlementsClient.Open.
func (c *SettlementsClient) Open(ctx context.Context) (*mollie.Settlement, error) {
	return c.Get(ctx, settlementOpen)
}

// Page implements mollie.SettlementsClient.Page.
func (c *SettlementsClient) Page(ctx context.Context, params *mollie.QueryParams) (*mollie.Collection[*mollie.Settlement], error) {
	return getPage(ctx, c.connector, mollie.NewListSettlementsRequest(query(params)), mollie.SettlementCollectionKind)
}

// Iterator implements mollie.SettlementsClient.Iterator.
func (c *SettlementsClient) Iterator(params *mollie.QueryParams, backwards bool) *mollie.LazyCollection[*mollie.Settlement] {
	return iterate(c.connector, func() *mollie.Request {
		return mollie.NewListSettlementsRequest(query(params))
	}, mollie.SettlementCollectionKind, backwards)
}

// Captures implements mollie.SettlementsClient.Captures.
func (c *SettlementsClient) Captures(ctx context.Context, settlementID string, params *mollie.QueryParams) (*mollie.Collection[*mollie.Capture], error) {
	err := guardSettlement(settlementID)
	if err != nil {
		return nil, err
	}

	return getPage(ctx, c.connector, mollie.NewListSettlementCapturesRequest(settlementID, query(params)), mollie.CaptureCollectionKind)
}

// CapturesIterator implements mollie.SettlementsClient.CapturesIterator.
func (c *SettlementsClient) CapturesIterator(settlementID string, params *mollie.QueryParams, backwards bool) *mollie.LazyCollection[*mollie.Capture] {
	return mollie.NewLazyCollection(func(ctx context.Context) (*mollie.Collection[*mollie.Capture], error) {
		return c.Captures(ctx, settlementID, params)
	}, backwards)
}

// PermissionsClient implements mollie.PermissionsClient.
type PermissionsClient struct {
	connector mollie.Connector
}

// NewPermissionsClient creates a new permissions client.
func NewPermissionsClient(connector mollie.Connector) *PermissionsClient {
	return &PermissionsClient{connector: connector}
}

// Get implements mollie.PermissionsClient.Get.
func (c *PermissionsClient) Get(ctx context.Context, id string) (*mollie.Permission, error) {
	err := mollie.GuardID(mollie.PermissionKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewGetPermissionRequest(id), mollie.PermissionKind)
}

// List implements mollie.PermissionsClient.List.
func (c *PermissionsClient) List(ctx context.Context) (*mollie.Collection[*mollie.Permission], error) {
	return getPage(ctx, c.connector, mollie.NewListPermissionsRequest(), mollie.PermissionCollectionKind)
}

// SalesInvoicesClient implements mollie.SalesInvoicesClient.
type SalesInvoicesClient struct {
	connector mollie.Connector
}

// NewSalesInvoicesClient creates a new sales invoices client.
func NewSalesInvoicesClient(connector mollie.Connector) *SalesInvoicesClient {
	return &SalesInvoicesClient{connector: connector}
}

// Create implements mollie.SalesInvoicesClient.Create.
func (c *SalesInvoicesClient) Create(ctx context.Context, body mollie.Payload) (*mollie.SalesInvoice, error) {
	return getOne(ctx, c.connector, mollie.NewCreateSalesInvoiceRequest(body), mollie.SalesInvoiceKind)
}

// Get implements mollie.SalesInvoicesClient.Get.
func (c *SalesInvoicesClient) Get(ctx context.Context, id string, params *mollie.QueryParams) (*mollie.SalesInvoice, error) {
	err := mollie.GuardID(mollie.SalesInvoiceKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewGetSalesInvoiceRequest(id, query(params)), mollie.SalesInvoiceKind)
}

// Update implements mollie.SalesInvoicesClient.Update.
func (c *SalesInvoicesClient) Update(ctx context.Context, id string, body mollie.Payload) (*mollie.SalesInvoice, error) {
	err := mollie.GuardID(mollie.SalesInvoiceKind, id)
	if err != nil {
		return nil, err
	}

	return getOne(ctx, c.connector, mollie.NewUpdateSalesInvoiceRequest(id, body), mollie.SalesInvoiceKind)
}

// Delete implements mollie.SalesInvoicesClient.Delete.
func (c *SalesInvoicesClient) Delete(ctx context.Context, id string) error {
	err := mollie.GuardID(mollie.SalesInvoiceKind, id)
	if err != nil {
		return err
	}

	return send(ctx, c.connector, mollie.NewDeleteSalesInvoiceRequest(id))
}

// Page implements mollie.SalesInvoicesClient.Page.
func (c *SalesInvoicesClient) Page(ctx context.Context, params *mollie.QueryParams) (*mollie.Collection[*mollie.SalesInvoice], error) {
	return getPage(ctx, c.connector, mollie.NewListSalesInvoicesRequest(query(params)), mollie.SalesInvoiceCollectionKind)
}

// Iterator implements mollie.SalesInvoicesClient.Iterator.
func (c *SalesInvoicesClient) Iterator(params *mollie.QueryParams, backwards bool) *mollie.LazyCollection[*mollie.SalesInvoice] {
	return iterate(c.connector, func() *mollie.Request {
		return mollie.NewListSalesInvoicesRequest(query(params))
	}, mollie.SalesInvoiceCollectionKind, backwards)
}

// OrganizationPartnersClient implements mollie.OrganizationPartnersClient.
type OrganizationPartnersClient struct {
	connector mollie.Connector
}

// NewOrganizationPartnersClient creates a new organization partners client.
func NewOrganizationPartnersClient(connector mollie.Connector) *OrganizationPartnersClient {
	return &OrganizationPartnersClient{connector: connector}
}

// Status implements mollie.OrganizationPartnersClient.Status.
func (c *OrganizationPartnersClient) Status(ctx context.Context) (*mollie.Partner, error) {
	return getOne(ctx, c.connector, mollie.NewGetOrganizationPartnerStatusRequest(), mollie.PartnerKind)
}
