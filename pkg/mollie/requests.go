package mollie

import (
	"net/url"
	"strings"
)

// path joins escaped segments into a relative resource path.
func path(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, segment := range segments {
		escaped[i] = url.PathEscape(segment)
	}

	return strings.Join(escaped, "/")
}

// Payments

// NewCreatePaymentRequest creates a POST payments request.
func NewCreatePaymentRequest(body Payload, query url.Values) *Request {
	return NewRequest(MethodPost, "payments", body, query, PaymentKind)
}

// NewGetPaymentRequest creates a GET payments/{id} request.
func NewGetPaymentRequest(id string, query url.Values) *Request {
	return NewRequest(MethodGet, path("payments", id), nil, query, PaymentKind)
}

// NewUpdatePaymentRequest creates a PATCH payments/{id} request.
func NewUpdatePaymentRequest(id string, body Payload) *Request {
	return NewRequest(MethodPatch, path("payments", id), body, nil, PaymentKind)
}

// NewCancelPaymentRequest creates a DELETE payments/{id} request.
func NewCancelPaymentRequest(id string, body Payload) *Request {
	return NewRequest(MethodDelete, path("payments", id), body, nil, PaymentKind)
}

// NewListPaymentsRequest creates a GET payments request.
func NewListPaymentsRequest(query url.Values) *Request {
	return NewRequest(MethodGet, "payments", nil, query, PaymentCollectionKind)
}

// Refunds

// NewCreatePaymentRefundRequest creates a POST payments/{id}/refunds request.
func NewCreatePaymentRefundRequest(paymentID string, body Payload) *Request {
	return NewRequest(MethodPost, path("payments", paymentID, "refunds"), body, nil, RefundKind)
}

// NewGetPaymentRefundRequest creates a GET payments/{id}/refunds/{id} request.
func NewGetPaymentRefundRequest(paymentID, refundID string, query url.Values) *Request {
	return NewRequest(MethodGet, path("payments", paymentID, "refunds", refundID), nil, query, RefundKind)
}

// NewCancelPaymentRefundRequest creates a DELETE payments/{id}/refunds/{id} request.
func NewCancelPaymentRefundRequest(paymentID, refundID string) *Request {
	return NewRequest(MethodDelete, path("payments", paymentID, "refunds", refundID), nil, nil, RefundKind)
}

// NewListPaymentRefundsRequest creates a GET payments/{id}/refunds request.
func NewListPaymentRefundsRequest(paymentID string, query url.Values) *Request {
	return NewRequest(MethodGet, path("payments", paymentID, "refunds"), nil, query, RefundCollectionKind)
}

// NewListRefundsRequest creates a GET refunds request.
func NewListRefundsRequest(query url.Values) *Request {
	return NewRequest(MethodGet, "refunds", nil, query, RefundCollectionKind)
}

// Captures

// NewCreatePaymentCaptureRequest creates a POST payments/{id}/captures request.
func NewCreatePaymentCaptureRequest(paymentID string, body Payload) *Request {
	return NewRequest(MethodPost, path("payments", paymentID, "captures"), body, nil, CaptureKind)
}

// NewGetPaymentCaptureRequest creates a GET payments/{id}/captures/{id} request.
func NewGetPaymentCaptureRequest(paymentID, captureID string, query url.Values) *Request {
	return NewRequest(MethodGet, path("payments", paymentID, "captures", captureID), nil, query, CaptureKind)
}

// NewListPaymentCapturesRequest creates a GET payments/{id}/captures request.
func NewListPaymentCapturesRequest(paymentID string, query url.Values) *Request {
	return NewRequest(MethodGet, path("payments", paymentID, "captures"), nil, query, CaptureCollectionKind)
}

// NewListPaymentChargebacksRequest creates a GET payments/{id}/chargebacks request.
func NewListPaymentChargebacksRequest(paymentID string, query url.Values) *Request {
	return NewRequest(MethodGet, path("payments", paymentID, "chargebacks"), nil, query, ChargebackCollectionKind)
}

// Orders

// NewCreateOrderRequest creates a POST orders request.
func NewCreateOrderRequest(body Payload, query url.Values) *Request {
	return NewRequest(MethodPost, "orders", body, query, OrderKind)
}

// NewGetOrderRequest creates a GET orders/{id} request.
func NewGetOrderRequest(id string, query url.Values) *Request {
	return NewRequest(MethodGet, path("orders", id), nil, query, OrderKind)
}

// NewUpdateOrderRequest creates a PATCH orders/{id} request.
func NewUpdateOrderRequest(id string, body Payload) *Request {
	return NewRequest(MethodPatch, path("orders", id), body, nil, OrderKind)
}

// NewCancelOrderRequest creates a DELETE orders/{id} request.
func NewCancelOrderRequest(id string) *Request {
	return NewRequest(MethodDelete, path("orders", id), nil, nil, OrderKind)
}

// NewListOrdersRequest creates a GET orders request.
func NewListOrdersRequest(query url.Values) *Request {
	return NewRequest(MethodGet, "orders", nil, query, OrderCollectionKind)
}

// NewUpdateOrderLineRequest creates a PATCH orders/{id}/lines/{id} request.
// The API answers with the whole order.
func NewUpdateOrderLineRequest(orderID, lineID string, body Payload) *Request {
	return NewRequest(MethodPatch, path("orders", orderID, "lines", lineID), body, nil, OrderKind)
}

// NewUpdateOrderLinesRequest creates a PATCH orders/{id}/lines request
// carrying a list of operations.
func NewUpdateOrderLinesRequest(orderID string, operations []interface{}) *Request {
	return NewRequest(MethodPatch, path("orders", orderID, "lines"), Payload{"operations": operations}, nil, OrderKind)
}

// NewCancelOrderLinesRequest creates a DELETE orders/{id}/lines request.
func NewCancelOrderLinesRequest(orderID string, body Payload) *Request {
	return NewRequest(MethodDelete, path("orders", orderID, "lines"), body, nil, nil)
}

// Shipments

// NewCreateShipmentRequest creates a POST orders/{id}/shipments request.
func NewCreateShipmentRequest(orderID string, body Payload) *Request {
	return NewRequest(MethodPost, path("orders", orderID, "shipments"), body, nil, ShipmentKind)
}

// NewGetShipmentRequest creates a GET orders/{id}/shipments/{id} request.
func NewGetShipmentRequest(orderID, shipmentID string, query url.Values) *Request {
	return NewRequest(MethodGet, path("orders", orderID, "shipments", shipmentID), nil, query, ShipmentKind)
}

// NewUpdateShipmentRequest creates a PATCH orders/{id}/shipments/{id} request.
func NewUpdateShipmentRequest(orderID, shipmentID string, body Payload) *Request {
	return NewRequest(MethodPatch, path("orders", orderID, "shipments", shipmentID), body, nil, ShipmentKind)
}

// NewListShipmentsRequest creates a GET orders/{id}/shipments request.
func NewListShipmentsRequest(orderID string, query url.Values) *Request {
	return NewRequest(MethodGet, path("orders", orderID, "shipments"), nil, query, ShipmentCollectionKind)
}

// Customers

// NewCreateCustomerRequest creates a POST customers request.
func NewCreateCustomerRequest(body Payload) *Request {
	return NewRequest(MethodPost, "customers", body, nil, CustomerKind)
}

// NewGetCustomerRequest creates a GET customers/{id} request.
func NewGetCustomerRequest(id string, query url.Values) *Request {
	return NewRequest(MethodGet, path("customers", id), nil, query, CustomerKind)
}

// NewUpdateCustomerRequest creates a PATCH customers/{id} request.
func NewUpdateCustomerRequest(id string, body Payload) *Request {
	return NewRequest(MethodPatch, path("customers", id), body, nil, CustomerKind)
}

// NewDeleteCustomerRequest creates a DELETE customers/{id} request.
func NewDeleteCustomerRequest(id string) *Request {
	return NewRequest(MethodDelete, path("customers", id), nil, nil, nil)
}

// NewListCustomersRequest creates a GET customers request.
func NewListCustomersRequest(query url.Values) *Request {
	return NewRequest(MethodGet, "customers", nil, query, CustomerCollectionKind)
}

// Subscriptions

// NewCreateSubscriptionRequest creates a POST customers/{id}/subscriptions request.
func NewCreateSubscriptionRequest(customerID string, body Payload) *Request {
	return NewRequest(MethodPost, path("customers", customerID, "subscriptions"), body, nil, SubscriptionKind)
}

// NewGetSubscriptionRequest creates a GET customers/{id}/subscriptions/{id} request.
func NewGetSubscriptionRequest(customerID, subscriptionID string, query url.Values) *Request {
	return NewRequest(MethodGet, path("customers", customerID, "subscriptions", subscriptionID), nil, query, SubscriptionKind)
}

// NewUpdateSubscriptionRequest creates a PATCH customers/{id}/subscriptions/{id} request.
func NewUpdateSubscriptionRequest(customerID, subscriptionID string, body Payload) *Request {
	return NewRequest(MethodPatch, path("customers", customerID, "subscriptions", subscriptionID), body, nil, SubscriptionKind)
}

// NewCancelSubscriptionRequest creates a DELETE customers/{id}/subscriptions/{id} request.
func NewCancelSubscriptionRequest(customerID, subscriptionID string) *Request {
	return NewRequest(MethodDelete, path("customers", customerID, "subscriptions", subscriptionID), nil, nil, SubscriptionKind)
}

// NewListCustomerSubscriptionsRequest creates a GET customers/{id}/subscriptions request.
func NewListCustomerSubscriptionsRequest(customerID string, query url.Values) *Request {
	return NewRequest(MethodGet, path("customers", customerID, "subscriptions"), nil, query, SubscriptionCollectionKind)
}

// NewListSubscriptionsRequest creates a GET subscriptions request spanning all customers.
func NewListSubscriptionsRequest(query url.Values) *Request {
	return NewRequest(MethodGet, "subscriptions", nil, query, SubscriptionCollectionKind)
}

// Sessions

// NewCreateSessionRequest creates a POST sessions request.
func NewCreateSessionRequest(body Payload, query url.Values) *Request {
	return NewRequest(MethodPost, "sessions", body, query, SessionKind)
}

// NewGetSessionRequest creates a GET sessions/{id} request.
func NewGetSessionRequest(id string, query url.Values) *Request {
	return NewRequest(MethodGet, path("sessions", id), nil, query, SessionKind)
}

// NewUpdateSessionRequest creates a PUT sessions/{id} request.
func NewUpdateSessionRequest(id string, body Payload) *Request {
	return NewRequest(MethodPut, path("sessions", id), body, nil, SessionKind)
}

// NewCancelSessionRequest creates a DELETE sessions/{id} request.
func NewCancelSessionRequest(id string) *Request {
	return NewRequest(MethodDelete, path("sessions", id), nil, nil, nil)
}

// NewListSessionsRequest creates a GET sessions request.
func NewListSessionsRequest(query url.Values) *Request {
	return NewRequest(MethodGet, "sessions", nil, query, SessionCollectionKind)
}

// Settlements

// NewGetSettlementRequest creates a GET settlements/{id} request. id may be
// "next" or "open".
func NewGetSettlementRequest(id string) *Request {
	return NewRequest(MethodGet, path("settlements", id), nil, nil, SettlementKind)
}

// NewListSettlementsRequest creates a GET settlements request.
func NewListSettlementsRequest(query url.Values) *Request {
	return NewRequest(MethodGet, "settlements", nil, query, SettlementCollectionKind)
}

// NewListSettlementCapturesRequest creates a GET settlements/{id}/captures request.
func NewListSettlementCapturesRequest(settlementID string, query url.Values) *Request {
	return NewRequest(MethodGet, path("settlements", settlementID, "captures"), nil, query, CaptureCollectionKind)
}

// Payment links

// NewCreatePaymentLinkRequest creates a POST payment-links request.
func NewCreatePaymentLinkRequest(body Payload) *Request {
	return NewRequest(MethodPost, "payment-links", body, nil, PaymentLinkKind)
}

// NewGetPaymentLinkRequest creates a GET payment-links/{id} request.
func NewGetPaymentLinkRequest(id string) *Request {
	return NewRequest(MethodGet, path("payment-links", id), nil, nil, PaymentLinkKind)
}

// NewUpdatePaymentLinkRequest creates a PATCH payment-links/{id} request.
func NewUpdatePaymentLinkRequest(id string, body Payload) *Request {
	return NewRequest(MethodPatch, path("payment-links", id), body, nil, PaymentLinkKind)
}

// NewDeletePaymentLinkRequest creates a DELETE payment-links/{id} request.
func NewDeletePaymentLinkRequest(id string) *Request {
	return NewRequest(MethodDelete, path("payment-links", id), nil, nil, nil)
}

// NewListPaymentLinksRequest creates a GET payment-links request.
func NewListPaymentLinksRequest(query url.Values) *Request {
	return NewRequest(MethodGet, "payment-links", nil, query, PaymentLinkCollectionKind)
}

// NewListPaymentLinkPaymentsRequest creates a GET payment-links/{id}/payments request.
func NewListPaymentLinkPaymentsRequest(paymentLinkID string, query url.Values) *Request {
	return NewRequest(MethodGet, path("payment-links", paymentLinkID, "payments"), nil, query, PaymentCollectionKind)
}

// Methods

// NewGetMethodRequest creates a GET methods/{id} request.
func NewGetMethodRequest(id string, query url.Values) *Request {
	return NewRequest(MethodGet, path("methods", id), nil, query, MethodKind)
}

// NewListEnabledMethodsRequest creates a GET methods request.
func NewListEnabledMethodsRequest(query url.Values) *Request {
	return NewRequest(MethodGet, "methods", nil, query, MethodCollectionKind)
}

// NewListAllMethodsRequest creates a GET methods/all request.
func NewListAllMethodsRequest(query url.Values) *Request {
	return NewRequest(MethodGet, "methods/all", nil, query, MethodCollectionKind)
}

// Permissions

// NewGetPermissionRequest creates a GET permissions/{id} request.
func NewGetPermissionRequest(id string) *Request {
	return NewRequest(MethodGet, path("permissions", id), nil, nil, PermissionKind)
}

// NewListPermissionsRequest creates a GET permissions request.
func NewListPermissionsRequest() *Request {
	return NewRequest(MethodGet, "permissions", nil, nil, PermissionCollectionKind)
}

// Sales invoices

// NewCreateSalesInvoiceRequest creates a POST sales-invoices request.
func NewCreateSalesInvoiceRequest(body Payload) *Request {
	return NewRequest(MethodPost, "sales-invoices", body, nil, SalesInvoiceKind)
}

// NewGetSalesInvoiceRequest creates a GET sales-invoices/{id} request.
func NewGetSalesInvoiceRequest(id string, query url.Values) *Request {
	return NewRequest(MethodGet, path("sales-invoices", id), nil, query, SalesInvoiceKind)
}

// NewUpdateSalesInvoiceRequest creates a PATCH sales-invoices/{id} request.
func NewUpdateSalesInvoiceRequest(id string, body Payload) *Request {
	return NewRequest(MethodPatch, path("sales-invoices", id), body, nil, SalesInvoiceKind)
}

// NewDeleteSalesInvoiceRequest creates a DELETE sales-invoices/{id} request.
func NewDeleteSalesInvoiceRequest(id string) *Request {
	return NewRequest(MethodDelete, path("sales-invoices", id), nil, nil, nil)
}

// NewListSalesInvoicesRequest creates a GET sales-invoices request.
func NewListSalesInvoicesRequest(query url.Values) *Request {
	return NewRequest(MethodGet, "sales-invoices", nil, query, SalesInvoiceCollectionKind)
}

// Wallets and organizations

// NewApplePayPaymentSessionRequest creates a POST wallets/applepay/sessions
// request. The merchant session has no fixed schema.
func NewApplePayPaymentSessionRequest(domain, validationURL string, body Payload) *Request {
	payload := Payload{}
	for key, value := range body {
		payload[key] = value
	}

	payload["domain"] = domain
	payload["validationUrl"] = validationURL

	return NewRequest(MethodPost, "wallets/applepay/sessions", payload, nil, AnyResourceKind)
}

// NewGetOrganizationPartnerStatusRequest creates a GET organizations/me/partner request.
func NewGetOrganizationPartnerStatusRequest() *Request {
	return NewRequest(MethodGet, "organizations/me/partner", nil, nil, PartnerKind)
}
