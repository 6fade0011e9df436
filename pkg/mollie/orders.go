package mollie

import (
	"context"
	"fmt"
	"time"
)

// Order statuses.
const (
	OrderStatusCreated    = "created"
	OrderStatusPaid       = "paid"
	OrderStatusAuthorized = "authorized"
	OrderStatusCanceled   = "canceled"
	OrderStatusShipping   = "shipping"
	OrderStatusCompleted  = "completed"
	OrderStatusExpired    = "expired"
	OrderStatusPending    = "pending"
)

// Order kinds.
var (
	OrderKind     = NewResourceKind("Order", "ord_", func() *Order { return &Order{} })
	OrderLineKind = NewResourceKind("OrderLine", "odl_", func() *OrderLine { return &OrderLine{} })
	ShipmentKind  = NewResourceKind("Shipment", "shp_", func() *Shipment { return &Shipment{} })

	OrderCollectionKind     = RegisterCollection(CollectionOf(OrderKind, "orders"))
	OrderLineCollectionKind = RegisterCollection(CollectionOf(OrderLineKind, "lines"))
	ShipmentCollectionKind  = RegisterCollection(CollectionOf(ShipmentKind, "shipments"))
)

// Order represents an order.
type Order struct {
	BaseResource `yaml:",inline"`

	Resource            string        `json:"resource"            yaml:"resource"`
	ID                  string        `json:"id"                  yaml:"id"`
	ProfileID           string        `json:"profileId"           yaml:"profile_id"`
	Mode                string        `json:"mode"                yaml:"mode"`
	Status              string        `json:"status"              yaml:"status"`
	IsCancelable        bool          `json:"isCancelable"        yaml:"is_cancelable"`
	Amount              *Money        `json:"amount"              yaml:"amount"`
	AmountCaptured      *Money        `json:"amountCaptured"      yaml:"amount_captured,omitempty"`
	AmountRefunded      *Money        `json:"amountRefunded"      yaml:"amount_refunded,omitempty"`
	OrderNumber         string        `json:"orderNumber"         yaml:"order_number"`
	BillingAddress      *Address      `json:"billingAddress"      yaml:"billing_address,omitempty"`
	ShippingAddress     *Address      `json:"shippingAddress"     yaml:"shipping_address,omitempty"`
	ConsumerDateOfBirth string        `json:"consumerDateOfBirth" yaml:"consumer_date_of_birth,omitempty"`
	Method              string        `json:"method"              yaml:"method,omitempty"`
	Locale              string        `json:"locale"              yaml:"locale"`
	Metadata            interface{}   `json:"metadata"            yaml:"metadata,omitempty"`
	RedirectURL         string        `json:"redirectUrl"         yaml:"redirect_url,omitempty"`
	CancelURL           string        `json:"cancelUrl"           yaml:"cancel_url,omitempty"`
	WebhookURL          string        `json:"webhookUrl"          yaml:"webhook_url,omitempty"`
	Lines               []interface{} `json:"lines"               yaml:"lines,omitempty"`
	CreatedAt           *time.Time    `json:"createdAt"           yaml:"created_at"`
	ExpiresAt           *time.Time    `json:"expiresAt"           yaml:"expires_at,omitempty"`
	ExpiredAt           *time.Time    `json:"expiredAt"           yaml:"expired_at,omitempty"`
	PaidAt              *time.Time    `json:"paidAt"              yaml:"paid_at,omitempty"`
	AuthorizedAt        *time.Time    `json:"authorizedAt"        yaml:"authorized_at,omitempty"`
	CanceledAt          *time.Time    `json:"canceledAt"          yaml:"canceled_at,omitempty"`
	CompletedAt         *time.Time    `json:"completedAt"         yaml:"completed_at,omitempty"`
	Links               Links         `json:"_links"              yaml:"links,omitempty"`

	ShopperCountryMustMatchBillingCountry bool `json:"shopperCountryMustMatchBillingCountry" yaml:"shopper_country_must_match_billing_country"` //nolint:lll
}

// EmbeddedResourcesMap declares the collections an order may embed.
func (o *Order) EmbeddedResourcesMap() map[string]Kind {
	return map[string]Kind{
		"payments":  PaymentCollectionKind,
		"refunds":   RefundCollectionKind,
		"shipments": ShipmentCollectionKind,
	}
}

// IsCreated reports whether the order was created.
func (o *Order) IsCreated() bool { return o.Status == OrderStatusCreated }

// IsPaid reports whether the order was paid.
func (o *Order) IsPaid() bool { return o.Status == OrderStatusPaid }

// IsAuthorized reports whether the order was authorized.
func (o *Order) IsAuthorized() bool { return o.Status == OrderStatusAuthorized }

// IsCanceled reports whether the order was canceled.
func (o *Order) IsCanceled() bool { return o.Status == OrderStatusCanceled }

// IsShipping reports whether the order is being shipped.
func (o *Order) IsShipping() bool { return o.Status == OrderStatusShipping }

// IsCompleted reports whether the order was completed.
func (o *Order) IsCompleted() bool { return o.Status == OrderStatusCompleted }

// IsExpired reports whether the order expired.
func (o *Order) IsExpired() bool { return o.Status == OrderStatusExpired }

// IsPending reports whether the order is pending.
func (o *Order) IsPending() bool { return o.Status == OrderStatusPending }

// CheckoutURL returns the URL the customer completes the order at, or "".
func (o *Order) CheckoutURL() string { return o.Links.Href("checkout") }

// Payments returns the embedded payments, or nil when not embedded.
func (o *Order) Payments() *Collection[*Payment] {
	return embedded[*Payment](o.base(), "payments")
}

// Refunds returns the embedded refunds, or nil when not embedded.
func (o *Order) Refunds() *Collection[*Refund] {
	return embedded[*Refund](o.base(), "refunds")
}

// Shipments returns the embedded shipments, or nil when not embedded.
func (o *Order) Shipments() *Collection[*Shipment] {
	return embedded[*Shipment](o.base(), "shipments")
}

// LineItems hydrates the order's lines.
func (o *Order) LineItems() (*Collection[*OrderLine], error) {
	return HydrateCollection(o.Connector(), o.Lines, OrderLineKind, o.Response(), nil, nil)
}

// Cancel cancels the order.
func (o *Order) Cancel(ctx context.Context) (*Order, error) {
	return SendResource(ctx, o.Connector(), NewCancelOrderRequest(o.ID), OrderKind)
}

// CancelLines cancels the lines listed in body["lines"].
func (o *Order) CancelLines(ctx context.Context, body Payload) error {
	err := RequireLines(body)
	if err != nil {
		return err
	}

	return SendEmpty(ctx, o.Connector(), NewCancelOrderLinesRequest(o.ID, body))
}

// CancelAllLines cancels every line of the order.
func (o *Order) CancelAllLines(ctx context.Context, body Payload) error {
	payload := Payload{}
	for key, value := range body {
		payload[key] = value
	}

	payload["lines"] = []interface{}{}

	return o.CancelLines(ctx, payload)
}

// CreateShipment ships the lines listed in body["lines"].
func (o *Order) CreateShipment(ctx context.Context, body Payload) (*Shipment, error) {
	return SendResource(ctx, o.Connector(), NewCreateShipmentRequest(o.ID, body), ShipmentKind)
}

// ShipAll ships every remaining line of the order.
func (o *Order) ShipAll(ctx context.Context, body Payload) (*Shipment, error) {
	payload := Payload{}
	for key, value := range body {
		payload[key] = value
	}

	payload["lines"] = []interface{}{}

	return o.CreateShipment(ctx, payload)
}

// RequireLines checks that body carries a lines array.
func RequireLines(body Payload) error {
	lines, ok := body["lines"]
	if !ok {
		return ErrLinesRequired
	}

	switch lines.(type) {
	case []interface{}, []Payload, []map[string]interface{}:
		return nil
	default:
		return fmt.Errorf("%w: got %T", ErrLinesRequired, lines)
	}
}

// OrderLine represents one line of an order.
type OrderLine struct {
	BaseResource `yaml:",inline"`

	Resource           string      `json:"resource"           yaml:"resource"`
	ID                 string      `json:"id"                 yaml:"id"`
	OrderID            string      `json:"orderId"            yaml:"order_id"`
	Type               string      `json:"type"               yaml:"type"`
	Name               string      `json:"name"               yaml:"name"`
	SKU                string      `json:"sku"                yaml:"sku,omitempty"`
	Status             string      `json:"status"             yaml:"status"`
	IsCancelable       bool        `json:"isCancelable"       yaml:"is_cancelable"`
	Quantity           int         `json:"quantity"           yaml:"quantity"`
	QuantityShipped    int         `json:"quantityShipped"    yaml:"quantity_shipped"`
	QuantityRefunded   int         `json:"quantityRefunded"   yaml:"quantity_refunded"`
	QuantityCanceled   int         `json:"quantityCanceled"   yaml:"quantity_canceled"`
	ShippableQuantity  int         `json:"shippableQuantity"  yaml:"shippable_quantity"`
	RefundableQuantity int         `json:"refundableQuantity" yaml:"refundable_quantity"`
	CancelableQuantity int         `json:"cancelableQuantity" yaml:"cancelable_quantity"`
	UnitPrice          *Money      `json:"unitPrice"          yaml:"unit_price"`
	DiscountAmount     *Money      `json:"discountAmount"     yaml:"discount_amount,omitempty"`
	TotalAmount        *Money      `json:"totalAmount"        yaml:"total_amount"`
	VatRate            string      `json:"vatRate"            yaml:"vat_rate"`
	VatAmount          *Money      `json:"vatAmount"          yaml:"vat_amount"`
	Metadata           interface{} `json:"metadata"           yaml:"metadata,omitempty"`
	CreatedAt          *time.Time  `json:"createdAt"          yaml:"created_at"`
	Links              Links       `json:"_links"             yaml:"links,omitempty"`
}

// Shipment represents a shipment of order lines.
type Shipment struct {
	BaseResource `yaml:",inline"`

	Resource  string            `json:"resource"  yaml:"resource"`
	ID        string            `json:"id"        yaml:"id"`
	OrderID   string            `json:"orderId"   yaml:"order_id"`
	Lines     []interface{}     `json:"lines"     yaml:"lines,omitempty"`
	Tracking  *ShipmentTracking `json:"tracking"  yaml:"tracking,omitempty"`
	CreatedAt *time.Time        `json:"createdAt" yaml:"created_at"`
	Links     Links             `json:"_links"    yaml:"links,omitempty"`
}

// ShipmentTracking holds the carrier's tracking details.
type ShipmentTracking struct {
	Carrier string `json:"carrier"       yaml:"carrier"`
	Code    string `json:"code"          yaml:"code"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
}

// HasTracking reports whether tracking details were supplied.
func (s *Shipment) HasTracking() bool { return s.Tracking != nil }

// HasTrackingURL reports whether tracking details include a URL.
func (s *Shipment) HasTrackingURL() bool { return s.HasTracking() && s.Tracking.URL != "" }

// TrackingURL returns the tracking URL, or "".
func (s *Shipment) TrackingURL() string {
	if !s.HasTrackingURL() {
		return ""
	}

	return s.Tracking.URL
}

// LineItems hydrates the shipped lines.
func (s *Shipment) LineItems() (*Collection[*OrderLine], error) {
	return HydrateCollection(s.Connector(), s.Lines, OrderLineKind, s.Response(), nil, OrderLineCollectionKind)
}

// Order fetches the order the shipment belongs to.
func (s *Shipment) Order(ctx context.Context) (*Order, error) {
	return SendResource(ctx, s.Connector(), NewGetOrderRequest(s.OrderID, nil), OrderKind)
}
