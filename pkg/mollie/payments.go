package mollie

import (
	"context"
	"time"
)

// Payment statuses.
const (
	PaymentStatusOpen       = "open"
	PaymentStatusPending    = "pending"
	PaymentStatusAuthorized = "authorized"
	PaymentStatusCanceled   = "canceled"
	PaymentStatusExpired    = "expired"
	PaymentStatusFailed     = "failed"
	PaymentStatusPaid       = "paid"
)

// Refund statuses.
const (
	RefundStatusQueued     = "queued"
	RefundStatusPending    = "pending"
	RefundStatusProcessing = "processing"
	RefundStatusRefunded   = "refunded"
	RefundStatusFailed     = "failed"
	RefundStatusCanceled   = "canceled"
)

// Payment kinds.
var (
	PaymentKind = NewResourceKind("Payment", "tr_", func() *Payment { return &Payment{} })
	RefundKind  = NewResourceKind("Refund", "re_", func() *Refund { return &Refund{} })
	CaptureKind = NewResourceKind("Capture", "cpt_", func() *Capture { return &Capture{} })

	ChargebackKind = NewResourceKind("Chargeback", "chb_", func() *Chargeback { return &Chargeback{} })

	PaymentCollectionKind    = RegisterCollection(CollectionOf(PaymentKind, "payments"))
	RefundCollectionKind     = RegisterCollection(CollectionOf(RefundKind, "refunds"))
	CaptureCollectionKind    = RegisterCollection(CollectionOf(CaptureKind, "captures"))
	ChargebackCollectionKind = RegisterCollection(CollectionOf(ChargebackKind, "chargebacks"))
)

// Payment represents a payment.
type Payment struct {
	BaseResource `yaml:",inline"`

	Resource          string                 `json:"resource"          yaml:"resource"`
	ID                string                 `json:"id"                yaml:"id"`
	Mode              string                 `json:"mode"              yaml:"mode"`
	Status            string                 `json:"status"            yaml:"status"`
	IsCancelable      bool                   `json:"isCancelable"      yaml:"is_cancelable"`
	Amount            *Money                 `json:"amount"            yaml:"amount"`
	AmountRefunded    *Money                 `json:"amountRefunded"    yaml:"amount_refunded,omitempty"`
	AmountRemaining   *Money                 `json:"amountRemaining"   yaml:"amount_remaining,omitempty"`
	AmountCaptured    *Money                 `json:"amountCaptured"    yaml:"amount_captured,omitempty"`
	AmountChargedBack *Money                 `json:"amountChargedBack" yaml:"amount_charged_back,omitempty"`
	SettlementAmount  *Money                 `json:"settlementAmount"  yaml:"settlement_amount,omitempty"`
	Description       string                 `json:"description"       yaml:"description"`
	Method            string                 `json:"method"            yaml:"method"`
	Locale            string                 `json:"locale"            yaml:"locale,omitempty"`
	CountryCode       string                 `json:"countryCode"       yaml:"country_code,omitempty"`
	RedirectURL       string                 `json:"redirectUrl"       yaml:"redirect_url,omitempty"`
	CancelURL         string                 `json:"cancelUrl"         yaml:"cancel_url,omitempty"`
	WebhookURL        string                 `json:"webhookUrl"        yaml:"webhook_url,omitempty"`
	ProfileID         string                 `json:"profileId"         yaml:"profile_id"`
	SettlementID      string                 `json:"settlementId"      yaml:"settlement_id,omitempty"`
	CustomerID        string                 `json:"customerId"        yaml:"customer_id,omitempty"`
	MandateID         string                 `json:"mandateId"         yaml:"mandate_id,omitempty"`
	SubscriptionID    string                 `json:"subscriptionId"    yaml:"subscription_id,omitempty"`
	OrderID           string                 `json:"orderId"           yaml:"order_id,omitempty"`
	SequenceType      string                 `json:"sequenceType"      yaml:"sequence_type,omitempty"`
	Metadata          interface{}            `json:"metadata"          yaml:"metadata,omitempty"`
	Details           map[string]interface{} `json:"details"           yaml:"details,omitempty"`
	CreatedAt         *time.Time             `json:"createdAt"         yaml:"created_at"`
	AuthorizedAt      *time.Time             `json:"authorizedAt"      yaml:"authorized_at,omitempty"`
	PaidAt            *time.Time             `json:"paidAt"            yaml:"paid_at,omitempty"`
	CanceledAt        *time.Time             `json:"canceledAt"        yaml:"canceled_at,omitempty"`
	ExpiresAt         *time.Time             `json:"expiresAt"         yaml:"expires_at,omitempty"`
	ExpiredAt         *time.Time             `json:"expiredAt"         yaml:"expired_at,omitempty"`
	FailedAt          *time.Time             `json:"failedAt"          yaml:"failed_at,omitempty"`
	Links             Links                  `json:"_links"            yaml:"links,omitempty"`
}

// EmbeddedResourcesMap declares the collections a payment may embed.
func (p *Payment) EmbeddedResourcesMap() map[string]Kind {
	return map[string]Kind{
		"refunds":     RefundCollectionKind,
		"chargebacks": ChargebackCollectionKind,
		"captures":    CaptureCollectionKind,
	}
}

// IsOpen reports whether the payment has not been paid or canceled yet.
func (p *Payment) IsOpen() bool { return p.Status == PaymentStatusOpen }

// IsPending reports whether the payment is waiting for the method's result.
func (p *Payment) IsPending() bool { return p.Status == PaymentStatusPending }

// IsAuthorized reports whether the payment is authorized but not captured.
func (p *Payment) IsAuthorized() bool { return p.Status == PaymentStatusAuthorized }

// IsCanceled reports whether the payment was canceled.
func (p *Payment) IsCanceled() bool { return p.Status == PaymentStatusCanceled }

// IsExpired reports whether the payment expired.
func (p *Payment) IsExpired() bool { return p.Status == PaymentStatusExpired }

// IsFailed reports whether the payment failed.
func (p *Payment) IsFailed() bool { return p.Status == PaymentStatusFailed }

// IsPaid reports whether the payment was paid, even if it was refunded later.
func (p *Payment) IsPaid() bool { return p.PaidAt != nil }

// HasRefunds reports whether refunds exist for the payment.
func (p *Payment) HasRefunds() bool { return p.Links.Has("refunds") }

// HasChargebacks reports whether chargebacks exist for the payment.
func (p *Payment) HasChargebacks() bool { return p.Links.Has("chargebacks") }

// CheckoutURL returns the URL the customer completes the payment at, or "".
func (p *Payment) CheckoutURL() string { return p.Links.Href("checkout") }

// CanBeRefunded reports whether an amount remains to refund.
func (p *Payment) CanBeRefunded() bool {
	return p.AmountRemaining != nil && p.AmountRemaining.Value != "" && p.AmountRemaining.Value != "0.00"
}

// Refunds returns the embedded refunds, or nil when not embedded.
func (p *Payment) Refunds() *Collection[*Refund] {
	return embedded[*Refund](p.base(), "refunds")
}

// Chargebacks returns the embedded chargebacks, or nil when not embedded.
func (p *Payment) Chargebacks() *Collection[*Chargeback] {
	return embedded[*Chargeback](p.base(), "chargebacks")
}

// Captures returns the embedded captures, or nil when not embedded.
func (p *Payment) Captures() *Collection[*Capture] {
	return embedded[*Capture](p.base(), "captures")
}

// Refund creates a refund for this payment.
func (p *Payment) Refund(ctx context.Context, body Payload) (*Refund, error) {
	return SendResource(ctx, p.Connector(), NewCreatePaymentRefundRequest(p.ID, body), RefundKind)
}

// ListRefunds fetches the first page of refunds for this payment.
func (p *Payment) ListRefunds(ctx context.Context, params *QueryParams) (*Collection[*Refund], error) {
	return SendCollection(ctx, p.Connector(), NewListPaymentRefundsRequest(p.ID, params.ToValues()), RefundCollectionKind)
}

// Refund represents a refund of a payment or order.
type Refund struct {
	BaseResource `yaml:",inline"`

	Resource         string        `json:"resource"         yaml:"resource"`
	ID               string        `json:"id"               yaml:"id"`
	Mode             string        `json:"mode"             yaml:"mode"`
	Status           string        `json:"status"           yaml:"status"`
	Amount           *Money        `json:"amount"           yaml:"amount"`
	SettlementAmount *Money        `json:"settlementAmount" yaml:"settlement_amount,omitempty"`
	Description      string        `json:"description"      yaml:"description"`
	Metadata         interface{}   `json:"metadata"         yaml:"metadata,omitempty"`
	PaymentID        string        `json:"paymentId"        yaml:"payment_id"`
	OrderID          string        `json:"orderId"          yaml:"order_id,omitempty"`
	SettlementID     string        `json:"settlementId"     yaml:"settlement_id,omitempty"`
	Lines            []interface{} `json:"lines"            yaml:"lines,omitempty"`
	CreatedAt        *time.Time    `json:"createdAt"        yaml:"created_at"`
	Links            Links         `json:"_links"           yaml:"links,omitempty"`
}

// IsQueued reports whether the refund waits for sufficient balance.
func (r *Refund) IsQueued() bool { return r.Status == RefundStatusQueued }

// IsPending reports whether the refund will be processed soon.
func (r *Refund) IsPending() bool { return r.Status == RefundStatusPending }

// IsProcessing reports whether the refund is being processed.
func (r *Refund) IsProcessing() bool { return r.Status == RefundStatusProcessing }

// IsTransferred reports whether the refund reached the customer.
func (r *Refund) IsTransferred() bool { return r.Status == RefundStatusRefunded }

// IsFailed reports whether the refund failed.
func (r *Refund) IsFailed() bool { return r.Status == RefundStatusFailed }

// IsCanceled reports whether the refund was canceled.
func (r *Refund) IsCanceled() bool { return r.Status == RefundStatusCanceled }

// Cancel cancels a queued or pending refund.
func (r *Refund) Cancel(ctx context.Context) error {
	return SendEmpty(ctx, r.Connector(), NewCancelPaymentRefundRequest(r.PaymentID, r.ID))
}

// Capture represents a capture of an authorized payment.
type Capture struct {
	BaseResource `yaml:",inline"`

	Resource         string      `json:"resource"         yaml:"resource"`
	ID               string      `json:"id"               yaml:"id"`
	Mode             string      `json:"mode"             yaml:"mode"`
	Status           string      `json:"status"           yaml:"status,omitempty"`
	Description      string      `json:"description"      yaml:"description,omitempty"`
	Amount           *Money      `json:"amount"           yaml:"amount"`
	SettlementAmount *Money      `json:"settlementAmount" yaml:"settlement_amount,omitempty"`
	PaymentID        string      `json:"paymentId"        yaml:"payment_id"`
	ShipmentID       string      `json:"shipmentId"       yaml:"shipment_id,omitempty"`
	SettlementID     string      `json:"settlementId"     yaml:"settlement_id,omitempty"`
	Metadata         interface{} `json:"metadata"         yaml:"metadata,omitempty"`
	CreatedAt        *time.Time  `json:"createdAt"        yaml:"created_at"`
	Links            Links       `json:"_links"           yaml:"links,omitempty"`
}

// Chargeback represents a reversal of a payment by the customer's bank.
type Chargeback struct {
	BaseResource `yaml:",inline"`

	Resource         string                 `json:"resource"         yaml:"resource"`
	ID               string                 `json:"id"               yaml:"id"`
	Amount           *Money                 `json:"amount"           yaml:"amount"`
	SettlementAmount *Money                 `json:"settlementAmount" yaml:"settlement_amount,omitempty"`
	Reason           map[string]interface{} `json:"reason"           yaml:"reason,omitempty"`
	PaymentID        string                 `json:"paymentId"        yaml:"payment_id"`
	CreatedAt        *time.Time             `json:"createdAt"        yaml:"created_at"`
	ReversedAt       *time.Time             `json:"reversedAt"       yaml:"reversed_at,omitempty"`
	Links            Links                  `json:"_links"           yaml:"links,omitempty"`
}

// embedded returns the collection hydrated under key, or nil.
func embedded[T Resource](b *BaseResource, key string) *Collection[T] {
	collection, _ := b.Embedded[key].(*Collection[T])

	return collection
}
