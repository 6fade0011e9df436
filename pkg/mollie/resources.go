package mollie

import (
	"context"
	"time"
)

// Settlement statuses.
const (
	SettlementStatusOpen    = "open"
	SettlementStatusPending = "pending"
	SettlementStatusPaidOut = "paidout"
	SettlementStatusFailed  = "failed"
)

// Sales invoice statuses.
const (
	SalesInvoiceStatusDraft  = "draft"
	SalesInvoiceStatusIssued = "issued"
	SalesInvoiceStatusPaid   = "paid"
)

// Kinds of the remaining resources.
var (
	SettlementKind   = NewResourceKind("Settlement", "stl_", func() *Settlement { return &Settlement{} })
	PaymentLinkKind  = NewResourceKind("PaymentLink", "pl_", func() *PaymentLink { return &PaymentLink{} })
	MethodKind       = NewResourceKind("Method", "", func() *Method { return &Method{} })
	PermissionKind   = NewResourceKind("Permission", "", func() *Permission { return &Permission{} })
	SalesInvoiceKind = NewResourceKind("SalesInvoice", "invoice_", func() *SalesInvoice { return &SalesInvoice{} })
	PartnerKind      = NewResourceKind("Partner", "", func() *Partner { return &Partner{} })
	AnyResourceKind  = NewResourceKind("AnyResource", "", func() *AnyResource { return &AnyResource{} })

	SettlementCollectionKind   = RegisterCollection(CollectionOf(SettlementKind, "settlements"))
	PaymentLinkCollectionKind  = RegisterCollection(CollectionOf(PaymentLinkKind, "payment_links"))
	MethodCollectionKind       = RegisterCollection(CollectionOf(MethodKind, "methods"))
	PermissionCollectionKind   = RegisterCollection(CollectionOf(PermissionKind, "permissions"))
	SalesInvoiceCollectionKind = RegisterCollection(CollectionOf(SalesInvoiceKind, "sales_invoices"))
)

// Settlement represents a payout to the merchant's bank account.
type Settlement struct {
	BaseResource `yaml:",inline"`

	Resource  string                 `json:"resource"  yaml:"resource"`
	ID        string                 `json:"id"        yaml:"id"`
	Reference string                 `json:"reference" yaml:"reference"`
	Status    string                 `json:"status"    yaml:"status"`
	Amount    *Money                 `json:"amount"    yaml:"amount"`
	Periods   map[string]interface{} `json:"periods"   yaml:"periods,omitempty"`
	InvoiceID string                 `json:"invoiceId" yaml:"invoice_id,omitempty"`
	CreatedAt *time.Time             `json:"createdAt" yaml:"created_at"`
	SettledAt *time.Time             `json:"settledAt" yaml:"settled_at,omitempty"`
	Links     Links                  `json:"_links"    yaml:"links,omitempty"`
}

// IsOpen reports whether the settlement is still collecting payments.
func (s *Settlement) IsOpen() bool { return s.Status == SettlementStatusOpen }

// IsPending reports whether the settlement is being processed.
func (s *Settlement) IsPending() bool { return s.Status == SettlementStatusPending }

// IsPaidOut reports whether the settlement was paid out.
func (s *Settlement) IsPaidOut() bool { return s.Status == SettlementStatusPaidOut }

// IsFailed reports whether the payout failed.
func (s *Settlement) IsFailed() bool { return s.Status == SettlementStatusFailed }

// ListCaptures fetches the first page of captures in this settlement.
func (s *Settlement) ListCaptures(ctx context.Context, params *QueryParams) (*Collection[*Capture], error) {
	req := NewListSettlementCapturesRequest(s.ID, params.ToValues())

	return SendCollection(ctx, s.Connector(), req, CaptureCollectionKind)
}

// PaymentLink represents a shareable payment link.
type PaymentLink struct {
	BaseResource `yaml:",inline"`

	Resource    string     `json:"resource"    yaml:"resource"`
	ID          string     `json:"id"          yaml:"id"`
	Mode        string     `json:"mode"        yaml:"mode"`
	ProfileID   string     `json:"profileId"   yaml:"profile_id"`
	Description string     `json:"description" yaml:"description"`
	Amount      *Money     `json:"amount"      yaml:"amount,omitempty"`
	Archived    bool       `json:"archived"    yaml:"archived"`
	RedirectURL string     `json:"redirectUrl" yaml:"redirect_url,omitempty"`
	WebhookURL  string     `json:"webhookUrl"  yaml:"webhook_url,omitempty"`
	CreatedAt   *time.Time `json:"createdAt"   yaml:"created_at"`
	PaidAt      *time.Time `json:"paidAt"      yaml:"paid_at,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt"   yaml:"updated_at,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt"   yaml:"expires_at,omitempty"`
	Links       Links      `json:"_links"      yaml:"links,omitempty"`
}

// IsPaid reports whether the link was paid.
func (p *PaymentLink) IsPaid() bool { return p.PaidAt != nil }

// CheckoutURL returns the URL to share with the customer, or "".
func (p *PaymentLink) CheckoutURL() string { return p.Links.Href("paymentLink") }

// ListPayments fetches the first page of payments made through this link.
func (p *PaymentLink) ListPayments(ctx context.Context, params *QueryParams) (*Collection[*Payment], error) {
	req := NewListPaymentLinkPaymentsRequest(p.ID, params.ToValues())

	return SendCollection(ctx, p.Connector(), req, PaymentCollectionKind)
}

// MethodImage holds the icons of a payment method.
type MethodImage struct {
	Size1x string `json:"size1x" yaml:"size1x"`
	Size2x string `json:"size2x" yaml:"size2x"`
	SVG    string `json:"svg"    yaml:"svg"`
}

// Method represents a payment method.
type Method struct {
	BaseResource `yaml:",inline"`

	Resource      string        `json:"resource"      yaml:"resource"`
	ID            string        `json:"id"            yaml:"id"`
	Description   string        `json:"description"   yaml:"description"`
	Status        string        `json:"status"        yaml:"status,omitempty"`
	MinimumAmount *Money        `json:"minimumAmount" yaml:"minimum_amount,omitempty"`
	MaximumAmount *Money        `json:"maximumAmount" yaml:"maximum_amount,omitempty"`
	Image         *MethodImage  `json:"image"         yaml:"image,omitempty"`
	Issuers       []interface{} `json:"issuers"       yaml:"issuers,omitempty"`
	Pricing       []interface{} `json:"pricing"       yaml:"pricing,omitempty"`
	Links         Links         `json:"_links"        yaml:"links,omitempty"`
}

// Permission represents an OAuth permission.
type Permission struct {
	BaseResource `yaml:",inline"`

	Resource    string `json:"resource"    yaml:"resource"`
	ID          string `json:"id"          yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Granted     bool   `json:"granted"     yaml:"granted"`
	Links       Links  `json:"_links"      yaml:"links,omitempty"`
}

// SalesInvoice represents an invoice sent to a customer.
type SalesInvoice struct {
	BaseResource `yaml:",inline"`

	Resource            string                 `json:"resource"            yaml:"resource"`
	ID                  string                 `json:"id"                  yaml:"id"`
	ProfileID           string                 `json:"profileId"           yaml:"profile_id"`
	InvoiceID           string                 `json:"invoiceId"           yaml:"invoice_id"`
	Status              string                 `json:"status"              yaml:"status"`
	Currency            string                 `json:"currency"            yaml:"currency"`
	Memo                string                 `json:"memo"                yaml:"memo,omitempty"`
	PaymentTerm         string                 `json:"paymentTerm"         yaml:"payment_term,omitempty"`
	RecipientIdentifier string                 `json:"recipientIdentifier" yaml:"recipient_identifier"`
	Recipient           map[string]interface{} `json:"recipient"           yaml:"recipient,omitempty"`
	Lines               []interface{}          `json:"lines"               yaml:"lines,omitempty"`
	AmountDue           *Money                 `json:"amountDue"           yaml:"amount_due,omitempty"`
	SubtotalAmount      *Money                 `json:"subtotalAmount"      yaml:"subtotal_amount,omitempty"`
	TotalAmount         *Money                 `json:"totalAmount"         yaml:"total_amount,omitempty"`
	TotalVatAmount      *Money                 `json:"totalVatAmount"      yaml:"total_vat_amount,omitempty"`
	CreatedAt           *time.Time             `json:"createdAt"           yaml:"created_at"`
	IssuedAt            *time.Time             `json:"issuedAt"            yaml:"issued_at,omitempty"`
	PaidAt              *time.Time             `json:"paidAt"              yaml:"paid_at,omitempty"`
	DueAt               *time.Time             `json:"dueAt"               yaml:"due_at,omitempty"`
	Links               Links                  `json:"_links"              yaml:"links,omitempty"`
}

// IsDraft reports whether the invoice is a draft.
func (s *SalesInvoice) IsDraft() bool { return s.Status == SalesInvoiceStatusDraft }

// IsIssued reports whether the invoice was issued.
func (s *SalesInvoice) IsIssued() bool { return s.Status == SalesInvoiceStatusIssued }

// IsPaid reports whether the invoice was paid.
func (s *SalesInvoice) IsPaid() bool { return s.Status == SalesInvoiceStatusPaid }

// Partner describes the partner status of the current organization.
type Partner struct {
	BaseResource `yaml:",inline"`

	Resource                       string        `json:"resource"                       yaml:"resource"`
	PartnerType                    string        `json:"partnerType"                    yaml:"partner_type"`
	IsCommissionPartner            bool          `json:"isCommissionPartner"            yaml:"is_commission_partner"`
	UserAgentTokens                []interface{} `json:"userAgentTokens"                yaml:"user_agent_tokens,omitempty"`
	PartnerContractSignedAt        *time.Time    `json:"partnerContractSignedAt"        yaml:"partner_contract_signed_at,omitempty"`
	PartnerContractUpdateAvailable bool          `json:"partnerContractUpdateAvailable" yaml:"partner_contract_update_available"`
	PartnerContractExpiresAt       *time.Time    `json:"partnerContractExpiresAt"       yaml:"partner_contract_expires_at,omitempty"`
	Links                          Links         `json:"_links"                         yaml:"links,omitempty"`
}
