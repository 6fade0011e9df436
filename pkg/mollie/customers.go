package mollie

import (
	"context"
	"time"
)

// Subscription statuses.
const (
	SubscriptionStatusPending   = "pending"
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCanceled  = "canceled"
	SubscriptionStatusSuspended = "suspended"
	SubscriptionStatusCompleted = "completed"
)

// Session statuses.
const (
	SessionStatusOpen      = "open"
	SessionStatusCompleted = "completed"
	SessionStatusCanceled  = "canceled"
	SessionStatusExpired   = "expired"
)

// Customer kinds.
var (
	CustomerKind     = NewResourceKind("Customer", "cst_", func() *Customer { return &Customer{} })
	SubscriptionKind = NewResourceKind("Subscription", "sub_", func() *Subscription { return &Subscription{} })
	SessionKind      = NewResourceKind("Session", "ses_", func() *Session { return &Session{} })

	CustomerCollectionKind     = RegisterCollection(CollectionOf(CustomerKind, "customers"))
	SubscriptionCollectionKind = RegisterCollection(CollectionOf(SubscriptionKind, "subscriptions"))
	SessionCollectionKind      = RegisterCollection(CollectionOf(SessionKind, "sessions"))
)

// Customer represents a customer.
type Customer struct {
	BaseResource `yaml:",inline"`

	Resource  string      `json:"resource"  yaml:"resource"`
	ID        string      `json:"id"        yaml:"id"`
	Mode      string      `json:"mode"      yaml:"mode"`
	Name      string      `json:"name"      yaml:"name"`
	Email     string      `json:"email"     yaml:"email"`
	Locale    string      `json:"locale"    yaml:"locale,omitempty"`
	Metadata  interface{} `json:"metadata"  yaml:"metadata,omitempty"`
	CreatedAt *time.Time  `json:"createdAt" yaml:"created_at"`
	Links     Links       `json:"_links"    yaml:"links,omitempty"`
}

// CreateSubscription creates a subscription for this customer.
func (c *Customer) CreateSubscription(ctx context.Context, body Payload) (*Subscription, error) {
	return SendResource(ctx, c.Connector(), NewCreateSubscriptionRequest(c.ID, body), SubscriptionKind)
}

// ListSubscriptions fetches the first page of this customer's subscriptions.
func (c *Customer) ListSubscriptions(ctx context.Context, params *QueryParams) (*Collection[*Subscription], error) {
	req := NewListCustomerSubscriptionsRequest(c.ID, params.ToValues())

	return SendCollection(ctx, c.Connector(), req, SubscriptionCollectionKind)
}

// Subscription represents a recurring payment schedule of a customer.
type Subscription struct {
	BaseResource `yaml:",inline"`

	Resource        string      `json:"resource"        yaml:"resource"`
	ID              string      `json:"id"              yaml:"id"`
	CustomerID      string      `json:"customerId"      yaml:"customer_id"`
	Mode            string      `json:"mode"            yaml:"mode"`
	Status          string      `json:"status"          yaml:"status"`
	Amount          *Money      `json:"amount"          yaml:"amount"`
	Times           int         `json:"times"           yaml:"times,omitempty"`
	TimesRemaining  int         `json:"timesRemaining"  yaml:"times_remaining,omitempty"`
	Interval        string      `json:"interval"        yaml:"interval"`
	StartDate       string      `json:"startDate"       yaml:"start_date"`
	NextPaymentDate string      `json:"nextPaymentDate" yaml:"next_payment_date,omitempty"`
	Description     string      `json:"description"     yaml:"description"`
	Method          string      `json:"method"          yaml:"method,omitempty"`
	MandateID       string      `json:"mandateId"       yaml:"mandate_id,omitempty"`
	WebhookURL      string      `json:"webhookUrl"      yaml:"webhook_url,omitempty"`
	Metadata        interface{} `json:"metadata"        yaml:"metadata,omitempty"`
	CreatedAt       *time.Time  `json:"createdAt"       yaml:"created_at"`
	CanceledAt      *time.Time  `json:"canceledAt"      yaml:"canceled_at,omitempty"`
	Links           Links       `json:"_links"          yaml:"links,omitempty"`
}

// IsPending reports whether the subscription waits for a mandate.
func (s *Subscription) IsPending() bool { return s.Status == SubscriptionStatusPending }

// IsActive reports whether the subscription is active.
func (s *Subscription) IsActive() bool { return s.Status == SubscriptionStatusActive }

// IsCanceled reports whether the subscription was canceled.
func (s *Subscription) IsCanceled() bool { return s.Status == SubscriptionStatusCanceled }

// IsSuspended reports whether the subscription is suspended.
func (s *Subscription) IsSuspended() bool { return s.Status == SubscriptionStatusSuspended }

// IsCompleted reports whether every payment of the subscription was made.
func (s *Subscription) IsCompleted() bool { return s.Status == SubscriptionStatusCompleted }

// Cancel cancels the subscription and returns its final state.
func (s *Subscription) Cancel(ctx context.Context) (*Subscription, error) {
	return SendResource(ctx, s.Connector(), NewCancelSubscriptionRequest(s.CustomerID, s.ID), SubscriptionKind)
}

// Session represents a checkout session.
type Session struct {
	BaseResource `yaml:",inline"`

	Resource    string        `json:"resource"    yaml:"resource"`
	ID          string        `json:"id"          yaml:"id"`
	Mode        string        `json:"mode"        yaml:"mode"`
	Status      string        `json:"status"      yaml:"status"`
	Amount      *Money        `json:"amount"      yaml:"amount"`
	Description string        `json:"description" yaml:"description"`
	RedirectURL string        `json:"redirectUrl" yaml:"redirect_url,omitempty"`
	CancelURL   string        `json:"cancelUrl"   yaml:"cancel_url,omitempty"`
	Lines       []interface{} `json:"lines"       yaml:"lines,omitempty"`
	Metadata    interface{}   `json:"metadata"    yaml:"metadata,omitempty"`
	CreatedAt   *time.Time    `json:"createdAt"   yaml:"created_at,omitempty"`
	ExpiresAt   *time.Time    `json:"expiresAt"   yaml:"expires_at,omitempty"`
	Links       Links         `json:"_links"      yaml:"links,omitempty"`
}

// IsOpen reports whether the session waits for the customer.
func (s *Session) IsOpen() bool { return s.Status == SessionStatusOpen }

// IsCompleted reports whether the session was completed.
func (s *Session) IsCompleted() bool { return s.Status == SessionStatusCompleted }

// IsCanceled reports whether the session was canceled.
func (s *Session) IsCanceled() bool { return s.Status == SessionStatusCanceled }

// IsExpired reports whether the session expired.
func (s *Session) IsExpired() bool { return s.Status == SessionStatusExpired }

// CheckoutURL returns the URL the customer completes the session at, or "".
func (s *Session) CheckoutURL() string { return s.Links.Href("checkout") }
