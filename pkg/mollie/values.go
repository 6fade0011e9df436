package mollie

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the layout the API uses for plain dates.
const DateFormat = "2006-01-02"

// Money is an amount in a currency. Value is a decimal string with the number
// of decimals the currency requires, such as "10.00".
type Money struct {
	Currency string `json:"currency" yaml:"currency"`
	Value    string `json:"value"    yaml:"value"`
}

// NewMoney creates a money value.
func NewMoney(currency, value string) Money {
	return Money{Currency: currency, Value: value}
}

// String formats the amount as "EUR 10.00".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Value)
}

// IsZero reports an unset amount.
func (m Money) IsZero() bool {
	return m.Currency == "" && m.Value == ""
}

// Address is a billing or shipping address.
type Address struct {
	OrganizationName string `json:"organizationName,omitempty" yaml:"organization_name,omitempty"`
	Title            string `json:"title,omitempty"            yaml:"title,omitempty"`
	GivenName        string `json:"givenName,omitempty"        yaml:"given_name,omitempty"`
	FamilyName       string `json:"familyName,omitempty"       yaml:"family_name,omitempty"`
	Email            string `json:"email,omitempty"            yaml:"email,omitempty"`
	Phone            string `json:"phone,omitempty"            yaml:"phone,omitempty"`
	StreetAndNumber  string `json:"streetAndNumber,omitempty"  yaml:"street_and_number,omitempty"`
	StreetAdditional string `json:"streetAdditional,omitempty" yaml:"street_additional,omitempty"`
	PostalCode       string `json:"postalCode,omitempty"       yaml:"postal_code,omitempty"`
	City             string `json:"city,omitempty"             yaml:"city,omitempty"`
	Region           string `json:"region,omitempty"           yaml:"region,omitempty"`
	Country          string `json:"country,omitempty"          yaml:"country,omitempty"`
}

// PaymentRoute splits part of a payment to a connected organization.
type PaymentRoute struct {
	Amount         Money
	OrganizationID string
	DelayUntil     *time.Time
}

// NewPaymentRoute creates a route. delayUntil may be nil.
func NewPaymentRoute(amount Money, organizationID string, delayUntil *time.Time) PaymentRoute {
	return PaymentRoute{Amount: amount, OrganizationID: organizationID, DelayUntil: delayUntil}
}

// MarshalJSON encodes the route with its destination object.
func (r PaymentRoute) MarshalJSON() ([]byte, error) {
	type destination struct {
		Type           string `json:"type"`
		OrganizationID string `json:"organizationId"`
	}

	var delayUntil *string

	if r.DelayUntil != nil {
		formatted := r.DelayUntil.Format(DateFormat)
		delayUntil = &formatted
	}

	return json.Marshal(struct {
		Amount      Money       `json:"amount"`
		Destination destination `json:"destination"`
		DelayUntil  *string     `json:"delayUntil"`
	}{
		Amount:      r.Amount,
		Destination: destination{Type: "organization", OrganizationID: r.OrganizationID},
		DelayUntil:  delayUntil,
	})
}
