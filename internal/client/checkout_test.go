package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

func TestPaymentLinksClient(t *testing.T) {
	t.Parallel()

	link := `{"resource":"payment-link","id":"pl_4Y0eZitmBnQ6IDoMqZQKh","description":"Bicycle tires","_links":{"paymentLink":{"href":"https://paymentlink.mollie.com/payment/4Y0eZitmBnQ6IDoMqZQKh/","type":"text/html"}}}`

	routes := newRecorder(map[string]route{
		"POST /v2/payment-links":                                  {http.StatusCreated, link},
		"GET /v2/payment-links/pl_4Y0eZitmBnQ6IDoMqZQKh":          {http.StatusOK, link},
		"PATCH /v2/payment-links/pl_4Y0eZitmBnQ6IDoMqZQKh":        {http.StatusOK, link},
		"DELETE /v2/payment-links/pl_4Y0eZitmBnQ6IDoMqZQKh":       {http.StatusNoContent, ""},
		"GET /v2/payment-links":                                   {http.StatusOK, `{"count":1,"_embedded":{"payment_links":[` + link + `]},"_links":{}}`},
		"GET /v2/payment-links/pl_4Y0eZitmBnQ6IDoMqZQKh/payments": {http.StatusOK, `{"count":1,"_embedded":{"payments":[` + paymentBody + `]},"_links":{}}`},
	})
	c := newTestClient(t, routes.handle)
	ctx := context.Background()

	created, err := c.PaymentLinks().Create(ctx, mollie.Payload{"description": "Bicycle tires"})
	require.NoError(t, err)
	assert.Equal(t, "Bicycle tires", created.Description)

	_, err = c.PaymentLinks().Get(ctx, "pl_4Y0eZitmBnQ6IDoMqZQKh")
	require.NoError(t, err)

	_, err = c.PaymentLinks().Update(ctx, "pl_4Y0eZitmBnQ6IDoMqZQKh", mollie.Payload{"archived": true})
	require.NoError(t, err)

	require.NoError(t, c.PaymentLinks().Delete(ctx, "pl_4Y0eZitmBnQ6IDoMqZQKh"))

	links, err := c.PaymentLinks().Iterator(nil, false).Collect(ctx)
	require.NoError(t, err)
	assert.Len(t, links, 1)

	payments, err := c.PaymentLinks().PaymentsIterator("pl_4Y0eZitmBnQ6IDoMqZQKh", nil, false).Collect(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "tr_WDqYK6vllg", payments[0].ID)

	_, err = c.PaymentLinks().Get(ctx, "tr_WDqYK6vllg")
	require.ErrorIs(t, err, mollie.ErrInvalidResourceID)

	assert.Len(t, routes.requests(), 6)
}

func TestMethodsClient(t *testing.T) {
	t.Parallel()

	ideal := `{"resource":"method","id":"ideal","description":"iDEAL","status":"activated"}`
	list := `{"count":1,"_embedded":{"methods":[` + ideal + `]},"_links":{}}`

	routes := newRecorder(map[string]route{
		"GET /v2/methods/ideal": {http.StatusOK, ideal},
		"GET /v2/methods":       {http.StatusOK, list},
		"GET /v2/methods/all":   {http.StatusOK, list},
	})
	c := newTestClient(t, routes.handle)
	ctx := context.Background()

	method, err := c.Methods().Get(ctx, "ideal", mollie.NewQueryParams().WithInclude("issuers"))
	require.NoError(t, err)
	assert.Equal(t, "iDEAL", method.Description)

	enabled, err := c.Methods().ListEnabled(ctx, mollie.NewQueryParams().WithFilter("sequenceType", "first"))
	require.NoError(t, err)
	assert.Equal(t, 1, enabled.Len())

	all, err := c.Methods().ListAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "ideal", all.Items[0].ID)

	assert.Equal(t, []string{
		"GET /v2/methods/ideal?include=issuers",
		"GET /v2/methods?sequenceType=first",
		"GET /v2/methods/all?",
	}, routes.requests())
}

func TestWalletsClient(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/v2/wallets/applepay/sessions", request.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "pay.mywebshop.com", body["domain"])
		assert.Equal(t, "https://apple-pay-gateway-cert.apple.com/paymentservices/paymentSession", body["validationUrl"])
		assert.Equal(t, "pfl_QkEhN94Ba", body["profileId"])

		writeJSON(writer, http.StatusCreated, `{"epochTimestamp":1555507053169,"merchantSessionIdentifier":"SSH2EAF8AFAEAA94DEEA898162A5DAFD36E_916523AAED1343F5BC5815E12BEE9250AFFDC1A17C46B0DE5A943F0F94927C24","signature":"308006092a8648"}`)
	})

	session, err := c.Wallets().RequestApplePaySession(context.Background(),
		"pay.mywebshop.com",
		"https://apple-pay-gateway-cert.apple.com/paymentservices/paymentSession",
		mollie.Payload{"profileId": "pfl_QkEhN94Ba"})
	require.NoError(t, err)
	assert.Equal(t, "308006092a8648", session.String("signature"))
	assert.InDelta(t, float64(1555507053169), session.Get("epochTimestamp"), 0)
}
