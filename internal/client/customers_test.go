package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCustomersClient(t *testing.T) {
	t.Parallel()

	customer := `{"resource":"customer","id":"cst_8wmqcHMN4U","name":"Customer A","email":"customer@example.org"}`

	routes := newRecorder(map[string]route{
		"POST /v2/customers":                  {http.StatusCreated, customer},
		"GET /v2/customers/cst_8wmqcHMN4U":    {http.StatusOK, customer},
		"PATCH /v2/customers/cst_8wmqcHMN4U":  {http.StatusOK, customer},
		"DELETE /v2/customers/cst_8wmqcHMN4U": {http.StatusNoContent, ""},
	})
	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		if request.Method == http.MethodGet && request.URL.Path == "/v2/customers" {
			if request.URL.Query().Get("from") == "cst_kEn1PlbGa" {
				writeJSON(writer, http.StatusOK, `{"count":1,"_embedded":{"customers":[{"resource":"customer","id":"cst_kEn1PlbGa"}]},"_links":{"next":null}}`)

				return
			}

			writeJSON(writer, http.StatusOK, `{"count":1,"_embedded":{"customers":[`+customer+`]},"_links":{"next":{"href":"`+
				"http://"+request.Host+`/v2/customers?from=cst_kEn1PlbGa&limit=1","type":"application/hal+json"}}}`)

			return
		}

		routes.handle(writer, request)
	})
	ctx := context.Background()

	created, err := c.Customers().Create(ctx, mollie.Payload{"name": "Customer A", "email": "customer@example.org"})
	require.NoError(t, err)
	assert.Equal(t, "Customer A", created.Name)

	_, err = c.Customers().Get(ctx, "cst_8wmqcHMN4U", nil)
	require.NoError(t, err)

	_, err = c.Customers().Update(ctx, "cst_8wmqcHMN4U", mollie.Payload{"name": "Updated Customer A"})
	require.NoError(t, err)

	require.NoError(t, c.Customers().Delete(ctx, "cst_8wmqcHMN4U"))

	page, err := c.Customers().Page(ctx, mollie.NewQueryParams().WithLimit(1))
	require.NoError(t, err)
	assert.True(t, page.HasNext())

	customers, err := c.Customers().Iterator(mollie.NewQueryParams().WithLimit(1), false).Collect(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "cst_8wmqcHMN4U", customers[0].ID)
	assert.Equal(t, "cst_kEn1PlbGa", customers[1].ID)

	assert.Len(t, routes.requests(), 4)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestSubscriptionsClient(t *testing.T) {
	t.Parallel()

	subscription := `{"resource":"subscription","id":"sub_rVKGtNd6s3","customerId":"cst_8wmqcHMN4U","status":"active","interval":"1 month"}`
	list := `{"count":1,"_embedded":{"subscriptions":[` + subscription + `]},"_links":{}}`

	routes := newRecorder(map[string]route{
		"POST /v2/customers/cst_8wmqcHMN4U/subscriptions":                 {http.StatusCreated, subscription},
		"GET /v2/customers/cst_8wmqcHMN4U/subscriptions/sub_rVKGtNd6s3":   {http.StatusOK, subscription},
		"PATCH /v2/customers/cst_8wmqcHMN4U/subscriptions/sub_rVKGtNd6s3": {http.StatusOK, subscription},
		"DELETE /v2/customers/cst_8wmqcHMN4U/subscriptions/sub_rVKGtNd6s3": {http.StatusOK,
			`{"resource":"subscription","id":"sub_rVKGtNd6s3","status":"canceled"}`},
		"GET /v2/customers/cst_8wmqcHMN4U/subscriptions": {http.StatusOK, list},
		"GET /v2/subscriptions":                          {http.StatusOK, list},
	})
	c := newTestClient(t, routes.handle)
	ctx := context.Background()

	created, err := c.Subscriptions().Create(ctx, "cst_8wmqcHMN4U", mollie.Payload{
		"amount":   mollie.NewMoney("EUR", "25.00"),
		"interval": "1 month",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive())

	_, err = c.Subscriptions().Get(ctx, "cst_8wmqcHMN4U", "sub_rVKGtNd6s3", nil)
	require.NoError(t, err)

	_, err = c.Subscriptions().Update(ctx, "cst_8wmqcHMN4U", "sub_rVKGtNd6s3", mollie.Payload{"description": "Monthly"})
	require.NoError(t, err)

	canceled, err := c.Subscriptions().Cancel(ctx, "cst_8wmqcHMN4U", "sub_rVKGtNd6s3")
	require.NoError(t, err)
	assert.True(t, canceled.IsCanceled())

	scoped, err := c.Subscriptions().Iterator("cst_8wmqcHMN4U", nil, false).Collect(ctx)
	require.NoError(t, err)
	assert.Len(t, scoped, 1)

	all, err := c.Subscriptions().All(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, all.Len())

	everything, err := c.Subscriptions().AllIterator(nil, true).Collect(ctx)
	require.NoError(t, err)
	assert.Len(t, everything, 1)

	_, err = c.Subscriptions().Page(ctx, "sub_rVKGtNd6s3", nil)
	require.ErrorIs(t, err, mollie.ErrInvalidResourceID)

	assert.Equal(t, []string{
		"POST /v2/customers/cst_8wmqcHMN4U/subscriptions?",
		"GET /v2/customers/cst_8wmqcHMN4U/subscriptions/sub_rVKGtNd6s3?",
		"PATCH /v2/customers/cst_8wmqcHMN4U/subscriptions/sub_rVKGtNd6s3?",
		"DELETE /v2/customers/cst_8wmqcHMN4U/subscriptions/sub_rVKGtNd6s3?",
		"GET /v2/customers/cst_8wmqcHMN4U/subscriptions?",
		"GET /v2/subscriptions?",
		"GET /v2/subscriptions?",
	}, routes.requests())
}

func TestSessionsClient(t *testing.T) {
	t.Parallel()

	session := `{"resource":"session","id":"ses_LQNz4v4Qvk","status":"open","amount":{"currency":"EUR","value":"10.00"}}`

	routes := newRecorder(map[string]route{
		"POST /v2/sessions":                  {http.StatusCreated, session},
		"GET /v2/sessions/ses_LQNz4v4Qvk":    {http.StatusOK, session},
		"PUT /v2/sessions/ses_LQNz4v4Qvk":    {http.StatusOK, session},
		"DELETE /v2/sessions/ses_LQNz4v4Qvk": {http.StatusNoContent, ""},
		"GET /v2/sessions":                   {http.StatusOK, `{"count":1,"_embedded":{"sessions":[` + session + `]},"_links":{}}`},
	})
	c := newTestClient(t, routes.handle)
	ctx := context.Background()

	created, err := c.Sessions().Create(ctx, mollie.Payload{"amount": mollie.NewMoney("EUR", "10.00")}, nil)
	require.NoError(t, err)
	assert.True(t, created.IsOpen())

	_, err = c.Sessions().Get(ctx, "ses_LQNz4v4Qvk", nil)
	require.NoError(t, err)

	_, err = c.Sessions().Update(ctx, "ses_LQNz4v4Qvk", mollie.Payload{"description": "Updated"})
	require.NoError(t, err)

	require.NoError(t, c.Sessions().Cancel(ctx, "ses_LQNz4v4Qvk"))

	sessions, err := c.Sessions().Iterator(nil, false).Collect(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)

	err = c.Sessions().Cancel(ctx, "cst_8wmqcHMN4U")
	require.ErrorIs(t, err, mollie.ErrInvalidResourceID)

	assert.Len(t, routes.requests(), 5)
}
