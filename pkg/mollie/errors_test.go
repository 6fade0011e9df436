package mollie_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		expected string
		field    string
		docs     string
	}{
		{
			name:     "problem with field",
			status:   http.StatusUnprocessableEntity,
			body:     `{"status":422,"title":"Unprocessable Entity","detail":"The amount is higher than the maximum","field":"amount","_links":{"documentation":{"href":"https://docs.mollie.com/overview/handling-errors","type":"text/html"}}}`,
			expected: "Error executing API call (422: Unprocessable Entity): The amount is higher than the maximum. Field: amount",
			field:    "amount",
			docs:     "https://docs.mollie.com/overview/handling-errors",
		},
		{
			name:     "problem without field",
			status:   http.StatusNotFound,
			body:     `{"status":404,"title":"Not Found","detail":"No payment exists with token tr_x."}`,
			expected: "Error executing API call (404: Not Found): No payment exists with token tr_x.",
		},
		{
			name:     "body is not JSON",
			status:   http.StatusBadGateway,
			body:     `<html>bad gateway</html>`,
			expected: "Error executing API call (502: Bad Gateway): <html>bad gateway</html>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			apiErr := mollie.ParseAPIError(tt.status, []byte(tt.body))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.expected, apiErr.Error())
			assert.Equal(t, tt.field, apiErr.Field)
			assert.Equal(t, tt.docs, apiErr.DocumentationURL)
			assert.Equal(t, []byte(tt.body), apiErr.Body)
		})
	}
}

func TestAPIError_TransportFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	apiErr := &mollie.APIError{Detail: cause.Error(), Err: cause}

	assert.Equal(t, "Error while sending request: dial tcp: connection refused", apiErr.Error())
	require.ErrorIs(t, apiErr, cause)
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("failed to get payment: %w", mollie.ParseAPIError(http.StatusNotFound, nil))

	assert.True(t, mollie.IsNotFound(wrapped))
	assert.False(t, mollie.IsUnauthorized(wrapped))
	assert.True(t, mollie.IsUnauthorized(mollie.ParseAPIError(http.StatusUnauthorized, []byte(`{}`))))
	assert.True(t, mollie.IsUnprocessable(mollie.ParseAPIError(http.StatusUnprocessableEntity, []byte(`{}`))))
	assert.False(t, mollie.IsNotFound(errors.New("plain")))
	assert.False(t, mollie.IsNotFound(nil))
}

func TestGuardID(t *testing.T) {
	t.Parallel()

	require.NoError(t, mollie.GuardID(mollie.PaymentKind, "tr_WDqYK6vllg"))
	require.NoError(t, mollie.GuardID(mollie.MethodKind, "ideal"), "kinds without prefix accept any id")

	err := mollie.GuardID(mollie.PaymentKind, "ord_pbjz8x")
	require.ErrorIs(t, err, mollie.ErrInvalidResourceID)
	assert.Equal(t, "invalid Payment id 'ord_pbjz8x': an id should start with 'tr_'", err.Error())

	var invalid *mollie.InvalidResourceIDError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "tr_", invalid.Prefix)

	err = mollie.GuardID(mollie.MethodKind, "")
	require.ErrorIs(t, err, mollie.ErrInvalidResourceID)
	assert.Equal(t, "invalid Method id: empty", err.Error())
}
