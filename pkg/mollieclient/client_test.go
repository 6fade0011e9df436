package mollieclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
	"github.com/fivetwenty-io/mollie-client/pkg/mollieclient"
)

const testAPIKey = "test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM"

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := mollieclient.New(context.Background(), nil)
		require.ErrorIs(t, err, mollie.ErrConfigRequired)
	})

	t.Run("requires credentials", func(t *testing.T) {
		t.Parallel()

		_, err := mollieclient.New(context.Background(), &mollie.Config{})
		require.ErrorIs(t, err, mollie.ErrAPIKeyRequired)
	})

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := mollieclient.New(context.Background(), &mollie.Config{APIKey: testAPIKey, BaseURL: "api.example.com/v2/"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := mollieclient.NewWithAPIKey(context.Background(), testAPIKey)
	require.NoError(t, err)
	assert.NotNil(t, client.Payments())
}

func TestNewWithAccessToken(t *testing.T) {
	t.Parallel()

	client, err := mollieclient.NewWithAccessToken(context.Background(), "access_Wwvu7egPcJLLJ9Kb7J632x8wJ2zMeJ", true)
	require.NoError(t, err)
	assert.NotNil(t, client.Orders())
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(mollieclient.EnvAPIKey, testAPIKey)
	t.Setenv(mollieclient.EnvBaseURL, "https://api.example.com/v2")

	client, err := mollieclient.NewFromEnv(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/v2/methods/ideal":
			writer.Header().Set("Content-Type", "application/hal+json")
			_, _ = io.WriteString(writer, `{"resource":"method","id":"ideal","description":"iDEAL"}`)
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	retrying := retryablehttp.NewClient()
	retrying.Logger = nil
	retrying.RetryMax = 1

	client, err := mollieclient.New(context.Background(), &mollie.Config{
		APIKey:     testAPIKey,
		BaseURL:    server.URL + "/v2",
		HTTPClient: retrying,
	})
	require.NoError(t, err)

	method, err := client.Methods().Get(context.Background(), "ideal", nil)
	require.NoError(t, err)
	assert.Equal(t, "iDEAL", method.Description)
}
