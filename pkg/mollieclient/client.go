package mollieclient

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/mollie-client/internal/client"
	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// Environment variables read by NewFromEnv.
const (
	EnvAPIKey      = "MOLLIE_API_KEY"
	EnvAccessToken = "MOLLIE_ACCESS_TOKEN"
	EnvBaseURL     = "MOLLIE_BASE_URL"
	EnvTestmode    = "MOLLIE_TESTMODE"
)

// New creates a new Mollie API client.
func New(ctx context.Context, config *mollie.Config) (mollie.Client, error) {
	if config == nil {
		return nil, mollie.ErrConfigRequired
	}

	config.BaseURL = normalizeBaseURL(config.BaseURL)

	c, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// normalizeBaseURL trims the trailing slash and adds https:// to bare hosts.
// An empty value selects the default endpoint.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return ""
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// NewWithAPIKey creates a new client authenticated with an organization API key.
func NewWithAPIKey(ctx context.Context, apiKey string) (mollie.Client, error) {
	return New(ctx, &mollie.Config{APIKey: apiKey})
}

// NewWithAccessToken creates a new client authenticated with an OAuth or
// organization access token.
func NewWithAccessToken(ctx context.Context, token string, testmode bool) (mollie.Client, error) {
	return New(ctx, &mollie.Config{AccessToken: token, Testmode: testmode})
}

// NewWithHTTPClient creates a new client that sends requests through handle.
// handle may be an adapter, *http.Client, *retryablehttp.Client or
// *rehttp.Transport.
func NewWithHTTPClient(ctx context.Context, apiKey string, handle any) (mollie.Client, error) {
	return New(ctx, &mollie.Config{APIKey: apiKey, HTTPClient: handle})
}

// NewFromEnv creates a new client from MOLLIE_* environment variables.
func NewFromEnv(ctx context.Context) (mollie.Client, error) {
	testmode := os.Getenv(EnvTestmode)

	return New(ctx, &mollie.Config{
		APIKey:      os.Getenv(EnvAPIKey),
		AccessToken: os.Getenv(EnvAccessToken),
		BaseURL:     os.Getenv(EnvBaseURL),
		Testmode:    testmode == "true" || testmode == "1",
	})
}
