package commands

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/mollie-client/internal/constants"
	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

const testAPIKey = "test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM"

// useViper resets the global viper state and points the config file at a
// temporary directory.
func useViper(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(configFile)

	return configFile
}

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	reader, writer, err := os.Pipe()
	require.NoError(t, err)

	original := os.Stdout
	os.Stdout = writer

	runErr := fn()

	_ = writer.Close()
	os.Stdout = original

	out, err := io.ReadAll(reader)
	require.NoError(t, err)

	return string(out), runErr
}

func TestCreateClient_RequiresCredentials(t *testing.T) {
	useViper(t)

	_, err := CreateClient(context.Background())
	require.ErrorIs(t, err, constants.ErrNoAPIKeyConfigured)
}

func TestListParams(t *testing.T) {
	t.Parallel()

	params := listParams(1000, "tr_abc")
	assert.Equal(t, constants.MaxPageSize, params.Limit)
	assert.Equal(t, "tr_abc", params.From)

	params = listParams(0, "")
	assert.Zero(t, params.Limit)
	assert.Empty(t, params.ToValues())
}

func TestFormatters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constants.NotAvailable, formatMoney(nil))
	assert.Equal(t, "10.00 EUR", formatMoney(&mollie.Money{Currency: "EUR", Value: "10.00"}))
	assert.Equal(t, constants.NotAvailable, formatTime(nil))
	assert.Equal(t, "-", formatValue(""))
	assert.Equal(t, "ideal", formatValue("ideal"))
}

func TestAmountPayload(t *testing.T) {
	t.Parallel()

	_, err := amountPayload("", "EUR")
	require.ErrorIs(t, err, constants.ErrAmountRequired)

	payload, err := amountPayload("5.00", "USD")
	require.NoError(t, err)
	assert.Equal(t, mollie.Payload{"currency": "USD", "value": "5.00"}, payload)
}

func TestMaskSecret(t *testing.T) {
	t.Parallel()

	assert.Empty(t, maskSecret(""))
	assert.Equal(t, "test_"+constants.MaskedSecret+"lXsM", maskSecret(testAPIKey))
	assert.Equal(t, "access_"+constants.MaskedSecret, maskSecret("access_ab"))
}

func TestSetConfigValue(t *testing.T) {
	t.Parallel()

	config := &Config{}

	require.NoError(t, setConfigValue(config, "api_key", testAPIKey))
	assert.Equal(t, testAPIKey, config.APIKey)

	require.ErrorIs(t, setConfigValue(config, "api_key", "foo"), constants.ErrInvalidAPIKey)
	require.ErrorIs(t, setConfigValue(config, "output", "xml"), constants.ErrInvalidOutputFormat)
	require.ErrorIs(t, setConfigValue(config, "colour", "red"), constants.ErrUnknownConfigKey)

	require.NoError(t, setConfigValue(config, "testmode", "true"))
	assert.True(t, config.Testmode)
	require.Error(t, setConfigValue(config, "testmode", "maybe"))

	require.NoError(t, unsetConfigValue(config, "api_key"))
	assert.Empty(t, config.APIKey)
	require.ErrorIs(t, unsetConfigValue(config, "colour"), constants.ErrUnknownConfigKey)
}

func TestConfigSetCommand_WritesFile(t *testing.T) {
	configFile := useViper(t)

	cmd := NewConfigCommand()
	cmd.SetArgs([]string{"set", "api_key", testAPIKey})

	_, err := captureStdout(t, func() error {
		return cmd.ExecuteContext(context.Background())
	})
	require.NoError(t, err)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var saved Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, testAPIKey, saved.APIKey)

	info, err := os.Stat(configFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())
}

func TestLoginCommand_SkipVerify(t *testing.T) {
	configFile := useViper(t)
	viper.Set("access_token", "access_Gzb2RkkwBWQ4")

	cmd := NewLoginCommand()
	cmd.SetArgs([]string{"--skip-verify"})

	out, err := captureStdout(t, func() error {
		return cmd.ExecuteContext(context.Background())
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in with access token access_")

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "access_Gzb2RkkwBWQ4")
	assert.NotContains(t, string(data), "api_key")
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestPaymentsListCommand_Output(t *testing.T) {
	useViper(t)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v2/payments", request.URL.Path)
		assert.Equal(t, "Bearer "+testAPIKey, request.Header.Get("Authorization"))
		assert.Equal(t, "5", request.URL.Query().Get("limit"))

		writer.Header().Set("Content-Type", "application/hal+json")
		_, _ = io.WriteString(writer, `{
			"count": 1,
			"_embedded": {"payments": [{
				"resource": "payment",
				"id": "tr_WDqYK6vllg",
				"status": "paid",
				"amount": {"currency": "EUR", "value": "10.00"},
				"description": "Order #12345"
			}]},
			"_links": {"next": {"href": "https://api.mollie.com/v2/payments?from=tr_X&limit=5", "type": "application/hal+json"}}
		}`)
	}))
	t.Cleanup(server.Close)

	viper.Set("api_key", testAPIKey)
	viper.Set("base_url", server.URL+"/v2")

	t.Run("table", func(t *testing.T) {
		viper.Set("output", OutputFormatTable)

		cmd := NewPaymentsCommand()
		cmd.SetArgs([]string{"list", "--limit", "5"})

		out, err := captureStdout(t, func() error {
			return cmd.ExecuteContext(context.Background())
		})
		require.NoError(t, err)
		assert.Contains(t, out, "tr_WDqYK6vllg")
		assert.Contains(t, out, "10.00 EUR")
		assert.Contains(t, out, "More results available")
	})

	t.Run("json", func(t *testing.T) {
		viper.Set("output", OutputFormatJSON)

		cmd := NewPaymentsCommand()
		cmd.SetArgs([]string{"list", "--limit", "5"})

		out, err := captureStdout(t, func() error {
			return cmd.ExecuteContext(context.Background())
		})
		require.NoError(t, err)
		assert.Contains(t, out, `"id": "tr_WDqYK6vllg"`)
		assert.NotContains(t, out, "More results available")
	})

	t.Run("invalid ID is rejected locally", func(t *testing.T) {
		viper.Set("output", OutputFormatTable)

		cmd := NewPaymentsCommand()
		cmd.SetArgs([]string{"get", "ord_wrong"})
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		_, err := captureStdout(t, func() error {
			return cmd.ExecuteContext(context.Background())
		})
		require.ErrorIs(t, err, mollie.ErrInvalidResourceID)
	})
}

func TestRenderOutput_RejectsUnknownFormat(t *testing.T) {
	useViper(t)
	viper.Set("output", "xml")

	err := renderOutput("data", func() error { return nil })
	require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)
}
