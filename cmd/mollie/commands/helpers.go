package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/mollie-client/internal/constants"
	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
	"github.com/fivetwenty-io/mollie-client/pkg/mollieclient"
)

const (
	// Output formats.
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"

	// YAML formatting.
	defaultYAMLIndent = 2

	dateFormat = "2006-01-02 15:04"
)

// clientFactory builds the API client for a command. Tests replace it.
var clientFactory = func(ctx context.Context) (mollie.Client, error) {
	return mollieclient.New(ctx, buildClientConfig())
}

// CreateClient returns a client configured from flags, environment and the
// config file, in that order of precedence.
func CreateClient(ctx context.Context) (mollie.Client, error) {
	if viper.GetString("api_key") == "" && viper.GetString("access_token") == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	return clientFactory(ctx)
}

func buildClientConfig() *mollie.Config {
	config := &mollie.Config{
		APIKey:      viper.GetString("api_key"),
		AccessToken: viper.GetString("access_token"),
		BaseURL:     viper.GetString("base_url"),
		Testmode:    viper.GetBool("testmode"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = mollie.NewZerologLogger(newCLILogger())
	}

	return config
}

func newCLILogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}

// StandardJSONRenderer writes data as indented JSON to stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML to stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// renderOutput writes data in the selected output format, delegating the
// table format to renderTable.
func renderOutput[T any](data T, renderTable func() error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(data)
	case OutputFormatTable, "":
		return renderTable()
	default:
		return constants.ErrInvalidOutputFormat
	}
}

// listParams builds the query of a list command.
func listParams(limit int, from string) *mollie.QueryParams {
	params := mollie.NewQueryParams()
	if limit > 0 {
		params.WithLimit(min(limit, constants.MaxPageSize))
	}

	if from != "" {
		params.WithFrom(from)
	}

	return params
}

// collectItems returns the first page, or every item when all is set. more
// reports whether pages were left unread.
func collectItems[T mollie.Resource](
	ctx context.Context,
	all bool,
	page func(ctx context.Context) (*mollie.Collection[T], error),
	iterator func() *mollie.LazyCollection[T],
) (items []T, more bool, err error) {
	if all {
		items, err = iterator().Collect(ctx)
		if err != nil {
			return nil, false, err
		}

		return items, false, nil
	}

	first, err := page(ctx)
	if err != nil {
		return nil, false, err
	}

	return first.Items, first.HasNext(), nil
}

func printMoreHint(more bool) {
	if more {
		_, _ = os.Stdout.WriteString("\nMore results available. Use --all to fetch every page or --from to continue.\n")
	}
}

func formatMoney(money *mollie.Money) string {
	if money == nil {
		return constants.NotAvailable
	}

	return money.Value + " " + money.Currency
}

func formatTime(value *time.Time) string {
	if value == nil {
		return constants.NotAvailable
	}

	return value.Local().Format(dateFormat)
}

func formatValue(value string) string {
	if value == "" {
		return "-"
	}

	return value
}

func amountPayload(value, currency string) (mollie.Payload, error) {
	if value == "" || currency == "" {
		return nil, constants.ErrAmountRequired
	}

	return mollie.Payload{"currency": currency, "value": value}, nil
}
