package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'mollie login' or set MOLLIE_API_KEY")
	ErrInvalidAPIKey      = errors.New("API key must start with live_, test_ or access_")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("output format must be table, json or yaml")
	ErrAmountRequired      = errors.New("--amount and --currency are required")
)
