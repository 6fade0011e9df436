package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mollie-client/cmd/mollie/commands"
)

func subcommandNames(t *testing.T, names []string, expected ...string) {
	t.Helper()

	assert.Len(t, names, len(expected))

	for _, name := range expected {
		assert.Contains(t, names, name)
	}
}

func TestNewPaymentsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewPaymentsCommand()
	assert.Equal(t, "payments", cmd.Use)
	assert.Equal(t, []string{"payment", "pay"}, cmd.Aliases)
	assert.Equal(t, "Manage payments", cmd.Short)

	names := make([]string, 0, len(cmd.Commands()))
	for _, subcmd := range cmd.Commands() {
		names = append(names, subcmd.Name())
	}

	subcommandNames(t, names, "list", "get", "create", "cancel", "refund")
}

func TestPaymentsListCommand(t *testing.T) {
	t.Parallel()

	cmd := findSubcommand(commands.NewPaymentsCommand(), "list")
	require.NotNil(t, cmd)
	assert.Equal(t, "List payments", cmd.Short)
	assert.NotNil(t, cmd.RunE)

	for _, flagName := range []string{"all", "limit", "from"} {
		assert.NotNil(t, cmd.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}

	assert.Equal(t, "50", cmd.Flags().Lookup("limit").DefValue)
}

func TestPaymentsCreateCommand(t *testing.T) {
	t.Parallel()

	cmd := findSubcommand(commands.NewPaymentsCommand(), "create")
	require.NotNil(t, cmd)

	for _, flagName := range []string{"amount", "currency", "description", "redirect-url", "webhook-url", "method"} {
		assert.NotNil(t, cmd.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}

	assert.Equal(t, "EUR", cmd.Flags().Lookup("currency").DefValue)
}

func TestPaymentsRefundCommand(t *testing.T) {
	t.Parallel()

	cmd := findSubcommand(commands.NewPaymentsCommand(), "refund")
	require.NotNil(t, cmd)
	assert.Equal(t, "refund PAYMENT_ID", cmd.Use)
	assert.NotNil(t, cmd.Args)
	assert.NotNil(t, cmd.Flags().Lookup("amount"))
}

func TestNewRefundsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewRefundsCommand()
	assert.Equal(t, "refunds", cmd.Use)

	list := findSubcommand(cmd, "list")
	require.NotNil(t, list)
	assert.NotNil(t, list.Flags().Lookup("payment"))

	cancel := findSubcommand(cmd, "cancel")
	require.NotNil(t, cancel)
	assert.Equal(t, "cancel PAYMENT_ID REFUND_ID", cancel.Use)
}

func TestNewOrdersCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewOrdersCommand()
	assert.Equal(t, "orders", cmd.Use)
	assert.Equal(t, []string{"order"}, cmd.Aliases)

	get := findSubcommand(cmd, "get")
	require.NotNil(t, get)
	assert.Equal(t, "get ORDER_ID", get.Use)
	assert.NotNil(t, get.Flags().Lookup("embed"))

	assert.NotNil(t, findSubcommand(cmd, "list"))
	assert.NotNil(t, findSubcommand(cmd, "cancel"))
}

func TestNewCustomersCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewCustomersCommand()
	assert.Equal(t, "customers", cmd.Use)

	names := make([]string, 0, len(cmd.Commands()))
	for _, subcmd := range cmd.Commands() {
		names = append(names, subcmd.Name())
	}

	subcommandNames(t, names, "list", "get", "create", "delete")

	deleteCmd := findSubcommand(cmd, "delete")
	require.NotNil(t, deleteCmd)
	assert.Equal(t, "f", deleteCmd.Flags().Lookup("force").Shorthand)
}

func TestNewSubscriptionsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewSubscriptionsCommand()
	assert.Equal(t, "subscriptions", cmd.Use)

	list := findSubcommand(cmd, "list")
	require.NotNil(t, list)
	assert.Equal(t, "list [CUSTOMER_ID]", list.Use)
	require.Error(t, list.Args(list, []string{"cst_1", "cst_2"}))
	require.NoError(t, list.Args(list, nil))
}

func TestNewSessionsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewSessionsCommand()
	assert.Equal(t, "sessions", cmd.Use)

	names := make([]string, 0, len(cmd.Commands()))
	for _, subcmd := range cmd.Commands() {
		names = append(names, subcmd.Name())
	}

	subcommandNames(t, names, "list", "get", "cancel")

	cancel := findSubcommand(cmd, "cancel")
	require.NotNil(t, cancel)
	assert.Equal(t, "cancel SESSION_ID", cancel.Use)
}

func TestNewMethodsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewMethodsCommand()
	assert.Equal(t, "methods", cmd.Use)

	list := findSubcommand(cmd, "list")
	require.NotNil(t, list)

	for _, flagName := range []string{"all", "amount", "currency"} {
		assert.NotNil(t, list.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}

	get := findSubcommand(cmd, "get")
	require.NotNil(t, get)
	assert.NotNil(t, get.Flags().Lookup("include"))
}

func TestNewSettlementsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewSettlementsCommand()
	assert.Equal(t, "settlements", cmd.Use)

	names := make([]string, 0, len(cmd.Commands()))
	for _, subcmd := range cmd.Commands() {
		names = append(names, subcmd.Name())
	}

	subcommandNames(t, names, "list", "get", "next", "open")
}

func TestNewConfigCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)

	names := make([]string, 0, len(cmd.Commands()))
	for _, subcmd := range cmd.Commands() {
		names = append(names, subcmd.Name())
	}

	subcommandNames(t, names, "show", "set", "unset", "clear")

	set := findSubcommand(cmd, "set")
	require.NotNil(t, set)
	assert.Contains(t, set.Long, "api_key")
	assert.Contains(t, set.Long, "testmode")
}

func TestNewLoginCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewLoginCommand()
	assert.Equal(t, "login", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("skip-verify"))

	logout := commands.NewLogoutCommand()
	assert.Equal(t, "logout", logout.Use)
}

func TestNewVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewVersionCommand("1.2.3", "abc", "today")
	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Display version information", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}
