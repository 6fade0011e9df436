package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// NewMethodsCommand creates the methods command group.
func NewMethodsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "methods",
		Aliases: []string{"method"},
		Short:   "Show payment methods",
		Long:    "List and inspect the payment methods of the current profile",
	}

	cmd.AddCommand(newMethodsListCommand())
	cmd.AddCommand(newMethodsGetCommand())

	return cmd
}

func newMethodsListCommand() *cobra.Command {
	var (
		all      bool
		amount   string
		currency string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payment methods",
		Long:  "List the enabled payment methods, or every method Mollie offers with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			params := mollie.NewQueryParams()
			if amount != "" {
				params.WithFilter("amount[value]", amount)
				params.WithFilter("amount[currency]", currency)
			}

			var methods *mollie.Collection[*mollie.Method]
			if all {
				methods, err = client.Methods().ListAll(cmd.Context(), params)
			} else {
				methods, err = client.Methods().ListEnabled(cmd.Context(), params)
			}

			if err != nil {
				return fmt.Errorf("failed to list payment methods: %w", err)
			}

			return renderOutput(methods.Items, func() error {
				return renderMethodsTable(methods.Items)
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include methods not enabled on the profile")
	cmd.Flags().StringVar(&amount, "amount", "", "only methods that support this amount")
	cmd.Flags().StringVar(&currency, "currency", "EUR", "currency of --amount")

	return cmd
}

func renderMethodsTable(methods []*mollie.Method) error {
	if len(methods) == 0 {
		_, _ = os.Stdout.WriteString("No payment methods found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Description", "Status", "Minimum", "Maximum")

	for _, method := range methods {
		_ = table.Append(method.ID, method.Description, formatValue(method.Status),
			formatMoney(method.MinimumAmount), formatMoney(method.MaximumAmount))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newMethodsGetCommand() *cobra.Command {
	var include []string

	cmd := &cobra.Command{
		Use:   "get METHOD_ID",
		Short: "Get payment method details",
		Long:  "Display a payment method, optionally with its issuers or pricing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			params := mollie.NewQueryParams()
			if len(include) > 0 {
				params.WithInclude(include...)
			}

			method, err := client.Methods().Get(cmd.Context(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to get payment method: %w", err)
			}

			return renderOutput(method, func() error {
				return renderMethodsTable([]*mollie.Method{method})
			})
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil, "include issuers or pricing")

	return cmd
}
