package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/mollie-client/internal/constants"
	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer", "cst"},
		Short:   "Manage customers",
		Long:    "List, create, inspect and delete Mollie customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersDeleteCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		from     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List customers, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			params := listParams(limit, from)

			customers, more, err := collectItems(cmd.Context(), allPages,
				func(ctx context.Context) (*mollie.Collection[*mollie.Customer], error) {
					return client.Customers().Page(ctx, params)
				},
				func() *mollie.LazyCollection[*mollie.Customer] {
					return client.Customers().Iterator(params, false)
				})
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			return renderOutput(customers, func() error {
				return renderCustomersTable(customers, more)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&from, "from", "", "start listing at this customer ID")

	return cmd
}

func renderCustomersTable(customers []*mollie.Customer, more bool) error {
	if len(customers) == 0 {
		_, _ = os.Stdout.WriteString("No customers found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "Locale", "Created")

	for _, customer := range customers {
		_ = table.Append(customer.ID, formatValue(customer.Name), formatValue(customer.Email),
			formatValue(customer.Locale), formatTime(customer.CreatedAt))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	printMoreHint(more)

	return nil
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get customer details",
		Long:  "Display detailed information about a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(cmd.Context(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			return renderOutput(customer, func() error {
				return renderCustomersTable([]*mollie.Customer{customer}, false)
			})
		},
	}
}

func newCustomersCreateCommand() *cobra.Command {
	var (
		name   string
		email  string
		locale string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Long:  "Create a customer for recurring payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			body := mollie.Payload{}
			if name != "" {
				body["name"] = name
			}

			if email != "" {
				body["email"] = email
			}

			if locale != "" {
				body["locale"] = locale
			}

			customer, err := client.Customers().Create(cmd.Context(), body)
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			return renderOutput(customer, func() error {
				return renderCustomersTable([]*mollie.Customer{customer}, false)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "customer name")
	cmd.Flags().StringVar(&email, "email", "", "customer email address")
	cmd.Flags().StringVar(&locale, "locale", "", "customer locale, e.g. nl_NL")

	return cmd
}

func newCustomersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete CUSTOMER_ID",
		Short: "Delete a customer",
		Long:  "Delete a customer. Its subscriptions are canceled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really delete customer %s? Use --force to confirm\n", args[0])

				return nil
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			err = client.Customers().Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete customer: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Customer %s deleted\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}
