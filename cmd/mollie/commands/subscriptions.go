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

// NewSubscriptionsCommand creates the subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "sub"},
		Short:   "Manage subscriptions",
		Long:    "List and cancel customer subscriptions",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsCancelCommand())

	return cmd
}

func newSubscriptionsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		from     string
	)

	cmd := &cobra.Command{
		Use:   "list [CUSTOMER_ID]",
		Short: "List subscriptions",
		Long:  "List the subscriptions of a customer, or of every customer when no ID is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			params := listParams(limit, from)
			subscriptionsClient := client.Subscriptions()

			page := func(ctx context.Context) (*mollie.Collection[*mollie.Subscription], error) {
				return subscriptionsClient.All(ctx, params)
			}
			iterator := func() *mollie.LazyCollection[*mollie.Subscription] {
				return subscriptionsClient.AllIterator(params, false)
			}

			if len(args) == 1 {
				customerID := args[0]
				page = func(ctx context.Context) (*mollie.Collection[*mollie.Subscription], error) {
					return subscriptionsClient.Page(ctx, customerID, params)
				}
				iterator = func() *mollie.LazyCollection[*mollie.Subscription] {
					return subscriptionsClient.Iterator(customerID, params, false)
				}
			}

			subscriptions, more, err := collectItems(cmd.Context(), allPages, page, iterator)
			if err != nil {
				return fmt.Errorf("failed to list subscriptions: %w", err)
			}

			return renderOutput(subscriptions, func() error {
				return renderSubscriptionsTable(subscriptions, more)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&from, "from", "", "start listing at this subscription ID")

	return cmd
}

func renderSubscriptionsTable(subscriptions []*mollie.Subscription, more bool) error {
	if len(subscriptions) == 0 {
		_, _ = os.Stdout.WriteString("No subscriptions found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Customer", "Status", "Amount", "Interval", "Next Payment", "Description")

	for _, subscription := range subscriptions {
		_ = table.Append(subscription.ID, subscription.CustomerID, subscription.Status,
			formatMoney(subscription.Amount), subscription.Interval,
			formatValue(subscription.NextPaymentDate), subscription.Description)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	printMoreHint(more)

	return nil
}

func newSubscriptionsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel CUSTOMER_ID SUBSCRIPTION_ID",
		Short: "Cancel a subscription",
		Long:  "Cancel a subscription so no further payments are created",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Cancel(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to cancel subscription: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Subscription %s is now %s\n", subscription.ID, subscription.Status)

			return nil
		},
	}
}
