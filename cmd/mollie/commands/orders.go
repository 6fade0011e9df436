package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/mollie-client/internal/constants"
	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Manage orders",
		Long:    "List, inspect and cancel Mollie orders",
	}

	cmd.AddCommand(newOrdersListCommand())
	cmd.AddCommand(newOrdersGetCommand())
	cmd.AddCommand(newOrdersCancelCommand())

	return cmd
}

func newOrdersListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		from     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Long:  "List orders, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			params := listParams(limit, from)

			orders, more, err := collectItems(cmd.Context(), allPages,
				func(ctx context.Context) (*mollie.Collection[*mollie.Order], error) {
					return client.Orders().Page(ctx, params)
				},
				func() *mollie.LazyCollection[*mollie.Order] {
					return client.Orders().Iterator(params, false)
				})
			if err != nil {
				return fmt.Errorf("failed to list orders: %w", err)
			}

			return renderOutput(orders, func() error {
				return renderOrdersTable(orders, more)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&from, "from", "", "start listing at this order ID")

	return cmd
}

func renderOrdersTable(orders []*mollie.Order, more bool) error {
	if len(orders) == 0 {
		_, _ = os.Stdout.WriteString("No orders found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Number", "Status", "Amount", "Method", "Created")

	for _, order := range orders {
		_ = table.Append(order.ID, order.OrderNumber, order.Status, formatMoney(order.Amount),
			formatValue(order.Method), formatTime(order.CreatedAt))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	printMoreHint(more)

	return nil
}

func newOrdersGetCommand() *cobra.Command {
	var embed []string

	cmd := &cobra.Command{
		Use:   "get ORDER_ID",
		Short: "Get order details",
		Long:  "Display an order with its lines and, with --embed, its payments, refunds or shipments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			params := mollie.NewQueryParams()
			if len(embed) > 0 {
				params.WithEmbed(embed...)
			}

			order, err := client.Orders().Get(cmd.Context(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to get order: %w", err)
			}

			return renderOutput(order, func() error {
				return renderOrderDetails(order)
			})
		},
	}

	cmd.Flags().StringSliceVar(&embed, "embed", nil, "embed related resources (payments, refunds, shipments)")

	return cmd
}

func renderOrderDetails(order *mollie.Order) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", order.ID)
	_ = table.Append("Number", order.OrderNumber)
	_ = table.Append("Status", order.Status)
	_ = table.Append("Amount", formatMoney(order.Amount))
	_ = table.Append("Captured", formatMoney(order.AmountCaptured))
	_ = table.Append("Refunded", formatMoney(order.AmountRefunded))
	_ = table.Append("Method", formatValue(order.Method))
	_ = table.Append("Created", formatTime(order.CreatedAt))

	if payments := order.Payments(); payments != nil {
		_ = table.Append("Payments", strconv.Itoa(payments.Len()))
	}

	if shipments := order.Shipments(); shipments != nil {
		_ = table.Append("Shipments", strconv.Itoa(shipments.Len()))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	lines, err := order.LineItems()
	if err != nil || lines.Len() == 0 {
		return nil //nolint:nilerr // lines are optional in the details view
	}

	_, _ = os.Stdout.WriteString("\nLines:\n")

	linesTable := tablewriter.NewWriter(os.Stdout)
	linesTable.Header("ID", "Name", "Status", "Quantity", "Total")

	for _, line := range lines.Items {
		_ = linesTable.Append(line.ID, line.Name, line.Status, strconv.Itoa(line.Quantity), formatMoney(line.TotalAmount))
	}

	err = linesTable.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newOrdersCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel ORDER_ID",
		Short: "Cancel an order",
		Long:  "Cancel an order that is still cancelable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			order, err := client.Orders().Cancel(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel order: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Order %s is now %s\n", order.ID, order.Status)

			return nil
		},
	}
}
