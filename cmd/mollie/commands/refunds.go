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

// NewRefundsCommand creates the refunds command group.
func NewRefundsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "refunds",
		Aliases: []string{"refund"},
		Short:   "Manage refunds",
		Long:    "List refunds across all payments or of a single payment",
	}

	cmd.AddCommand(newRefundsListCommand())
	cmd.AddCommand(newRefundsCancelCommand())

	return cmd
}

func newRefundsListCommand() *cobra.Command {
	var (
		allPages  bool
		limit     int
		from      string
		paymentID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List refunds",
		Long:  "List refunds, optionally limited to one payment with --payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			params := listParams(limit, from)

			page := func(ctx context.Context) (*mollie.Collection[*mollie.Refund], error) {
				return client.Refunds().Page(ctx, params)
			}
			iterator := func() *mollie.LazyCollection[*mollie.Refund] {
				return client.Refunds().Iterator(params, false)
			}

			if paymentID != "" {
				page = func(ctx context.Context) (*mollie.Collection[*mollie.Refund], error) {
					return client.PaymentRefunds().Page(ctx, paymentID, params)
				}
				iterator = func() *mollie.LazyCollection[*mollie.Refund] {
					return client.PaymentRefunds().Iterator(paymentID, params, false)
				}
			}

			refunds, more, err := collectItems(cmd.Context(), allPages, page, iterator)
			if err != nil {
				return fmt.Errorf("failed to list refunds: %w", err)
			}

			return renderOutput(refunds, func() error {
				return renderRefundsTable(refunds, more)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&from, "from", "", "start listing at this refund ID")
	cmd.Flags().StringVar(&paymentID, "payment", "", "only list refunds of this payment")

	return cmd
}

func renderRefundsTable(refunds []*mollie.Refund, more bool) error {
	if len(refunds) == 0 {
		_, _ = os.Stdout.WriteString("No refunds found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Payment", "Status", "Amount", "Description", "Created")

	for _, refund := range refunds {
		_ = table.Append(refund.ID, refund.PaymentID, refund.Status, formatMoney(refund.Amount),
			formatValue(refund.Description), formatTime(refund.CreatedAt))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	printMoreHint(more)

	return nil
}

func newRefundsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel PAYMENT_ID REFUND_ID",
		Short: "Cancel a refund",
		Long:  "Cancel a refund that is still queued or pending",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			err = client.PaymentRefunds().Cancel(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to cancel refund: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Refund %s canceled\n", args[1])

			return nil
		},
	}
}
