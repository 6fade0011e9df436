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

// NewPaymentsCommand creates the payments command group.
func NewPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment", "pay"},
		Short:   "Manage payments",
		Long:    "List, create, inspect, cancel and refund Mollie payments",
	}

	cmd.AddCommand(newPaymentsListCommand())
	cmd.AddCommand(newPaymentsGetCommand())
	cmd.AddCommand(newPaymentsCreateCommand())
	cmd.AddCommand(newPaymentsCancelCommand())
	cmd.AddCommand(newPaymentsRefundCommand())

	return cmd
}

func newPaymentsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		from     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		Long:  "List payments, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			params := listParams(limit, from)

			payments, more, err := collectItems(cmd.Context(), allPages,
				func(ctx context.Context) (*mollie.Collection[*mollie.Payment], error) {
					return client.Payments().Page(ctx, params)
				},
				func() *mollie.LazyCollection[*mollie.Payment] {
					return client.Payments().Iterator(params, false)
				})
			if err != nil {
				return fmt.Errorf("failed to list payments: %w", err)
			}

			return renderOutput(payments, func() error {
				return renderPaymentsTable(payments, more)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&from, "from", "", "start listing at this payment ID")

	return cmd
}

func renderPaymentsTable(payments []*mollie.Payment, more bool) error {
	if len(payments) == 0 {
		_, _ = os.Stdout.WriteString("No payments found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Status", "Amount", "Method", "Description", "Created")

	for _, payment := range payments {
		_ = table.Append(payment.ID, payment.Status, formatMoney(payment.Amount),
			formatValue(payment.Method), payment.Description, formatTime(payment.CreatedAt))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	printMoreHint(more)

	return nil
}

func newPaymentsGetCommand() *cobra.Command {
	var embed []string

	cmd := &cobra.Command{
		Use:   "get PAYMENT_ID",
		Short: "Get payment details",
		Long:  "Display detailed information about a payment",
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

			payment, err := client.Payments().Get(cmd.Context(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to get payment: %w", err)
			}

			return renderPaymentDetails(payment)
		},
	}

	cmd.Flags().StringSliceVar(&embed, "embed", nil, "embed related resources (refunds, chargebacks, captures)")

	return cmd
}

func renderPaymentDetails(payment *mollie.Payment) error {
	return renderOutput(payment, func() error {
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", payment.ID)
		_ = table.Append("Mode", payment.Mode)
		_ = table.Append("Status", payment.Status)
		_ = table.Append("Amount", formatMoney(payment.Amount))
		_ = table.Append("Refunded", formatMoney(payment.AmountRefunded))
		_ = table.Append("Remaining", formatMoney(payment.AmountRemaining))
		_ = table.Append("Description", payment.Description)
		_ = table.Append("Method", formatValue(payment.Method))
		_ = table.Append("Customer", formatValue(payment.CustomerID))
		_ = table.Append("Order", formatValue(payment.OrderID))
		_ = table.Append("Created", formatTime(payment.CreatedAt))
		_ = table.Append("Paid", formatTime(payment.PaidAt))

		if checkout := payment.CheckoutURL(); checkout != "" {
			_ = table.Append("Checkout", checkout)
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	})
}

func newPaymentsCreateCommand() *cobra.Command {
	var (
		amount      string
		currency    string
		description string
		redirectURL string
		webhookURL  string
		method      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a payment",
		Long:  "Create a payment and print its checkout URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			amountBody, err := amountPayload(amount, currency)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			body := mollie.Payload{
				"amount":      amountBody,
				"description": description,
			}

			if redirectURL != "" {
				body["redirectUrl"] = redirectURL
			}

			if webhookURL != "" {
				body["webhookUrl"] = webhookURL
			}

			if method != "" {
				body["method"] = method
			}

			payment, err := client.Payments().Create(cmd.Context(), body, nil)
			if err != nil {
				return fmt.Errorf("failed to create payment: %w", err)
			}

			return renderPaymentDetails(payment)
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount as a decimal string, e.g. 10.00")
	cmd.Flags().StringVar(&currency, "currency", "EUR", "ISO 4217 currency code")
	cmd.Flags().StringVar(&description, "description", "", "payment description")
	cmd.Flags().StringVar(&redirectURL, "redirect-url", "", "URL the customer returns to")
	cmd.Flags().StringVar(&webhookURL, "webhook-url", "", "URL notified on status changes")
	cmd.Flags().StringVar(&method, "method", "", "payment method, e.g. ideal")

	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newPaymentsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel PAYMENT_ID",
		Short: "Cancel a payment",
		Long:  "Cancel a payment that is still cancelable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			payment, err := client.Payments().Cancel(cmd.Context(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to cancel payment: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Payment %s is now %s\n", payment.ID, payment.Status)

			return nil
		},
	}
}

func newPaymentsRefundCommand() *cobra.Command {
	var (
		amount      string
		currency    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "refund PAYMENT_ID",
		Short: "Refund a payment",
		Long:  "Refund a payment in full, or partially with --amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			body := mollie.Payload{}
			if description != "" {
				body["description"] = description
			}

			if amount != "" {
				amountBody, err := amountPayload(amount, currency)
				if err != nil {
					return err
				}

				body["amount"] = amountBody
			} else {
				payment, err := client.Payments().Get(cmd.Context(), args[0], nil)
				if err != nil {
					return fmt.Errorf("failed to get payment: %w", err)
				}

				if payment.AmountRemaining == nil {
					return fmt.Errorf("payment %s: %w", args[0], constants.ErrAmountRequired)
				}

				body["amount"] = mollie.Payload{
					"currency": payment.AmountRemaining.Currency,
					"value":    payment.AmountRemaining.Value,
				}
			}

			refund, err := client.PaymentRefunds().Create(cmd.Context(), args[0], body)
			if err != nil {
				return fmt.Errorf("failed to refund payment: %w", err)
			}

			return renderOutput(refund, func() error {
				_, _ = fmt.Fprintf(os.Stdout, "Refund %s of %s is %s\n", refund.ID, formatMoney(refund.Amount), refund.Status)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "partial amount to refund")
	cmd.Flags().StringVar(&currency, "currency", "EUR", "ISO 4217 currency code")
	cmd.Flags().StringVar(&description, "description", "", "refund description")

	return cmd
}
