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

// NewSettlementsCommand creates the settlements command group.
func NewSettlementsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settlements",
		Aliases: []string{"settlement", "stl"},
		Short:   "Show settlements",
		Long:    "List and inspect payouts to the merchant bank account",
	}

	cmd.AddCommand(newSettlementsListCommand())
	cmd.AddCommand(newSettlementsGetCommand())
	cmd.AddCommand(newSettlementsAliasCommand("next", "Show the next settlement",
		func(ctx context.Context, client mollie.Client) (*mollie.Settlement, error) {
			return client.Settlements().Next(ctx)
		}))
	cmd.AddCommand(newSettlementsAliasCommand("open", "Show the open balance",
		func(ctx context.Context, client mollie.Client) (*mollie.Settlement, error) {
			return client.Settlements().Open(ctx)
		}))

	return cmd
}

func newSettlementsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		from     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List settlements",
		Long:  "List settlements, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			params := listParams(limit, from)

			settlements, more, err := collectItems(cmd.Context(), allPages,
				func(ctx context.Context) (*mollie.Collection[*mollie.Settlement], error) {
					return client.Settlements().Page(ctx, params)
				},
				func() *mollie.LazyCollection[*mollie.Settlement] {
					return client.Settlements().Iterator(params, false)
				})
			if err != nil {
				return fmt.Errorf("failed to list settlements: %w", err)
			}

			return renderOutput(settlements, func() error {
				return renderSettlementsTable(settlements, more)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&from, "from", "", "start listing at this settlement ID")

	return cmd
}

func renderSettlementsTable(settlements []*mollie.Settlement, more bool) error {
	if len(settlements) == 0 {
		_, _ = os.Stdout.WriteString("No settlements found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Reference", "Status", "Amount", "Created", "Settled")

	for _, settlement := range settlements {
		_ = table.Append(settlement.ID, formatValue(settlement.Reference), settlement.Status,
			formatMoney(settlement.Amount), formatTime(settlement.CreatedAt), formatTime(settlement.SettledAt))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	printMoreHint(more)

	return nil
}

func newSettlementsGetCommand() *cobra.Command {
	var captures bool

	cmd := &cobra.Command{
		Use:   "get SETTLEMENT_ID",
		Short: "Get settlement details",
		Long:  "Display a settlement, and with --captures the captures it pays out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			settlement, err := client.Settlements().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get settlement: %w", err)
			}

			if !captures {
				return renderOutput(settlement, func() error {
					return renderSettlementsTable([]*mollie.Settlement{settlement}, false)
				})
			}

			items, err := client.Settlements().CapturesIterator(settlement.ID, nil, false).Collect(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list settlement captures: %w", err)
			}

			return renderOutput(items, func() error {
				return renderCapturesTable(items)
			})
		},
	}

	cmd.Flags().BoolVar(&captures, "captures", false, "list the captures of the settlement")

	return cmd
}

func renderCapturesTable(captures []*mollie.Capture) error {
	if len(captures) == 0 {
		_, _ = os.Stdout.WriteString("No captures found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Payment", "Status", "Amount", "Created")

	for _, capture := range captures {
		_ = table.Append(capture.ID, capture.PaymentID, formatValue(capture.Status),
			formatMoney(capture.Amount), formatTime(capture.CreatedAt))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newSettlementsAliasCommand(
	use, short string,
	fetch func(ctx context.Context, client mollie.Client) (*mollie.Settlement, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			settlement, err := fetch(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to get %s settlement: %w", use, err)
			}

			return renderOutput(settlement, func() error {
				return renderSettlementsTable([]*mollie.Settlement{settlement}, false)
			})
		},
	}
}
