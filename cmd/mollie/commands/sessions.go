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

// NewSessionsCommand creates the sessions command group.
func NewSessionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sessions",
		Aliases: []string{"session"},
		Short:   "Manage checkout sessions",
		Long:    "List, inspect and cancel checkout sessions",
	}

	cmd.AddCommand(newSessionsListCommand())
	cmd.AddCommand(newSessionsGetCommand())
	cmd.AddCommand(newSessionsCancelCommand())

	return cmd
}

func newSessionsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		from     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions",
		Long:  "List checkout sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			params := listParams(limit, from)

			sessions, more, err := collectItems(cmd.Context(), allPages,
				func(ctx context.Context) (*mollie.Collection[*mollie.Session], error) {
					return client.Sessions().Page(ctx, params)
				},
				func() *mollie.LazyCollection[*mollie.Session] {
					return client.Sessions().Iterator(params, false)
				})
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}

			return renderOutput(sessions, func() error {
				return renderSessionsTable(sessions, more)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&from, "from", "", "start listing at this session ID")

	return cmd
}

func renderSessionsTable(sessions []*mollie.Session, more bool) error {
	if len(sessions) == 0 {
		_, _ = os.Stdout.WriteString("No sessions found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Status", "Amount", "Description", "Created", "Expires")

	for _, session := range sessions {
		_ = table.Append(session.ID, session.Status, formatMoney(session.Amount),
			formatValue(session.Description), formatTime(session.CreatedAt), formatTime(session.ExpiresAt))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	printMoreHint(more)

	return nil
}

func newSessionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SESSION_ID",
		Short: "Get session details",
		Long:  "Display a checkout session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			session, err := client.Sessions().Get(cmd.Context(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get session: %w", err)
			}

			return renderOutput(session, func() error {
				return renderSessionsTable([]*mollie.Session{session}, false)
			})
		},
	}
}

func newSessionsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel SESSION_ID",
		Short: "Cancel a session",
		Long:  "Cancel an open checkout session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			err = client.Sessions().Cancel(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel session: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Session %s canceled\n", args[0])

			return nil
		},
	}
}
