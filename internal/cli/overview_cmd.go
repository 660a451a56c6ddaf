package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/crewboard/internal/cli/formatter"
)

func newOverviewCmd(app *App) *cobra.Command {
	var members []string
	var width int
	var compact bool

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show member cards with task counts and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			if compact {
				return runOverviewTable(cmd, app, members)
			}
			return runOverview(cmd, app, members, width)
		},
	}

	cmd.Flags().StringSliceVar(&members, "member", nil, "Limit to member ID or name (repeatable)")
	cmd.Flags().IntVar(&width, "width", 0, "Output width in columns (default terminal width)")
	cmd.Flags().BoolVar(&compact, "compact", false, "One line per member instead of cards")

	return cmd
}

func runOverview(cmd *cobra.Command, app *App, members []string, width int) error {
	resp, err := app.Overview.GetOverview(cmd.Context(), app.overviewRequest(members))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatOverview(resp, app.width(width)))
	return nil
}

func runOverviewTable(cmd *cobra.Command, app *App, members []string) error {
	resp, err := app.Overview.GetOverview(cmd.Context(), app.overviewRequest(members))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOverviewTable(resp))
	return nil
}
