package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/crewboard/internal/cli/formatter"
)

func newTimelineCmd(app *App) *cobra.Command {
	var flags timelineFlags
	var width int

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Draw task or activity bars against a week or day window",
		Example: `  crewboard timeline --period daily
  crewboard timeline --variant activities --weeks 16
  crewboard timeline --member "Sarah Johnson" --project "Client Portal" --now 2024-01-14`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Timeline.GetTimeline(cmd.Context(), app.timelineRequest(cmd, flags))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTimeline(resp, app.width(width)))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&width, "width", 0, "Output width in columns (default terminal width)")

	return cmd
}
