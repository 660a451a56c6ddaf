package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/crewboard/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the timeline to other formats",
	}
	cmd.AddCommand(newExportSVGCmd(app))
	return cmd
}

func newExportSVGCmd(app *App) *cobra.Command {
	var flags timelineFlags
	var out, stylePath string

	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Write the timeline as a standalone SVG chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("style") && app.Config != nil {
				stylePath = app.Config.SVGStyle
			}
			style, err := export.LoadStyle(app.Fs, stylePath)
			if err != nil {
				return err
			}

			resp, err := app.Timeline.GetTimeline(cmd.Context(), app.timelineRequest(cmd, flags))
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				return export.RenderGanttSVG(cmd.OutOrStdout(), resp, style)
			}

			f, err := app.Fs.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := export.RenderGanttSVG(f, resp, style); err != nil {
				_ = f.Close()
				return fmt.Errorf("writing %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			return reportExport(cmd.ErrOrStderr(), out, resp.RowCount, resp.SkippedCount)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "-", "Output file, - for stdout")
	cmd.Flags().StringVar(&stylePath, "style", "", "YAML style file (default from config, then built-in)")

	return cmd
}

func reportExport(w io.Writer, path string, rows, skipped int) error {
	msg := fmt.Sprintf("Wrote %s (%d rows", path, rows)
	if skipped > 0 {
		msg += fmt.Sprintf(", %d skipped", skipped)
	}
	_, err := fmt.Fprintln(w, msg+")")
	return err
}
