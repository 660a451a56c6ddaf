package cli

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/crewboard/internal/cli/formatter"
	"github.com/alexanderramin/crewboard/internal/domain"
	"github.com/alexanderramin/crewboard/internal/importer"
)

func newValidateCmd(app *App) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:         "validate FILE",
		Short:       "Check a roster file and list every problem found",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{skipBootstrap: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Fs == nil {
				app.Fs = afero.NewOsFs()
			}
			return runValidate(cmd.OutOrStdout(), app.Fs, args[0], quiet)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print problems")

	return cmd
}

func runValidate(w io.Writer, fs afero.Fs, path string, quiet bool) error {
	schema, err := importer.LoadRosterSchema(fs, path)
	if err != nil {
		return err
	}

	if errs := importer.ValidateRosterSchema(schema); len(errs) > 0 {
		fmt.Fprintln(w, formatter.Header("Problems"))
		for _, e := range errs {
			fmt.Fprintln(w, formatter.StyleRed.Render("  ✖ "+e.Error()))
		}
		return fmt.Errorf("%s: %d problem(s) found", path, len(errs))
	}

	warnings := importer.LintDates(schema)
	if len(warnings) > 0 {
		fmt.Fprint(w, formatter.Warnings(warnings))
	}
	if quiet {
		return nil
	}

	roster := importer.Convert(schema)
	fmt.Fprint(w, formatter.RenderTree(rosterTree(roster)))
	fmt.Fprintln(w, formatter.StyleGreen.Render(fmt.Sprintf("✔ %s is valid: %d members, %d tasks, %d activity groups",
		path, len(roster.Members), roster.TaskCount(), len(roster.Groups))))
	return nil
}

// rosterTree lists members with their tasks, then activity groups with
// their activities.
func rosterTree(r *domain.Roster) []formatter.TreeItem {
	var items []formatter.TreeItem
	for _, m := range r.Members {
		items = append(items, formatter.TreeItem{
			Title:  m.Name,
			Detail: fmt.Sprintf("%d tasks", len(m.Tasks)),
		})
		for i, t := range m.Tasks {
			items = append(items, formatter.TreeItem{
				Title:  t.Title,
				Level:  1,
				IsLast: i == len(m.Tasks)-1,
				Status: t.Status,
				Detail: t.DueDate,
			})
		}
	}
	for _, g := range r.Groups {
		items = append(items, formatter.TreeItem{
			Title:  g.Title,
			Detail: fmt.Sprintf("%d activities", len(g.Activities)),
		})
		for i, act := range g.Activities {
			items = append(items, formatter.TreeItem{
				Title:  act.Title,
				Level:  1,
				IsLast: i == len(g.Activities)-1,
				Status: act.Status,
				Detail: fmt.Sprintf("wk %d+%d", act.StartWeek, act.Duration),
			})
		}
	}
	return items
}
