package cli

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/crewboard/internal/watch"
)

func newTUICmd(app *App) *cobra.Command {
	var watchRoster bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled := app.Config != nil && app.Config.Watch
			if cmd.Flags().Changed("watch") {
				enabled = watchRoster
			}
			return runTUI(cmd, app, enabled)
		},
	}

	cmd.Flags().BoolVar(&watchRoster, "watch", false, "Reload when the roster file changes")

	return cmd
}

// runTUI starts the bubbletea program. With watching on, a file watcher
// feeds change signals into the model, which reloads on its own loop.
func runTUI(cmd *cobra.Command, app *App, watchRoster bool) error {
	var changes <-chan struct{}
	if watchRoster {
		if app.RosterPath == "" {
			return fmt.Errorf("--watch needs a roster file (--roster or the roster config key)")
		}
		var opts []watch.Option
		if app.Config != nil && app.Config.LogCalls {
			opts = append(opts, watch.WithLogger(slog.New(slog.NewTextHandler(app.stderr(), nil))))
		}
		w, err := watch.New(app.RosterPath, watch.DefaultDelay, opts...)
		if err != nil {
			return err
		}
		w.Start(cmd.Context())
		defer w.Stop()
		changes = w.Changes()
	}

	p := tea.NewProgram(
		newAppModel(app, changes),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	_, err := p.Run()
	return err
}
