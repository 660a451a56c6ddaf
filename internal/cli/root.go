package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/crewboard/internal/config"
	"github.com/alexanderramin/crewboard/internal/service"
)

// App holds the use cases and settings shared by every command. Commands
// run bootstrap first, so Overview and Timeline are set by the time RunE
// executes. Tests may pre-wire both services to skip roster loading.
type App struct {
	Overview service.OverviewService
	Timeline service.TimelineService
	Config   *config.Config

	// Fs is used for config, roster, style and export files.
	Fs afero.Fs
	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// TermWidth returns the output width in cells, or 0 when unknown.
	TermWidth func() int
	// Stderr receives use-case logs when log_calls is enabled.
	Stderr io.Writer

	// RosterPath is the roster file in use, empty for the database or the
	// built-in sample.
	RosterPath string
	// Reload re-reads the roster source; nil when the source is static.
	Reload func() error

	now     time.Time
	closers []io.Closer
}

// globalFlags are the persistent flags every command accepts.
type globalFlags struct {
	configFile string
	roster     string
	db         string
	now        string
}

// NewRootCmd creates the top-level "crewboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "crewboard",
		Short:         "Team dashboard: member overview and task timelines",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipBootstrap] == "true" {
				return nil
			}
			return app.bootstrap(flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(cmd, app, app.Config.Watch)
			}
			return runOverview(cmd, app, nil, 0)
		},
	}

	registerGlobalFlags(root.PersistentFlags(), &flags)

	root.AddCommand(
		newOverviewCmd(app),
		newTimelineCmd(app),
		newExportCmd(app),
		newValidateCmd(app),
		newTUICmd(app),
	)

	return root
}

func registerGlobalFlags(fs *pflag.FlagSet, flags *globalFlags) {
	fs.StringVar(&flags.configFile, "config", "", "Config file (default .crewboard.yaml in . or $HOME)")
	fs.StringVar(&flags.roster, "roster", "", "Roster file (JSON or YAML)")
	fs.StringVar(&flags.db, "db", "", "Read-only SQLite roster database")
	fs.StringVar(&flags.now, "now", "", "Pretend today is this date (YYYY-MM-DD)")
}

// Now returns the injected --now date, or the wall clock.
func (a *App) Now() time.Time {
	if !a.now.IsZero() {
		return a.now
	}
	return time.Now()
}

// Close releases the roster database, if one was opened.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func (a *App) stderr() io.Writer {
	if a.Stderr != nil {
		return a.Stderr
	}
	return os.Stderr
}

// width resolves the output width: an explicit flag, then the terminal,
// then a fixed fallback.
func (a *App) width(flag int) int {
	if flag > 0 {
		return flag
	}
	if a.TermWidth != nil {
		if w := a.TermWidth(); w > 0 {
			return w
		}
	}
	return defaultWidth
}

const defaultWidth = 100

func parseNow(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("--now must be YYYY-MM-DD: %w", err)
	}
	// Midday keeps the date stable across time zones.
	return t.Add(12 * time.Hour), nil
}
