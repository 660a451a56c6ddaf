package cli

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/alexanderramin/crewboard/internal/config"
	"github.com/alexanderramin/crewboard/internal/db"
	"github.com/alexanderramin/crewboard/internal/importer"
	"github.com/alexanderramin/crewboard/internal/repository"
	"github.com/alexanderramin/crewboard/internal/service"
)

// skipBootstrap marks commands that do not need a roster.
const skipBootstrap = "crewboard/skip-bootstrap"

// bootstrap loads configuration, applies flag overrides and wires the use
// cases to the selected roster source.
func (a *App) bootstrap(flags globalFlags) error {
	if a.Fs == nil {
		a.Fs = afero.NewOsFs()
	}

	cfg, err := config.Load(a.Fs, config.Options{ConfigFile: flags.configFile})
	if err != nil {
		return err
	}
	switch {
	case flags.roster != "" && flags.db != "":
		return fmt.Errorf("--roster and --db cannot both be set")
	case flags.roster != "":
		cfg.Roster, cfg.DB = flags.roster, ""
	case flags.db != "":
		cfg.DB, cfg.Roster = flags.db, ""
	}
	a.Config = cfg

	if a.now, err = parseNow(flags.now); err != nil {
		return err
	}

	if a.Overview != nil && a.Timeline != nil {
		return nil
	}

	repo, err := a.openRoster(cfg)
	if err != nil {
		return err
	}

	var observers []service.UseCaseObserver
	if cfg.LogCalls {
		observers = append(observers, service.NewLogUseCaseObserver(a.stderr()))
	}
	a.Overview = service.NewOverviewService(repo, observers...)
	a.Timeline = service.NewTimelineService(repo, observers...)
	return nil
}

// openRoster picks the roster source: a database, a roster file, or the
// built-in sample, in that order.
func (a *App) openRoster(cfg *config.Config) (repository.RosterRepo, error) {
	switch {
	case cfg.DB != "":
		database, err := db.OpenDB(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("opening roster database: %w", err)
		}
		a.closers = append(a.closers, database)
		return repository.NewSQLiteRosterRepo(database), nil

	case cfg.Roster != "":
		roster, err := importer.LoadRoster(a.Fs, cfg.Roster)
		if err != nil {
			return nil, err
		}
		repo := repository.NewMemoryRosterRepo(roster)
		a.RosterPath = cfg.Roster
		a.Reload = func() error {
			next, err := importer.LoadRoster(a.Fs, cfg.Roster)
			if err != nil {
				return err
			}
			repo.Replace(next)
			return nil
		}
		return repo, nil

	default:
		roster, err := importer.SampleRoster()
		if err != nil {
			return nil, fmt.Errorf("loading sample roster: %w", err)
		}
		return repository.NewMemoryRosterRepo(roster), nil
	}
}
