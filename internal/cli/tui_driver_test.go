package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/crewboard/internal/importer"
	"github.com/alexanderramin/crewboard/internal/repository"
	"github.com/alexanderramin/crewboard/internal/service"
	"github.com/alexanderramin/crewboard/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals (tabs,
// overlays, shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel, sets the terminal size and drains
// Init, which loads both tabs synchronously from the in-memory roster.
func NewTestDriver(t *testing.T, app *App, changes <-chan struct{}) *TestDriver {
	t.Helper()

	m := newAppModel(app, changes)
	d := teatest.New(t, m, teatest.WithSize(140, 80))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// tuiApp wires the services to the sample roster with the clock fixed on
// 2024-01-14. The repo is returned so tests can swap the roster.
func tuiApp(t *testing.T) (*App, *repository.MemoryRosterRepo) {
	t.Helper()
	roster, err := importer.SampleRoster()
	require.NoError(t, err)

	repo := repository.NewMemoryRosterRepo(roster)
	return &App{
		Overview: service.NewOverviewService(repo),
		Timeline: service.NewTimelineService(repo),
		now:      time.Date(2024, 1, 14, 12, 0, 0, 0, time.Local),
	}, repo
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ID of the top overlay or the selected tab.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	return m.activeView().ID()
}

// OverlayCount returns how many overlays are open.
func (d *TestDriver) OverlayCount() int {
	return len(d.appModel().overlays)
}

// State returns the shared state behind every view.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// PlainView returns the rendered output without colour codes.
func (d *TestDriver) PlainView() string {
	return stripANSI(d.View())
}
