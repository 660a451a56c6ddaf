package cli

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/crewboard/internal/domain"
	"github.com/alexanderramin/crewboard/internal/importer"
)

func TestTUI_StartsOnOverview(t *testing.T) {
	app, _ := tuiApp(t)
	d := NewTestDriver(t, app, nil)

	assert.Equal(t, ViewOverview, d.ActiveViewID())
	out := d.PlainView()
	assert.Contains(t, out, "crewboard")
	assert.Contains(t, out, "Team Overview")
	assert.Contains(t, out, "Sarah Johnson")
	assert.NotContains(t, out, "Loading team")
	assert.NotContains(t, out, "watching roster")
}

func TestTUI_TabSwitching(t *testing.T) {
	app, _ := tuiApp(t)
	d := NewTestDriver(t, app, nil)

	d.PressTab()
	assert.Equal(t, ViewTimeline, d.ActiveViewID())
	out := d.PlainView()
	assert.Contains(t, out, "Weeks view")
	assert.Contains(t, out, "Sprint Planning Meeting")
	assert.Contains(t, out, "[weekly]")

	d.PressTab()
	assert.Equal(t, ViewOverview, d.ActiveViewID(), "tab wraps around")

	d.PressKey('2')
	assert.Equal(t, ViewTimeline, d.ActiveViewID())
	d.PressKey('h')
	assert.Equal(t, ViewOverview, d.ActiveViewID())
	d.Press(tea.KeyShiftTab)
	assert.Equal(t, ViewTimeline, d.ActiveViewID())
	d.PressKey('1')
	assert.Equal(t, ViewOverview, d.ActiveViewID())
}

func TestTUI_PeriodPickerOpensAndCancels(t *testing.T) {
	app, _ := tuiApp(t)
	d := NewTestDriver(t, app, nil)
	d.PressKey('2')

	d.PressKey('p')
	require.Equal(t, 1, d.OverlayCount())
	assert.Equal(t, ViewForm, d.ActiveViewID())
	out := d.PlainView()
	assert.Contains(t, out, "› Period")
	assert.Contains(t, out, "Member tasks")

	// q is captured by the overlay instead of quitting.
	d.PressKey('q')
	assert.False(t, d.Quitting)

	d.PressEsc()
	assert.Equal(t, 0, d.OverlayCount())
	assert.Equal(t, ViewTimeline, d.ActiveViewID())
	assert.Equal(t, domain.PeriodWeekly, d.State().Period, "cancel leaves the period alone")
}

func TestTUI_PeriodPickerOnlyOnTimeline(t *testing.T) {
	app, _ := tuiApp(t)
	d := NewTestDriver(t, app, nil)

	d.PressKey('p')
	assert.Equal(t, 0, d.OverlayCount())
}

func TestTUI_ApplyPeriodChoiceReloadsTimeline(t *testing.T) {
	app, _ := tuiApp(t)
	d := NewTestDriver(t, app, nil)
	d.PressKey('2')

	d.Send(wizardCompleteMsg{nextCmd: applyPeriodChoice(d.State(), domain.PeriodDaily, false)})
	out := d.PlainView()
	assert.Contains(t, out, "Days view")
	assert.Contains(t, out, "[daily]")

	d.Send(wizardCompleteMsg{nextCmd: applyPeriodChoice(d.State(), domain.PeriodWeekly, true)})
	out = d.PlainView()
	assert.Contains(t, out, "Activities view")
	assert.Contains(t, out, "Wireframing")
	assert.Contains(t, out, "[weekly, activities]")
}

func TestTUI_PeriodPickerDefaultsToCurrentChoice(t *testing.T) {
	app, _ := tuiApp(t)
	state := newSharedState(app)
	state.Period = domain.PeriodMonthly
	state.ShowActivities = true

	form, done := periodPickerForm(state)
	require.NotNil(t, form)
	cmd := done()
	require.NotNil(t, cmd)
	assert.IsType(t, refreshViewMsg{}, cmd())
	assert.Equal(t, domain.PeriodMonthly, state.Period)
	assert.True(t, state.ShowActivities)
}

func TestTUI_RefreshPicksUpRosterChanges(t *testing.T) {
	app, repo := tuiApp(t)
	d := NewTestDriver(t, app, nil)

	next, err := importer.Build(&importer.RosterSchema{Members: []importer.MemberImport{{ID: "m1", Name: "Dana Scully"}}})
	require.NoError(t, err)
	repo.Replace(next)
	assert.NotContains(t, d.PlainView(), "Dana Scully")

	d.PressKey('r')
	out := d.PlainView()
	assert.Contains(t, out, "Dana Scully")
	assert.NotContains(t, out, "Sarah Johnson")
}

func TestTUI_WatchReloadsRoster(t *testing.T) {
	app, repo := tuiApp(t)
	reloads := 0
	app.Reload = func() error {
		reloads++
		next, err := importer.Build(&importer.RosterSchema{Members: []importer.MemberImport{{ID: "m1", Name: "Dana Scully"}}})
		if err != nil {
			return err
		}
		repo.Replace(next)
		return nil
	}

	changes := make(chan struct{}, 1)
	changes <- struct{}{}
	d := NewTestDriver(t, app, changes)

	assert.Equal(t, 1, reloads)
	assert.True(t, d.State().Watching)
	assert.False(t, d.State().LastReload.IsZero())
	out := d.PlainView()
	assert.Contains(t, out, "Dana Scully")
	assert.Contains(t, out, "reloaded ")
	// The re-armed wait blocks on the empty channel.
	assert.Positive(t, d.Dropped)
}

func TestTUI_WatchShowsReloadError(t *testing.T) {
	app, _ := tuiApp(t)
	app.Reload = func() error { return errors.New("team.yaml: invalid roster") }

	changes := make(chan struct{}, 1)
	changes <- struct{}{}
	d := NewTestDriver(t, app, changes)

	out := d.PlainView()
	assert.Contains(t, out, "reload failed: team.yaml: invalid roster")
	assert.Contains(t, out, "Sarah Johnson", "the last good roster stays on screen")
}

func TestTUI_WatchingBeforeFirstChange(t *testing.T) {
	app, _ := tuiApp(t)
	d := NewTestDriver(t, app, make(chan struct{}))
	assert.Contains(t, d.PlainView(), "watching roster")
}

func TestTUI_ServiceErrorShownInTab(t *testing.T) {
	app, _ := tuiApp(t)
	d := NewTestDriver(t, app, nil)
	d.PressKey('2')

	d.Send(wizardCompleteMsg{nextCmd: applyPeriodChoice(d.State(), domain.Period("yearly"), false)})
	assert.Contains(t, d.PlainView(), "Error: INVALID_PERIOD")
}

func TestTUI_Quit(t *testing.T) {
	app, _ := tuiApp(t)
	d := NewTestDriver(t, app, nil)

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestTUI_CtrlCQuitsFromOverlay(t *testing.T) {
	app, _ := tuiApp(t)
	d := NewTestDriver(t, app, nil)
	d.PressKey('2')
	d.PressKey('p')
	require.Equal(t, 1, d.OverlayCount())

	d.PressCtrlC()
	assert.True(t, d.Quitting)
}

func TestWaitForRosterChange(t *testing.T) {
	assert.Nil(t, waitForRosterChange(nil))

	ch := make(chan struct{}, 1)
	ch <- struct{}{}
	assert.Equal(t, rosterChangedMsg{}, waitForRosterChange(ch)())

	close(ch)
	assert.Nil(t, waitForRosterChange(ch)(), "closed channel stops the loop")
}

func TestReloadRoster_WithoutSource(t *testing.T) {
	msg := reloadRoster(&App{})()
	assert.Equal(t, rosterReloadedMsg{}, msg)
}
