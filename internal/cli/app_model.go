package cli

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/crewboard/internal/cli/formatter"
)

// appModel is the root bubbletea Model for the TUI. It owns the two
// dashboard tabs and a stack of overlays (the period picker) drawn on top.
type appModel struct {
	state     *SharedState
	tabs      []View
	activeTab int
	overlays  []View
	changes   <-chan struct{}
	quitting  bool
}

// newAppModel builds the TUI. changes, when non-nil, delivers roster file
// change signals.
func newAppModel(app *App, changes <-chan struct{}) appModel {
	state := newSharedState(app)
	state.Watching = changes != nil
	return appModel{
		state:   state,
		tabs:    []View{newOverviewView(state), newTimelineView(state)},
		changes: changes,
	}
}

// activeView returns the top overlay, or the selected tab.
func (m *appModel) activeView() View {
	if n := len(m.overlays); n > 0 {
		return m.overlays[n-1]
	}
	return m.tabs[m.activeTab]
}

func (m *appModel) setActiveView(v View) {
	if n := len(m.overlays); n > 0 {
		m.overlays[n-1] = v
		return
	}
	m.tabs[m.activeTab] = v
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs)+1)
	for _, t := range m.tabs {
		cmds = append(cmds, t.Init())
	}
	cmds = append(cmds, waitForRosterChange(m.changes))
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, m.broadcast(msg, true)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.forwardToActive(msg)

	case pushViewMsg:
		m.overlays = append(m.overlays, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		m.popOverlay()
		return m, nil

	case wizardCompleteMsg:
		m.popOverlay()
		return m, msg.nextCmd

	case refreshViewMsg:
		return m, m.broadcast(msg, false)

	case rosterChangedMsg:
		return m, tea.Batch(reloadRoster(m.state.App), waitForRosterChange(m.changes))

	case rosterReloadedMsg:
		m.state.LastReload = time.Now()
		m.state.ReloadErr = msg.err
		if msg.err != nil {
			return m, nil
		}
		return m, refreshViews
	}

	// Data messages belong to whichever tab asked for them, and form
	// internals to the top overlay.
	return m, m.broadcast(msg, true)
}

func (m *appModel) popOverlay() {
	if n := len(m.overlays); n > 0 {
		m.overlays = m.overlays[:n-1]
	}
}

// broadcast sends msg to every tab and, when withOverlay is set, to the top
// overlay too.
func (m *appModel) broadcast(msg tea.Msg, withOverlay bool) tea.Cmd {
	var cmds []tea.Cmd
	for i, t := range m.tabs {
		updated, cmd := t.Update(msg)
		m.tabs[i] = updated.(View)
		cmds = append(cmds, cmd)
	}
	if n := len(m.overlays); withOverlay && n > 0 {
		updated, cmd := m.overlays[n-1].Update(msg)
		m.overlays[n-1] = updated.(View)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *appModel) forwardToActive(msg tea.Msg) tea.Cmd {
	updated, cmd := m.activeView().Update(msg)
	m.setActiveView(updated.(View))
	return cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Overlays capture every key, including q and esc.
	if len(m.overlays) > 0 {
		return m, m.forwardToActive(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "tab", "right", "l":
		m.activeTab = (m.activeTab + 1) % len(m.tabs)
		return m, nil
	case "shift+tab", "left", "h":
		m.activeTab = (m.activeTab + len(m.tabs) - 1) % len(m.tabs)
		return m, nil
	case "1", "2":
		m.activeTab = int(msg.Runes[0] - '1')
		return m, nil
	case "r":
		return m, refreshViews
	}

	return m, m.forwardToActive(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.activeView().View(),
		m.renderStatusBar(),
	}
	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

var (
	activeTabStyle   = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(formatter.ColorDim)
)

func (m *appModel) renderHeader() string {
	parts := []string{formatter.StylePurple.Render("crewboard")}
	for i, t := range m.tabs {
		style := inactiveTabStyle
		if i == m.activeTab {
			style = activeTabStyle
		}
		parts = append(parts, style.Render(t.Title()))
	}
	header := strings.Join(parts, "   ")

	if n := len(m.overlays); n > 0 {
		header += " " + formatter.Dim("› "+m.overlays[n-1].Title())
	}
	if m.activeTab == 1 {
		label := string(m.state.Period)
		if m.state.ShowActivities {
			label += ", activities"
		}
		header += "  " + formatter.Dim("["+label+"]")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.activeView().ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	if len(m.overlays) == 0 {
		hints = append(hints, formatter.Dim("tab: switch"), formatter.Dim("q: quit"))
	}

	switch {
	case m.state.ReloadErr != nil:
		hints = append(hints, formatter.StyleRed.Render("reload failed: "+m.state.ReloadErr.Error()))
	case m.state.Watching && !m.state.LastReload.IsZero():
		hints = append(hints, formatter.StyleGreen.Render("reloaded "+m.state.LastReload.Format("15:04:05")))
	case m.state.Watching:
		hints = append(hints, formatter.Dim("watching roster"))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
