package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/crewboard/internal/cli/formatter"
	"github.com/alexanderramin/crewboard/internal/contract"
)

type overviewLoadedMsg struct {
	resp *contract.OverviewResponse
	err  error
}

// overviewView is the "Team Overview" tab: member cards in a grid.
type overviewView struct {
	state   *SharedState
	resp    *contract.OverviewResponse
	err     error
	loading bool
	pane    pane
}

func newOverviewView(state *SharedState) *overviewView {
	return &overviewView{state: state, loading: true, pane: newPane()}
}

func (v *overviewView) ID() ViewID    { return ViewOverview }
func (v *overviewView) Title() string { return "Team Overview" }

func (v *overviewView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *overviewView) Init() tea.Cmd {
	return v.load()
}

func (v *overviewView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		resp, err := app.Overview.GetOverview(context.Background(), app.overviewRequest(nil))
		return overviewLoadedMsg{resp: resp, err: err}
	}
}

func (v *overviewView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.resp = msg.resp
		}
		v.render()
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.load()

	case tea.WindowSizeMsg:
		v.pane.resize(v.state)
		v.render()
		return v, nil

	case tea.KeyMsg, tea.MouseMsg:
		return v, v.pane.update(msg)
	}
	return v, nil
}

func (v *overviewView) render() {
	if v.resp == nil {
		return
	}
	v.pane.setContent(formatter.FormatOverview(v.resp, v.state.Width))
}

func (v *overviewView) View() string {
	switch {
	case v.err != nil:
		return formatter.StyleRed.Render("  Error: " + v.err.Error())
	case v.resp == nil:
		return formatter.Dim("  Loading team…")
	}
	return v.pane.view()
}
