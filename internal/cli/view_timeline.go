package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/crewboard/internal/cli/formatter"
	"github.com/alexanderramin/crewboard/internal/contract"
)

type timelineLoadedMsg struct {
	resp *contract.TimelineResponse
	err  error
}

// timelineView is the "Task Timeline" tab. The period picker changes which
// window it lays out.
type timelineView struct {
	state   *SharedState
	resp    *contract.TimelineResponse
	err     error
	loading bool
	pane    pane
}

func newTimelineView(state *SharedState) *timelineView {
	return &timelineView{state: state, loading: true, pane: newPane()}
}

func (v *timelineView) ID() ViewID    { return ViewTimeline }
func (v *timelineView) Title() string { return "Task Timeline" }

func (v *timelineView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "period")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *timelineView) Init() tea.Cmd {
	return v.load()
}

func (v *timelineView) load() tea.Cmd {
	state := v.state
	req := state.TimelineRequest()
	return func() tea.Msg {
		resp, err := state.App.Timeline.GetTimeline(context.Background(), req)
		return timelineLoadedMsg{resp: resp, err: err}
	}
}

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timelineLoadedMsg:
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

	case tea.KeyMsg:
		if msg.String() == "p" {
			form, done := periodPickerForm(v.state)
			return v, startWizardCmd(v.state, "Period", form, done)
		}
		return v, v.pane.update(msg)

	case tea.MouseMsg:
		return v, v.pane.update(msg)
	}
	return v, nil
}

func (v *timelineView) render() {
	if v.resp == nil {
		return
	}
	v.pane.setContent(formatter.FormatTimeline(v.resp, v.state.Width))
}

func (v *timelineView) View() string {
	switch {
	case v.err != nil:
		return formatter.StyleRed.Render("  Error: " + v.err.Error())
	case v.resp == nil:
		return formatter.Dim("  Laying out timeline…")
	}
	return v.pane.view()
}
