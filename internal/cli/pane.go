package cli

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// pane is the scrollable content area shared by the dashboard tabs.
type pane struct {
	vp viewport.Model
}

func newPane() pane {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return pane{vp: vp}
}

func (p *pane) resize(state *SharedState) {
	p.vp.Width = state.Width
	p.vp.Height = state.ContentHeight()
}

// setContent replaces the text. The viewport keeps its scroll offset
// unless the new content is shorter.
func (p *pane) setContent(content string) {
	p.vp.SetContent(content)
}

func (p *pane) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return cmd
}

func (p *pane) view() string {
	return p.vp.View()
}
