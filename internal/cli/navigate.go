package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation and data messages handled by appModel.

// pushViewMsg opens an overlay view, such as the period picker.
type pushViewMsg struct {
	view View
}

// popViewMsg closes the top overlay.
type popViewMsg struct{}

// refreshViewMsg asks every tab to reload its data.
type refreshViewMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// rosterChangedMsg is posted when the watched roster file changes.
type rosterChangedMsg struct{}

// rosterReloadedMsg reports the outcome of re-reading the roster.
type rosterReloadedMsg struct {
	err error
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func refreshViews() tea.Msg {
	return refreshViewMsg{}
}

// waitForRosterChange blocks until the watcher signals, then reports it.
// A nil channel disables watching.
func waitForRosterChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return rosterChangedMsg{}
	}
}

func reloadRoster(app *App) tea.Cmd {
	return func() tea.Msg {
		if app.Reload == nil {
			return rosterReloadedMsg{}
		}
		return rosterReloadedMsg{err: app.Reload()}
	}
}
