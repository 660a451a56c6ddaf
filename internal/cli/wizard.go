package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/crewboard/internal/cli/formatter"
	"github.com/alexanderramin/crewboard/internal/domain"
)

// crewboardHuhTheme returns a huh theme using the Gruvbox palette.
func crewboardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

const (
	showTasks      = "tasks"
	showActivities = "activities"
)

// periodChoice backs the picker fields; huh writes through the pointers.
type periodChoice struct {
	period string
	show   string
}

// periodPickerForm asks for the timeline period and whether to show member
// tasks or activity groups. done applies the answer and reloads the tabs.
func periodPickerForm(state *SharedState) (*huh.Form, func() tea.Cmd) {
	choice := &periodChoice{period: string(state.Period), show: showTasks}
	if state.ShowActivities {
		choice.show = showActivities
	}

	order := []domain.Period{domain.PeriodDaily, domain.PeriodWeekly, domain.PeriodMonthly}
	periods := make([]huh.Option[string], 0, len(order))
	for _, p := range order {
		periods = append(periods, huh.NewOption(periodLabel(p), string(p)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Period").
				Options(periods...).
				Value(&choice.period),
			huh.NewSelect[string]().
				Title("Show").
				Options(
					huh.NewOption("Member tasks", showTasks),
					huh.NewOption("Activity groups", showActivities),
				).
				Value(&choice.show),
		),
	).WithTheme(crewboardHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return applyPeriodChoice(state, domain.Period(choice.period), choice.show == showActivities)
	}
	return form, done
}

// applyPeriodChoice stores the picked period and asks the tabs to reload.
func applyPeriodChoice(state *SharedState, period domain.Period, activities bool) tea.Cmd {
	state.Period = period
	state.ShowActivities = activities
	return refreshViews
}

func periodLabel(p domain.Period) string {
	switch p {
	case domain.PeriodDaily:
		return "Daily (days around today)"
	case domain.PeriodWeekly:
		return "Weekly (12 weeks)"
	case domain.PeriodMonthly:
		return "Monthly (26 weeks)"
	default:
		return string(p)
	}
}
