package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/crewboard/internal/domain"
	"github.com/alexanderramin/crewboard/internal/timeline"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorTrack  = lipgloss.Color("#3c3836")
)

var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleRedBold    = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleTrack      = lipgloss.NewStyle().Foreground(ColorTrack)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ClassStyle maps a status colour class onto the terminal palette.
func ClassStyle(c timeline.ColorClass) lipgloss.Style {
	switch c {
	case timeline.ColorCompleted:
		return StyleGreen
	case timeline.ColorProgress:
		return StyleBlue
	case timeline.ColorReview:
		return StyleYellow
	case timeline.ColorPlanned:
		return StylePurple
	default:
		return StyleDim
	}
}

// StatusPill returns a colored status indicator such as "● In Progress".
func StatusPill(status domain.TaskStatus) string {
	st := timeline.Classify(status)
	icon := "○"
	switch st.Color {
	case timeline.ColorCompleted:
		icon = "✔"
	case timeline.ColorProgress:
		icon = "●"
	case timeline.ColorReview:
		icon = "◐"
	case timeline.ColorNeutral:
		icon = "?"
	}
	return ClassStyle(st.Color).Render(icon + " " + st.Label)
}

// UrgencyIndicator colours an urgency label. Normal urgency stays plain.
func UrgencyIndicator(u timeline.Urgency, label string) string {
	switch u {
	case timeline.UrgencyOverdue:
		return StyleRedBold.Render("▲ " + label)
	case timeline.UrgencyUrgent:
		return StyleYellow.Render("● " + label)
	case timeline.UrgencyNormal:
		return StyleFg.Render(label)
	default:
		return Dim(label)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
