package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/crewboard/internal/contract"
)

const (
	memberCardWidth   = 44
	cardProgressWidth = 14
)

// FormatOverview renders the team overview: a summary strip followed by one
// card per member, laid out in as many columns as width allows.
func FormatOverview(resp *contract.OverviewResponse, width int) string {
	var b strings.Builder

	b.WriteString(overviewSummary(resp.Summary) + "\n\n")

	if len(resp.Members) == 0 {
		b.WriteString(Dim("No team members to display.") + "\n")
	} else {
		cards := make([]string, len(resp.Members))
		for i, m := range resp.Members {
			cards[i] = memberCard(m)
		}
		b.WriteString(layoutCards(cards, width) + "\n")
	}

	if w := Warnings(resp.Warnings); w != "" {
		b.WriteString("\n" + w)
	}
	b.WriteString("\n" + GeneratedLine(resp.Summary.GeneratedAt))
	return RenderBox("Team Overview", b.String())
}

func overviewSummary(s contract.OverviewSummary) string {
	first := fmt.Sprintf("%s members  %s tasks  %s available today",
		Bold(fmt.Sprint(s.MemberCount)),
		Bold(fmt.Sprint(s.TaskCount)),
		StyleGreen.Render(fmt.Sprint(s.AvailableToday)))
	return first + "\n" + countsLine(s.Counts)
}

func countsLine(c contract.StatusCounts) string {
	parts := []string{
		StylePurple.Render(fmt.Sprintf("%d to do", c.ToDo)),
		StyleBlue.Render(fmt.Sprintf("%d in progress", c.InProgress)),
		StyleYellow.Render(fmt.Sprintf("%d review", c.Review)),
		StyleGreen.Render(fmt.Sprintf("%d completed", c.Completed)),
	}
	if c.Other > 0 {
		parts = append(parts, Dim(fmt.Sprintf("%d other", c.Other)))
	}
	return strings.Join(parts, Dim(" · "))
}

func memberCard(m contract.MemberCard) string {
	var b strings.Builder
	inner := memberCardWidth - 4

	b.WriteString(AvatarBadge(m.Initials) + " " + Bold(Truncate(m.Name, inner-6)) + "\n")
	if m.Position != "" {
		b.WriteString(Dim(Truncate(m.Position, inner)) + "\n")
	}
	switch {
	case m.AvailableToday:
		b.WriteString(StyleGreen.Render("● "+Truncate(m.Availability, inner-2)) + "\n")
	case m.Availability != "":
		b.WriteString(Dim("○ "+Truncate(m.Availability, inner-2)) + "\n")
	}
	if len(m.Projects) > 0 {
		b.WriteString(StylePurple.Render(Truncate(strings.Join(m.Projects, ", "), inner)) + "\n")
	}

	b.WriteString("\n" + RenderProgress(m.ProgressPct/100, cardProgressWidth) +
		Dim(fmt.Sprintf("  %d/%d done", m.Counts.Completed, m.TaskTotal)) + "\n")
	b.WriteString(compactCounts(m.Counts) + "\n")

	if len(m.RecentTasks) > 0 {
		b.WriteString("\n" + Dim("Recent") + "\n")
		for _, t := range m.RecentTasks {
			b.WriteString(ClassStyle(t.Color).Render("■ ") + Truncate(t.Title, inner-2) + "\n")
			due := Dim(t.DueDate)
			if t.UrgencyLabel != "" {
				due = UrgencyIndicator(t.Urgency, t.UrgencyLabel)
			}
			b.WriteString("  " + StatusPill(t.Status) + Dim("  ") + due + "\n")
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorTrack).
		Padding(0, 1).
		Width(memberCardWidth - 2).
		Render(strings.TrimRight(b.String(), "\n"))
}

func compactCounts(c contract.StatusCounts) string {
	return fmt.Sprintf("%s %s %s %s",
		StylePurple.Render(fmt.Sprintf("○%d", c.ToDo)),
		StyleBlue.Render(fmt.Sprintf("●%d", c.InProgress)),
		StyleYellow.Render(fmt.Sprintf("◐%d", c.Review)),
		StyleGreen.Render(fmt.Sprintf("✔%d", c.Completed)))
}

// layoutCards arranges cards into rows that fit within width.
func layoutCards(cards []string, width int) string {
	perRow := max(1, width/memberCardWidth)
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// FormatOverviewTable renders one line per member for narrow terminals and
// piping. Members without tasks get a dimmed bar.
func FormatOverviewTable(resp *contract.OverviewResponse) string {
	if len(resp.Members) == 0 {
		return Dim("No team members to display.") + "\n"
	}

	headers := []string{"ID", "MEMBER", "POSITION", "TASKS", "PROGRESS", "AVAILABILITY"}
	rows := make([][]string, 0, len(resp.Members))
	for _, m := range resp.Members {
		rows = append(rows, []string{
			TruncID(m.MemberID),
			m.Name,
			Truncate(m.Position, 24),
			fmt.Sprintf("%d/%d", m.Counts.Completed, m.TaskTotal),
			RenderCompactBar(m.ProgressPct/100, 10, m.TaskTotal == 0) + fmt.Sprintf(" %3.0f%%", m.ProgressPct),
			availability(m),
		})
	}
	return overviewSummary(resp.Summary) + "\n\n" + RenderTable(headers, rows)
}

func availability(m contract.MemberCard) string {
	if m.AvailableToday {
		return StyleGreen.Render(m.Availability)
	}
	return Dim(m.Availability)
}
