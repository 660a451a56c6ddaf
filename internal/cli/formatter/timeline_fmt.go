package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/crewboard/internal/contract"
	"github.com/alexanderramin/crewboard/internal/timeline"
)

const (
	timelineLabelWidth = 28
	minTrackWidth      = 20
	overflowMark       = "›"
	todayMark          = "│"
	trackMark          = "·"
)

// FormatTimeline renders a timeline response as a character gantt chart,
// fitting the track to width terminal cells.
func FormatTimeline(resp *contract.TimelineResponse, width int) string {
	var b strings.Builder

	b.WriteString(timelineTitle(resp) + "\n\n")

	if resp.Empty {
		b.WriteString(Dim("No tasks to display.") + "\n")
		b.WriteString("\n" + GeneratedLine(resp.GeneratedAt))
		return RenderBox("Timeline", b.String())
	}

	trackW := trackWidth(width, len(resp.Labels))
	today := todayColumn(resp, trackW)

	b.WriteString(strings.Repeat(" ", timelineLabelWidth+1) + bucketHeader(resp.Labels, trackW) + "\n")

	for _, g := range resp.Groups {
		b.WriteString(StyleHeader.Render(Truncate(g.Title, timelineLabelWidth)) + "\n")
		for _, row := range g.Rows {
			b.WriteString(timelineRow(row, trackW, today) + "\n")
		}
	}

	b.WriteString("\n" + timelineLegend() + "\n")
	summary := fmt.Sprintf("%d rows", resp.RowCount)
	if resp.SkippedCount > 0 {
		summary += fmt.Sprintf(", %d skipped", resp.SkippedCount)
	}
	b.WriteString(Dim(summary) + "\n")

	if w := Warnings(resp.Warnings); w != "" {
		b.WriteString("\n" + w)
	}
	b.WriteString("\n" + GeneratedLine(resp.GeneratedAt))
	return RenderBox("Timeline", b.String())
}

func timelineTitle(resp *contract.TimelineResponse) string {
	title := "Timeline"
	if v := string(resp.Variant); v != "" {
		title = strings.ToUpper(v[:1]) + v[1:] + " view"
	}
	if resp.WindowStart.IsZero() {
		return Bold(title)
	}
	last := resp.WindowEnd.AddDate(0, 0, -1)
	return Bold(title) + Dim(fmt.Sprintf("  %s to %s, %d %ss",
		resp.WindowStart.Format("Jan 2"), last.Format("Jan 2, 2006"), len(resp.Labels), resp.Unit))
}

// trackWidth picks a track size that gives every bucket the same number of
// cells. Box border and padding take 6 cells; the label column and a gap
// take the rest.
func trackWidth(width, buckets int) int {
	avail := max(width-6-timelineLabelWidth-1-8, minTrackWidth)
	if buckets <= 0 {
		return avail
	}
	per := max(1, avail/buckets)
	return per * buckets
}

// bucketHeader places each label at its bucket's first cell, skipping
// labels that would collide with the previous one.
func bucketHeader(labels []string, trackW int) string {
	if len(labels) == 0 {
		return ""
	}
	line := []rune(strings.Repeat(" ", trackW))
	per := trackW / len(labels)
	next := 0
	for i, label := range labels {
		col := i * per
		if col < next {
			continue
		}
		text := []rune(label)
		if col+len(text) > trackW {
			break
		}
		copy(line[col:], text)
		next = col + len(text) + 1
	}
	return Dim(strings.TrimRight(string(line), " "))
}

// todayColumn returns the track cell holding "now", or -1 outside the window.
func todayColumn(resp *contract.TimelineResponse, trackW int) int {
	span := resp.WindowEnd.Sub(resp.WindowStart)
	if span <= 0 {
		return -1
	}
	frac := float64(resp.GeneratedAt.Sub(resp.WindowStart)) / float64(span)
	col := int(math.Floor(frac * float64(trackW)))
	if col < 0 || col >= trackW {
		return -1
	}
	return col
}

// BarCells converts layout fractions into a half-open cell range on a track
// of width cells. Bars always cover at least one cell; anything past the
// right edge is cut and reported as clipped.
func BarCells(l timeline.Layout, width int) (start, end int, clipped bool) {
	start = int(math.Round(l.Offset * float64(width)))
	end = int(math.Round((l.Offset + l.Width) * float64(width)))
	if end <= start {
		end = start + 1
	}
	if end > width {
		end = width
		clipped = true
	}
	start = min(start, width)
	return start, end, clipped
}

type cellKind int

const (
	cellTrack cellKind = iota
	cellToday
	cellFill
	cellBar
	cellOverflow
)

func timelineRow(row contract.TimelineRow, trackW, today int) string {
	label := row.Title
	if row.Assignee != "" {
		label = row.Assignee + " " + label
	}
	label = PadRight(Truncate("  "+label, timelineLabelWidth), timelineLabelWidth) + " "

	kinds := make([]cellKind, trackW)
	if today >= 0 {
		kinds[today] = cellToday
	}

	if row.Skipped {
		return Dim(label) + renderCells(kinds, StyleDim) + " " + Dim("skipped: "+row.Error)
	}

	start, end, clipped := BarCells(row.Layout, trackW)
	filled := start + int(math.Round(float64(end-start)*row.ProgressPct/100))
	for i := start; i < end; i++ {
		if i < filled {
			kinds[i] = cellFill
		} else {
			kinds[i] = cellBar
		}
	}
	if clipped {
		kinds[trackW-1] = cellOverflow
	}

	style := ClassStyle(row.Color)
	if row.Urgency == timeline.UrgencyOverdue {
		style = StyleRed
	}

	suffix := " " + StatusPill(row.Status)
	if row.UrgencyLabel != "" {
		suffix += "  " + UrgencyIndicator(row.Urgency, row.UrgencyLabel)
	}
	return label + renderCells(kinds, style) + suffix
}

// renderCells styles runs of equal cells together to keep escape codes short.
func renderCells(kinds []cellKind, bar lipgloss.Style) string {
	var b strings.Builder
	for i := 0; i < len(kinds); {
		j := i
		for j < len(kinds) && kinds[j] == kinds[i] {
			j++
		}
		n := j - i
		switch kinds[i] {
		case cellTrack:
			b.WriteString(StyleTrack.Render(strings.Repeat(trackMark, n)))
		case cellToday:
			b.WriteString(StyleRed.Render(strings.Repeat(todayMark, n)))
		case cellFill:
			b.WriteString(bar.Render(strings.Repeat(filledBlock, n)))
		case cellBar:
			b.WriteString(bar.Render(strings.Repeat(partialBlock, n)))
		case cellOverflow:
			b.WriteString(StyleBold.Render(strings.Repeat(overflowMark, n)))
		}
		i = j
	}
	return b.String()
}

func timelineLegend() string {
	classes := []struct {
		class timeline.ColorClass
		label string
	}{
		{timeline.ColorCompleted, "completed"},
		{timeline.ColorProgress, "in progress"},
		{timeline.ColorReview, "review"},
		{timeline.ColorPlanned, "planned"},
	}
	parts := make([]string, 0, len(classes)+2)
	for _, c := range classes {
		parts = append(parts, ClassStyle(c.class).Render(filledBlock+" "+c.label))
	}
	parts = append(parts, StyleRed.Render(todayMark+" today"), StyleBold.Render(overflowMark+" continues"))
	return strings.Join(parts, "  ")
}
