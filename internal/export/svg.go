package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/alexanderramin/crewboard/internal/app"
	"github.com/alexanderramin/crewboard/internal/timeline"
)

// RenderGanttSVG draws a timeline response as a standalone SVG document.
// Bars use the layout fractions as-is; anything past the right edge is
// clipped to the track and marked with an arrow.
func RenderGanttSVG(w io.Writer, resp *app.TimelineResponse, style Style) error {
	if err := style.validate(); err != nil {
		return err
	}
	g := newGeometry(resp, style)

	var svg strings.Builder
	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg" font-family="%s" font-size="%d">
<rect width="100%%" height="100%%" fill="%s"/>
`, style.Layout.Width, g.height, style.Layout.Width, g.height,
		escapeXML(style.Font.Family), style.Font.Size, style.Colors.Background)

	drawHeader(&svg, resp, style, g)

	if resp.Empty {
		fmt.Fprintf(&svg, `<text class="empty" x="%.1f" y="%d" fill="%s">No tasks to display</text>
`, g.trackX, g.bodyTop+style.Layout.RowHeight, style.Colors.Muted)
	}

	y := g.bodyTop
	for _, group := range resp.Groups {
		y += style.Layout.GroupGap
		fmt.Fprintf(&svg, `<text class="group" x="%d" y="%d" fill="%s" font-weight="bold">%s</text>
`, style.Layout.Margin, y+style.Layout.RowHeight-8, style.Colors.Text, escapeXML(group.Title))
		y += style.Layout.RowHeight

		for _, row := range group.Rows {
			drawRow(&svg, row, style, g, y)
			y += style.Layout.RowHeight
		}
	}

	drawTodayMarker(&svg, resp, style, g)

	svg.WriteString("</svg>\n")
	_, err := io.WriteString(w, svg.String())
	return err
}

type geometry struct {
	trackX  float64
	trackW  float64
	bodyTop int
	height  int
}

func newGeometry(resp *app.TimelineResponse, style Style) geometry {
	l := style.Layout
	rows := 0
	for _, g := range resp.Groups {
		rows += len(g.Rows) + 1
	}
	if resp.Empty {
		rows = 1
	}
	bodyTop := l.Margin + l.HeaderHeight
	return geometry{
		trackX:  float64(l.Margin + l.LabelWidth),
		trackW:  float64(l.Width - 2*l.Margin - l.LabelWidth),
		bodyTop: bodyTop,
		height:  bodyTop + rows*l.RowHeight + len(resp.Groups)*l.GroupGap + l.Margin,
	}
}

func drawHeader(svg *strings.Builder, resp *app.TimelineResponse, style Style, g geometry) {
	n := len(resp.Labels)
	if n == 0 {
		return
	}
	bucketW := g.trackW / float64(n)
	labelY := style.Layout.Margin + style.Layout.HeaderHeight - 10
	for i, label := range resp.Labels {
		x := g.trackX + float64(i)*bucketW
		fmt.Fprintf(svg, `<line class="grid" x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="%s"/>
`, x, style.Layout.Margin, x, g.height-style.Layout.Margin, style.Colors.Grid)
		fmt.Fprintf(svg, `<text class="bucket" x="%.1f" y="%d" fill="%s" font-size="%d" text-anchor="middle">%s</text>
`, x+bucketW/2, labelY, style.Colors.Muted, style.Font.Size-2, escapeXML(label))
	}
}

func drawRow(svg *strings.Builder, row app.TimelineRow, style Style, g geometry, y int) {
	l := style.Layout
	textY := y + l.RowHeight/2 + style.Font.Size/3
	barY := y + (l.RowHeight-l.BarHeight)/2

	title := row.Title
	if row.Assignee != "" {
		title = row.Assignee + "  " + title
	}
	color := style.Colors.Text
	if row.Skipped {
		color = style.Colors.Muted
		title += " (skipped)"
	}
	fmt.Fprintf(svg, `<text class="label" x="%d" y="%d" fill="%s">%s</text>
`, l.Margin+12, textY, color, escapeXML(title))

	fmt.Fprintf(svg, `<rect class="track" x="%.1f" y="%d" width="%.1f" height="%d" fill="%s"/>
`, g.trackX, barY, g.trackW, l.BarHeight, style.Colors.Track)

	if row.Skipped {
		fmt.Fprintf(svg, `<title>%s</title>
`, escapeXML(row.Error))
		return
	}

	x, w, clipped := clipBar(row.Layout, g.trackX, g.trackW)
	fill := style.colorFor(row.Color)
	if row.Urgency == timeline.UrgencyOverdue {
		fill = style.Colors.Overdue
	}
	fmt.Fprintf(svg, `<rect class="bar" x="%.1f" y="%d" width="%.1f" height="%d" rx="3" fill="%s" fill-opacity="0.35"><title>%s</title></rect>
`, x, barY, w, l.BarHeight, fill, escapeXML(barTooltip(row)))
	if row.ProgressPct > 0 {
		fmt.Fprintf(svg, `<rect class="progress" x="%.1f" y="%d" width="%.1f" height="%d" rx="3" fill="%s"/>
`, x, barY, w*row.ProgressPct/100, l.BarHeight, fill)
	}
	if clipped {
		fmt.Fprintf(svg, `<text class="overflow" x="%.1f" y="%d" fill="%s" text-anchor="end">›</text>
`, g.trackX+g.trackW-2, textY, style.Colors.Text)
	}
}

// clipBar converts fractions to pixels and clips the bar to the track.
func clipBar(l timeline.Layout, trackX, trackW float64) (x, w float64, clipped bool) {
	x = trackX + l.Offset*trackW
	w = l.Width * trackW
	end := trackX + trackW
	if x > end {
		x = end
	}
	if x+w > end {
		w = end - x
		clipped = true
	}
	return x, math.Max(w, 0), clipped
}

func barTooltip(row app.TimelineRow) string {
	parts := []string{row.Title, row.Label}
	if row.DueDate != "" {
		parts = append(parts, "due "+row.DueDate)
	}
	if row.UrgencyLabel != "" {
		parts = append(parts, row.UrgencyLabel)
	}
	return strings.Join(parts, " · ")
}

func drawTodayMarker(svg *strings.Builder, resp *app.TimelineResponse, style Style, g geometry) {
	span := resp.WindowEnd.Sub(resp.WindowStart)
	if span <= 0 || resp.TodayIndex < 0 {
		return
	}
	frac := float64(resp.GeneratedAt.Sub(resp.WindowStart)) / float64(span)
	x := g.trackX + frac*g.trackW
	fmt.Fprintf(svg, `<line class="today" x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="%s" stroke-width="2" stroke-dasharray="4 3"/>
`, x, style.Layout.Margin, x, g.height-style.Layout.Margin, style.Colors.Today)
}

// escapeXML escapes special XML characters so text can be embedded in SVG.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
