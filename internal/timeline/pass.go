package timeline

import "time"

// Pass is one layout computation over a task set. It captures "now" once so
// every task in the pass is measured against the same instant.
type Pass struct {
	Now      time.Time
	Window   Window
	MinWidth float64
}

// Placement is the layout of a dated task together with its urgency.
type Placement struct {
	Layout       Layout
	DaysUntilDue int
	Urgency      Urgency
}

// NewPass builds a pass. A non-positive minWidth falls back to DefaultMinWidth.
func NewPass(now time.Time, w Window, minWidth float64) *Pass {
	if minWidth <= 0 {
		minWidth = DefaultMinWidth
	}
	return &Pass{Now: now, Window: w, MinWidth: minWidth}
}

// Today returns the calendar date of the pass.
func (p *Pass) Today() time.Time {
	return civilDate(p.Now)
}

// PlaceIndex lays out an index-based bar against the pass window.
func (p *Pass) PlaceIndex(startBucket, duration int) (Layout, error) {
	return IndexLayout(startBucket, duration, p.Window.Len())
}

// PlaceDates lays out a bar from startRaw (or today when empty) to dueRaw and
// classifies its urgency. Overdue bars fill the track.
func (p *Pass) PlaceDates(startRaw, dueRaw string) (Placement, error) {
	if p.Window.Len() == 0 {
		return Placement{}, &InvalidWindowError{}
	}
	due, err := ParseDate("due_date", dueRaw)
	if err != nil {
		return Placement{}, err
	}
	start := p.Today()
	if startRaw != "" {
		if start, err = ParseDate("start_date", startRaw); err != nil {
			return Placement{}, err
		}
	}

	layout, err := DateLayout(p.Window.Start(), p.Window.End(), start, due, p.MinWidth)
	if err != nil {
		return Placement{}, err
	}
	days := DaysUntilDue(due, p.Now)
	urgency := ClassifyUrgency(days)

	return Placement{
		Layout:       ApplyUrgency(layout, urgency),
		DaysUntilDue: days,
		Urgency:      urgency,
	}, nil
}

// DueIn parses dueRaw and returns its day count and urgency relative to the pass.
func (p *Pass) DueIn(dueRaw string) (int, Urgency, error) {
	due, err := ParseDate("due_date", dueRaw)
	if err != nil {
		return 0, "", err
	}
	days := DaysUntilDue(due, p.Now)
	return days, ClassifyUrgency(days), nil
}
