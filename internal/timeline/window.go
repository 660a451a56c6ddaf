package timeline

import (
	"fmt"
	"time"
)

type Unit string

const (
	UnitDay  Unit = "day"
	UnitWeek Unit = "week"
)

// Days returns the length of one bucket in calendar days.
func (u Unit) Days() int {
	if u == UnitWeek {
		return 7
	}
	return 1
}

// Bucket is one column of the visible window. End is the last calendar day
// covered by the bucket (inclusive).
type Bucket struct {
	Start time.Time
	End   time.Time
	Label string
}

// Window is an ordered run of equal-size buckets. It is rebuilt from the
// caller's "now" for every computation pass and never stored.
type Window struct {
	Unit    Unit
	Buckets []Bucket
}

// NewWeekWindow returns weeks buckets, the first starting on the Sunday on or
// before now. A non-positive count yields an empty window.
func NewWeekWindow(now time.Time, weeks int) Window {
	w := Window{Unit: UnitWeek}
	if weeks <= 0 {
		return w
	}
	today := civilDate(now)
	start := today.AddDate(0, 0, -int(today.Weekday()))

	w.Buckets = make([]Bucket, 0, weeks)
	for i := 0; i < weeks; i++ {
		ws := start.AddDate(0, 0, i*7)
		we := ws.AddDate(0, 0, 6)
		w.Buckets = append(w.Buckets, Bucket{
			Start: ws,
			End:   we,
			Label: fmt.Sprintf("%s %d-%d", ws.Format("Jan"), ws.Day(), we.Day()),
		})
	}
	return w
}

// NewDayWindow returns before+after one-day buckets beginning before days
// ahead of now, so today sits at index before.
func NewDayWindow(now time.Time, before, after int) Window {
	w := Window{Unit: UnitDay}
	if before < 0 {
		before = 0
	}
	if after < 0 {
		after = 0
	}
	n := before + after
	if n == 0 {
		return w
	}
	start := civilDate(now).AddDate(0, 0, -before)

	w.Buckets = make([]Bucket, 0, n)
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i)
		w.Buckets = append(w.Buckets, Bucket{Start: d, End: d, Label: d.Format("Mon 2")})
	}
	return w
}

// Len returns the number of buckets.
func (w Window) Len() int { return len(w.Buckets) }

// Start returns the first day of the window, or the zero time when empty.
func (w Window) Start() time.Time {
	if len(w.Buckets) == 0 {
		return time.Time{}
	}
	return w.Buckets[0].Start
}

// End returns the day after the last bucket (exclusive bound).
func (w Window) End() time.Time {
	if len(w.Buckets) == 0 {
		return time.Time{}
	}
	return w.Buckets[len(w.Buckets)-1].Start.AddDate(0, 0, w.Unit.Days())
}

// SpanDays returns the window length in calendar days.
func (w Window) SpanDays() int {
	return len(w.Buckets) * w.Unit.Days()
}

// IndexOf returns the bucket containing t, or -1 when t is outside the window.
func (w Window) IndexOf(t time.Time) int {
	if len(w.Buckets) == 0 {
		return -1
	}
	d := daysBetween(w.Start(), t)
	if d < 0 {
		return -1
	}
	idx := d / w.Unit.Days()
	if idx >= len(w.Buckets) {
		return -1
	}
	return idx
}

// Labels returns the bucket labels in order.
func (w Window) Labels() []string {
	labels := make([]string, len(w.Buckets))
	for i, b := range w.Buckets {
		labels[i] = b.Label
	}
	return labels
}

// civilDate drops the clock and zone from t, keeping its wall-clock date as a
// UTC midnight so day arithmetic is immune to DST shifts.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// wallUTC keeps t's wall clock but relabels it as UTC, matching the zone used
// by civilDate and ParseDate.
func wallUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// daysBetween returns the number of calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(civilDate(b).Sub(civilDate(a)).Hours() / 24)
}
