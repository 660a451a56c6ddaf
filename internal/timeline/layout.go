package timeline

import (
	"math"
	"strconv"
	"time"
)

// DefaultMinWidth keeps zero-length and sub-resolution bars visible.
const DefaultMinWidth = 0.02

const dateLayout = "2006-01-02"

// Layout positions a bar inside a track as fractions of the track width.
// Offset+Width may exceed 1: bars running past the window are not clamped.
type Layout struct {
	Offset float64
	Width  float64
}

// Overflows reports whether the bar extends past the right edge of the track.
func (l Layout) Overflows() bool {
	return l.Offset+l.Width > 1
}

// IndexLayout places a bar by bucket index: offset = start/n, width = duration/n.
// No clamping is applied.
func IndexLayout(startBucket, duration, n int) (Layout, error) {
	if n <= 0 {
		return Layout{}, &InvalidWindowError{Buckets: n}
	}
	if startBucket < 0 {
		return Layout{}, &DataFormatError{Field: "start_week", Value: strconv.Itoa(startBucket)}
	}
	if duration <= 0 {
		return Layout{}, &DataFormatError{Field: "duration", Value: strconv.Itoa(duration)}
	}
	return Layout{
		Offset: float64(startBucket) / float64(n),
		Width:  float64(duration) / float64(n),
	}, nil
}

// DateLayout places a bar by calendar dates within [windowStart, windowEnd).
// Bars starting before the window are left-clamped to 0; width comes from the
// true duration and is floored at minWidth.
func DateLayout(windowStart, windowEnd, taskStart, taskEnd time.Time, minWidth float64) (Layout, error) {
	span := daysBetween(windowStart, windowEnd)
	if span <= 0 {
		return Layout{}, &InvalidWindowError{SpanDays: span}
	}
	startOffset := math.Max(0, float64(daysBetween(windowStart, taskStart)))
	duration := float64(daysBetween(taskStart, taskEnd))

	return Layout{
		Offset: startOffset / float64(span),
		Width:  math.Max(duration/float64(span), minWidth),
	}, nil
}

// ParseDate parses an ISO YYYY-MM-DD value. field names the source column in
// the returned error.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, &DataFormatError{Field: field, Value: value, Err: err}
	}
	return t, nil
}
