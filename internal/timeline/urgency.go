package timeline

import (
	"fmt"
	"math"
	"time"
)

type Urgency string

const (
	UrgencyOverdue Urgency = "overdue"
	UrgencyUrgent  Urgency = "urgent"
	UrgencyNormal  Urgency = "normal"
)

// UrgentWithinDays is the last day count (inclusive) classified as urgent.
const UrgentWithinDays = 3

// DaysUntilDue returns ceil((due - today) / 24h). today keeps its clock so a
// task due at midnight today reads as 0, not -1.
func DaysUntilDue(due, today time.Time) int {
	hours := civilDate(due).Sub(wallUTC(today)).Hours()
	days := int(math.Ceil(hours / 24))
	if days == 0 {
		return 0 // normalise -0
	}
	return days
}

// ClassifyUrgency buckets a day count: negative is overdue, 0..3 urgent.
func ClassifyUrgency(daysUntilDue int) Urgency {
	switch {
	case daysUntilDue < 0:
		return UrgencyOverdue
	case daysUntilDue <= UrgentWithinDays:
		return UrgencyUrgent
	default:
		return UrgencyNormal
	}
}

// UrgencyFor returns the day count and urgency bucket of a due date.
func UrgencyFor(due, today time.Time) (int, Urgency) {
	days := DaysUntilDue(due, today)
	return days, ClassifyUrgency(days)
}

// UrgencyLabel renders the label shown next to a dated bar.
func UrgencyLabel(daysUntilDue int) string {
	switch {
	case daysUntilDue < 0:
		return fmt.Sprintf("%dd overdue", -daysUntilDue)
	case daysUntilDue == 0:
		return "Due today"
	case daysUntilDue == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %dd", daysUntilDue)
	}
}

// ApplyUrgency widens overdue bars to the full track as an alarm signal.
// Other urgencies leave the layout unchanged.
func ApplyUrgency(l Layout, u Urgency) Layout {
	if u == UrgencyOverdue {
		return Layout{Offset: 0, Width: 1}
	}
	return l
}
