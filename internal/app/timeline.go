package app

import (
	"time"

	"github.com/alexanderramin/crewboard/internal/domain"
	"github.com/alexanderramin/crewboard/internal/timeline"
)

type TimelineVariant string

const (
	// VariantActivities places activity groups by week index.
	VariantActivities TimelineVariant = "activities"
	// VariantWeeks places member tasks by date against week buckets.
	VariantWeeks TimelineVariant = "weeks"
	// VariantDays places member tasks by date against day buckets.
	VariantDays TimelineVariant = "days"
)

var ValidVariants = map[TimelineVariant]bool{
	VariantActivities: true,
	VariantWeeks:      true,
	VariantDays:       true,
}

const (
	DefaultWeeks        = 12
	DefaultMonthlyWeeks = 26
	DefaultDaysBefore   = 7
	DefaultDaysAfter    = 14
)

// VariantForPeriod maps a period button to the variant it shows and the
// number of week buckets it spans (0 for the day variant).
func VariantForPeriod(p domain.Period) (TimelineVariant, int, bool) {
	switch p {
	case domain.PeriodDaily:
		return VariantDays, 0, true
	case domain.PeriodWeekly:
		return VariantWeeks, DefaultWeeks, true
	case domain.PeriodMonthly:
		return VariantWeeks, DefaultMonthlyWeeks, true
	default:
		return "", 0, false
	}
}

// TimelineRequest selects what to lay out. An empty Variant is derived from
// Period; Weeks == 0 means the variant's default bucket count.
type TimelineRequest struct {
	Now          *time.Time
	Variant      TimelineVariant
	Period       domain.Period
	Weeks        int
	DaysBefore   int
	DaysAfter    int
	MinWidth     float64
	MemberScope  []string
	ProjectScope []string
}

func NewTimelineRequest() TimelineRequest {
	return TimelineRequest{
		Period:     domain.PeriodWeekly,
		DaysBefore: DefaultDaysBefore,
		DaysAfter:  DefaultDaysAfter,
		MinWidth:   timeline.DefaultMinWidth,
	}
}

type TimelineRow struct {
	ID          string
	Title       string
	Assignee    string
	Project     string
	DueDate     string
	Status      domain.TaskStatus
	Color       timeline.ColorClass
	Label       string
	ProgressPct float64
	Layout      timeline.Layout
	// Overflows is true when the bar runs past the right edge of the window.
	Overflows    bool
	DaysUntilDue *int
	Urgency      timeline.Urgency
	UrgencyLabel string
	// Skipped rows carry no usable Layout; Error says why.
	Skipped bool
	Error   string
}

type TimelineGroup struct {
	Title    string
	MemberID string
	Rows     []TimelineRow
}

type TimelineResponse struct {
	Variant     TimelineVariant
	Unit        timeline.Unit
	Labels      []string
	TodayIndex  int
	WindowStart time.Time
	WindowEnd   time.Time
	Groups      []TimelineGroup
	Warnings    []string
	// Empty is set when there was nothing to lay out; Groups is nil then.
	Empty        bool
	RowCount     int
	SkippedCount int
	GeneratedAt  time.Time
}
