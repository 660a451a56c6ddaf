package timeline

import (
	"testing"
	"time"

	"github.com/alexanderramin/crewboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_TotalOverKnownStatuses(t *testing.T) {
	cases := []struct {
		status   domain.TaskStatus
		color    ColorClass
		progress float64
	}{
		{domain.TaskCompleted, ColorCompleted, 100},
		{domain.TaskInProgress, ColorProgress, 60},
		{domain.TaskReview, ColorReview, 80},
		{domain.TaskPlanning, ColorPlanned, 0},
		{domain.TaskTodo, ColorPlanned, 0},
	}
	for _, tc := range cases {
		st := Classify(tc.status)
		assert.Equal(t, tc.color, st.Color, "status %s", tc.status)
		assert.Equal(t, tc.progress, st.ProgressPct, "status %s", tc.status)
		assert.NotEmpty(t, st.Label)
	}
}

func TestClassify_UnknownIsNeutral(t *testing.T) {
	st := Classify(domain.TaskStatus("blocked"))
	assert.Equal(t, ColorNeutral, st.Color)
	assert.Equal(t, "blocked", st.Label)
	assert.Equal(t, 0.0, st.ProgressPct)

	assert.Equal(t, "Unknown", Classify("").Label)
}

func TestClassify_EveryKnownStatusHasEntry(t *testing.T) {
	for _, s := range domain.KnownTaskStatuses {
		assert.NotEqual(t, ColorNeutral, Classify(s).Color, "status %s should not fall back", s)
	}
}

func TestClassifyUrgency_Boundaries(t *testing.T) {
	assert.Equal(t, UrgencyOverdue, ClassifyUrgency(-1))
	assert.Equal(t, UrgencyUrgent, ClassifyUrgency(0))
	assert.Equal(t, UrgencyUrgent, ClassifyUrgency(3))
	assert.Equal(t, UrgencyNormal, ClassifyUrgency(4))
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, -1, DaysUntilDue(date(2025, 3, 14), now), "yesterday")
	assert.Equal(t, 0, DaysUntilDue(date(2025, 3, 15), now), "today")
	assert.Equal(t, 1, DaysUntilDue(date(2025, 3, 16), now), "tomorrow")
	assert.Equal(t, 3, DaysUntilDue(date(2025, 3, 18), now))
	assert.Equal(t, 4, DaysUntilDue(date(2025, 3, 19), now))
}

func TestDaysUntilDue_AtMidnight(t *testing.T) {
	now := date(2025, 3, 15)
	assert.Equal(t, 0, DaysUntilDue(date(2025, 3, 15), now))
	assert.Equal(t, -1, DaysUntilDue(date(2025, 3, 14), now))
	assert.Equal(t, 1, DaysUntilDue(date(2025, 3, 16), now))
}

func TestUrgencyLabel(t *testing.T) {
	assert.Equal(t, "2d overdue", UrgencyLabel(-2))
	assert.Equal(t, "Due today", UrgencyLabel(0))
	assert.Equal(t, "Due tomorrow", UrgencyLabel(1))
	assert.Equal(t, "Due in 9d", UrgencyLabel(9))
}

func TestApplyUrgency_OverdueFillsTrack(t *testing.T) {
	l := Layout{Offset: 0.4, Width: 0.02}
	assert.Equal(t, Layout{Offset: 0, Width: 1}, ApplyUrgency(l, UrgencyOverdue))
	assert.Equal(t, l, ApplyUrgency(l, UrgencyUrgent))
	assert.Equal(t, l, ApplyUrgency(l, UrgencyNormal))
}

func TestPass_DueYesterdayScenario(t *testing.T) {
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	p := NewPass(now, NewDayWindow(now, 7, 14), 0)

	pl, err := p.PlaceDates("", "2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, -1, pl.DaysUntilDue)
	assert.Equal(t, UrgencyOverdue, pl.Urgency)
	assert.Equal(t, Layout{Offset: 0, Width: 1}, pl.Layout)

	// Progress fill comes from status alone.
	assert.Equal(t, 60.0, Classify(domain.TaskInProgress).ProgressPct)
}

func TestPass_PlaceDates_FromTodayToDue(t *testing.T) {
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	p := NewPass(now, NewDayWindow(now, 7, 14), DefaultMinWidth)

	pl, err := p.PlaceDates("", "2025-03-22")
	require.NoError(t, err)
	assert.InDelta(t, 7.0/21.0, pl.Layout.Offset, 1e-12)
	assert.InDelta(t, 7.0/21.0, pl.Layout.Width, 1e-12)
	assert.Equal(t, UrgencyNormal, pl.Urgency)
}

func TestPass_PlaceDates_ExplicitStart(t *testing.T) {
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	p := NewPass(now, NewDayWindow(now, 7, 14), DefaultMinWidth)

	pl, err := p.PlaceDates("2025-03-01", "2025-03-17")
	require.NoError(t, err)
	assert.Equal(t, 0.0, pl.Layout.Offset)
	assert.InDelta(t, 16.0/21.0, pl.Layout.Width, 1e-12)
	assert.Equal(t, UrgencyUrgent, pl.Urgency)
}

func TestPass_PlaceDates_Errors(t *testing.T) {
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	p := NewPass(now, NewDayWindow(now, 7, 14), DefaultMinWidth)

	_, err := p.PlaceDates("", "15/03/2025")
	assert.ErrorContains(t, err, "due_date")

	_, err = p.PlaceDates("soon", "2025-03-20")
	assert.ErrorContains(t, err, "start_date")

	empty := NewPass(now, Window{}, DefaultMinWidth)
	_, err = empty.PlaceDates("", "2025-03-20")
	assert.ErrorContains(t, err, "INVALID_WINDOW")
}

func TestPass_Idempotent(t *testing.T) {
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	p := NewPass(now, NewWeekWindow(now, 12), DefaultMinWidth)

	a, errA := p.PlaceDates("2025-03-10", "2025-04-02")
	b, errB := p.PlaceDates("2025-03-10", "2025-04-02")
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)

	ia, _ := p.PlaceIndex(3, 4)
	ib, _ := p.PlaceIndex(3, 4)
	assert.Equal(t, ia, ib)
	assert.Equal(t, 0.25, ia.Offset)
}

func TestPass_DueIn(t *testing.T) {
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	p := NewPass(now, Window{}, 0)

	days, urg, err := p.DueIn("2025-03-18")
	require.NoError(t, err)
	assert.Equal(t, 3, days)
	assert.Equal(t, UrgencyUrgent, urg)
	assert.Equal(t, DefaultMinWidth, p.MinWidth)

	_, _, err = p.DueIn("")
	assert.Error(t, err)
}

func TestUrgencyFor(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	days, u := UrgencyFor(date(2025, 3, 13), now)
	assert.Equal(t, -2, days)
	assert.Equal(t, UrgencyOverdue, u)
}
