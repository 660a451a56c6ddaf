package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/crewboard/internal/app"
	"github.com/alexanderramin/crewboard/internal/contract"
	"github.com/alexanderramin/crewboard/internal/domain"
	"github.com/alexanderramin/crewboard/internal/repository"
	"github.com/alexanderramin/crewboard/internal/testutil"
	"github.com/alexanderramin/crewboard/internal/timeline"
)

func sampleTimelineRequest(variant app.TimelineVariant) app.TimelineRequest {
	req := contract.NewTimelineRequest()
	req.Now = &sampleNow
	req.Variant = variant
	return req
}

func TestTimeline_WeeksVariant(t *testing.T) {
	svc := NewTimelineService(setupSampleRoster(t))

	resp, err := svc.GetTimeline(context.Background(), sampleTimelineRequest(app.VariantWeeks))
	require.NoError(t, err)

	assert.Equal(t, app.VariantWeeks, resp.Variant)
	assert.Equal(t, timeline.UnitWeek, resp.Unit)
	assert.Len(t, resp.Labels, 12)
	assert.Equal(t, 0, resp.TodayIndex, "window starts on the Sunday of now")
	assert.Equal(t, 18, resp.RowCount)
	assert.Zero(t, resp.SkippedCount)
	assert.False(t, resp.Empty)
	require.Len(t, resp.Groups, 6)

	sarah := resp.Groups[0]
	assert.Equal(t, "Sarah Johnson", sarah.Title)
	require.Len(t, sarah.Rows, 3)
	assert.Equal(t, []string{"Update Project Timeline", "Sprint Planning Meeting", "Review UI Mockups"},
		[]string{sarah.Rows[0].Title, sarah.Rows[1].Title, sarah.Rows[2].Title}, "sorted by due date")

	overdue := sarah.Rows[0]
	assert.Equal(t, timeline.UrgencyOverdue, overdue.Urgency)
	assert.Equal(t, timeline.Layout{Offset: 0, Width: 1}, overdue.Layout)
	assert.Equal(t, "2d overdue", overdue.UrgencyLabel)
	assert.Equal(t, 100.0, overdue.ProgressPct, "progress comes from status only")

	tomorrow := sarah.Rows[1]
	assert.Equal(t, 0.0, tomorrow.Layout.Offset)
	assert.Equal(t, timeline.DefaultMinWidth, tomorrow.Layout.Width, "one day of 84 is below the floor")
	assert.Equal(t, timeline.UrgencyUrgent, tomorrow.Urgency)
	assert.Equal(t, "SJ", tomorrow.Assignee)

	assert.InDelta(t, 2.0/84.0, sarah.Rows[2].Layout.Width, 1e-12)
}

func TestTimeline_DaysVariant(t *testing.T) {
	svc := NewTimelineService(setupSampleRoster(t))

	resp, err := svc.GetTimeline(context.Background(), sampleTimelineRequest(app.VariantDays))
	require.NoError(t, err)

	assert.Equal(t, timeline.UnitDay, resp.Unit)
	assert.Len(t, resp.Labels, 21)
	assert.Equal(t, 7, resp.TodayIndex)
	assert.Equal(t, "Sun 14", resp.Labels[7])

	sprint := resp.Groups[0].Rows[1]
	assert.Equal(t, "Sprint Planning Meeting", sprint.Title)
	assert.InDelta(t, 7.0/21.0, sprint.Layout.Offset, 1e-12)
	assert.InDelta(t, 1.0/21.0, sprint.Layout.Width, 1e-12)
}

func TestTimeline_ActivitiesVariant(t *testing.T) {
	svc := NewTimelineService(setupSampleRoster(t))

	resp, err := svc.GetTimeline(context.Background(), sampleTimelineRequest(app.VariantActivities))
	require.NoError(t, err)

	require.Len(t, resp.Groups, 3)
	assert.Equal(t, "UI/UX Design", resp.Groups[0].Title)
	assert.Equal(t, 10, resp.RowCount)

	wireframing := resp.Groups[0].Rows[1]
	assert.Equal(t, "Wireframing", wireframing.Title)
	assert.Equal(t, "EM", wireframing.Assignee)
	assert.InDelta(t, 1.0/12.0, wireframing.Layout.Offset, 1e-12)
	assert.InDelta(t, 3.0/12.0, wireframing.Layout.Width, 1e-12)
	assert.Equal(t, timeline.ColorProgress, wireframing.Color)
	assert.Nil(t, wireframing.DaysUntilDue, "index rows have no due date")
}

func TestTimeline_ActivitiesOverflowKept(t *testing.T) {
	svc := NewTimelineService(setupSampleRoster(t))
	req := sampleTimelineRequest(app.VariantActivities)
	req.Weeks = 8

	resp, err := svc.GetTimeline(context.Background(), req)
	require.NoError(t, err)

	last := resp.Groups[2].Rows[3]
	assert.Equal(t, "Integration Testing", last.Title)
	assert.Equal(t, timeline.Layout{Offset: 1, Width: 0.25}, last.Layout)
	assert.True(t, last.Overflows)
}

func TestTimeline_IndexedMemberTasks(t *testing.T) {
	member := testutil.NewTestMember("Mike Chen", testutil.WithTasks(
		testutil.NewTestTask("Auth", "2024-02-01", testutil.WithIndexExtent(5, 2)),
		testutil.NewTestTask("Unplaced", "2024-02-01"),
	))
	svc := NewTimelineService(setupRoster(member))

	resp, err := svc.GetTimeline(context.Background(), sampleTimelineRequest(app.VariantActivities))
	require.NoError(t, err)
	require.Len(t, resp.Groups, 1)
	require.Len(t, resp.Groups[0].Rows, 1)
	assert.Equal(t, "Auth", resp.Groups[0].Rows[0].Title)
	assert.InDelta(t, 5.0/12.0, resp.Groups[0].Rows[0].Layout.Offset, 1e-12)
}

func TestTimeline_PeriodMapping(t *testing.T) {
	svc := NewTimelineService(setupSampleRoster(t))

	cases := []struct {
		period  domain.Period
		variant app.TimelineVariant
		labels  int
	}{
		{domain.PeriodDaily, app.VariantDays, 21},
		{domain.PeriodWeekly, app.VariantWeeks, 12},
		{domain.PeriodMonthly, app.VariantWeeks, 26},
	}
	for _, tc := range cases {
		req := sampleTimelineRequest("")
		req.Period = tc.period

		resp, err := svc.GetTimeline(context.Background(), req)
		require.NoError(t, err, "period %s", tc.period)
		assert.Equal(t, tc.variant, resp.Variant, "period %s", tc.period)
		assert.Len(t, resp.Labels, tc.labels, "period %s", tc.period)
	}
}

func TestTimeline_BadDateSkipsOnlyThatRow(t *testing.T) {
	member := testutil.NewTestMember("Lisa Park", testutil.WithTasks(
		testutil.NewTestTask("Performance Metrics", "2024-01-17", testutil.WithStatus(domain.TaskInProgress)),
		testutil.NewTestTask("Data Visualization", "next week"),
		testutil.NewTestTask("Monthly Report", "2024-01-20", testutil.WithStartDate("01/10/2024")),
	))
	obs := &recordingObserver{}
	svc := NewTimelineService(setupRoster(member), obs)

	resp, err := svc.GetTimeline(context.Background(), sampleTimelineRequest(app.VariantWeeks))
	require.NoError(t, err)

	assert.Equal(t, 3, resp.RowCount)
	assert.Equal(t, 2, resp.SkippedCount)
	require.Len(t, resp.Warnings, 2)

	var placed, skipped []string
	for _, row := range resp.Groups[0].Rows {
		if row.Skipped {
			skipped = append(skipped, row.Title)
			assert.Contains(t, row.Error, "DATA_FORMAT")
		} else {
			placed = append(placed, row.Title)
			assert.Greater(t, row.Layout.Width, 0.0)
		}
	}
	assert.Equal(t, []string{"Performance Metrics"}, placed)
	assert.ElementsMatch(t, []string{"Data Visualization", "Monthly Report"}, skipped)

	event := obs.last(t)
	assert.True(t, event.Success)
	assert.Equal(t, 2, event.Warnings)
	assert.Equal(t, 2, event.Fields["skipped"])
}

func TestTimeline_EmptyTaskSet(t *testing.T) {
	svc := NewTimelineService(setupRoster(testutil.NewTestMember("New Hire")))

	resp, err := svc.GetTimeline(context.Background(), sampleTimelineRequest(app.VariantWeeks))
	require.NoError(t, err)
	assert.True(t, resp.Empty)
	assert.Nil(t, resp.Groups)
	assert.Len(t, resp.Labels, 12, "the window is still reported")
	assert.Empty(t, resp.Warnings)
}

func TestTimeline_Scopes(t *testing.T) {
	svc := NewTimelineService(setupSampleRoster(t))

	req := sampleTimelineRequest(app.VariantWeeks)
	req.ProjectScope = []string{"client portal"}
	resp, err := svc.GetTimeline(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.RowCount)
	require.Len(t, resp.Groups, 3)
	assert.Equal(t, "Review UI Mockups", resp.Groups[0].Rows[0].Title)

	req = sampleTimelineRequest(app.VariantWeeks)
	req.MemberScope = []string{"Alex Thompson"}
	resp, err = svc.GetTimeline(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Groups, 1)
	assert.Equal(t, "6", resp.Groups[0].MemberID)
}

func TestTimeline_RequestErrors(t *testing.T) {
	svc := NewTimelineService(setupSampleRoster(t))

	cases := []struct {
		name   string
		mutate func(*app.TimelineRequest)
		code   app.RequestErrorCode
	}{
		{"unknown variant", func(r *app.TimelineRequest) { r.Variant = "gantt" }, app.ErrInvalidVariant},
		{"unknown period", func(r *app.TimelineRequest) { r.Variant = ""; r.Period = "yearly" }, app.ErrInvalidPeriod},
		{"negative weeks", func(r *app.TimelineRequest) { r.Weeks = -1 }, app.ErrInvalidWindow},
		{"negative days", func(r *app.TimelineRequest) { r.Variant = app.VariantDays; r.DaysBefore = -3 }, app.ErrInvalidWindow},
		{"floor wider than track", func(r *app.TimelineRequest) { r.MinWidth = 1.5 }, app.ErrInvalidWindow},
		{"unknown member", func(r *app.TimelineRequest) { r.MemberScope = []string{"Nobody"} }, app.ErrInvalidScope},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := sampleTimelineRequest(app.VariantWeeks)
			tc.mutate(&req)

			_, err := svc.GetTimeline(context.Background(), req)
			var reqErr *app.RequestError
			require.True(t, errors.As(err, &reqErr), "got %v", err)
			assert.Equal(t, tc.code, reqErr.Code)
		})
	}
}

func TestTimeline_ZeroValueRequestUsesDefaults(t *testing.T) {
	svc := NewTimelineService(setupSampleRoster(t))

	resp, err := svc.GetTimeline(context.Background(), app.TimelineRequest{Now: &sampleNow, Variant: app.VariantDays})
	require.NoError(t, err)
	assert.Len(t, resp.Labels, 21)
}

func TestTimeline_Idempotent(t *testing.T) {
	svc := NewTimelineService(setupSampleRoster(t))
	req := sampleTimelineRequest(app.VariantWeeks)

	a, err := svc.GetTimeline(context.Background(), req)
	require.NoError(t, err)
	b, err := svc.GetTimeline(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTimeline_SnapshotFailure(t *testing.T) {
	svc := NewTimelineService(&testutil.FailingRosterRepo{Err: errors.New("locked")})

	_, err := svc.GetTimeline(context.Background(), sampleTimelineRequest(app.VariantWeeks))
	assert.ErrorContains(t, err, "loading roster: locked")
}

func TestTimeline_SQLiteSource(t *testing.T) {
	member := testutil.NewTestMember("Emma Wilson", testutil.WithTasks(
		testutil.NewTestTask("Create Design System", "2024-01-16", testutil.WithStatus(domain.TaskInProgress)),
	))
	database := testutil.NewTestDB(t)
	testutil.SeedRoster(t, database, &domain.Roster{Members: []*domain.Member{member}})

	svc := NewTimelineService(repository.NewSQLiteRosterRepo(database))
	resp, err := svc.GetTimeline(context.Background(), sampleTimelineRequest(app.VariantWeeks))
	require.NoError(t, err)
	require.Len(t, resp.Groups, 1)
	assert.Equal(t, "EW", resp.Groups[0].Rows[0].Assignee)
	assert.Equal(t, 60.0, resp.Groups[0].Rows[0].ProgressPct)
}
