package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/crewboard/internal/app"
	"github.com/alexanderramin/crewboard/internal/domain"
	"github.com/alexanderramin/crewboard/internal/repository"
	"github.com/alexanderramin/crewboard/internal/timeline"
)

type timelineService struct {
	roster   repository.RosterRepo
	observer UseCaseObserver
}

func NewTimelineService(roster repository.RosterRepo, observers ...UseCaseObserver) TimelineService {
	return &timelineService{
		roster:   roster,
		observer: useCaseObserverOrNoop(observers),
	}
}

// timelinePlan is a request after defaults and validation.
type timelinePlan struct {
	variant    app.TimelineVariant
	weeks      int
	daysBefore int
	daysAfter  int
	minWidth   float64
}

func (s *timelineService) GetTimeline(ctx context.Context, req app.TimelineRequest) (resp *app.TimelineResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		event := UseCaseEvent{
			Name:      "timeline",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		}
		if resp != nil {
			event.Warnings = len(resp.Warnings)
		}
		s.observer.ObserveUseCase(ctx, event)
	}()

	var plan timelinePlan
	plan, err = resolveTimelinePlan(req)
	if err != nil {
		return nil, err
	}
	fields["variant"] = string(plan.variant)

	now := resolveNow(req.Now)
	window := buildWindow(plan, now)
	pass := timeline.NewPass(now, window, plan.minWidth)

	var roster *domain.Roster
	roster, err = s.roster.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}
	var members []*domain.Member
	members, err = filterMembersByScope(roster.Members, req.MemberScope)
	if err != nil {
		return nil, err
	}

	resp = &app.TimelineResponse{
		Variant:     plan.variant,
		Unit:        window.Unit,
		Labels:      window.Labels(),
		TodayIndex:  window.IndexOf(now),
		WindowStart: window.Start(),
		WindowEnd:   window.End(),
		GeneratedAt: now,
	}

	var groups []app.TimelineGroup
	if plan.variant == app.VariantActivities {
		groups = activityGroups(roster.Groups, pass)
		groups = append(groups, indexedTaskGroups(members, req.ProjectScope, pass)...)
	} else {
		groups = datedTaskGroups(members, req.ProjectScope, pass)
	}

	for _, g := range groups {
		for _, row := range g.Rows {
			resp.RowCount++
			if row.Skipped {
				resp.SkippedCount++
				resp.Warnings = append(resp.Warnings, fmt.Sprintf("%s / %s: %s", g.Title, row.Title, row.Error))
			}
		}
	}
	if resp.RowCount == 0 {
		resp.Empty = true
	} else {
		resp.Groups = groups
	}

	fields["rows"] = resp.RowCount
	fields["skipped"] = resp.SkippedCount
	return resp, nil
}

func resolveTimelinePlan(req app.TimelineRequest) (timelinePlan, error) {
	plan := timelinePlan{
		variant:    req.Variant,
		weeks:      req.Weeks,
		daysBefore: req.DaysBefore,
		daysAfter:  req.DaysAfter,
		minWidth:   req.MinWidth,
	}

	period := req.Period
	if period == "" {
		period = domain.PeriodWeekly
	}
	periodVariant, periodWeeks, ok := app.VariantForPeriod(period)
	if !ok {
		return plan, &app.RequestError{
			Code:    app.ErrInvalidPeriod,
			Message: fmt.Sprintf("unknown period %q (want daily, weekly or monthly)", req.Period),
		}
	}

	if plan.variant == "" {
		plan.variant = periodVariant
	} else if !app.ValidVariants[plan.variant] {
		return plan, &app.RequestError{
			Code:    app.ErrInvalidVariant,
			Message: fmt.Sprintf("unknown variant %q (want activities, weeks or days)", plan.variant),
		}
	}

	if plan.weeks == 0 {
		plan.weeks = periodWeeks
		if plan.weeks == 0 {
			plan.weeks = app.DefaultWeeks
		}
	}
	if plan.daysBefore == 0 && plan.daysAfter == 0 {
		plan.daysBefore, plan.daysAfter = app.DefaultDaysBefore, app.DefaultDaysAfter
	}

	switch {
	case plan.weeks < 0:
		return plan, &app.RequestError{Code: app.ErrInvalidWindow, Message: fmt.Sprintf("weeks must be positive, got %d", plan.weeks)}
	case plan.daysBefore < 0 || plan.daysAfter < 0:
		return plan, &app.RequestError{Code: app.ErrInvalidWindow, Message: "days before and after must not be negative"}
	case plan.minWidth > 1:
		return plan, &app.RequestError{Code: app.ErrInvalidWindow, Message: fmt.Sprintf("min width %.2f exceeds the track", plan.minWidth)}
	}
	return plan, nil
}

func buildWindow(plan timelinePlan, now time.Time) timeline.Window {
	if plan.variant == app.VariantDays {
		return timeline.NewDayWindow(now, plan.daysBefore, plan.daysAfter)
	}
	return timeline.NewWeekWindow(now, plan.weeks)
}

func activityGroups(groups []*domain.ActivityGroup, pass *timeline.Pass) []app.TimelineGroup {
	out := make([]app.TimelineGroup, 0, len(groups))
	for _, g := range groups {
		tg := app.TimelineGroup{Title: g.Title}
		for _, a := range g.Activities {
			row := styledRow(a.ID, a.Title, a.Status)
			row.Assignee = a.Assignee
			placeIndexRow(&row, a.StartWeek, a.Duration, pass)
			tg.Rows = append(tg.Rows, row)
		}
		if len(tg.Rows) > 0 {
			out = append(out, tg)
		}
	}
	return out
}

// indexedTaskGroups lays out member tasks that carry a week index extent.
func indexedTaskGroups(members []*domain.Member, projects []string, pass *timeline.Pass) []app.TimelineGroup {
	var out []app.TimelineGroup
	for _, m := range members {
		tg := app.TimelineGroup{Title: m.Name, MemberID: m.ID}
		for _, t := range filterTasksByProject(m.Tasks, projects) {
			if !t.HasIndexExtent() {
				continue
			}
			row := taskRow(t, m)
			placeIndexRow(&row, *t.StartWeek, *t.Duration, pass)
			tg.Rows = append(tg.Rows, row)
		}
		if len(tg.Rows) > 0 {
			out = append(out, tg)
		}
	}
	return out
}

// datedTaskGroups lays out member tasks by date, soonest due first.
func datedTaskGroups(members []*domain.Member, projects []string, pass *timeline.Pass) []app.TimelineGroup {
	var out []app.TimelineGroup
	for _, m := range members {
		tasks := append([]domain.Task(nil), filterTasksByProject(m.Tasks, projects)...)
		timeline.SortByDue(tasks, func(t domain.Task) string { return t.DueDate })

		tg := app.TimelineGroup{Title: m.Name, MemberID: m.ID}
		for _, t := range tasks {
			row := taskRow(t, m)
			placed, err := pass.PlaceDates(t.StartDate, t.DueDate)
			if err != nil {
				skip(&row, err)
			} else {
				days := placed.DaysUntilDue
				row.Layout = placed.Layout
				row.Overflows = placed.Layout.Overflows()
				row.DaysUntilDue = &days
				row.Urgency = placed.Urgency
				row.UrgencyLabel = timeline.UrgencyLabel(days)
			}
			tg.Rows = append(tg.Rows, row)
		}
		if len(tg.Rows) > 0 {
			out = append(out, tg)
		}
	}
	return out
}

func styledRow(id, title string, status domain.TaskStatus) app.TimelineRow {
	style := timeline.Classify(status)
	return app.TimelineRow{
		ID:          id,
		Title:       title,
		Status:      status,
		Color:       style.Color,
		Label:       style.Label,
		ProgressPct: style.ProgressPct,
	}
}

func taskRow(t domain.Task, m *domain.Member) app.TimelineRow {
	row := styledRow(t.ID, t.Title, t.Status)
	row.Assignee = m.Initials()
	row.Project = t.Project
	row.DueDate = t.DueDate
	return row
}

func placeIndexRow(row *app.TimelineRow, start, duration int, pass *timeline.Pass) {
	layout, err := pass.PlaceIndex(start, duration)
	if err != nil {
		skip(row, err)
		return
	}
	row.Layout = layout
	row.Overflows = layout.Overflows()
}

func skip(row *app.TimelineRow, err error) {
	row.Skipped = true
	row.Error = err.Error()
}
