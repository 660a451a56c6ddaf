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

type overviewService struct {
	roster   repository.RosterRepo
	observer UseCaseObserver
}

func NewOverviewService(roster repository.RosterRepo, observers ...UseCaseObserver) OverviewService {
	return &overviewService{
		roster:   roster,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *overviewService) GetOverview(ctx context.Context, req app.OverviewRequest) (resp *app.OverviewResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		event := UseCaseEvent{
			Name:      "overview",
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

	now := resolveNow(req.Now)
	recent := req.RecentTasks
	if recent < 0 {
		recent = 0
	}

	var members []*domain.Member
	members, err = s.roster.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading members: %w", err)
	}
	members, err = filterMembersByScope(members, req.MemberScope)
	if err != nil {
		return nil, err
	}

	pass := timeline.NewPass(now, timeline.Window{}, 0)
	resp = &app.OverviewResponse{
		Summary: app.OverviewSummary{GeneratedAt: now},
		Members: make([]app.MemberCard, 0, len(members)),
	}
	for _, m := range members {
		card, warnings := buildMemberCard(m, pass, recent)
		resp.Members = append(resp.Members, card)
		resp.Warnings = append(resp.Warnings, warnings...)

		resp.Summary.MemberCount++
		resp.Summary.TaskCount += card.TaskTotal
		resp.Summary.Counts.Merge(card.Counts)
		if card.AvailableToday {
			resp.Summary.AvailableToday++
		}
	}

	fields["members"] = resp.Summary.MemberCount
	fields["tasks"] = resp.Summary.TaskCount
	return resp, nil
}

func buildMemberCard(m *domain.Member, pass *timeline.Pass, recent int) (app.MemberCard, []string) {
	card := app.MemberCard{
		MemberID:       m.ID,
		Name:           m.Name,
		Initials:       m.Initials(),
		Position:       m.Position,
		Avatar:         m.Avatar,
		Availability:   m.Availability,
		AvailableToday: m.AvailableToday(),
		Projects:       append([]string(nil), m.Projects...),
		TaskTotal:      len(m.Tasks),
	}
	for _, t := range m.Tasks {
		card.Counts.Add(t.Status)
	}
	if card.TaskTotal > 0 {
		card.ProgressPct = float64(card.Counts.Completed) / float64(card.TaskTotal) * 100
	}

	var warnings []string
	for i, t := range m.Tasks {
		if i >= recent {
			break
		}
		view, err := buildTaskView(t, pass)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s / %s: %v", m.Name, t.Title, err))
		}
		card.RecentTasks = append(card.RecentTasks, view)
	}
	return card, warnings
}
