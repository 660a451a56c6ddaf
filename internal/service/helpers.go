package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/crewboard/internal/app"
	"github.com/alexanderramin/crewboard/internal/domain"
	"github.com/alexanderramin/crewboard/internal/timeline"
)

// resolveNow reads "today" once per request.
func resolveNow(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now()
}

// filterMembersByScope keeps members whose ID, short ID or name matches an
// entry in scope. Every scope entry must match at least one member.
func filterMembersByScope(members []*domain.Member, scope []string) ([]*domain.Member, error) {
	if len(scope) == 0 {
		return members, nil
	}

	matched := make(map[string]bool, len(scope))
	var out []*domain.Member
	for _, m := range members {
		hit := false
		for _, s := range scope {
			if memberMatches(m, s) {
				matched[s] = true
				hit = true
			}
		}
		if hit {
			out = append(out, m)
		}
	}

	for _, s := range scope {
		if !matched[s] {
			return nil, &app.RequestError{
				Code:    app.ErrInvalidScope,
				Message: fmt.Sprintf("no member matches %q", s),
			}
		}
	}
	return out, nil
}

func memberMatches(m *domain.Member, s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return m.ID == s || m.DisplayID() == s || strings.EqualFold(m.Name, s)
}

// filterTasksByProject keeps tasks whose project matches any scope entry,
// case-insensitively.
func filterTasksByProject(tasks []domain.Task, projects []string) []domain.Task {
	if len(projects) == 0 {
		return tasks
	}
	var out []domain.Task
	for _, t := range tasks {
		for _, p := range projects {
			if strings.EqualFold(strings.TrimSpace(p), t.Project) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// buildTaskView classifies a task and, when its due date parses, its urgency.
// The returned error only concerns the due date; the view is still usable.
func buildTaskView(t domain.Task, pass *timeline.Pass) (app.TaskView, error) {
	style := timeline.Classify(t.Status)
	view := app.TaskView{
		TaskID:      t.ID,
		Title:       t.Title,
		Project:     t.Project,
		DueDate:     t.DueDate,
		Status:      t.Status,
		Color:       style.Color,
		Label:       style.Label,
		ProgressPct: style.ProgressPct,
	}

	days, urgency, err := pass.DueIn(t.DueDate)
	if err != nil {
		return view, err
	}
	view.DaysUntilDue = &days
	view.Urgency = urgency
	view.UrgencyLabel = timeline.UrgencyLabel(days)
	return view, nil
}
