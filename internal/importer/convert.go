package importer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/alexanderramin/crewboard/internal/domain"
)

// Convert transforms a validated RosterSchema into domain objects.
// Records without an id get a fresh UUID; statuses are normalised through
// domain.ParseTaskStatus. Call ValidateRosterSchema first.
func Convert(schema *RosterSchema) *domain.Roster {
	roster := &domain.Roster{
		Members: make([]*domain.Member, 0, len(schema.Members)),
		Groups:  make([]*domain.ActivityGroup, 0, len(schema.Groups)),
	}

	for _, mi := range schema.Members {
		m := &domain.Member{
			ID:           idOrNew(mi.ID),
			Name:         strings.TrimSpace(mi.Name),
			Position:     mi.Position,
			Avatar:       mi.Avatar,
			Availability: mi.Availability,
			Projects:     append([]string(nil), mi.Projects...),
			Tasks:        make([]domain.Task, 0, len(mi.Tasks)),
		}
		for _, ti := range mi.Tasks {
			m.Tasks = append(m.Tasks, domain.Task{
				ID:        idOrNew(ti.ID),
				Title:     strings.TrimSpace(ti.Title),
				Status:    domain.ParseTaskStatus(ti.Status),
				DueDate:   strings.TrimSpace(ti.DueDate),
				StartDate: strings.TrimSpace(ti.StartDate),
				Project:   ti.Project,
				MemberID:  m.ID,
				StartWeek: copyInt(ti.StartWeek),
				Duration:  copyInt(ti.Duration),
			})
		}
		roster.Members = append(roster.Members, m)
	}

	for i, gi := range schema.Groups {
		g := &domain.ActivityGroup{
			ID:         idOrNew(gi.ID),
			Title:      strings.TrimSpace(gi.Title),
			OrderIndex: i,
			Activities: make([]domain.Activity, 0, len(gi.Activities)),
		}
		for _, ai := range gi.Activities {
			g.Activities = append(g.Activities, domain.Activity{
				ID:        idOrNew(ai.ID),
				GroupID:   g.ID,
				Title:     strings.TrimSpace(ai.Title),
				StartWeek: ai.StartWeek,
				Duration:  ai.Duration,
				Status:    domain.ParseTaskStatus(ai.Status),
				Assignee:  strings.ToUpper(ai.Assignee),
			})
		}
		roster.Groups = append(roster.Groups, g)
	}

	return roster
}

func idOrNew(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return uuid.New().String()
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
