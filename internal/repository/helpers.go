package repository

import (
	"database/sql"

	"github.com/alexanderramin/crewboard/internal/domain"
)

// stringFromNull returns the string value or "" for SQL NULL.
func stringFromNull(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// intFromNull converts a nullable integer column into a *int.
func intFromNull(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func cloneMember(m *domain.Member) *domain.Member {
	c := *m
	c.Projects = append([]string(nil), m.Projects...)
	c.Tasks = make([]domain.Task, len(m.Tasks))
	for i, t := range m.Tasks {
		c.Tasks[i] = cloneTask(t)
	}
	return &c
}

func cloneTask(t domain.Task) domain.Task {
	if t.StartWeek != nil {
		v := *t.StartWeek
		t.StartWeek = &v
	}
	if t.Duration != nil {
		v := *t.Duration
		t.Duration = &v
	}
	return t
}

func cloneGroup(g *domain.ActivityGroup) *domain.ActivityGroup {
	c := *g
	c.Activities = append([]domain.Activity(nil), g.Activities...)
	return &c
}
