package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/alexanderramin/crewboard/internal/domain"
)

var testTaskCounter atomic.Int64

// Member options
type MemberOption func(*domain.Member)

func WithMemberID(id string) MemberOption {
	return func(m *domain.Member) {
		m.ID = id
	}
}

func WithPosition(p string) MemberOption {
	return func(m *domain.Member) {
		m.Position = p
	}
}

func WithAvailability(a string) MemberOption {
	return func(m *domain.Member) {
		m.Availability = a
	}
}

func WithProjects(projects ...string) MemberOption {
	return func(m *domain.Member) {
		m.Projects = projects
	}
}

// WithTasks assigns tasks; NewTestMember points their MemberID at the member.
func WithTasks(tasks ...domain.Task) MemberOption {
	return func(m *domain.Member) {
		m.Tasks = append(m.Tasks, tasks...)
	}
}

func NewTestMember(name string, opts ...MemberOption) *domain.Member {
	m := &domain.Member{
		ID:           uuid.New().String(),
		Name:         name,
		Position:     "Engineer",
		Availability: "Available in 2 days",
	}
	for _, opt := range opts {
		opt(m)
	}
	for i := range m.Tasks {
		m.Tasks[i].MemberID = m.ID
	}
	return m
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithStartDate(d string) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = d
	}
}

func WithProject(p string) TaskOption {
	return func(t *domain.Task) {
		t.Project = p
	}
}

func WithIndexExtent(startWeek, duration int) TaskOption {
	return func(t *domain.Task) {
		t.StartWeek = &startWeek
		t.Duration = &duration
	}
}

func NewTestTask(title, dueDate string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:      fmt.Sprintf("task-%d", testTaskCounter.Add(1)),
		Title:   title,
		Status:  domain.TaskTodo,
		DueDate: dueDate,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewTestGroup builds an activity group; activities get GroupID filled in.
func NewTestGroup(title string, order int, activities ...domain.Activity) *domain.ActivityGroup {
	g := &domain.ActivityGroup{
		ID:         uuid.New().String(),
		Title:      title,
		OrderIndex: order,
		Activities: activities,
	}
	for i := range g.Activities {
		if g.Activities[i].ID == "" {
			g.Activities[i].ID = uuid.New().String()
		}
		g.Activities[i].GroupID = g.ID
	}
	return g
}

func NewTestActivity(title string, startWeek, duration int, status domain.TaskStatus) domain.Activity {
	return domain.Activity{
		Title:     title,
		StartWeek: startWeek,
		Duration:  duration,
		Status:    status,
	}
}
