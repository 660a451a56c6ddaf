package domain

import "strings"

type TaskStatus string

const (
	TaskPlanning   TaskStatus = "planning"
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskReview     TaskStatus = "review"
	TaskCompleted  TaskStatus = "completed"
)

// KnownTaskStatuses lists the canonical statuses in board order.
var KnownTaskStatuses = []TaskStatus{
	TaskPlanning, TaskTodo, TaskInProgress, TaskReview, TaskCompleted,
}

// statusAliases maps the spellings found in roster data to canonical statuses.
var statusAliases = map[string]TaskStatus{
	"planning":    TaskPlanning,
	"planned":     TaskPlanning,
	"todo":        TaskTodo,
	"to-do":       TaskTodo,
	"in-progress": TaskInProgress,
	"in_progress": TaskInProgress,
	"progress":    TaskInProgress,
	"review":      TaskReview,
	"completed":   TaskCompleted,
	"done":        TaskCompleted,
}

// ParseTaskStatus normalizes a raw status string. Unrecognized values are
// returned verbatim (trimmed) so callers can style them as unknown.
func ParseTaskStatus(raw string) TaskStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	if st, ok := statusAliases[s]; ok {
		return st
	}
	return TaskStatus(strings.TrimSpace(raw))
}

// Known reports whether s is one of the canonical statuses.
func (s TaskStatus) Known() bool {
	for _, k := range KnownTaskStatuses {
		if s == k {
			return true
		}
	}
	return false
}

// IsOpen reports whether the task still counts as "to do" on member cards.
func (s TaskStatus) IsOpen() bool {
	return s == TaskPlanning || s == TaskTodo
}

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)
