package domain

// Task is a single assignment on a member's board. Dates are kept as the
// ISO strings supplied by the roster and parsed when a view needs them, so a
// malformed value only affects the row it belongs to.
type Task struct {
	ID        string
	Title     string
	Status    TaskStatus
	DueDate   string
	StartDate string // optional
	Project   string
	MemberID  string

	// Index-based placement, used by the activity timeline.
	StartWeek *int
	Duration  *int
}

// HasIndexExtent reports whether the task carries a start-week/duration pair.
func (t *Task) HasIndexExtent() bool {
	return t.StartWeek != nil && t.Duration != nil
}
