package domain

// ActivityGroup is one swim lane of the activity Gantt chart.
type ActivityGroup struct {
	ID         string
	Title      string
	OrderIndex int
	Activities []Activity
}

// Activity is placed by week index rather than by date.
type Activity struct {
	ID        string
	GroupID   string
	Title     string
	StartWeek int
	Duration  int
	Status    TaskStatus
	Assignee  string // initials
}
