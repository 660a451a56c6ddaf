package app

import (
	"github.com/alexanderramin/crewboard/internal/domain"
	"github.com/alexanderramin/crewboard/internal/timeline"
)

// TaskView is one task as every dashboard surface shows it: the status table
// entry plus due-date urgency.
type TaskView struct {
	TaskID       string
	Title        string
	Project      string
	DueDate      string
	Status       domain.TaskStatus
	Color        timeline.ColorClass
	Label        string
	ProgressPct  float64
	DaysUntilDue *int
	Urgency      timeline.Urgency
	UrgencyLabel string
}

// StatusCounts groups task statuses the way member cards show them.
// Planning counts as to do; unknown statuses land in Other.
type StatusCounts struct {
	ToDo       int
	InProgress int
	Review     int
	Completed  int
	Other      int
}

// Add counts one task with status s.
func (c *StatusCounts) Add(s domain.TaskStatus) {
	switch {
	case s.IsOpen():
		c.ToDo++
	case s == domain.TaskInProgress:
		c.InProgress++
	case s == domain.TaskReview:
		c.Review++
	case s == domain.TaskCompleted:
		c.Completed++
	default:
		c.Other++
	}
}

// Merge adds other into c.
func (c *StatusCounts) Merge(other StatusCounts) {
	c.ToDo += other.ToDo
	c.InProgress += other.InProgress
	c.Review += other.Review
	c.Completed += other.Completed
	c.Other += other.Other
}

// Total returns the number of counted tasks.
func (c StatusCounts) Total() int {
	return c.ToDo + c.InProgress + c.Review + c.Completed + c.Other
}

type RequestErrorCode string

const (
	ErrInvalidScope   RequestErrorCode = "INVALID_SCOPE"
	ErrInvalidVariant RequestErrorCode = "INVALID_VARIANT"
	ErrInvalidPeriod  RequestErrorCode = "INVALID_PERIOD"
	ErrInvalidWindow  RequestErrorCode = "INVALID_WINDOW"
)

// RequestError reports a request the use case cannot serve at all, as
// opposed to per-row problems, which come back as warnings.
type RequestError struct {
	Code    RequestErrorCode
	Message string
}

func (e *RequestError) Error() string {
	return string(e.Code) + ": " + e.Message
}
