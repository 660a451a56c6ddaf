package timeline

import "github.com/alexanderramin/crewboard/internal/domain"

// ColorClass is the abstract colour a renderer maps to its own palette.
type ColorClass string

const (
	ColorCompleted ColorClass = "completed"
	ColorProgress  ColorClass = "progress"
	ColorReview    ColorClass = "review"
	ColorPlanned   ColorClass = "planned"
	ColorNeutral   ColorClass = "neutral"
)

// StatusStyle is everything a view derives from a task status alone.
// ProgressPct is a categorical proxy, not a measurement of elapsed time.
type StatusStyle struct {
	Color       ColorClass
	Label       string
	ProgressPct float64
}

var statusTable = map[domain.TaskStatus]StatusStyle{
	domain.TaskCompleted:  {Color: ColorCompleted, Label: "Completed", ProgressPct: 100},
	domain.TaskInProgress: {Color: ColorProgress, Label: "In Progress", ProgressPct: 60},
	domain.TaskReview:     {Color: ColorReview, Label: "Review", ProgressPct: 80},
	domain.TaskPlanning:   {Color: ColorPlanned, Label: "Planning", ProgressPct: 0},
	domain.TaskTodo:       {Color: ColorPlanned, Label: "To Do", ProgressPct: 0},
}

// Classify looks up the style for a status. Unknown statuses get the neutral
// colour and keep their raw text as the label.
func Classify(s domain.TaskStatus) StatusStyle {
	if st, ok := statusTable[s]; ok {
		return st
	}
	label := string(s)
	if label == "" {
		label = "Unknown"
	}
	return StatusStyle{Color: ColorNeutral, Label: label}
}
