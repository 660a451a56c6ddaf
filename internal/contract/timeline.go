package contract

import "github.com/alexanderramin/crewboard/internal/app"

type TimelineVariant = app.TimelineVariant

const (
	VariantActivities TimelineVariant = app.VariantActivities
	VariantWeeks      TimelineVariant = app.VariantWeeks
	VariantDays       TimelineVariant = app.VariantDays
)

type TimelineRequest = app.TimelineRequest

func NewTimelineRequest() TimelineRequest {
	return app.NewTimelineRequest()
}

type TimelineRow = app.TimelineRow

type TimelineGroup = app.TimelineGroup

type TimelineResponse = app.TimelineResponse
