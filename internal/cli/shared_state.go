package cli

import (
	"time"

	"github.com/alexanderramin/crewboard/internal/contract"
	"github.com/alexanderramin/crewboard/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Timeline selection, changed through the period picker.
	Period         domain.Period
	ShowActivities bool

	// Terminal dimensions
	Width  int
	Height int

	// Watch status
	Watching   bool
	LastReload time.Time
	ReloadErr  error
}

func newSharedState(app *App) *SharedState {
	period := domain.PeriodWeekly
	if app.Config != nil && app.Config.Period != "" {
		period = domain.Period(app.Config.Period)
	}
	return &SharedState{App: app, Period: period}
}

// TimelineRequest builds the request for the timeline tab.
func (s *SharedState) TimelineRequest() contract.TimelineRequest {
	req := s.App.baseTimelineRequest()
	req.Period = s.Period
	if s.ShowActivities {
		req.Variant = contract.VariantActivities
	}
	return req
}

// ContentHeight returns the rows left for view content after the header
// (title + separator) and status bar (separator + hints).
func (s *SharedState) ContentHeight() int {
	return max(s.Height-4, 1)
}
