package service

import "github.com/alexanderramin/crewboard/internal/app"

type OverviewService interface {
	app.OverviewUseCase
}

type TimelineService interface {
	app.TimelineUseCase
}
