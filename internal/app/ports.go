package app

import "context"

type OverviewUseCase interface {
	GetOverview(ctx context.Context, req OverviewRequest) (*OverviewResponse, error)
}

type TimelineUseCase interface {
	GetTimeline(ctx context.Context, req TimelineRequest) (*TimelineResponse, error)
}
