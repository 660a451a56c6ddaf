package app

import "time"

type OverviewRequest struct {
	Now         *time.Time
	MemberScope []string
	RecentTasks int
}

func NewOverviewRequest() OverviewRequest {
	return OverviewRequest{RecentTasks: 2}
}

type MemberCard struct {
	MemberID       string
	Name           string
	Initials       string
	Position       string
	Avatar         string
	Availability   string
	AvailableToday bool
	Projects       []string
	Counts         StatusCounts
	TaskTotal      int
	// ProgressPct is completed/total*100, 0 for a member with no tasks.
	ProgressPct float64
	RecentTasks []TaskView
}

type OverviewSummary struct {
	GeneratedAt    time.Time
	MemberCount    int
	TaskCount      int
	AvailableToday int
	Counts         StatusCounts
}

type OverviewResponse struct {
	Summary  OverviewSummary
	Members  []MemberCard
	Warnings []string
}
