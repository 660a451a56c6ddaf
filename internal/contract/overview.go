package contract

import "github.com/alexanderramin/crewboard/internal/app"

type OverviewRequest = app.OverviewRequest

func NewOverviewRequest() OverviewRequest {
	return app.NewOverviewRequest()
}

type MemberCard = app.MemberCard

type OverviewSummary = app.OverviewSummary

type OverviewResponse = app.OverviewResponse
