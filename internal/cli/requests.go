package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/crewboard/internal/contract"
	"github.com/alexanderramin/crewboard/internal/domain"
)

// timelineFlags are shared by the timeline and export commands.
type timelineFlags struct {
	variant  string
	period   string
	weeks    int
	members  []string
	projects []string
}

func (f *timelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.variant, "variant", "", "Timeline variant: activities, weeks or days (default from --period)")
	cmd.Flags().StringVar(&f.period, "period", "", "Period: daily, weekly or monthly (default from config)")
	cmd.Flags().IntVar(&f.weeks, "weeks", 0, "Number of week buckets (default from period)")
	cmd.Flags().StringSliceVar(&f.members, "member", nil, "Limit to member ID or name (repeatable)")
	cmd.Flags().StringSliceVar(&f.projects, "project", nil, "Limit to project name (repeatable)")
}

// baseTimelineRequest fills a request from config.
func (a *App) baseTimelineRequest() contract.TimelineRequest {
	req := contract.NewTimelineRequest()
	now := a.Now()
	req.Now = &now

	if cfg := a.Config; cfg != nil {
		req.Period = domain.Period(cfg.Period)
		req.Weeks = cfg.Weeks
		req.DaysBefore = cfg.DaysBefore
		req.DaysAfter = cfg.DaysAfter
		req.MinWidth = cfg.MinWidth()
	}
	return req
}

// timelineRequest applies the flags the user set explicitly over the
// config-derived request.
func (a *App) timelineRequest(cmd *cobra.Command, f timelineFlags) contract.TimelineRequest {
	req := a.baseTimelineRequest()

	flags := cmd.Flags()
	if flags.Changed("variant") {
		req.Variant = contract.TimelineVariant(f.variant)
	}
	if flags.Changed("period") {
		req.Period = domain.Period(f.period)
	}
	if flags.Changed("weeks") {
		req.Weeks = f.weeks
	}
	req.MemberScope = f.members
	req.ProjectScope = f.projects
	return req
}

func (a *App) overviewRequest(members []string) contract.OverviewRequest {
	req := contract.NewOverviewRequest()
	now := a.Now()
	req.Now = &now
	if a.Config != nil {
		req.RecentTasks = a.Config.RecentTasks
	}
	req.MemberScope = members
	return req
}
