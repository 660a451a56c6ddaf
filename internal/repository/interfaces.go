package repository

import (
	"context"

	"github.com/alexanderramin/crewboard/internal/domain"
)

// RosterRepo provides read-only access to the team roster. Implementations
// return copies; mutating a returned value never changes the source.
type RosterRepo interface {
	// ListMembers returns members in roster order, each with its projects and
	// tasks in roster order.
	ListMembers(ctx context.Context) ([]*domain.Member, error)
	// ListActivityGroups returns the activity groups ordered by OrderIndex.
	ListActivityGroups(ctx context.Context) ([]*domain.ActivityGroup, error)
	// Snapshot returns members and groups read from one consistent state.
	Snapshot(ctx context.Context) (*domain.Roster, error)
}
