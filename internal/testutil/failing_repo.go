package testutil

import (
	"context"

	"github.com/alexanderramin/crewboard/internal/domain"
)

// FailingRosterRepo is a roster source whose every read returns Err. It lets
// use-case tests exercise error propagation and failure logging.
type FailingRosterRepo struct {
	Err error
}

func (r *FailingRosterRepo) ListMembers(context.Context) ([]*domain.Member, error) {
	return nil, r.Err
}

func (r *FailingRosterRepo) ListActivityGroups(context.Context) ([]*domain.ActivityGroup, error) {
	return nil, r.Err
}

func (r *FailingRosterRepo) Snapshot(context.Context) (*domain.Roster, error) {
	return nil, r.Err
}
