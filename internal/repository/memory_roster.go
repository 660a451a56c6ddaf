package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/alexanderramin/crewboard/internal/domain"
)

// MemoryRosterRepo serves a roster held in memory. Replace swaps the whole
// roster atomically, which is how a file reload reaches readers.
type MemoryRosterRepo struct {
	mu     sync.RWMutex
	roster *domain.Roster
}

// NewMemoryRosterRepo creates a MemoryRosterRepo over roster. A nil roster is
// treated as empty.
func NewMemoryRosterRepo(roster *domain.Roster) *MemoryRosterRepo {
	r := &MemoryRosterRepo{}
	r.Replace(roster)
	return r
}

// Replace swaps in a new roster.
func (r *MemoryRosterRepo) Replace(roster *domain.Roster) {
	if roster == nil {
		roster = &domain.Roster{}
	}
	r.mu.Lock()
	r.roster = roster
	r.mu.Unlock()
}

func (r *MemoryRosterRepo) ListMembers(_ context.Context) ([]*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.members(), nil
}

func (r *MemoryRosterRepo) ListActivityGroups(_ context.Context) ([]*domain.ActivityGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.groups(), nil
}

func (r *MemoryRosterRepo) Snapshot(_ context.Context) (*domain.Roster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &domain.Roster{Members: r.members(), Groups: r.groups()}, nil
}

func (r *MemoryRosterRepo) members() []*domain.Member {
	out := make([]*domain.Member, len(r.roster.Members))
	for i, m := range r.roster.Members {
		out[i] = cloneMember(m)
	}
	return out
}

func (r *MemoryRosterRepo) groups() []*domain.ActivityGroup {
	out := make([]*domain.ActivityGroup, len(r.roster.Groups))
	for i, g := range r.roster.Groups {
		out[i] = cloneGroup(g)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}
