package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/crewboard/internal/domain"
	"github.com/alexanderramin/crewboard/internal/importer"
	"github.com/alexanderramin/crewboard/internal/repository"
)

// sampleNow is a Sunday, so week windows start on it.
var sampleNow = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)

func setupSampleRoster(t *testing.T) *repository.MemoryRosterRepo {
	t.Helper()
	roster, err := importer.SampleRoster()
	require.NoError(t, err)
	return repository.NewMemoryRosterRepo(roster)
}

func setupRoster(members ...*domain.Member) *repository.MemoryRosterRepo {
	return repository.NewMemoryRosterRepo(&domain.Roster{Members: members})
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.events)
	return o.events[len(o.events)-1]
}
