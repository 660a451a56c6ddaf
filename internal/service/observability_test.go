package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_Levels(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "timeline", Duration: 3 * time.Millisecond, Success: true,
		Fields: map[string]any{"variant": "weeks", "rows": 18},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "timeline", Success: true, Warnings: 2,
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "overview", Err: errors.New("disk gone"),
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)

	assert.Contains(t, lines[0], "level=INFO")
	assert.Contains(t, lines[0], "use_case=timeline")
	assert.Contains(t, lines[0], "rows=18 variant=weeks", "fields are key-sorted")

	assert.Contains(t, lines[1], "level=WARN")
	assert.Contains(t, lines[1], "warnings=2")

	assert.Contains(t, lines[2], "level=ERROR")
	assert.Contains(t, lines[2], `error="disk gone"`)
}

func TestLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}
