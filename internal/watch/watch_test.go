package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string) *Watcher {
	t.Helper()
	w, err := New(path, 20*time.Millisecond)
	require.NoError(t, err)
	w.Start(context.Background())
	t.Cleanup(w.Stop)
	return w
}

func TestWatcher_SignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("members: []\n"), 0o644))

	w := startWatcher(t, path)
	require.NoError(t, os.WriteFile(path, []byte("members: [{name: A}]\n"), 0o644))

	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("no change signal after write")
	}
}

func TestWatcher_SignalsOnReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("members: []\n"), 0o644))

	w := startWatcher(t, path)
	tmp := filepath.Join(dir, ".roster.yaml.swp")
	require.NoError(t, os.WriteFile(tmp, []byte("members: []\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("no change signal after rename over target")
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("members: []\n"), 0o644))

	w := startWatcher(t, path)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case <-w.Changes():
		t.Fatal("unexpected signal for sibling file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope", "roster.yaml"), 0)
	assert.Error(t, err)
}

func TestDebouncer_CollapsesBursts(t *testing.T) {
	var fired atomic.Int32
	d := newDebouncer(50*time.Millisecond, func() { fired.Add(1) })
	for range 5 {
		d.trigger()
	}
	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	var fired atomic.Int32
	d := newDebouncer(30*time.Millisecond, func() { fired.Add(1) })
	d.trigger()
	d.stop()
	d.trigger()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}
