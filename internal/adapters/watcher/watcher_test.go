package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glance/internal/adapters/watcher"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/glance/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func startWatcher(t *testing.T) (*watcher.Watcher, <-chan ports.WatchEvent) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(mockLogger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})
	require.NoError(t, w.Start(ctx))

	events := make(chan ports.WatchEvent, 100)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
		close(events)
	}()
	return w, events
}

func waitFor(t *testing.T, events <-chan ports.WatchEvent, path string) ports.WatchEvent {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event stream closed")
			if ev.Path == path {
				return ev
			}
		case <-timeout:
			require.FailNow(t, "timed out waiting for event", path)
		}
	}
}

func TestWatcher_ReportsDirectChildren(t *testing.T) {
	dir := t.TempDir()
	w, events := startWatcher(t)
	require.NoError(t, w.Watch(dir))

	path := filepath.Join(dir, "new.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	ev := waitFor(t, events, path)
	assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, ev.Operation)

	require.NoError(t, os.Remove(path))
	for ev.Operation != ports.OpRemove {
		ev = waitFor(t, events, path)
	}
}

func TestWatcher_WatchReplacesFolder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	w, events := startWatcher(t)
	require.NoError(t, w.Watch(first))
	require.NoError(t, w.Watch(second))
	require.NoError(t, w.Watch(second), "watching the same folder twice is a no-op")

	require.NoError(t, os.WriteFile(filepath.Join(first, "ignored.png"), []byte("x"), 0o600))
	path := filepath.Join(second, "seen.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	waitFor(t, events, path)
}

func TestWatcher_WatchMissingFolder(t *testing.T) {
	w, _ := startWatcher(t)
	err := w.Watch(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to watch folder")
}
