package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
	seen  chan string
}

func newRecorder() *recorder {
	return &recorder{seen: make(chan string, 16)}
}

func (r *recorder) handle(_ context.Context, path string) error {
	r.mu.Lock()
	r.paths = append(r.paths, filepath.Base(path))
	r.mu.Unlock()
	r.seen <- filepath.Base(path)
	return nil
}

func (r *recorder) wait(t *testing.T, n int) []string {
	t.Helper()
	var got []string
	for range n {
		select {
		case p := <-r.seen:
			got = append(got, p)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for %d files, got %v", n, got)
		}
	}
	sort.Strings(got)
	return got
}

func startWatcher(t *testing.T, dir string, h EventHandler) (context.CancelFunc, <-chan error) {
	t.Helper()
	w, err := New(dir, h, logger.NewNop(), 2)
	require.NoError(t, err)
	w.(*implWatcher).settleDelay = 0
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()
	return cancel, done
}

func TestWatcherBacklogAndNewFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.pdf"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0755))

	rec := newRecorder()
	cancel, done := startWatcher(t, dir, rec.handle)

	assert.Equal(t, []string{"old.txt"}, rec.wait(t, 1))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.docx"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "call.m4a"), []byte("x"), 0644))
	assert.Equal(t, []string{"call.m4a"}, rec.wait(t, 1))

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.ElementsMatch(t, []string{"old.txt", "call.m4a"}, rec.paths)
}

func TestWatcherWaitsForHandlers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "slow.md"), []byte("x"), 0644))

	started := make(chan struct{})
	release := make(chan struct{})
	var finished bool
	handler := func(context.Context, string) error {
		close(started)
		<-release
		finished = true
		return nil
	}

	cancel, done := startWatcher(t, dir, handler)
	<-started
	cancel()

	select {
	case <-done:
		t.Fatal("Start returned before the handler finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.True(t, finished)
}

func TestDispatchSkipsInFlightPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "standup.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	var mu sync.Mutex
	calls := 0
	started := make(chan struct{}, 2)
	release := make(chan struct{})
	handler := func(context.Context, string) error {
		mu.Lock()
		calls++
		mu.Unlock()
		started <- struct{}{}
		<-release
		return nil
	}

	w, err := New(dir, handler, logger.NewNop(), 2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })
	impl := w.(*implWatcher)

	ctx := context.Background()
	require.NoError(t, impl.dispatch(ctx, path))
	<-started
	require.NoError(t, impl.dispatch(ctx, path))

	close(release)
	impl.wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
	assert.Empty(t, impl.inFlight)
}

func TestDispatchSkipsMissingPath(t *testing.T) {
	dir := t.TempDir()
	called := false
	w, err := New(dir, func(context.Context, string) error { called = true; return nil }, logger.NewNop(), 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })
	impl := w.(*implWatcher)

	require.NoError(t, impl.dispatch(context.Background(), filepath.Join(dir, "moved.txt")))
	impl.wg.Wait()

	assert.False(t, called)
	assert.Empty(t, impl.inFlight)
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, logger.NewNop(), 1)
	assert.Error(t, err)
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a/meeting.txt", true},
		{"a/meeting.md", true},
		{"a/meeting.mp3", true},
		{"a/meeting.MOV", true},
		{"a/meeting.srt", false},
		{"a/.meeting.txt.swp", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isSupported(tt.path))
		})
	}
}
