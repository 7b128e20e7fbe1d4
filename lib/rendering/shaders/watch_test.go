package shaders

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatch(t *testing.T, paths ...string) (*Watcher, chan string) {
	t.Helper()
	changed := make(chan string, 16)
	w, err := Watch(paths, func(p string) {
		changed <- p
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w, changed
}

func expectChange(t *testing.T, changed chan string, path string) {
	t.Helper()
	select {
	case p := <-changed:
		assert.Equal(t, path, p)
	case <-time.After(5 * time.Second):
		t.Fatalf("no change reported for %s", path)
	}
}

func drain(changed chan string) {
	for {
		select {
		case <-changed:
		case <-time.After(3 * settleDelay):
			return
		}
	}
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.frag")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))
	_, changed := startWatch(t, path)

	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))
	expectChange(t, changed, path)
}

func TestWatchSurvivesRenameSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.vert")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))
	_, changed := startWatch(t, path)

	tmp := filepath.Join(dir, ".watched.vert.swp")
	require.NoError(t, os.WriteFile(tmp, []byte("two"), 0o644))
	require.NoError(t, os.Rename(tmp, path))
	expectChange(t, changed, path)
	drain(changed)

	require.NoError(t, os.WriteFile(path, []byte("three"), 0o644))
	expectChange(t, changed, path)
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.frag")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))
	_, changed := startWatch(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.frag"), []byte("x"), 0o644))
	select {
	case p := <-changed:
		t.Fatalf("unexpected change for %s", p)
	case <-time.After(3 * settleDelay):
	}
}

func TestWatchNoCallbackAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.frag")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	var calls atomic.Int32
	w, err := Watch([]string{path}, func(string) { calls.Add(1) })
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))
	// let the event arrive and the settle delay start
	time.Sleep(settleDelay / 4)
	assert.NoError(t, w.Close())

	time.Sleep(3 * settleDelay)
	assert.Zero(t, calls.Load())
}

func TestWatchMissingFile(t *testing.T) {
	_, err := Watch([]string{filepath.Join(t.TempDir(), "nope")}, func(string) {})
	assert.Error(t, err)
}
