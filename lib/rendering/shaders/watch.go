package shaders

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jhenstridge/go-inotify"
)

// editors tend to write in several steps
const settleDelay = 100 * time.Millisecond

// Watcher reports saves of shader override files. It watches the
// containing directories so that saves which rename a new file over the
// old one keep being reported.
type Watcher struct {
	watcher *inotify.Watcher
	files   map[string]bool
	changed func(path string)

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// Watch starts watching paths and calls changed, from a background
// goroutine, whenever one of them has been written or replaced. changed
// is never called once Close has returned.
func Watch(paths []string, changed func(path string)) (*Watcher, error) {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create inotify watcher: %w", err)
	}

	w := &Watcher{
		watcher: watcher,
		files:   make(map[string]bool),
		changed: changed,
		done:    make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err == nil {
			_, err = os.Stat(abs)
		}
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("could not watch %s: %w", path, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		_, err = watcher.AddWatch(dir, inotify.IN_CLOSE_WRITE|inotify.IN_MOVED_TO|inotify.IN_ONLYDIR)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("could not watch %s: %w", dir, err)
		}
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for ev := range w.watcher.Event {
		if ev.Watch == nil || ev.Name == "" {
			continue
		}
		path := filepath.Join(ev.Watch.Path, ev.Name)
		if !w.files[path] {
			continue
		}
		slog.Debug(fmt.Sprintf("%s changed (%s)", path, ev.Mask), slog.String("module", "shaders"))

		select {
		case <-w.done:
			return
		case <-time.After(settleDelay):
		}
		w.notify(path)
	}
}

func (w *Watcher) notify(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.changed(path)
}

// Close stops the watcher. It returns the read error that ended the
// event stream, if there was one.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.done)
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
