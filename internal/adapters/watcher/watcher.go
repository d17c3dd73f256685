// Package watcher implements manifest file watching for watch mode.
package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"

	"github.com/Daisey666/envfile/internal/core/ports"
	"github.com/fsnotify/fsnotify"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher implements manifest watching using fsnotify. It watches the
// directory containing the manifest rather than the file itself, since
// editors replace files on save and a direct file watch would go stale.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	target    string

	// mu guards closed; inflight tracks emit calls still sending. The
	// debouncer fires its callback on its own goroutine, so the events
	// channel may only be closed once closed is set and inflight drains.
	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
	events   chan ports.WatchEvent
}

// NewWatcher creates a new manifest watcher.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}
	w.debouncer = NewDebouncer(DefaultDebounceWindow, w.emit)
	return w, nil
}

// Start begins watching the directory containing the given manifest path.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.target = abs

	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of debounced change events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.closeEvents()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.debouncer.Add(event.Name)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; the next event delivers fresh state.
		}
	}
}

// relevant filters events down to changes of the watched manifest itself.
// Renames count: atomic saves replace the file under the same name.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return abs == w.target
}

// closeEvents ends the event stream. New emit calls become no-ops before
// the channel closes, and senders already past the guard finish first.
func (w *Watcher) closeEvents() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()

	w.inflight.Wait()
	close(w.events)
}

func (w *Watcher) emit(paths []string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.inflight.Add(1)
	w.mu.Unlock()
	defer w.inflight.Done()

	for _, path := range paths {
		select {
		case w.events <- ports.WatchEvent{Path: path}:
		default:
			// Drop when the consumer lags; a newer event follows on the next change.
		}
	}
}
