package ports

import (
	"context"
	"iter"
)

// WatchEvent represents a file system change reported by the watcher.
type WatchEvent struct {
	// Path is the path of the file that changed.
	Path string
}

// Watcher defines the interface for observing manifest file changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the directory containing the given file.
	Start(ctx context.Context, path string) error

	// Stop stops the watcher and releases all resources.
	Stop() error

	// Events returns an iterator of debounced change events.
	Events() iter.Seq[WatchEvent]
}
