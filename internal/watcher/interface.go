package watcher

import "context"

// Watcher monitors the inbox directory for new meeting inputs.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles file events
type EventHandler func(ctx context.Context, filePath string) error
