package watcher

import "context"

// Watcher monitors a directory for new transcripts.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly arrived transcript.
type EventHandler func(ctx context.Context, filePath string) error
