package logger

import "context"

// Logger is the logging interface shared by every component.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
	// With returns a child logger that adds the given key/value pairs.
	With(keysAndValues ...interface{}) Logger
	Sync() error
}
