package service

import "context"

// ErrorReporter forwards unexpected server errors to an external tracker.
type ErrorReporter interface {
	Report(ctx context.Context, err error, fields map[string]any)
	Close()
}
