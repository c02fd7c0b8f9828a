package vfs

import "log/slog"

// Option configures a Tree.
type Option func(*Tree)

// WithLogger sets the logger for tree mutations.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// WithMaxContentSize limits the size, in characters, of text file content.
// Set limit to 0 to disable the limit.
func WithMaxContentSize(limit int64) Option {
	return func(t *Tree) {
		if limit < 0 {
			limit = 0
		}
		t.maxContentSize = limit
	}
}

// WithMaxEntities limits the number of entities below the root.
// Set limit to 0 to disable the limit.
func WithMaxEntities(limit int) Option {
	return func(t *Tree) {
		if limit < 0 {
			limit = 0
		}
		t.maxEntities = limit
	}
}
