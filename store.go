package cachestore

import (
	"context"
	"fmt"
)

// Store describes an ordered, uniquely keyed collection of entries.
// Implementations must be thread-safe.
type Store interface {
	Load(key Key) (*Entry, bool)
	Save(e *Entry) (*Entry, error)
	Delete(key Key) error

	// Watchers
	AddSaveWatcher(w SaveWatcher) (Unregister, error)
	AddDeleteWatcher(w DeleteWatcher) (Unregister, error)

	// Ordered reads
	Count() int
	IDs(offset, count int) ([]Key, error)
	Values(offset, count int) ([]*Entry, error)
	Between(from, to Key) ([]*Entry, error)
}

// Option customizes TreeStore behavior.
type Option func(*TreeStore)

// WithLogger specifies a logger for operation logging.
// If not provided, a no-op logger is used (no logging).
func WithLogger(logger Logger) Option {
	return func(s *TreeStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLogTag sets a tag prefix for all log messages.
// Useful for identifying the source of logs when several stores share a logger.
func WithLogTag(tag string) Option {
	return func(s *TreeStore) {
		s.logTag = tag
	}
}

// WithDegree sets the degree of the underlying B-tree.
// Values below 2 are ignored.
func WithDegree(degree int) Option {
	return func(s *TreeStore) {
		if degree >= 2 {
			s.degree = degree
		}
	}
}

func (s *TreeStore) logf(level string, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if s.logTag != "" {
		msg = s.logTag + " " + msg
	}
	ctx := context.Background()
	switch level {
	case "info":
		s.logger.Info(ctx, "%s", msg)
	case "warn":
		s.logger.Warn(ctx, "%s", msg)
	case "error":
		s.logger.Error(ctx, "%s", msg)
	case "debug":
		s.logger.Debug(ctx, "%s", msg)
	}
}
