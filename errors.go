package cachestore

import "github.com/pkg/errors"

var (
	// ErrValidation reports key text that breaks the length or character rules.
	ErrValidation = errors.New("cachestore: invalid key")
	// ErrNullArgument reports a missing key, entry or watcher.
	ErrNullArgument = errors.New("cachestore: missing argument")
	// ErrIllegalArgument reports a negative window or an inverted range.
	ErrIllegalArgument = errors.New("cachestore: illegal argument")
	// ErrWatcher wraps the first error returned by a watcher.
	ErrWatcher = errors.New("cachestore: watcher failed")
)

func nullArgument(name string) error {
	return errors.Wrapf(ErrNullArgument, "%s", name)
}
