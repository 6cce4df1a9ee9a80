package cachestore

import "github.com/google/uuid"

// SaveWatcher is called with the stored entry after every Save.
type SaveWatcher func(e *Entry) error

// DeleteWatcher is called with the key of every removed entry.
type DeleteWatcher func(k Key) error

// Unregister removes the watcher it was returned for. Calling it more
// than once is harmless.
type Unregister func()

type registration[F any] struct {
	id uuid.UUID
	fn F
}

// watchers is an ordered list of callbacks. It is not synchronized; the
// owning store guards it with its own mutex.
type watchers[F any] struct {
	list []registration[F]
}

func (w *watchers[F]) add(fn F) uuid.UUID {
	id := uuid.New()
	w.list = append(w.list, registration[F]{id: id, fn: fn})
	return id
}

func (w *watchers[F]) remove(id uuid.UUID) bool {
	for i, r := range w.list {
		if r.id == id {
			w.list = append(w.list[:i:i], w.list[i+1:]...)
			return true
		}
	}
	return false
}

// each calls fn for every registration in order, stopping at the first error.
func (w *watchers[F]) each(fn func(id uuid.UUID, f F) error) error {
	for _, r := range w.list {
		if err := fn(r.id, r.fn); err != nil {
			return err
		}
	}
	return nil
}
