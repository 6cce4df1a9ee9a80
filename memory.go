package cachestore

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/btree"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultDegree = 32

// TreeStore implements Store with an in-memory B-tree ordered by key.
//
// A single mutex guards the tree and both watcher lists and is held for the
// whole of each operation, watcher calls included. A Save or Delete is
// therefore fully applied and notified before it returns. Watchers run on
// the caller's goroutine and must not call back into the same store.
type TreeStore struct {
	mu     sync.Mutex
	tree   *btree.BTreeG[*Entry]
	saves  watchers[SaveWatcher]
	dels   watchers[DeleteWatcher]
	degree int
	logger Logger
	logTag string
}

var _ Store = (*TreeStore)(nil)

// NewTreeStore creates an empty TreeStore.
func NewTreeStore(opts ...Option) *TreeStore {
	s := &TreeStore{
		degree: defaultDegree,
		logger: defaultLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tree = btree.NewG(s.degree, entryLess)
	return s
}

func entryLess(a, b *Entry) bool {
	return keyLess(a.key, b.key)
}

func probe(k Key) *Entry {
	return &Entry{key: k}
}

// Load returns the entry stored under key.
func (s *TreeStore) Load(key Key) (*Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Get(probe(key))
}

// Save stores e under its own key, replacing any previous entry, then calls
// every save watcher in registration order with the stored entry.
//
// If a watcher fails the remaining watchers are skipped and the error is
// returned wrapped in ErrWatcher. The entry stays stored.
func (s *TreeStore) Save(e *Entry) (*Entry, error) {
	if e == nil {
		return nil, nullArgument("entry")
	}
	stored, err := e.WithKey(e.Key())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree.ReplaceOrInsert(stored)
	s.logf("debug", "Save %s", stored)

	err = s.saves.each(func(id uuid.UUID, w SaveWatcher) error {
		if err := w(stored); err != nil {
			s.logf("error", "Save %s: watcher %s failed: %v", stored.Key(), id, err)
			return fmt.Errorf("%w: save watcher %s: %w", ErrWatcher, id, err)
		}
		return nil
	})
	return stored, err
}

// Delete removes the entry under key. Delete watchers are called only when
// an entry was actually removed; deleting a missing key is a silent no-op.
func (s *TreeStore) Delete(key Key) error {
	if key.IsZero() {
		return nullArgument("key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tree.Delete(probe(key)); !ok {
		return nil
	}
	s.logf("debug", "Delete %s", key)

	return s.dels.each(func(id uuid.UUID, w DeleteWatcher) error {
		if err := w(key); err != nil {
			s.logf("error", "Delete %s: watcher %s failed: %v", key, id, err)
			return fmt.Errorf("%w: delete watcher %s: %w", ErrWatcher, id, err)
		}
		return nil
	})
}

// AddSaveWatcher registers w to be called after every Save.
func (s *TreeStore) AddSaveWatcher(w SaveWatcher) (Unregister, error) {
	if w == nil {
		return nil, nullArgument("save watcher")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.saves.add(w)
	return s.unregister(func() bool { return s.saves.remove(id) }), nil
}

// AddDeleteWatcher registers w to be called after every removal.
func (s *TreeStore) AddDeleteWatcher(w DeleteWatcher) (Unregister, error) {
	if w == nil {
		return nil, nullArgument("delete watcher")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.dels.add(w)
	return s.unregister(func() bool { return s.dels.remove(id) }), nil
}

func (s *TreeStore) unregister(remove func() bool) Unregister {
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		remove()
	}
}

// Count returns the number of stored entries.
func (s *TreeStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Len()
}

// IDs returns at most count keys in ascending order, skipping the first offset.
func (s *TreeStore) IDs(offset, count int) ([]Key, error) {
	if err := checkWindow(offset, count); err != nil {
		return nil, err
	}
	keys := make([]Key, 0)
	s.window(offset, count, func(e *Entry) {
		keys = append(keys, e.key)
	})
	return keys, nil
}

// Values returns at most count entries in ascending key order, skipping the first offset.
func (s *TreeStore) Values(offset, count int) ([]*Entry, error) {
	if err := checkWindow(offset, count); err != nil {
		return nil, err
	}
	entries := make([]*Entry, 0)
	s.window(offset, count, func(e *Entry) {
		entries = append(entries, e)
	})
	return entries, nil
}

// Between returns every entry whose key lies in [from, to], in ascending order.
func (s *TreeStore) Between(from, to Key) ([]*Entry, error) {
	if from.IsZero() {
		return nil, nullArgument("from")
	}
	if to.IsZero() {
		return nil, nullArgument("to")
	}
	if from.Compare(to) > 0 {
		return nil, errors.Wrapf(ErrIllegalArgument, "range from %q is after to %q", from, to)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]*Entry, 0)
	s.tree.AscendGreaterOrEqual(probe(from), func(e *Entry) bool {
		if e.key.Compare(to) > 0 {
			return false
		}
		entries = append(entries, e)
		return true
	})
	return entries, nil
}

// String lists the stored entries in key order.
func (s *TreeStore) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	b.WriteByte('[')
	first := true
	s.tree.Ascend(func(e *Entry) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(e.String())
		return true
	})
	b.WriteByte(']')
	return b.String()
}

func checkWindow(offset, count int) error {
	if offset < 0 {
		return errors.Wrapf(ErrIllegalArgument, "negative offset %d", offset)
	}
	if count < 0 {
		return errors.Wrapf(ErrIllegalArgument, "negative count %d", count)
	}
	return nil
}

func (s *TreeStore) window(offset, count int, fn func(*Entry)) {
	if count == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if offset >= s.tree.Len() {
		return
	}
	skipped, taken := 0, 0
	s.tree.Ascend(func(e *Entry) bool {
		if skipped < offset {
			skipped++
			return true
		}
		fn(e)
		taken++
		return taken < count
	})
}
