// Package cachestore provides an in-memory, key-ordered store of cache entries
// with save and delete watchers.
//
// # Overview
//
// A Key is a validated, case-sensitive name: 1 to 255 characters, starting
// with an ASCII letter and continuing with letters, digits or '.'. Keys sort
// by byte order, so upper-case keys come before lower-case ones.
//
// An Entry pairs a Key with an optional Value. Entries are immutable;
// WithKey and WithValue return the same *Entry when nothing changes.
//
// # Quick Start
//
//	store := cachestore.NewTreeStore()
//
//	e, _ := cachestore.NewEntry(cachestore.MustKey("key123"), cachestore.Some("Value456"))
//	store.Save(e)
//
//	got, ok := store.Load(cachestore.MustKey("key123"))
//	fmt.Print(got.Tree())
//	// key123
//	//   "Value456"
//
// # Ordered Reads
//
//	keys, _ := store.IDs(0, 10)         // first ten keys
//	page, _ := store.Values(10, 10)     // next ten entries
//	span, _ := store.Between(from, to)  // inclusive key range
//
// # Watchers
//
//	unregister, _ := store.AddSaveWatcher(func(e *cachestore.Entry) error {
//	    log.Println("saved", e)
//	    return nil
//	})
//	defer unregister()
//
// Watchers run synchronously, in registration order, while the store lock is
// held. The first watcher error stops the remaining watchers and is returned
// wrapped in ErrWatcher. Delete watchers only run when an entry was removed.
//
// # Thread Safety
//
// All TreeStore operations are thread-safe. Keys, Values and Entries are
// immutable and may be shared freely.
//
// # Error Handling
//
//	_, err := cachestore.NewKey("1abc")
//	if errors.Is(err, cachestore.ErrValidation) {
//	    // Handle bad key
//	}
//
// Available errors: ErrValidation, ErrNullArgument, ErrIllegalArgument, ErrWatcher
package cachestore
