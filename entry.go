package cachestore

import "strings"

// Entry pairs a Key with an optional Value. Entries are never modified;
// WithKey and WithValue return a new Entry, or the receiver itself when
// nothing would change.
type Entry struct {
	key   Key
	value Value
}

// NewEntry returns an Entry for key and value. The key must not be zero.
func NewEntry(key Key, value Value) (*Entry, error) {
	if key.IsZero() {
		return nil, nullArgument("key")
	}
	return &Entry{key: key, value: value}, nil
}

// Key returns the entry key.
func (e *Entry) Key() Key { return e.key }

// ID returns the key the entry is indexed under.
func (e *Entry) ID() Key { return e.key }

// Value returns the entry value.
func (e *Entry) Value() Value { return e.value }

// WithValue returns e if value equals the current value, otherwise a copy
// of e holding value.
func (e *Entry) WithValue(value Value) *Entry {
	if e.value.Equal(value) {
		return e
	}
	return &Entry{key: e.key, value: value}
}

// WithKey returns e if key equals the current key, otherwise a copy of e
// under key.
func (e *Entry) WithKey(key Key) (*Entry, error) {
	if key.IsZero() {
		return nil, nullArgument("key")
	}
	if e.key.Equal(key) {
		return e, nil
	}
	return &Entry{key: key, value: e.value}, nil
}

// Equal reports whether both entries have equal keys and values.
func (e *Entry) Equal(other *Entry) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	return e.key.Equal(other.key) && e.value.Equal(other.value)
}

// Compare orders entries by key only.
func (e *Entry) Compare(other *Entry) int {
	return e.key.Compare(other.key)
}

// String returns "key=value", with string values quoted and absent values
// rendered as nothing after the '='.
func (e *Entry) String() string {
	return e.key.String() + "=" + e.value.String()
}

// PrintTree writes the key on one line followed by the indented value,
// if one is present.
func (e *Entry) PrintTree(w *TreeWriter) {
	w.Println(e.key.String())
	w.Indent()
	e.value.printTree(w)
	w.Outdent()
}

// Tree returns the PrintTree output as a string.
func (e *Entry) Tree() string {
	var b strings.Builder
	e.PrintTree(NewTreeWriter(&b))
	return b.String()
}
