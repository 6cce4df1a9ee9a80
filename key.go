package cachestore

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// MinKeyLength is the shortest valid key text.
	MinKeyLength = 1
	// MaxKeyLength is the longest valid key text.
	MaxKeyLength = 255
)

// Key addresses an entry. Keys are case-sensitive and ordered by the byte
// order of their text, so "B2" sorts before "a1".
//
// Key is comparable and may be used directly as a Go map key. The zero Key
// is not a valid key and stands for "no key".
type Key struct {
	name string
}

// IsKeyInitial reports whether c may start a key.
func IsKeyInitial(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// IsKeyPart reports whether c may follow the first character of a key.
func IsKeyPart(c byte) bool {
	return IsKeyInitial(c) || ('0' <= c && c <= '9') || c == '.'
}

// NewKey validates text and returns the Key for it.
func NewKey(text string) (Key, error) {
	if text == "" {
		return Key{}, errors.Wrap(ErrValidation, "key text is empty")
	}
	if len(text) < MinKeyLength || len(text) > MaxKeyLength {
		return Key{}, errors.Wrapf(ErrValidation, "key length %d not in [%d, %d]", len(text), MinKeyLength, MaxKeyLength)
	}
	if !IsKeyInitial(text[0]) {
		return Key{}, errors.Wrapf(ErrValidation, "key %q: invalid initial character %q", text, text[0])
	}
	for i := 1; i < len(text); i++ {
		if !IsKeyPart(text[i]) {
			return Key{}, errors.Wrapf(ErrValidation, "key %q: invalid character %q at %d", text, text[i], i)
		}
	}
	return Key{name: text}, nil
}

// MustKey is like NewKey but panics on invalid text.
func MustKey(text string) Key {
	k, err := NewKey(text)
	if err != nil {
		panic(err)
	}
	return k
}

// String returns the key text.
func (k Key) String() string { return k.name }

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool { return k.name == "" }

// Compare returns -1, 0 or +1 as k sorts before, equal to or after other.
func (k Key) Compare(other Key) int {
	return strings.Compare(k.name, other.name)
}

// Equal reports whether k and other name the same entry.
func (k Key) Equal(other Key) bool {
	return k.Compare(other) == 0
}

func keyLess(a, b Key) bool {
	return a.name < b.name
}
