package cachestore

import (
	"fmt"
	"reflect"
)

// Value is an optional payload held by an Entry. The zero Value is absent.
type Value struct {
	data    any
	present bool
}

// Some wraps v as a present value. A nil v is still present.
func Some(v any) Value {
	return Value{data: v, present: true}
}

// None returns the absent value.
func None() Value {
	return Value{}
}

// Get returns the payload and whether one is present.
func (v Value) Get() (any, bool) {
	return v.data, v.present
}

// IsPresent reports whether v holds a payload.
func (v Value) IsPresent() bool { return v.present }

// Equal compares presence and then payloads. Payloads with an
// Equal(any) bool method decide for themselves; others use reflect.DeepEqual.
func (v Value) Equal(other Value) bool {
	if v.present != other.present {
		return false
	}
	if !v.present {
		return true
	}
	if eq, ok := v.data.(interface{ Equal(any) bool }); ok {
		return eq.Equal(other.data)
	}
	return reflect.DeepEqual(v.data, other.data)
}

// String renders the payload the way it appears in an entry display string:
// strings are quoted, absent values render empty.
func (v Value) String() string {
	if !v.present {
		return ""
	}
	return formatPayload(v.data)
}

func formatPayload(data any) string {
	switch d := data.(type) {
	case string:
		return fmt.Sprintf("%q", d)
	case fmt.Stringer:
		return d.String()
	default:
		return fmt.Sprintf("%v", d)
	}
}

func (v Value) printTree(w *TreeWriter) {
	if !v.present {
		return
	}
	if tp, ok := v.data.(TreePrinter); ok {
		tp.PrintTree(w)
		return
	}
	w.Println(formatPayload(v.data))
}
