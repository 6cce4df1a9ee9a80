package cachestore

import (
	"io"
	"strings"
)

const treeIndent = "  "

// TreePrinter is implemented by values that render their own tree form.
type TreePrinter interface {
	PrintTree(w *TreeWriter)
}

// TreeWriter writes lines at the current indentation level.
// The first write error is kept and every later write is skipped.
type TreeWriter struct {
	w     io.Writer
	depth int
	err   error
}

// NewTreeWriter returns a TreeWriter writing to w.
func NewTreeWriter(w io.Writer) *TreeWriter {
	return &TreeWriter{w: w}
}

// Println writes each line of s prefixed by the current indentation.
func (t *TreeWriter) Println(s string) {
	for _, line := range strings.Split(s, "\n") {
		if t.err != nil {
			return
		}
		_, t.err = io.WriteString(t.w, strings.Repeat(treeIndent, t.depth)+line+"\n")
	}
}

// Indent increases the indentation of later lines by one level.
func (t *TreeWriter) Indent() { t.depth++ }

// Outdent undoes one Indent.
func (t *TreeWriter) Outdent() {
	if t.depth > 0 {
		t.depth--
	}
}

// Err returns the first write error, if any.
func (t *TreeWriter) Err() error { return t.err }
