// Package pretty renders a tree's contents for debugging. It is a
// collaborator external to the two engines: it never reaches into
// either engine's internal node representation, only the public
// operations package btree and package fingertree expose. The output
// is not a stable format and must not be parsed.
package pretty

import (
	"cmp"
	"fmt"
	"io"

	"ordmap/pkg/btree"
	"ordmap/pkg/fingertree"
)

// BTree writes an indented, ascending listing of t's entries to w,
// one per line, using a cursor so t itself is left untouched.
func BTree[K cmp.Ordered, V any](w io.Writer, t btree.Tree[K, V], indent int) error {
	pad := pad(indent)
	if _, err := fmt.Fprintf(w, "%sbtree (%d entries)\n", pad, t.Len()); err != nil {
		return err
	}

	entryPad := pad + "  "
	c := t.Cursor()
	for c.First(); c.Valid(); c.Next() {
		if _, err := fmt.Fprintf(w, "%s%v: %v\n", entryPad, c.Key(), c.Value()); err != nil {
			return err
		}
	}
	return nil
}

// FingerTree writes an indented, ascending listing of t's entries to
// w, one per line. Since package fingertree exposes no cursor, this
// walks a working copy from the left with Pop, which never mutates
// the handle it is called on; the tree t itself is left untouched.
func FingerTree[K cmp.Ordered, V any](w io.Writer, t fingertree.Tree[K, V], indent int) error {
	pad := pad(indent)
	if _, err := fmt.Fprintf(w, "%sfingertree (%d entries)\n", pad, t.Len()); err != nil {
		return err
	}

	entryPad := pad + "  "
	remaining := t
	for {
		key, val, rest, ok := remaining.Pop(fingertree.Left)
		if !ok {
			break
		}
		if _, err := fmt.Fprintf(w, "%s%v: %v\n", entryPad, key, val); err != nil {
			return err
		}
		remaining = rest
	}
	return nil
}

func pad(indent int) string {
	out := make([]byte, indent*2)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
