package treeutil

// Cloneable is implemented by values that know how to copy themselves.
// A container storing a Cloneable value clones it on every insert so
// that no two handles can ever observe a mutation through a value they
// did not perform themselves; values that do not implement it are
// assumed to be safe to share as-is (e.g. already-immutable scalars).
type Cloneable[V any] interface {
	Clone() V
}

// CloneValue returns an independent copy of v when v implements
// Cloneable, and v itself otherwise. Engines call this on every stored
// value so that callers get the conservative copy-on-write guarantee
// the container promises without having to special-case value types
// that happen to already be immutable.
func CloneValue[V any](v V) V {
	if c, ok := any(v).(Cloneable[V]); ok {
		return c.Clone()
	}
	return v
}
