// pkg/btree/btree.go
package btree

import (
	"cmp"

	"ordmap/internal/treeutil"
)

// defaultOrder is the branching factor used when a Tree is built
// without an explicit Order option. 32 keeps interior nodes small
// enough to clone cheaply while still giving a leaf fan-out worth the
// name for the sizes this package is exercised at.
const defaultOrder = 32

// config collects the options a Tree is built with. It is kept
// non-generic (unlike Tree itself) so Option values don't have to
// carry K and V type parameters around.
type config struct {
	order int
}

// Option configures a Tree at construction time.
type Option func(*config)

// Order sets the tree's branching factor: at most order-1 keys per
// leaf and order children per interior node, with a root that may
// hold fewer. order must be at least 3; smaller factors cannot
// satisfy the split-in-half invariant used throughout this package.
func Order(order int) Option {
	return func(c *config) {
		treeutil.Assert(order >= 3, treeutil.OutOfRange, "order must be >= 3, got %d", order)
		c.order = order
	}
}

// Tree is a persistent, copy-on-write ordered map from K to V. Every
// handle returned by Insert is an independent snapshot: mutating
// methods never affect values observed through handles produced
// before the call. The zero value is not valid; construct with New.
type Tree[K cmp.Ordered, V any] struct {
	root  *node[K, V]
	order int
}

// New returns an empty Tree. Passing Order(n) changes the branching
// factor from the default of 32.
func New[K cmp.Ordered, V any](opts ...Option) Tree[K, V] {
	cfg := config{order: defaultOrder}
	for _, opt := range opts {
		opt(&cfg)
	}
	return Tree[K, V]{root: newLeaf[K, V](), order: cfg.order}
}

// FromSeq builds a Tree by inserting each key-value pair of seq in
// order. It is a convenience wrapper, not a bulk-load fast path: each
// pair goes through the ordinary Insert.
func FromSeq[K cmp.Ordered, V any](seq iterSeq2[K, V], opts ...Option) Tree[K, V] {
	t := New[K, V](opts...)
	seq(func(k K, v V) bool {
		t = t.Insert(k, v)
		return true
	})
	return t
}

// iterSeq2 mirrors iter.Seq2 without importing the iter package at
// the call site, so callers on older toolchains can still pass a
// plain closure of this shape.
type iterSeq2[K, V any] func(yield func(K, V) bool)

// Len reports the number of key-value pairs stored in the tree.
func (t Tree[K, V]) Len() int {
	treeutil.Assert(t.root != nil, treeutil.Uninitialized, "tree has no root")
	if t.root.isLeaf {
		return len(t.root.keys)
	}
	return t.root.size
}

// Get returns the value stored for key and whether it was found.
func (t Tree[K, V]) Get(key K) (V, bool) {
	treeutil.Assert(t.root != nil, treeutil.Uninitialized, "tree has no root")
	if t.empty() {
		var zero V
		return zero, false
	}
	return t.root.get(key)
}

// Contains reports whether key is present.
func (t Tree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

func (t Tree[K, V]) empty() bool {
	return t.root.isLeaf && len(t.root.keys) == 0
}

// Insert returns a new Tree with key mapped to val, sharing every
// subtree the insertion path did not touch with the receiver. The
// receiver is left unmodified and remains a valid, independent
// snapshot.
func (t Tree[K, V]) Insert(key K, val V) Tree[K, V] {
	treeutil.Assert(t.root != nil, treeutil.Uninitialized, "tree has no root")

	if t.empty() {
		leaf := &node[K, V]{isLeaf: true, keys: []K{key}, values: []V{treeutil.CloneValue(val)}, size: 1}
		return Tree[K, V]{root: leaf, order: t.order}
	}

	result := t.root.insert(t.order, key, val)
	if !result.split {
		return Tree[K, V]{root: result.node, order: t.order}
	}

	root := &node[K, V]{
		keys:     []K{result.left.measure(), result.right.measure()},
		children: []*node[K, V]{result.left, result.right},
		size:     result.left.size + result.right.size,
	}
	return Tree[K, V]{root: root, order: t.order}
}

// Cursor returns a Cursor positioned before the first entry. Call
// First, Last, or Seek to establish a starting position.
func (t Tree[K, V]) Cursor() *Cursor[K, V] {
	treeutil.Assert(t.root != nil, treeutil.Uninitialized, "tree has no root")
	return &Cursor[K, V]{root: t.root, stack: make([]cursorFrame[K, V], 0, 8)}
}
