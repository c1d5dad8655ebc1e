// pkg/fingertree/digits.go
package fingertree

import (
	"cmp"

	"ordmap/internal/treeutil"
)

// direction picks which end of a digit group or tree an operation
// acts on.
type direction int

const (
	left direction = iota
	right
)

// digits is a finger's worth of nodes: 1 to 4 at the edge of a deep
// tree, or 0 as a transient state while deepSmart is reassembling a
// tree around an empty edge. Every method here returns a new digits
// value; none ever mutates the slice a caller still holds, since the
// slice it builds is always freshly allocated.
type digits[K cmp.Ordered, V any] struct {
	items []node[K, V]
}

func digitsFromNodes[K cmp.Ordered, V any](nodes []node[K, V]) digits[K, V] {
	treeutil.Assert(len(nodes) <= 4, treeutil.OutOfRange,
		"no more than 4 nodes are permitted for a digit group, got %d", len(nodes))
	if len(nodes) == 0 {
		return digits[K, V]{}
	}
	return digits[K, V]{items: append([]node[K, V](nil), nodes...)}
}

func (d digits[K, V]) digitSize() int {
	return len(d.items)
}

func (d digits[K, V]) size() int {
	total := 0
	for _, n := range d.items {
		total += n.size
	}
	return total
}

// key returns the measure of the whole digit group: the last node's
// key, since nodes within a digit are kept in ascending order.
func (d digits[K, V]) key() K {
	return d.items[len(d.items)-1].key
}

func (d digits[K, V]) get(key K) (V, bool) {
	for _, n := range d.items {
		if n.key >= key {
			return n.get(key)
		}
	}
	var zero V
	return zero, false
}

// push returns a digits value with node added at the given end.
// Undefined behavior (per the reference algorithm) if already at 4
// nodes; callers must pack first.
func (d digits[K, V]) push(dir direction, n node[K, V]) digits[K, V] {
	items := make([]node[K, V], 0, len(d.items)+1)
	if dir == left {
		items = append(items, n)
		items = append(items, d.items...)
	} else {
		items = append(items, d.items...)
		items = append(items, n)
	}
	return digits[K, V]{items: items}
}

// pop removes and returns the node at the given end along with the
// remaining digits. Undefined behavior if d is empty.
func (d digits[K, V]) pop(dir direction) (node[K, V], digits[K, V]) {
	if dir == left {
		popped := d.items[0]
		return popped, digits[K, V]{items: append([]node[K, V](nil), d.items[1:]...)}
	}
	last := len(d.items) - 1
	popped := d.items[last]
	return popped, digits[K, V]{items: append([]node[K, V](nil), d.items[:last]...)}
}

// unpack splices a 2- or 3-node's children into the given end. It is
// used to relieve underflow: when a digit drops to a single node, a
// node pulled from the middle tree is unpacked into it to bring it
// back up to 3 or 4.
func (d digits[K, V]) unpack(dir direction, children []node[K, V]) digits[K, V] {
	items := make([]node[K, V], 0, len(d.items)+len(children))
	if dir == left {
		items = append(items, children...)
		items = append(items, d.items...)
	} else {
		items = append(items, d.items...)
		items = append(items, children...)
	}
	return digits[K, V]{items: items}
}

// pack removes exactly 3 nodes from the given end and groups them
// into a single 3-node, returning it with the remaining digits.
// Undefined behavior if d holds fewer than 3 nodes; this is used to
// relieve overflow when a digit would otherwise grow past 4.
func (d digits[K, V]) pack(dir direction) (node[K, V], digits[K, V]) {
	var taken []node[K, V]
	var rest []node[K, V]
	if dir == left {
		taken = d.items[:3]
		rest = d.items[3:]
	} else {
		n := len(d.items)
		taken = d.items[n-3:]
		rest = d.items[:n-3]
	}
	return newDeepNode3(taken[0], taken[1], taken[2]), digits[K, V]{items: append([]node[K, V](nil), rest...)}
}

// split partitions the digit's nodes at the first one whose key is
// >= key, mirroring Node.get's scan but returning the surrounding
// spans instead of descending further.
func (d digits[K, V]) split(key K) (left []node[K, V], hit *node[K, V], right []node[K, V]) {
	return splitChildren(d.items, key)
}
