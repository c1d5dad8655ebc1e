// pkg/fingertree/fingertree.go
package fingertree

import (
	"cmp"

	"ordmap/internal/treeutil"
)

// kind identifies which of the three finger-tree variants a Tree
// currently holds.
type kind int

const (
	emptyKind kind = iota
	singleKind
	deepKind
)

// Tree is a persistent, copy-on-write ordered map from K to V built
// as a 2-3 finger tree. Like Tree in package btree, every handle
// returned by a mutating method is an independent snapshot: earlier
// handles never observe later changes. The zero value is a valid
// empty tree.
//
// A Deep tree holds a left digit (1-4 nodes), a middle subtree one
// level deeper whose own nodes never hold bare leaves, and a right
// digit (1-4 nodes). Insertion, deletion, split, and concatenation
// all work by pushing, popping, or repacking whole nodes at the
// digits, recursing into the middle only when a digit would
// otherwise underflow to 0 or overflow past 4.
type Tree[K cmp.Ordered, V any] struct {
	kind   kind
	single node[K, V]
	left   digits[K, V]
	middle *Tree[K, V]
	right  digits[K, V]
	size   int
}

// New returns an empty Tree.
func New[K cmp.Ordered, V any]() Tree[K, V] {
	return Tree[K, V]{kind: emptyKind}
}

func fromNodes[K cmp.Ordered, V any](nodes []node[K, V]) Tree[K, V] {
	t := New[K, V]()
	for _, n := range nodes {
		t = t.pushNode(right, n)
	}
	return t
}

func (t Tree[K, V]) isEmpty() bool  { return t.kind == emptyKind }
func (t Tree[K, V]) isSingle() bool { return t.kind == singleKind }
func (t Tree[K, V]) isDeep() bool   { return t.kind == deepKind }

// measure returns the greatest key reachable from t. Undefined on an
// empty tree; callers check isEmpty first.
func (t Tree[K, V]) measure() K {
	switch t.kind {
	case singleKind:
		return t.single.key
	case deepKind:
		return t.right.key()
	default:
		treeutil.Raise(treeutil.Uninitialized, "measure of an empty finger tree is undefined")
		panic("unreachable")
	}
}

// Len reports the number of key-value pairs stored in the tree.
func (t Tree[K, V]) Len() int {
	switch t.kind {
	case emptyKind:
		return 0
	case singleKind:
		return t.single.size
	default:
		return t.size
	}
}

// Get returns the value stored for key and whether it was found.
func (t Tree[K, V]) Get(key K) (V, bool) {
	switch t.kind {
	case emptyKind:
		var zero V
		return zero, false
	case singleKind:
		if t.single.key >= key {
			return t.single.get(key)
		}
		var zero V
		return zero, false
	default:
		if t.left.key() >= key {
			return t.left.get(key)
		}
		if t.middleCovers(key) {
			return t.middle.Get(key)
		}
		if t.right.key() >= key {
			return t.right.get(key)
		}
		var zero V
		return zero, false
	}
}

// Contains reports whether key is present.
func (t Tree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

func (t Tree[K, V]) middleCovers(key K) bool {
	if t.middle == nil || t.middle.isEmpty() {
		return false
	}
	return t.middle.measure() >= key
}

// pushNode pushes a whole node onto the given end, the internal
// primitive both Insert and the public Push build on.
func (t Tree[K, V]) pushNode(dir direction, n node[K, V]) Tree[K, V] {
	switch t.kind {
	case emptyKind:
		return Tree[K, V]{kind: singleKind, single: n}
	case singleKind:
		other := t.single
		empty := New[K, V]()
		if dir == left {
			return Tree[K, V]{kind: deepKind, left: digits[K, V]{items: []node[K, V]{n}}, middle: &empty, right: digits[K, V]{items: []node[K, V]{other}}, size: n.size + other.size}
		}
		return Tree[K, V]{kind: deepKind, left: digits[K, V]{items: []node[K, V]{other}}, middle: &empty, right: digits[K, V]{items: []node[K, V]{n}}, size: n.size + other.size}
	}

	leftDigits, rightDigits, middle := t.left, t.right, *t.middle
	var overflow *node[K, V]

	switch dir {
	case left:
		if leftDigits.digitSize() == 4 {
			packed, rest := leftDigits.pack(right)
			overflow = &packed
			leftDigits = rest
		}
		leftDigits = leftDigits.push(left, n)
	case right:
		if rightDigits.digitSize() == 4 {
			packed, rest := rightDigits.pack(left)
			overflow = &packed
			rightDigits = rest
		}
		rightDigits = rightDigits.push(right, n)
	}

	if overflow != nil {
		middle = middle.pushNode(dir, *overflow)
	}

	return Tree[K, V]{kind: deepKind, left: leftDigits, middle: &middle, right: rightDigits, size: t.size + n.size}
}

// Push adds a key-value pair at the given end of the tree, bypassing
// the usual ordering invariant. It exists for building and testing
// the engine directly; Insert is the safe public entry point for
// ordinary use.
func (t Tree[K, V]) Push(dir Direction, key K, val V) Tree[K, V] {
	return t.pushNode(direction(dir), newLeafNode(key, treeutil.CloneValue(val)))
}

// Direction selects which end of the tree Push/Pop act on.
type Direction int

const (
	Left  Direction = Direction(left)
	Right Direction = Direction(right)
)

// Pop removes and returns the key-value pair at the given end, along
// with the remaining tree. The fourth result reports whether a pair
// existed to pop.
func (t Tree[K, V]) Pop(dir Direction) (K, V, Tree[K, V], bool) {
	n, rest := t.popNode(direction(dir))
	if n == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, t, false
	}
	return n.key, n.val, rest, true
}

func (t Tree[K, V]) popNode(dir direction) (*node[K, V], Tree[K, V]) {
	switch t.kind {
	case emptyKind:
		return nil, t
	case singleKind:
		n := t.single
		return &n, New[K, V]()
	}

	leftDigits, rightDigits, middle := t.left, t.right, *t.middle

	if middle.isEmpty() {
		if leftDigits.digitSize() == 1 && rightDigits.digitSize() == 1 {
			var newSingle, popped node[K, V]
			if dir == left {
				newSingle = rightDigits.items[0]
				popped = leftDigits.items[0]
			} else {
				newSingle = leftDigits.items[0]
				popped = rightDigits.items[0]
			}
			return &popped, Tree[K, V]{kind: singleKind, single: newSingle}
		}

		if dir == left && leftDigits.digitSize() == 1 {
			other, rest := rightDigits.pop(left)
			ld := leftDigits.push(right, other)
			popped, ld2 := ld.pop(left)
			return &popped, Tree[K, V]{kind: deepKind, left: ld2, middle: &middle, right: rest, size: t.size - popped.size}
		}

		if dir == right && rightDigits.digitSize() == 1 {
			other, rest := leftDigits.pop(right)
			rd := rightDigits.push(left, other)
			popped, rd2 := rd.pop(right)
			return &popped, Tree[K, V]{kind: deepKind, left: rest, middle: &middle, right: rd2, size: t.size - popped.size}
		}
	}

	if dir == left && leftDigits.digitSize() > 1 {
		popped, rest := leftDigits.pop(left)
		return &popped, Tree[K, V]{kind: deepKind, left: rest, middle: &middle, right: rightDigits, size: t.size - popped.size}
	}
	if dir == right && rightDigits.digitSize() > 1 {
		popped, rest := rightDigits.pop(right)
		return &popped, Tree[K, V]{kind: deepKind, left: leftDigits, middle: &middle, right: rest, size: t.size - popped.size}
	}

	underflow, newMiddle := middle.popNode(dir)
	treeutil.Assert(underflow != nil, treeutil.VariantMismatch, "middle subtree unexpectedly empty during underflow handling")

	switch dir {
	case left:
		ld := leftDigits.unpack(right, underflow.children)
		popped, ld2 := ld.pop(left)
		return &popped, Tree[K, V]{kind: deepKind, left: ld2, middle: &newMiddle, right: rightDigits, size: t.size - popped.size}
	default:
		rd := rightDigits.unpack(left, underflow.children)
		popped, rd2 := rd.pop(right)
		return &popped, Tree[K, V]{kind: deepKind, left: leftDigits, middle: &newMiddle, right: rd2, size: t.size - popped.size}
	}
}

// deepSmart builds a Deep tree from loose node spans and a middle
// tree, absorbing either span's emptiness by unpacking a node from
// the middle so the resulting tree's digits are never left at size
// 0. This is the reassembly step split and concat both depend on.
func deepSmart[K cmp.Ordered, V any](leftNodes []node[K, V], middle Tree[K, V], rightNodes []node[K, V]) Tree[K, V] {
	leftDigits := digitsFromNodes(leftNodes)
	rightDigits := digitsFromNodes(rightNodes)

	if leftDigits.digitSize() == 0 {
		if middle.isEmpty() {
			return fromNodes(rightDigits.items)
		}
		underflow, rest := middle.popNode(left)
		leftDigits = leftDigits.unpack(right, underflow.children)
		middle = rest
	}

	if rightDigits.digitSize() == 0 {
		if middle.isEmpty() {
			return fromNodes(leftDigits.items)
		}
		underflow, rest := middle.popNode(right)
		rightDigits = rightDigits.unpack(left, underflow.children)
		middle = rest
	}

	return Tree[K, V]{kind: deepKind, left: leftDigits, middle: &middle, right: rightDigits, size: leftDigits.size() + middle.Len() + rightDigits.size()}
}

// splitNode is the internal, node-returning form of Split: it
// descends to the node straddling key and returns it unconsumed so
// callers can decide whether it was an exact hit.
func (t Tree[K, V]) splitNode(key K) (Tree[K, V], *node[K, V], Tree[K, V]) {
	switch t.kind {
	case emptyKind:
		return New[K, V](), nil, New[K, V]()
	case singleKind:
		if t.single.key >= key {
			n := t.single
			return New[K, V](), &n, New[K, V]()
		}
		return t, nil, New[K, V]()
	}

	middle := *t.middle

	if t.left.key() >= key {
		leftNodes, hit, rightNodes := t.left.split(key)
		return fromNodes(leftNodes), hit, deepSmart(rightNodes, middle, t.right.items)
	}

	if t.middleCovers(key) {
		midLeft, packedNode, midRight := middle.splitNode(key)
		innerLeft, hit, innerRight := splitChildren(packedNode.children, key)
		return deepSmart(t.left.items, midLeft, innerLeft), hit, deepSmart(innerRight, midRight, t.right.items)
	}

	leftNodes, hit, rightNodes := t.right.split(key)
	return deepSmart(t.left.items, middle, leftNodes), hit, fromNodes(rightNodes)
}

// Split divides the tree at key, returning the pairs with keys less
// than key, the value stored at key (if any), and the pairs with
// keys greater than key.
func (t Tree[K, V]) Split(key K) (Tree[K, V], V, bool, Tree[K, V]) {
	lt, hit, rt := t.splitNode(key)
	var zero V

	if hit == nil {
		return lt, zero, false, rt
	}
	if hit.key == key {
		return lt, hit.val, true, rt
	}
	rt = rt.pushNode(left, *hit)
	return lt, zero, false, rt
}

// Insert returns a new Tree with key mapped to val. If key was
// already present its old value is replaced; either way the
// receiver is left unmodified.
func (t Tree[K, V]) Insert(key K, val V) Tree[K, V] {
	lt, _, _, rt := t.Split(key)
	lt = lt.pushNode(right, newLeafNode(key, treeutil.CloneValue(val)))
	return Concat(lt, rt)
}

// Remove returns a new Tree with key absent, along with the value
// that was removed and whether it was present.
func (t Tree[K, V]) Remove(key K) (Tree[K, V], V, bool) {
	lt, val, found, rt := t.Split(key)
	return Concat(lt, rt), val, found
}

// Concat returns a new tree holding every pair of a followed by
// every pair of b. Every key in a must be less than every key in b;
// this precondition is the caller's responsibility, same as the
// reference algorithm it's grounded on.
func Concat[K cmp.Ordered, V any](a, b Tree[K, V]) Tree[K, V] {
	return concatInner(a, nil, b)
}

func concatInner[K cmp.Ordered, V any](a Tree[K, V], middleNodes []node[K, V], b Tree[K, V]) Tree[K, V] {
	switch {
	case a.isEmpty():
		return b.prependNodes(middleNodes)
	case b.isEmpty():
		return a.appendNodes(middleNodes)
	case a.isSingle():
		c := b.prependNodes(middleNodes)
		return c.pushNode(left, a.single)
	case b.isSingle():
		c := a.appendNodes(middleNodes)
		return c.pushNode(right, b.single)
	}

	seq := make([]node[K, V], 0, a.right.digitSize()+len(middleNodes)+b.left.digitSize())
	seq = append(seq, a.right.items...)
	seq = append(seq, middleNodes...)
	seq = append(seq, b.left.items...)
	packed := packNodes(seq)

	newMiddle := concatInner(*a.middle, packed, *b.middle)
	return Tree[K, V]{kind: deepKind, left: a.left, middle: &newMiddle, right: b.right, size: a.left.size() + newMiddle.Len() + b.right.size()}
}

func (t Tree[K, V]) appendNodes(nodes []node[K, V]) Tree[K, V] {
	for _, n := range nodes {
		t = t.pushNode(right, n)
	}
	return t
}

func (t Tree[K, V]) prependNodes(nodes []node[K, V]) Tree[K, V] {
	for i := len(nodes) - 1; i >= 0; i-- {
		t = t.pushNode(left, nodes[i])
	}
	return t
}
