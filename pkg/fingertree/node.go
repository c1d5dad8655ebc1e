// pkg/fingertree/node.go
package fingertree

import "cmp"

// node is the single recursive element type a finger tree is built
// from. A leaf node wraps one key-value pair; a 2- or 3-node wraps
// that many child nodes taken from the level below. The same node
// type is reused at every depth: a finger tree's digit groups always
// hold nodes, and so does its middle subtree, so there is no type
// growth as the recursion goes deeper, only more nesting.
type node[K cmp.Ordered, V any] struct {
	isLeaf   bool
	key      K // leaf's own key, or a deep node's cached measure
	val      V // only meaningful when isLeaf is true
	children []node[K, V]
	size     int
}

func newLeafNode[K cmp.Ordered, V any](key K, val V) node[K, V] {
	return node[K, V]{isLeaf: true, key: key, val: val, size: 1}
}

func newDeepNode2[K cmp.Ordered, V any](a, b node[K, V]) node[K, V] {
	return node[K, V]{key: b.key, children: []node[K, V]{a, b}, size: a.size + b.size}
}

func newDeepNode3[K cmp.Ordered, V any](a, b, c node[K, V]) node[K, V] {
	return node[K, V]{key: c.key, children: []node[K, V]{a, b, c}, size: a.size + b.size + c.size}
}

// get searches n for key: an exact match on a leaf, or the first
// child whose key is >= the target otherwise.
func (n node[K, V]) get(key K) (V, bool) {
	if n.isLeaf {
		if n.key == key {
			return n.val, true
		}
		var zero V
		return zero, false
	}
	for _, child := range n.children {
		if child.key >= key {
			return child.get(key)
		}
	}
	var zero V
	return zero, false
}

// splitChildren performs the same linear scan Digits.split uses, but
// directly over a 2-/3-node's children rather than a digit group. It
// is used when a split descends into a node popped from a middle
// subtree.
func splitChildren[K cmp.Ordered, V any](children []node[K, V], key K) (left []node[K, V], hit *node[K, V], right []node[K, V]) {
	for i, n := range children {
		if n.key >= key {
			hitCopy := n
			return children[:i], &hitCopy, children[i+1:]
		}
	}
	return children, nil, nil
}

// packNodes repacks a run of nodes into 2- and 3-node groups: while
// 5 or more remain it peels off a 3-node from the front, then
// resolves the 2, 3, or 4 nodes left over as one 2-node, one 3-node,
// or two 2-nodes respectively. This exact tail-case breakdown is what
// lets concat reassemble an arbitrary run of leftover nodes without
// ever producing an over- or under-sized node.
func packNodes[K cmp.Ordered, V any](nodes []node[K, V]) []node[K, V] {
	packed := make([]node[K, V], 0, len(nodes)/2+1)
	for len(nodes) != 0 {
		switch len(nodes) {
		case 2:
			packed = append(packed, newDeepNode2(nodes[0], nodes[1]))
			nodes = nodes[2:]
		case 3:
			packed = append(packed, newDeepNode3(nodes[0], nodes[1], nodes[2]))
			nodes = nodes[3:]
		case 4:
			packed = append(packed, newDeepNode2(nodes[0], nodes[1]))
			packed = append(packed, newDeepNode2(nodes[2], nodes[3]))
			nodes = nodes[4:]
		default:
			packed = append(packed, newDeepNode3(nodes[0], nodes[1], nodes[2]))
			nodes = nodes[3:]
		}
	}
	return packed
}
