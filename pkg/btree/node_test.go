// pkg/btree/node_test.go
package btree

import "testing"

func TestNodeLocate(t *testing.T) {
	n := &node[int, string]{isLeaf: true, keys: []int{10, 20, 30}, values: []string{"a", "b", "c"}}

	cases := []struct {
		key  int
		want int
	}{
		{5, 0},
		{10, 0},
		{15, 1},
		{30, 2},
		{31, 3},
	}
	for _, tc := range cases {
		if got := n.locate(tc.key); got != tc.want {
			t.Errorf("locate(%d) = %d, want %d", tc.key, got, tc.want)
		}
	}
}

func TestNodeLeafInsertSplitsAtOrder(t *testing.T) {
	n := newLeaf[int, int]()
	order := 4

	var last insertResult[int, int]
	for i := 0; i < order; i++ {
		last = n.insert(order, i, i)
		if !last.split {
			n = last.node
		}
	}

	if !last.split {
		t.Fatalf("expected leaf to split once it reaches order %d keys", order)
	}
	if last.left.size+last.right.size != order {
		t.Fatalf("split halves should together hold %d keys, got %d", order, last.left.size+last.right.size)
	}
	if last.left.measure() >= last.right.measure() {
		t.Fatalf("left half's measure must be less than right half's")
	}
}

func TestNodeGetMissingKey(t *testing.T) {
	n := &node[int, string]{isLeaf: true, keys: []int{1, 3, 5}, values: []string{"a", "b", "c"}}
	if _, ok := n.get(2); ok {
		t.Fatalf("expected key 2 to be absent")
	}
	if v, ok := n.get(3); !ok || v != "b" {
		t.Fatalf("expected (b, true) for key 3, got (%q, %v)", v, ok)
	}
}
