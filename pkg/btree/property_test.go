package btree

import (
	"sort"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

// randomKeys returns n distinct fuzzed ints, deduplicated so every
// insertion below is guaranteed to grow the tree by exactly one.
func randomKeys(t *testing.T, seed int64, n int) []int {
	t.Helper()
	f := fuzz.NewWithSeed(seed)
	seen := make(map[int]bool, n)
	keys := make([]int, 0, n)
	for len(keys) < n {
		var k int
		f.Fuzz(&k)
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

func TestPropertyOrderingIsStrictlyIncreasing(t *testing.T) {
	keys := randomKeys(t, 1, 400)
	tr := New[int, int](Order(8))
	for _, k := range keys {
		tr = tr.Insert(k, k)
	}

	var seen []int
	c := tr.Cursor()
	for c.First(); c.Valid(); c.Next() {
		seen = append(seen, c.Key())
	}

	require.Len(t, seen, len(keys))
	for i := 1; i < len(seen); i++ {
		require.Less(t, seen[i-1], seen[i], "in-order traversal must be strictly increasing")
	}
}

func TestPropertyInsertionLookupLaw(t *testing.T) {
	keys := randomKeys(t, 2, 300)
	tr := New[int, int](Order(16))
	for _, k := range keys {
		tr = tr.Insert(k, k*7)
	}
	for _, k := range keys {
		got, ok := tr.Get(k)
		require.True(t, ok, "key %d must be found after insertion", k)
		require.Equal(t, k*7, got)
	}
}

func TestPropertyInsertIsIdempotent(t *testing.T) {
	keys := randomKeys(t, 3, 200)
	tr := New[int, int](Order(8))
	for _, k := range keys {
		tr = tr.Insert(k, k)
	}

	once := tr.Insert(keys[0], keys[0])
	twice := once.Insert(keys[0], keys[0])

	require.Equal(t, once.Len(), twice.Len())
	for _, k := range keys {
		a, _ := once.Get(k)
		b, _ := twice.Get(k)
		require.Equal(t, a, b)
	}
}

func TestPropertySizeAgreement(t *testing.T) {
	keys := randomKeys(t, 4, 500)
	tr := New[int, int](Order(5))
	for _, k := range keys {
		tr = tr.Insert(k, 0)
	}
	require.Equal(t, len(keys), tr.Len())
	require.Equal(t, len(keys), tr.root.size)

	var walk func(n *node[int, int]) int
	walk = func(n *node[int, int]) int {
		if n.isLeaf {
			return len(n.keys)
		}
		total := 0
		for _, c := range n.children {
			total += walk(c)
		}
		require.Equal(t, total, n.size, "interior node's cached size must equal its children's summed size")
		return total
	}
	walk(tr.root)
}

func TestPropertySnapshotIsolation(t *testing.T) {
	keys := randomKeys(t, 5, 100)
	sort.Ints(keys)

	tr := New[int, int](Order(4))
	for _, k := range keys {
		tr = tr.Insert(k, k)
	}

	snapshot := tr
	mutated := tr.Insert(keys[0], -1)

	got, _ := snapshot.Get(keys[0])
	require.Equal(t, keys[0], got, "snapshot taken before mutation must be unaffected")
	got2, _ := mutated.Get(keys[0])
	require.Equal(t, -1, got2)
}
