// pkg/btree/cursor_test.go
package btree

import "testing"

func buildOrdered(t *testing.T, n, order int) Tree[int, int] {
	t.Helper()
	tr := New[int, int](Order(order))
	for i := 0; i < n; i++ {
		tr = tr.Insert(i, i)
	}
	return tr
}

func TestCursorFirstLast(t *testing.T) {
	tr := buildOrdered(t, 100, 5)

	c := tr.Cursor()
	c.First()
	if !c.Valid() || c.Key() != 0 {
		t.Fatalf("expected First to land on key 0, got valid=%v key=%v", c.Valid(), c.Key())
	}

	c.Last()
	if !c.Valid() || c.Key() != 99 {
		t.Fatalf("expected Last to land on key 99, got valid=%v key=%v", c.Valid(), c.Key())
	}
}

func TestCursorForwardScan(t *testing.T) {
	const n = 250
	tr := buildOrdered(t, n, 6)

	c := tr.Cursor()
	i := 0
	for c.First(); c.Valid(); c.Next() {
		if c.Key() != i {
			t.Fatalf("position %d: expected key %d, got %d", i, i, c.Key())
		}
		if c.Value() != i {
			t.Fatalf("position %d: expected value %d, got %d", i, i, c.Value())
		}
		i++
	}
	if i != n {
		t.Fatalf("expected to visit %d entries, visited %d", n, i)
	}
}

func TestCursorBackwardScan(t *testing.T) {
	const n = 250
	tr := buildOrdered(t, n, 6)

	c := tr.Cursor()
	i := n - 1
	for c.Last(); c.Valid(); c.Prev() {
		if c.Key() != i {
			t.Fatalf("position %d: expected key %d, got %d", i, i, c.Key())
		}
		i--
	}
	if i != -1 {
		t.Fatalf("expected to visit all entries down to 0, stopped at %d", i)
	}
}

func TestCursorSeek(t *testing.T) {
	tr := New[int, string](Order(4))
	for _, k := range []int{10, 20, 30, 40, 50} {
		tr = tr.Insert(k, "v")
	}

	c := tr.Cursor()
	c.Seek(25)
	if !c.Valid() || c.Key() != 30 {
		t.Fatalf("expected Seek(25) to land on 30, got valid=%v key=%v", c.Valid(), c.Key())
	}

	c.Seek(50)
	if !c.Valid() || c.Key() != 50 {
		t.Fatalf("expected Seek(50) to land on 50 itself, got %v", c.Key())
	}

	c.Seek(51)
	if c.Valid() {
		t.Fatalf("expected Seek past the last key to be invalid")
	}
}

func TestCursorEmptyTree(t *testing.T) {
	tr := New[int, int]()
	c := tr.Cursor()
	c.First()
	if c.Valid() {
		t.Fatalf("expected First on an empty tree to be invalid")
	}
}
