package ordmap

import "testing"

func TestNewDefaultsToBTree(t *testing.T) {
	m := New[int, string]()
	if _, ok := AsBTree[int, string](m); !ok {
		t.Fatalf("expected default engine to be the B-tree")
	}
	if _, ok := AsFingerTree[int, string](m); ok {
		t.Fatalf("did not expect a B-tree-backed map to unwrap as a finger tree")
	}
}

func TestNewWithFingerTreeEngine(t *testing.T) {
	m := New[int, string](WithEngine(EngineFingerTree))
	if _, ok := AsFingerTree[int, string](m); !ok {
		t.Fatalf("expected EngineFingerTree to back the map with a finger tree")
	}
}

func TestMapInsertAndGetAcrossEngines(t *testing.T) {
	for _, eng := range []Engine{EngineBTree, EngineFingerTree} {
		m := New[int, string](WithEngine(eng))
		m = m.Insert(3, "c")
		m = m.Insert(1, "a")
		m = m.Insert(2, "b")

		if got, ok := m.Get(2); !ok || got != "b" {
			t.Fatalf("engine %v: expected (b, true) for key 2, got (%q, %v)", eng, got, ok)
		}
		if m.Len() != 3 {
			t.Fatalf("engine %v: expected length 3, got %d", eng, m.Len())
		}
		if !m.Contains(1) || m.Contains(99) {
			t.Fatalf("engine %v: Contains disagreed with membership", eng)
		}
	}
}

func TestMapInsertReturnsIndependentSnapshot(t *testing.T) {
	m := New[int, int](WithEngine(EngineFingerTree))
	m = m.Insert(5, 1)
	m2 := m.Insert(5, 2)

	if got, _ := m.Get(5); got != 1 {
		t.Fatalf("original handle mutated: got %d", got)
	}
	if got, _ := m2.Get(5); got != 2 {
		t.Fatalf("expected updated handle to see 2, got %d", got)
	}
}

func TestWithOrderConfiguresBTree(t *testing.T) {
	m := New[int, int](WithOrder(4))
	tr, ok := AsBTree[int, int](m)
	if !ok {
		t.Fatalf("expected a B-tree-backed map")
	}
	for i := 0; i < 100; i++ {
		tr = tr.Insert(i, i)
	}
	if tr.Len() != 100 {
		t.Fatalf("expected 100 entries, got %d", tr.Len())
	}
}
