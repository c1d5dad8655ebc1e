package ordmap

import (
	"cmp"

	"ordmap/pkg/btree"
	"ordmap/pkg/fingertree"
)

// Engine selects which of the two container engines a Map is built
// on top of.
type Engine int

const (
	// EngineBTree builds on package btree: a branching order-N tree,
	// the better fit when most activity is point lookups and
	// sequential bulk insertion.
	EngineBTree Engine = iota
	// EngineFingerTree builds on package fingertree: a 2-3 finger
	// tree, the better fit when a caller also needs push/pop at
	// either end, split, concat, or removal — operations the B-tree
	// engine does not offer.
	EngineFingerTree
)

// config collects the options a Map is built with.
type config struct {
	engine Engine
	order  int
}

// Option configures a Map at construction time.
type Option func(*config)

// WithEngine selects the engine backing a new Map. The default is
// EngineBTree.
func WithEngine(e Engine) Option {
	return func(c *config) { c.engine = e }
}

// WithOrder sets the B-tree engine's branching factor. It has no
// effect when the map is built on EngineFingerTree.
func WithOrder(order int) Option {
	return func(c *config) { c.order = order }
}

// New returns an empty Map backed by the configured engine.
func New[K cmp.Ordered, V any](opts ...Option) Map[K, V] {
	cfg := config{engine: EngineBTree}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.engine {
	case EngineFingerTree:
		return fingerMap[K, V]{t: fingertree.New[K, V]()}
	default:
		var btreeOpts []btree.Option
		if cfg.order != 0 {
			btreeOpts = append(btreeOpts, btree.Order(cfg.order))
		}
		return btreeMap[K, V]{t: btree.New[K, V](btreeOpts...)}
	}
}

// btreeMap adapts btree.Tree to the Map interface.
type btreeMap[K cmp.Ordered, V any] struct {
	t btree.Tree[K, V]
}

func (m btreeMap[K, V]) Insert(key K, val V) Map[K, V] {
	return btreeMap[K, V]{t: m.t.Insert(key, val)}
}
func (m btreeMap[K, V]) Get(key K) (V, bool) { return m.t.Get(key) }
func (m btreeMap[K, V]) Contains(key K) bool { return m.t.Contains(key) }
func (m btreeMap[K, V]) Len() int            { return m.t.Len() }

// Unwrap returns the underlying btree.Tree; the boolean is always
// true. AsBTree reports false for maps backed by another engine.
func (m btreeMap[K, V]) Unwrap() (btree.Tree[K, V], bool) { return m.t, true }

// fingerMap adapts fingertree.Tree to the Map interface.
type fingerMap[K cmp.Ordered, V any] struct {
	t fingertree.Tree[K, V]
}

func (m fingerMap[K, V]) Insert(key K, val V) Map[K, V] {
	return fingerMap[K, V]{t: m.t.Insert(key, val)}
}
func (m fingerMap[K, V]) Get(key K) (V, bool) { return m.t.Get(key) }
func (m fingerMap[K, V]) Contains(key K) bool { return m.t.Contains(key) }
func (m fingerMap[K, V]) Len() int            { return m.t.Len() }

// Unwrap returns the underlying fingertree.Tree; the boolean is
// always true. AsFingerTree reports false for maps backed by another
// engine.
func (m fingerMap[K, V]) Unwrap() (fingertree.Tree[K, V], bool) { return m.t, true }

// btreeUnwrapper and fingerUnwrapper are implemented by btreeMap and
// fingerMap respectively, so AsBTree/AsFingerTree can recover the
// concrete engine without a type switch at the call site naming both
// adapter types.
type btreeUnwrapper[K cmp.Ordered, V any] interface {
	Unwrap() (btree.Tree[K, V], bool)
}

type fingerUnwrapper[K cmp.Ordered, V any] interface {
	Unwrap() (fingertree.Tree[K, V], bool)
}

// AsBTree returns the concrete btree.Tree behind m, or ok=false if m
// is backed by a different engine.
func AsBTree[K cmp.Ordered, V any](m Map[K, V]) (btree.Tree[K, V], bool) {
	if u, ok := m.(btreeUnwrapper[K, V]); ok {
		return u.Unwrap()
	}
	var zero btree.Tree[K, V]
	return zero, false
}

// AsFingerTree returns the concrete fingertree.Tree behind m, or
// ok=false if m is backed by a different engine.
func AsFingerTree[K cmp.Ordered, V any](m Map[K, V]) (fingertree.Tree[K, V], bool) {
	if u, ok := m.(fingerUnwrapper[K, V]); ok {
		return u.Unwrap()
	}
	var zero fingertree.Tree[K, V]
	return zero, false
}
