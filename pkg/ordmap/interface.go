// Package ordmap selects between the two engines that implement an
// ordered, copy-on-write associative container: the B-tree in package
// btree and the 2-3 finger tree in package fingertree. It exists so a
// caller that only needs the shared operations — insert, get,
// contains, size — does not have to name either engine directly.
//
// Reach for the engine packages themselves when a program needs
// operations only one engine offers, such as the finger tree's push,
// pop, split, concat, and remove.
package ordmap

import "cmp"

// Map is the operation set both engines implement. Every mutating
// method returns a new Map; the receiver is left unmodified and
// remains a valid, independent snapshot.
type Map[K cmp.Ordered, V any] interface {
	// Insert returns a new Map with key mapped to val.
	Insert(key K, val V) Map[K, V]

	// Get returns the value stored for key and whether it was found.
	Get(key K) (V, bool)

	// Contains reports whether key is present.
	Contains(key K) bool

	// Len reports the number of key-value pairs stored.
	Len() int
}
