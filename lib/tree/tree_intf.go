package tree

import "github.com/xalgo/xalgo/lib/infra"

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

// RBNode is the read-only view of a tree node, consumed by the
// diagnostic validators and by tests that pin down exact tree shapes.
type RBNode[K infra.OrderedKey, V any] interface {
	Key() K
	Val() V
	Color() RBColor
	Left() RBNode[K, V]
	Right() RBNode[K, V]
	Size() int64
}

// OrderedMap is a key-value symbol table over totally ordered keys with
// rank and range queries. Every mutation keeps the backing tree within
// the red-black height bound, so all operations run in O(log n).
//
// Mutations require exclusive access. Any number of concurrent readers
// are safe only while no writer is active; callers sharing a map across
// goroutines must bring their own reader-writer lock.
type OrderedMap[K infra.OrderedKey, V any] interface {
	Len() int64
	Root() RBNode[K, V]
	IsEmpty() bool
	Put(key K, val V)
	Get(key K) (V, bool)
	Contains(key K) bool
	// Remove deletes key and reports whether it was present.
	// Removing an absent key leaves the map untouched.
	Remove(key K) (V, bool)
	// RemoveMin and RemoveMax fail fast with ErrUnderflow on an empty map.
	RemoveMin() (K, V, error)
	RemoveMax() (K, V, error)
	Min() (K, bool)
	Max() (K, bool)
	// Floor returns the largest key <= key, Ceiling the smallest key >= key.
	Floor(key K) (K, bool)
	Ceiling(key K) (K, bool)
	// Select returns the key with exactly rank smaller keys.
	Select(rank int64) (K, bool)
	// Rank returns the count of keys strictly less than key.
	Rank(key K) int64
	// Height is the count of links on the longest root-to-leaf path.
	// An empty map has height -1, a single node height 0.
	Height() int64
	// Foreach walks keys in ascending order without mutating the tree.
	// Returning false from the action stops the walk. The walk restarts
	// from the minimum on every call.
	Foreach(action func(idx int64, color RBColor, key K, val V) bool)
	Keys() []K
	Release()
}
