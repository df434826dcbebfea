package search

import "github.com/xalgo/xalgo/lib/infra"

// SymbolTable is the generic key-value contract shared by every
// searching structure in this package. Implementations never error on
// queries; absence is reported through the boolean.
type SymbolTable[K comparable, V any] interface {
	Len() int64
	IsEmpty() bool
	Put(key K, val V)
	Get(key K) (V, bool)
	Contains(key K) bool
	// Remove deletes key and reports whether it was present.
	Remove(key K) (V, bool)
	Keys() []K
}

// OrderedSymbolTable adds the rank and range queries that only make
// sense over totally ordered keys. Keys() yields ascending order.
type OrderedSymbolTable[K infra.OrderedKey, V any] interface {
	SymbolTable[K, V]
	Min() (K, bool)
	Max() (K, bool)
	Floor(key K) (K, bool)
	Ceiling(key K) (K, bool)
	Select(rank int64) (K, bool)
	Rank(key K) int64
}
