package search

import "github.com/xalgo/xalgo/lib/infra"

// binarySearchST keeps parallel sorted arrays of keys and values:
// O(log n) search through binary rank computation, O(n) insert and
// delete from shifting the tails.
type binarySearchST[K infra.OrderedKey, V any] struct {
	keys []K
	vals []V
}

func (st *binarySearchST[K, V]) Len() int64 {
	return int64(len(st.keys))
}

func (st *binarySearchST[K, V]) IsEmpty() bool {
	return len(st.keys) == 0
}

// rank returns the count of keys strictly less than key, which is also
// key's insertion position.
func (st *binarySearchST[K, V]) rank(key K) int {
	lo, hi := 0, len(st.keys)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		res := infra.OrderedKeyCompare(key, st.keys[mid])
		if res < 0 {
			hi = mid - 1
		} else if res > 0 {
			lo = mid + 1
		} else {
			return mid
		}
	}
	return lo
}

func (st *binarySearchST[K, V]) Put(key K, val V) {
	i := st.rank(key)
	if i < len(st.keys) && st.keys[i] == key {
		st.vals[i] = val
		return
	}
	var zeroK K
	var zeroV V
	st.keys = append(st.keys, zeroK)
	st.vals = append(st.vals, zeroV)
	copy(st.keys[i+1:], st.keys[i:])
	copy(st.vals[i+1:], st.vals[i:])
	st.keys[i], st.vals[i] = key, val
}

func (st *binarySearchST[K, V]) Get(key K) (val V, exists bool) {
	i := st.rank(key)
	if i < len(st.keys) && st.keys[i] == key {
		return st.vals[i], true
	}
	return val, false
}

func (st *binarySearchST[K, V]) Contains(key K) bool {
	_, exists := st.Get(key)
	return exists
}

func (st *binarySearchST[K, V]) Remove(key K) (val V, removed bool) {
	i := st.rank(key)
	if i >= len(st.keys) || st.keys[i] != key {
		return val, false
	}
	val = st.vals[i]
	copy(st.keys[i:], st.keys[i+1:])
	copy(st.vals[i:], st.vals[i+1:])
	st.keys = st.keys[:len(st.keys)-1]
	st.vals = st.vals[:len(st.vals)-1]
	return val, true
}

func (st *binarySearchST[K, V]) Keys() []K {
	keys := make([]K, len(st.keys))
	copy(keys, st.keys)
	return keys
}

func (st *binarySearchST[K, V]) Min() (key K, exists bool) {
	if len(st.keys) == 0 {
		return key, false
	}
	return st.keys[0], true
}

func (st *binarySearchST[K, V]) Max() (key K, exists bool) {
	if len(st.keys) == 0 {
		return key, false
	}
	return st.keys[len(st.keys)-1], true
}

func (st *binarySearchST[K, V]) Floor(key K) (floor K, exists bool) {
	i := st.rank(key)
	if i < len(st.keys) && st.keys[i] == key {
		return key, true
	}
	if i == 0 {
		return floor, false
	}
	return st.keys[i-1], true
}

func (st *binarySearchST[K, V]) Ceiling(key K) (ceiling K, exists bool) {
	i := st.rank(key)
	if i == len(st.keys) {
		return ceiling, false
	}
	return st.keys[i], true
}

func (st *binarySearchST[K, V]) Select(rank int64) (key K, exists bool) {
	if rank < 0 || rank >= int64(len(st.keys)) {
		return key, false
	}
	return st.keys[rank], true
}

func (st *binarySearchST[K, V]) Rank(key K) int64 {
	return int64(st.rank(key))
}

func NewBinarySearchST[K infra.OrderedKey, V any]() OrderedSymbolTable[K, V] {
	return &binarySearchST[K, V]{}
}
