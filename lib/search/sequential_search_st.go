package search

type seqNode[K comparable, V any] struct {
	key  K
	val  V
	next *seqNode[K, V]
}

// sequentialSearchST is an unordered linked list scanned front to
// back: O(n) search and insert. The baseline the others improve on,
// and the bucket structure inside the separate-chaining hash table.
type sequentialSearchST[K comparable, V any] struct {
	first *seqNode[K, V]
	count int64
}

func (st *sequentialSearchST[K, V]) Len() int64 {
	return st.count
}

func (st *sequentialSearchST[K, V]) IsEmpty() bool {
	return st.count == 0
}

func (st *sequentialSearchST[K, V]) Put(key K, val V) {
	for aux := st.first; aux != nil; aux = aux.next {
		if aux.key == key {
			aux.val = val
			return
		}
	}
	st.first = &seqNode[K, V]{key: key, val: val, next: st.first}
	st.count++
}

func (st *sequentialSearchST[K, V]) Get(key K) (val V, exists bool) {
	for aux := st.first; aux != nil; aux = aux.next {
		if aux.key == key {
			return aux.val, true
		}
	}
	return val, false
}

func (st *sequentialSearchST[K, V]) Contains(key K) bool {
	_, exists := st.Get(key)
	return exists
}

func (st *sequentialSearchST[K, V]) Remove(key K) (val V, removed bool) {
	var prev *seqNode[K, V]
	for aux := st.first; aux != nil; prev, aux = aux, aux.next {
		if aux.key != key {
			continue
		}
		if prev == nil {
			st.first = aux.next
		} else {
			prev.next = aux.next
		}
		st.count--
		return aux.val, true
	}
	return val, false
}

func (st *sequentialSearchST[K, V]) Keys() []K {
	keys := make([]K, 0, st.count)
	for aux := st.first; aux != nil; aux = aux.next {
		keys = append(keys, aux.key)
	}
	return keys
}

func NewSequentialSearchST[K comparable, V any]() SymbolTable[K, V] {
	return &sequentialSearchST[K, V]{}
}
