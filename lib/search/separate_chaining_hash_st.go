package search

const (
	chainingInitBuckets   = 4
	chainingMaxAvgChain   = 10
	chainingMinAvgChain   = 2
	probingInitCapacity   = 16
	probingMaxLoadPercent = 50
)

// separateChainingHashST hashes each key to one of m buckets, each a
// small sequential-search list. The bucket array doubles when the
// average chain grows past chainingMaxAvgChain and halves when it
// drops below chainingMinAvgChain.
type separateChainingHashST[K comparable, V any] struct {
	buckets []*sequentialSearchST[K, V]
	hasher  Hasher[K]
	count   int64
}

func (st *separateChainingHashST[K, V]) Len() int64 {
	return st.count
}

func (st *separateChainingHashST[K, V]) IsEmpty() bool {
	return st.count == 0
}

func (st *separateChainingHashST[K, V]) indexOf(key K) uint64 {
	return st.hasher.Hash(key) % uint64(len(st.buckets))
}

func (st *separateChainingHashST[K, V]) resize(m int) {
	old := st.buckets
	st.buckets = make([]*sequentialSearchST[K, V], m)
	for i := range st.buckets {
		st.buckets[i] = &sequentialSearchST[K, V]{}
	}
	st.count = 0
	for _, bucket := range old {
		for aux := bucket.first; aux != nil; aux = aux.next {
			st.Put(aux.key, aux.val)
		}
	}
}

func (st *separateChainingHashST[K, V]) Put(key K, val V) {
	if st.count >= int64(chainingMaxAvgChain*len(st.buckets)) {
		st.resize(2 * len(st.buckets))
	}
	i := st.indexOf(key)
	before := st.buckets[i].Len()
	st.buckets[i].Put(key, val)
	st.count += st.buckets[i].Len() - before
}

func (st *separateChainingHashST[K, V]) Get(key K) (V, bool) {
	return st.buckets[st.indexOf(key)].Get(key)
}

func (st *separateChainingHashST[K, V]) Contains(key K) bool {
	_, exists := st.Get(key)
	return exists
}

func (st *separateChainingHashST[K, V]) Remove(key K) (val V, removed bool) {
	val, removed = st.buckets[st.indexOf(key)].Remove(key)
	if !removed {
		return val, false
	}
	st.count--
	if len(st.buckets) > chainingInitBuckets &&
		st.count <= int64(chainingMinAvgChain*len(st.buckets)) {
		st.resize(len(st.buckets) / 2)
	}
	return val, true
}

func (st *separateChainingHashST[K, V]) Keys() []K {
	keys := make([]K, 0, st.count)
	for _, bucket := range st.buckets {
		keys = append(keys, bucket.Keys()...)
	}
	return keys
}

func NewSeparateChainingHashST[K comparable, V any]() SymbolTable[K, V] {
	st := &separateChainingHashST[K, V]{
		buckets: make([]*sequentialSearchST[K, V], chainingInitBuckets),
		hasher:  newHasher[K](),
	}
	for i := range st.buckets {
		st.buckets[i] = &sequentialSearchST[K, V]{}
	}
	return st
}
