package search

// linearProbingHashST resolves collisions by open addressing: on a
// collision it scans forward to the next free slot, wrapping at the
// end of the table. The table doubles once half full, keeping probe
// sequences short, and halves once an eighth full.
type linearProbingHashST[K comparable, V any] struct {
	keys    []K
	vals    []V
	present []bool
	hasher  Hasher[K]
	count   int64
}

func (st *linearProbingHashST[K, V]) Len() int64 {
	return st.count
}

func (st *linearProbingHashST[K, V]) IsEmpty() bool {
	return st.count == 0
}

func (st *linearProbingHashST[K, V]) indexOf(key K) uint64 {
	return st.hasher.Hash(key) % uint64(len(st.keys))
}

func (st *linearProbingHashST[K, V]) resize(m int) {
	old := *st
	st.keys = make([]K, m)
	st.vals = make([]V, m)
	st.present = make([]bool, m)
	st.count = 0
	for i := range old.keys {
		if old.present[i] {
			st.Put(old.keys[i], old.vals[i])
		}
	}
}

func (st *linearProbingHashST[K, V]) Put(key K, val V) {
	if st.count*100 >= int64(len(st.keys))*probingMaxLoadPercent {
		st.resize(2 * len(st.keys))
	}
	i := st.indexOf(key)
	for ; st.present[i]; i = (i + 1) % uint64(len(st.keys)) {
		if st.keys[i] == key {
			st.vals[i] = val
			return
		}
	}
	st.keys[i], st.vals[i], st.present[i] = key, val, true
	st.count++
}

func (st *linearProbingHashST[K, V]) Get(key K) (val V, exists bool) {
	for i := st.indexOf(key); st.present[i]; i = (i + 1) % uint64(len(st.keys)) {
		if st.keys[i] == key {
			return st.vals[i], true
		}
	}
	return val, false
}

func (st *linearProbingHashST[K, V]) Contains(key K) bool {
	_, exists := st.Get(key)
	return exists
}

// Remove clears the slot then reinserts the rest of the probe cluster,
// otherwise later probes would stop at the hole and miss their key.
func (st *linearProbingHashST[K, V]) Remove(key K) (val V, removed bool) {
	i := st.indexOf(key)
	for st.present[i] && st.keys[i] != key {
		i = (i + 1) % uint64(len(st.keys))
	}
	if !st.present[i] {
		return val, false
	}
	val = st.vals[i]
	var zeroK K
	var zeroV V
	st.keys[i], st.vals[i], st.present[i] = zeroK, zeroV, false
	st.count--

	for i = (i + 1) % uint64(len(st.keys)); st.present[i]; i = (i + 1) % uint64(len(st.keys)) {
		k, v := st.keys[i], st.vals[i]
		st.keys[i], st.vals[i], st.present[i] = zeroK, zeroV, false
		st.count--
		st.Put(k, v)
	}

	if len(st.keys) > probingInitCapacity && st.count*8 <= int64(len(st.keys)) {
		st.resize(len(st.keys) / 2)
	}
	return val, true
}

func (st *linearProbingHashST[K, V]) Keys() []K {
	keys := make([]K, 0, st.count)
	for i := range st.keys {
		if st.present[i] {
			keys = append(keys, st.keys[i])
		}
	}
	return keys
}

func NewLinearProbingHashST[K comparable, V any]() SymbolTable[K, V] {
	return &linearProbingHashST[K, V]{
		keys:    make([]K, probingInitCapacity),
		vals:    make([]V, probingInitCapacity),
		present: make([]bool, probingInitCapacity),
		hasher:  newHasher[K](),
	}
}
