package queue

import (
	"errors"
	"fmt"

	"github.com/xalgo/xalgo/lib/infra"
)

var (
	ErrIndexOutOfRange  = errors.New("[index-min-pq] index out of range")
	ErrIndexAbsent      = errors.New("[index-min-pq] index not in the priority queue")
	ErrIndexPresent     = errors.New("[index-min-pq] index already in the priority queue")
	ErrPriorityNoLower  = errors.New("[index-min-pq] new key is not lower")
	ErrPriorityQueueEmp = errors.New("[index-min-pq] empty priority queue")
)

// IndexMinPQ associates a key with an integer index in [0, maxN) and
// supports changing the key of an index in place, which plain binary
// heaps cannot do. The graph shortest-path routines rely on DecreaseKey
// for eager edge relaxation.
//
// Representation: pq is a 1-based binary heap of indices and inversePq
// is its inverse, inversePq[pq[i]] == pq[inversePq[i]] == i.
type IndexMinPQ[K infra.OrderedKey] struct {
	pq        []int
	inversePq []int // inversePq[i] == 0 means i is absent
	keys      []K
	n         int
	maxN      int
}

func NewIndexMinPQ[K infra.OrderedKey](maxN int) *IndexMinPQ[K] {
	if maxN < 0 {
		// impossible run to here
		panic( /* debug assertion */ "[index-min-pq] negative capacity")
	}
	return &IndexMinPQ[K]{
		pq:        make([]int, maxN+1),
		inversePq: make([]int, maxN+1),
		keys:      make([]K, maxN+1),
		n:         0,
		maxN:      maxN,
	}
}

func (pq *IndexMinPQ[K]) Len() int64 {
	return int64(pq.n)
}

func (pq *IndexMinPQ[K]) IsEmpty() bool {
	return pq.n == 0
}

func (pq *IndexMinPQ[K]) Contains(i int) bool {
	if i < 0 || i >= pq.maxN {
		return false
	}
	return pq.inversePq[i] != 0
}

func (pq *IndexMinPQ[K]) Insert(i int, key K) error {
	if i < 0 || i >= pq.maxN {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	if pq.Contains(i) {
		return fmt.Errorf("%w: %d", ErrIndexPresent, i)
	}
	pq.n++
	pq.inversePq[i] = pq.n
	pq.pq[pq.n] = i
	pq.keys[i] = key
	pq.swim(pq.n)
	return nil
}

// DecreaseKey lowers the key associated with index i.
func (pq *IndexMinPQ[K]) DecreaseKey(i int, key K) error {
	if i < 0 || i >= pq.maxN {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	if !pq.Contains(i) {
		return fmt.Errorf("%w: %d", ErrIndexAbsent, i)
	}
	if infra.OrderedKeyCompare(pq.keys[i], key) <= 0 {
		return fmt.Errorf("%w: index %d", ErrPriorityNoLower, i)
	}
	pq.keys[i] = key
	pq.swim(pq.inversePq[i])
	return nil
}

// DelMin removes the index with the smallest key and returns it.
func (pq *IndexMinPQ[K]) DelMin() (int, error) {
	if pq.n == 0 {
		return 0, ErrPriorityQueueEmp
	}
	_min := pq.pq[1]
	pq.exch(1, pq.n)
	pq.n--
	pq.sink(1)
	pq.inversePq[_min] = 0
	pq.pq[pq.n+1] = 0
	return _min, nil
}

func (pq *IndexMinPQ[K]) MinKey() (key K, err error) {
	if pq.n == 0 {
		return key, ErrPriorityQueueEmp
	}
	return pq.keys[pq.pq[1]], nil
}

func (pq *IndexMinPQ[K]) greater(i, j int) bool {
	return infra.OrderedKeyCompare(pq.keys[pq.pq[i]], pq.keys[pq.pq[j]]) > 0
}

func (pq *IndexMinPQ[K]) exch(i, j int) {
	pq.pq[i], pq.pq[j] = pq.pq[j], pq.pq[i]
	pq.inversePq[pq.pq[i]] = i
	pq.inversePq[pq.pq[j]] = j
}

func (pq *IndexMinPQ[K]) swim(k int) {
	for k > 1 && pq.greater(k>>1, k) {
		pq.exch(k>>1, k)
		k >>= 1
	}
}

func (pq *IndexMinPQ[K]) sink(k int) {
	for k<<1 <= pq.n {
		j := k << 1
		if j < pq.n && pq.greater(j, j+1) {
			j++
		}
		if !pq.greater(k, j) {
			break
		}
		pq.exch(k, j)
		k = j
	}
}
