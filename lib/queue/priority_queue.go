package queue

import (
	"container/heap"

	"github.com/xalgo/xalgo/lib/infra"
)

type arrayPQ[E any] struct {
	arr        []E
	comparator PQItemComparator[E]
}

func (pq *arrayPQ[E]) Len() int { return len(pq.arr) }
func (pq *arrayPQ[E]) Less(i, j int) bool {
	return pq.comparator(pq.arr[i], pq.arr[j]) == iLTj
}
func (pq *arrayPQ[E]) Swap(i, j int) {
	pq.arr[i], pq.arr[j] = pq.arr[j], pq.arr[i]
}

func (pq *arrayPQ[E]) Push(i interface{}) {
	pq.arr = append(pq.arr, i.(E))
}

func (pq *arrayPQ[E]) Pop() interface{} {
	prev := pq.arr
	n := len(prev)
	if n <= 0 {
		return nil
	}
	item := prev[n-1]
	prev[n-1] = *new(E) // release the reference
	pq.arr = prev[:n-1]
	return item
}

// ArrayPriorityQueue is a binary heap on a resizing array wrapping
// container/heap, ordered by a pluggable comparator.
type ArrayPriorityQueue[E any] struct {
	queue *arrayPQ[E]
}

func (pq *ArrayPriorityQueue[E]) Len() int64 {
	return int64(len(pq.queue.arr))
}

func (pq *ArrayPriorityQueue[E]) IsEmpty() bool {
	return len(pq.queue.arr) == 0
}

func (pq *ArrayPriorityQueue[E]) Push(e E) {
	heap.Push(pq.queue, e)
}

func (pq *ArrayPriorityQueue[E]) Pop() (e E, exists bool) {
	if len(pq.queue.arr) == 0 {
		return e, false
	}
	return heap.Pop(pq.queue).(E), true
}

func (pq *ArrayPriorityQueue[E]) Peek() (e E, exists bool) {
	if len(pq.queue.arr) == 0 {
		return e, false
	}
	return pq.queue.arr[0], true
}

type ArrayPriorityQueueOption[E any] func(*ArrayPriorityQueue[E])

func WithArrayPriorityQueueCapacity[E any](capacity int) ArrayPriorityQueueOption[E] {
	return func(pq *ArrayPriorityQueue[E]) {
		if capacity <= 0 {
			capacity = 64
		}
		pq.queue.arr = make([]E, 0, capacity)
	}
}

func WithArrayPriorityQueueComparator[E any](fn PQItemComparator[E]) ArrayPriorityQueueOption[E] {
	return func(pq *ArrayPriorityQueue[E]) {
		if fn != nil {
			pq.queue.comparator = fn
		}
	}
}

// NewArrayPriorityQueue builds a heap over any element type; a
// comparator option is mandatory unless E is an OrderedKey, in which
// case use NewMinPriorityQueue.
func NewArrayPriorityQueue[E any](opts ...ArrayPriorityQueueOption[E]) PriorityQueue[E] {
	pq := &ArrayPriorityQueue[E]{
		queue: new(arrayPQ[E]),
	}
	for _, o := range opts {
		if o != nil {
			o(pq)
		}
	}
	if pq.queue.comparator == nil {
		// impossible to order arbitrary E without one
		panic( /* debug assertion */ "[pq] missing item comparator")
	}
	return pq
}

// NewMinPriorityQueue orders ordered keys ascending, the min-heap used
// by the sorting and graph routines.
func NewMinPriorityQueue[E infra.OrderedKey]() PriorityQueue[E] {
	return NewArrayPriorityQueue[E](
		WithArrayPriorityQueueComparator[E](func(i, j E) CmpEnum {
			return CmpEnum(infra.OrderedKeyCompare(i, j))
		}),
	)
}

// NewMaxPriorityQueue orders ordered keys descending.
func NewMaxPriorityQueue[E infra.OrderedKey]() PriorityQueue[E] {
	return NewArrayPriorityQueue[E](
		WithArrayPriorityQueueComparator[E](func(i, j E) CmpEnum {
			return CmpEnum(infra.OrderedKeyCompare(j, i))
		}),
	)
}
