package queue

// Queue is a FIFO container.
type Queue[E any] interface {
	Len() int64
	IsEmpty() bool
	Enqueue(e E)
	Dequeue() (E, bool)
	Peek() (E, bool)
}

// CmpEnum is the three-way comparison result used by priority queues.
type CmpEnum int64

const (
	iLTj CmpEnum = -1 + iota
	iEQj
	iGTj
)

// PQItemComparator orders two queue elements; the smallest element
// under the comparator is popped first.
type PQItemComparator[E any] func(i, j E) CmpEnum

// PriorityQueue pops elements in comparator order.
type PriorityQueue[E any] interface {
	Len() int64
	IsEmpty() bool
	Push(e E)
	Pop() (E, bool)
	Peek() (E, bool)
}
