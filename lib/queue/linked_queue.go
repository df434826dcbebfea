package queue

type queueNode[E any] struct {
	item E
	next *queueNode[E]
}

// linkedQueue enqueues at the tail and dequeues at the head of a singly
// linked list, worst-case O(1) per operation.
type linkedQueue[E any] struct {
	first *queueNode[E]
	last  *queueNode[E]
	count int64
}

func (q *linkedQueue[E]) Len() int64 {
	return q.count
}

func (q *linkedQueue[E]) IsEmpty() bool {
	return q.first == nil
}

func (q *linkedQueue[E]) Enqueue(e E) {
	node := &queueNode[E]{item: e}
	if q.last != nil {
		q.last.next = node
	} else {
		q.first = node
	}
	q.last = node
	q.count++
}

func (q *linkedQueue[E]) Dequeue() (e E, exists bool) {
	if q.first == nil {
		return e, false
	}
	e = q.first.item
	q.first = q.first.next
	if q.first == nil {
		q.last = nil
	}
	q.count--
	return e, true
}

func (q *linkedQueue[E]) Peek() (e E, exists bool) {
	if q.first == nil {
		return e, false
	}
	return q.first.item, true
}

func NewLinkedQueue[E any]() Queue[E] {
	return &linkedQueue[E]{}
}
