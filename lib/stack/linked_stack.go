package stack

type stackNode[E any] struct {
	item E
	next *stackNode[E]
}

// linkedStack pushes and pops at the head of a singly linked list,
// worst-case O(1) per operation with one allocation per element.
type linkedStack[E any] struct {
	first *stackNode[E]
	count int64
}

func (s *linkedStack[E]) Len() int64 {
	return s.count
}

func (s *linkedStack[E]) IsEmpty() bool {
	return s.first == nil
}

func (s *linkedStack[E]) Push(e E) {
	s.first = &stackNode[E]{item: e, next: s.first}
	s.count++
}

func (s *linkedStack[E]) Pop() (e E, exists bool) {
	if s.first == nil {
		return e, false
	}
	e = s.first.item
	s.first = s.first.next
	s.count--
	return e, true
}

func (s *linkedStack[E]) Peek() (e E, exists bool) {
	if s.first == nil {
		return e, false
	}
	return s.first.item, true
}

func NewLinkedStack[E any]() Stack[E] {
	return &linkedStack[E]{}
}
