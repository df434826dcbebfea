package stack

const initCapacity = 8

// resizingStack grows by doubling and shrinks by halving once a quarter
// full, so n pushes and pops cost amortized O(1) each.
type resizingStack[E any] struct {
	arr []E
}

func (s *resizingStack[E]) Len() int64 {
	return int64(len(s.arr))
}

func (s *resizingStack[E]) IsEmpty() bool {
	return len(s.arr) == 0
}

func (s *resizingStack[E]) Push(e E) {
	if len(s.arr) == cap(s.arr) {
		s.resize(cap(s.arr) << 1)
	}
	s.arr = append(s.arr, e)
}

func (s *resizingStack[E]) Pop() (e E, exists bool) {
	n := len(s.arr)
	if n == 0 {
		return e, false
	}
	e = s.arr[n-1]
	s.arr[n-1] = *new(E) // release the reference
	s.arr = s.arr[:n-1]
	if n-1 > 0 && n-1 == cap(s.arr)>>2 {
		s.resize(cap(s.arr) >> 1)
	}
	return e, true
}

func (s *resizingStack[E]) Peek() (e E, exists bool) {
	n := len(s.arr)
	if n == 0 {
		return e, false
	}
	return s.arr[n-1], true
}

func (s *resizingStack[E]) resize(capacity int) {
	next := make([]E, len(s.arr), capacity)
	copy(next, s.arr)
	s.arr = next
}

func NewResizingStack[E any]() Stack[E] {
	return &resizingStack[E]{
		arr: make([]E, 0, initCapacity),
	}
}
