package stack

// Stack is a LIFO container. Pop on an empty stack reports absence
// through the boolean, never an out-of-band error.
type Stack[E any] interface {
	Len() int64
	IsEmpty() bool
	Push(e E)
	Pop() (E, bool)
	Peek() (E, bool)
}
