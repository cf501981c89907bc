package calculator

// stack is a slice-backed LIFO.
type stack[T any] struct {
	s []T
}

func newstack[T any](capacity int) stack[T] {
	return stack[T]{s: make([]T, 0, capacity)}
}

func (s *stack[T]) push(v T) {
	s.s = append(s.s, v)
}

// pop removes the top from the stack and returns it. ok is false if the stack
// was empty.
func (s *stack[T]) pop() (v T, ok bool) {
	if len(s.s) == 0 {
		return v, false
	}
	v = s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

// top is a shortcut to get the top element of the stack. Panics if the stack
// is empty.
func (s *stack[T]) top() T {
	return s.s[len(s.s)-1]
}

func (s *stack[T]) depth() int {
	return len(s.s)
}
