package cpu

// Stack is a LIFO of words. A zero Limit leaves the stack unbounded.
type Stack[T any] struct {
	Data  []T
	Limit int
}

func (s *Stack[T]) Push(value T) (ok bool) {
	if s.Full() {
		return
	}
	s.Data = append(s.Data, value)
	return true
}

func (s *Stack[T]) Pop() (value T, ok bool) {
	value, ok = s.Peek()
	if ok {
		var zero T
		s.Data[len(s.Data)-1] = zero
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack[T]) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack[T]) Full() bool {
	return s.Limit > 0 && len(s.Data) >= s.Limit
}

func (s *Stack[T]) Len() int {
	return len(s.Data)
}

func (s *Stack[T]) Peek() (value T, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack[T]) Reset() {
	if len(s.Data) > 0 {
		clear(s.Data)
		s.Data = s.Data[:0]
	}
}
