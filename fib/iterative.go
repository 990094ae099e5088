package fib

import (
	"github.com/ezrec/fib6502/cpu"
)

// Iterative returns fib(n) by rotating a two entry stack, with no
// activation records. It is the reference the driver is checked against.
func Iterative[T any](w cpu.Word[T], n T) (result T, err error) {
	if w.Sign(n) < 0 {
		err = ErrNegative(w.Format(n))
		return
	}

	if w.Sign(n) == 0 {
		result = n
		return
	}

	one := w.FromInt(1)
	fs := cpu.Stack[T]{Limit: 2}
	fs.Push(w.FromInt(0))
	fs.Push(one)

	for w.Cmp(n, one) > 0 {
		n, _ = w.Sub(n, one)

		l, _ := fs.Pop()
		k, _ := fs.Pop()

		sum, ok := w.Add(k, l)
		if !ok {
			err = cpu.ErrOverflow
			return
		}

		fs.Push(l)
		fs.Push(sum)
	}

	result, _ = fs.Peek()
	return
}
