// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package fib

import (
	"errors"
	"log"

	"github.com/ezrec/fib6502/cpu"
)

// Driver runs the activation record Fibonacci program.
type Driver[T any] struct {
	Verbose    bool            // If set, log each pass and every instruction.
	StackLimit int             // Stack depth limit, 0 for unbounded.
	Word       cpu.Word[T]     // Arithmetic policy.
	Machine    *cpu.Machine[T] // Machine of the last call, nil if none was needed.
}

// NewDriver creates a driver for the given word type.
func NewDriver[T any](word cpu.Word[T]) (d *Driver[T]) {
	d = &Driver[T]{
		Word: word,
	}

	return
}

// Fibonacci returns fib(n).
//
// The root activation, n, is held in the X register. The expansion pass
// pushes one record per decrement of X (n-1, n-2, ... down to 1 or 0), and
// the reduction pass pops them in ascending order, folding the running pair
// for every record above 1. A final fold returns from the root.
func (d *Driver[T]) Fibonacci(n T) (result T, err error) {
	w := d.Word
	d.Machine = nil

	if w.Sign(n) < 0 {
		err = ErrNegative(w.Format(n))
		return
	}

	// Guard case: 0 -> 0, 1 -> 1.
	if w.Cmp(n, w.FromInt(1)) <= 0 {
		result = n
		return
	}

	m := cpu.NewMachine(w)
	m.Verbose = d.Verbose
	m.Stack.Limit = d.StackLimit
	d.Machine = m

	err = d.expand(m, n)
	if err != nil {
		return
	}

	result, err = d.reduce(m, n)
	if err != nil {
		return
	}

	if !m.Stack.Empty() || m.Pushes != m.Pops {
		err = ErrInvariant
		return
	}

	if d.Verbose {
		log.Printf("fib: %v -> %v (%d records, %d ticks)", w.Format(n), w.Format(result), m.Pushes, m.Ticks)
	}

	return
}

// more is the loop condition of both passes: X > 1 after CPX #1.
func more[T any](m *cpu.Machine[T]) bool {
	return m.Cs() && m.Ne()
}

// expand pushes the activation records for f(x-1) and f(x-2) until the
// index reaches a base case.
func (d *Driver[T]) expand(m *cpu.Machine[T], n T) (err error) {
	one := d.Word.FromInt(1)

	if d.Verbose {
		log.Printf("fib: expand %v", d.Word.Format(n))
	}

	m.Ldx(n)
	for {
		// Activation record for f(x - 1)
		m.Dex()
		m.Txa()
		err = m.Pha()
		if err != nil {
			return
		}

		// Activation record for f(x - 2)
		m.Dex()
		m.Txa()
		err = m.Pha()
		if err != nil {
			return
		}

		m.Cpx(one)
		if !more(m) {
			break
		}
	}

	return
}

// reduce pops every record pushed by expand, with the same loop shape, and
// folds them into the (previous, sum) pair.
func (d *Driver[T]) reduce(m *cpu.Machine[T], n T) (sum T, err error) {
	w := d.Word
	one := w.FromInt(1)

	if d.Verbose {
		log.Printf("fib: reduce %d records", m.Stack.Len())
	}

	previous := w.FromInt(0)
	sum = one

	m.Ldx(n)
	for {
		for range 2 {
			err = m.Pla()
			if err != nil {
				err = errors.Join(ErrInvariant, err)
				return
			}

			// f(0) and f(1) are leaves; the pair is already correct.
			if m.Ne() {
				m.Cmp(one)
				if m.Ne() {
					previous, sum, err = fold(m, previous, sum)
					if err != nil {
						return
					}
				}
			}

			m.Dex()
		}

		m.Cpx(one)
		if !more(m) {
			break
		}
	}

	// Return from the root activation.
	_, sum, err = fold(m, previous, sum)
	return
}

// fold advances the pair: previous := sum, sum := previous + sum.
func fold[T any](m *cpu.Machine[T], previous T, sum T) (T, T, error) {
	m.Lda(previous)
	err := m.Adc(sum)
	if err != nil {
		return previous, sum, err
	}

	return sum, m.Sta(), nil
}
