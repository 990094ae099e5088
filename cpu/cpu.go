// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"log"
)

// Machine is the processor state: three registers, the flags, and a stack.
type Machine[T any] struct {
	Verbose bool // Set to enable verbose logging.

	Word     Word[T]           // Arithmetic policy.
	Register [REGISTER_COUNT]T // Register bank: a, x, y.
	Flags    Flags             // Condition flags.
	Stack    Stack[T]          // Stack simulation.

	Ticks  int // Instructions executed.
	Pushes int // Successful pushes.
	Pops   int // Successful pops.
}

// NewMachine creates a machine with all registers zeroed and an unbounded
// stack.
func NewMachine[T any](word Word[T]) (m *Machine[T]) {
	m = &Machine[T]{
		Word: word,
	}
	m.Reset()

	return
}

// Reset the machine state.
// - Zeros the registers and flags.
// - Empties the stack, keeping its limit.
// - Zeros the instruction counters.
func (m *Machine[T]) Reset() {
	if m.Verbose {
		log.Printf("cpu: reset")
	}

	zero := m.Word.FromInt(0)
	for n := range m.Register {
		m.Register[n] = zero
	}
	m.Flags = Flags{}
	m.Stack.Reset()
	m.Ticks = 0
	m.Pushes = 0
	m.Pops = 0
}

// String returns the current machine state as a string.
func (m *Machine[T]) String() (text string) {
	for n, val := range m.Register {
		text += fmt.Sprintf("% 5s: %v\n", Register(n), m.Word.Format(val))
	}
	text += fmt.Sprintf("% 5s: %v\n", "flags", m.Flags)

	strval := "-"
	if val, ok := m.Stack.Peek(); ok {
		strval = m.Word.Format(val)
	}
	text += fmt.Sprintf("% 5s: %v (depth %d)\n", "stack", strval, m.Stack.Len())

	return
}

// setFlags is the only place flags are computed. Zero and negative always
// follow value; overflow and carry are supplied by the instruction.
func (m *Machine[T]) setFlags(value T, overflow bool, carry bool) {
	sign := m.Word.Sign(value)
	m.Flags = Flags{
		Zero:     sign == 0,
		Negative: sign < 0,
		Overflow: overflow,
		Carry:    carry,
	}
}

// trace logs an executed instruction and counts it.
func (m *Machine[T]) trace(op string, reg Register, value T) {
	m.Ticks++
	if m.Verbose {
		log.Printf("cpu: %-4s %v = %v [%v]", op, reg, m.Word.Format(value), m.Flags)
	}
}

func (m *Machine[T]) check(reg Register) {
	if !reg.Valid() {
		panic(ErrInstruction{Op: "reg", Reg: reg, Err: ErrRegisterInvalid})
	}
}

// Load sets the register to value.
func (m *Machine[T]) Load(reg Register, value T) {
	m.check(reg)
	m.Register[reg] = value
	m.setFlags(value, false, m.Flags.Carry)
	m.trace("ld", reg, value)
}

// Transfer copies src into dst.
func (m *Machine[T]) Transfer(src Register, dst Register) {
	m.check(src)
	m.check(dst)
	value := m.Register[src]
	m.Register[dst] = value
	m.setFlags(value, false, m.Flags.Carry)
	m.trace("t"+src.String(), dst, value)
}

// Store returns the register value. The flags are not changed.
func (m *Machine[T]) Store(reg Register) (value T) {
	m.check(reg)
	return m.Register[reg]
}

// Increment adds one to the register. Overflow is set if the new value
// is less than the old one, which only happens when a fixed-width word
// wraps.
func (m *Machine[T]) Increment(reg Register) {
	m.check(reg)
	old := m.Register[reg]
	value, _ := m.Word.Add(old, m.Word.FromInt(1))
	m.Register[reg] = value
	m.setFlags(value, m.Word.Cmp(value, old) < 0, m.Flags.Carry)
	m.trace("in", reg, value)
}

// Decrement subtracts one from the register. Overflow is set if the new
// value is greater than the old one.
func (m *Machine[T]) Decrement(reg Register) {
	m.check(reg)
	old := m.Register[reg]
	value, _ := m.Word.Sub(old, m.Word.FromInt(1))
	m.Register[reg] = value
	m.setFlags(value, m.Word.Cmp(value, old) > 0, m.Flags.Carry)
	m.trace("de", reg, value)
}

// AddWithCarry adds operand into the accumulator. Overflow is set if the
// new accumulator is greater than or equal to the operand.
//
// A fixed-width sum that wraps is not stored; ErrOverflow is returned and
// the machine state is unchanged.
func (m *Machine[T]) AddWithCarry(operand T) (err error) {
	value, ok := m.Word.Add(m.Register[REG_A], operand)
	if !ok {
		err = ErrInstruction{Op: "adc", Reg: REG_A, Err: ErrOverflow}
		return
	}
	m.Register[REG_A] = value
	m.setFlags(value, m.Word.Cmp(value, operand) >= 0, m.Flags.Carry)
	m.trace("adc", REG_A, value)
	return
}

// Compare computes reg - value without storing it. Carry is set if
// value <= reg, regardless of the sign of the difference. Overflow is
// left alone.
func (m *Machine[T]) Compare(reg Register, value T) {
	m.check(reg)
	current := m.Register[reg]
	diff, _ := m.Word.Sub(current, value)
	m.setFlags(diff, m.Flags.Overflow, m.Word.Cmp(value, current) <= 0)
	m.trace("cp", reg, diff)
}

// Push appends the register value to the stack.
func (m *Machine[T]) Push(reg Register) (err error) {
	m.check(reg)
	value := m.Register[reg]
	if !m.Stack.Push(value) {
		err = ErrInstruction{Op: "push", Reg: reg, Err: ErrStackFull}
		return
	}
	m.Pushes++
	m.setFlags(value, false, m.Flags.Carry)
	m.trace("push", reg, value)
	return
}

// Pop removes the top of the stack into the register.
func (m *Machine[T]) Pop(reg Register) (err error) {
	m.check(reg)
	value, ok := m.Stack.Pop()
	if !ok {
		err = ErrInstruction{Op: "pop", Reg: reg, Err: ErrStackEmpty}
		return
	}
	m.Pops++
	m.Register[reg] = value
	m.setFlags(value, false, m.Flags.Carry)
	m.trace("pop", reg, value)
	return
}

// IsZero is true if the last result was zero.
func (m *Machine[T]) IsZero() bool { return m.Flags.Zero }

// IsNonZero is true if the last result was not zero.
func (m *Machine[T]) IsNonZero() bool { return !m.Flags.Zero }

// IsNegative is true if the last result was negative.
func (m *Machine[T]) IsNegative() bool { return m.Flags.Negative }

// IsNonNegative is true if the last result was zero or positive.
func (m *Machine[T]) IsNonNegative() bool { return !m.Flags.Negative }

// PositiveOrZero is an alias of IsNonNegative.
func (m *Machine[T]) PositiveOrZero() bool { return m.IsNonNegative() }

func (m *Machine[T]) IsCarrySet() bool { return m.Flags.Carry }
func (m *Machine[T]) IsCarryClear() bool { return !m.Flags.Carry }
func (m *Machine[T]) IsOverflowSet() bool { return m.Flags.Overflow }
func (m *Machine[T]) IsOverflowClear() bool { return !m.Flags.Overflow }
