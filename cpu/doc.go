// Package cpu implements a minimal 6502-style register and flag machine.
//
// The machine has an accumulator (A), two index registers (X and Y), a
// single LIFO word stack, and four condition flags: zero, negative,
// overflow and carry. Every mutating instruction recomputes the flags from
// its result, so the flags always describe the last executed instruction.
//
// The word type is a parameter. Arithmetic is delegated to a Word policy,
// either the fixed-width Int64 or the unbounded Big, and the flag rules are
// written as ordinal comparisons so they hold for both.
package cpu
