package cpu

import (
	"errors"

	"github.com/ezrec/fib6502/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrStackEmpty      = errors.New(f("stack empty"))
	ErrStackFull       = errors.New(f("stack full"))
	ErrOverflow        = errors.New(f("word overflow"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
)

// ErrInstruction records the instruction that failed.
type ErrInstruction struct {
	Op  string
	Reg Register
	Err error
}

func (err ErrInstruction) Error() string {
	return f("%v %v: %v", err.Op, err.Reg, err.Err)
}

func (err ErrInstruction) Unwrap() error {
	return err.Err
}
