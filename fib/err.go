package fib

import (
	"errors"

	"github.com/ezrec/fib6502/translate"
)

var f = translate.From

var (
	ErrInvalidArgument = errors.New(f("invalid argument"))
	ErrInvariant       = errors.New(f("activation records unbalanced"))
)

// ErrNegative is returned for a negative index.
type ErrNegative string

func (err ErrNegative) Error() string {
	return f("n %v is negative", string(err))
}

func (err ErrNegative) Unwrap() error {
	return ErrInvalidArgument
}
