package cpu

import (
	"math/big"
	"strconv"
)

// Word is the arithmetic policy for a machine word of type T.
//
// Values of T are treated as immutable: every operation returns a fresh
// value, so registers and stack slots never alias.
type Word[T any] interface {
	// FromInt converts a small literal into a word.
	FromInt(v int64) T
	// Add returns a+b. ok is false if a fixed-width sum wrapped.
	Add(a, b T) (sum T, ok bool)
	// Sub returns a-b. ok is false if a fixed-width difference wrapped.
	Sub(a, b T) (diff T, ok bool)
	// Cmp returns -1, 0 or +1 as a is less than, equal to, or greater than b.
	Cmp(a, b T) int
	// Sign returns -1, 0 or +1 for negative, zero and positive values.
	Sign(a T) int
	// Format renders the value in base 10.
	Format(a T) string
	// Parse reads a base 10 value.
	Parse(s string) (T, error)
}

// Int64 is the fixed-width 64-bit word. Increment and decrement wrap;
// Add and Sub report the wrap.
type Int64 struct{}

var _ Word[int64] = Int64{}

func (Int64) FromInt(v int64) int64 {
	return v
}

func (Int64) Add(a, b int64) (sum int64, ok bool) {
	sum = a + b
	ok = !((a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0))
	return
}

func (Int64) Sub(a, b int64) (diff int64, ok bool) {
	diff = a - b
	ok = !((a >= 0 && b < 0 && diff < 0) || (a < 0 && b > 0 && diff >= 0))
	return
}

func (Int64) Cmp(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (w Int64) Sign(a int64) int {
	return w.Cmp(a, 0)
}

func (Int64) Format(a int64) string {
	return strconv.FormatInt(a, 10)
}

func (Int64) Parse(s string) (v int64, err error) {
	v, err = strconv.ParseInt(s, 10, 64)
	return
}

// Big is the unbounded word, backed by math/big.
type Big struct{}

var _ Word[*big.Int] = Big{}

func (Big) FromInt(v int64) *big.Int {
	return big.NewInt(v)
}

func (Big) Add(a, b *big.Int) (*big.Int, bool) {
	return new(big.Int).Add(a, b), true
}

func (Big) Sub(a, b *big.Int) (*big.Int, bool) {
	return new(big.Int).Sub(a, b), true
}

func (Big) Cmp(a, b *big.Int) int {
	return a.Cmp(b)
}

func (Big) Sign(a *big.Int) int {
	return a.Sign()
}

func (Big) Format(a *big.Int) string {
	return a.Text(10)
}

func (Big) Parse(s string) (v *big.Int, err error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		err = strconv.ErrSyntax
		v = nil
	}
	return
}
