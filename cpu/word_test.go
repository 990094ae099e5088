package cpu

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt64_Add(t *testing.T) {
	assert := assert.New(t)

	w := Int64{}
	table := []struct {
		a, b int64
		ok   bool
	}{
		{1, 2, true},
		{math.MaxInt64, 0, true},
		{math.MaxInt64, 1, false},
		{math.MinInt64, -1, false},
		{math.MinInt64, math.MaxInt64, true},
	}

	for _, entry := range table {
		_, ok := w.Add(entry.a, entry.b)
		assert.Equal(entry.ok, ok, "%v + %v", entry.a, entry.b)
	}
}

func TestInt64_Sub(t *testing.T) {
	assert := assert.New(t)

	w := Int64{}
	table := []struct {
		a, b int64
		ok   bool
	}{
		{1, 2, true},
		{0, math.MinInt64, false},
		{-1, math.MinInt64, true},
		{math.MinInt64, 1, false},
		{math.MaxInt64, -1, false},
	}

	for _, entry := range table {
		_, ok := w.Sub(entry.a, entry.b)
		assert.Equal(entry.ok, ok, "%v - %v", entry.a, entry.b)
	}
}

func TestWord_Format(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0", Int64{}.Format(0))
	assert.Equal("-12", Int64{}.Format(-12))
	assert.Equal("0", Big{}.Format(big.NewInt(0)))

	v, err := Big{}.Parse("12200160415121876738")
	assert.NoError(err)
	assert.Equal("12200160415121876738", Big{}.Format(v))

	_, err = Big{}.Parse("12x")
	assert.Error(err)

	_, err = Int64{}.Parse("12200160415121876738")
	assert.Error(err)
}

func TestWord_Sign(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(-1, Int64{}.Sign(-4))
	assert.Equal(0, Int64{}.Sign(0))
	assert.Equal(1, Big{}.Sign(big.NewInt(4)))
	assert.Equal(-1, Big{}.Cmp(big.NewInt(1), big.NewInt(2)))
}
