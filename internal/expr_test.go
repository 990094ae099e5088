package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEval(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		expr  string
		value int64
	}{
		{"10", 10},
		{"2*20", 40},
		{"width + 1", 33},
		{"max(width, 40)", 40},
		{"int64_max - 2", 90},
	}

	defines := map[string]int64{"width": 32, "int64_max": 92}
	for _, entry := range table {
		value, err := Eval(entry.expr, defines)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.value, value, entry.expr)
	}
}

func TestEval_Override(t *testing.T) {
	assert := assert.New(t)

	value, err := Eval("width", map[string]int64{"width": 1}, map[string]int64{"width": 2})
	assert.NoError(err)
	assert.Equal(int64(2), value)
}

func TestEval_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Eval("\"ten\"")
	assert.Equal(ErrExpression("\"ten\""), err)

	_, err = Eval("1 << 70")
	assert.Equal(ErrExpression("1 << 70"), err)

	_, err = Eval("missing + 1")
	assert.Error(err)

	_, err = Eval("1 +")
	assert.Error(err)
}
