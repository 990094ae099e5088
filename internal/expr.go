// Package internal holds helpers shared by the fib6502 command.
package internal

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/fib6502/translate"
)

var f = translate.From

// ErrExpression reports an expression that is not an integer.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not a valid expression", string(err))
}

// Eval evaluates an integer expression. Names from defines are visible
// to the expression; later sets override earlier ones.
func Eval(expr string, defines ...map[string]int64) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for _, set := range defines {
		for key, val := range set {
			pred[key] = starlark.MakeInt64(val)
		}
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}

	value, ok = st_int.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}

	return
}
