// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"

	"github.com/ezrec/fib6502/config"
	"github.com/ezrec/fib6502/cpu"
	"github.com/ezrec/fib6502/fib"
	"github.com/ezrec/fib6502/internal"
	"github.com/ezrec/fib6502/translate"
)

var f = translate.From

// Names predefined for the -n expression.
var _fib_defines = map[string]int64{
	"INT64_LIMIT": 93, // First index whose value does not fit an int64.
}

// ErrMismatch reports a driver result that disagrees with the reference.
type ErrMismatch struct {
	Index  int64
	Driver string
	Want   string
}

func (err ErrMismatch) Error() string {
	return f("fib(%v) = %v, reference %v", err.Index, err.Driver, err.Want)
}

var ErrLimitNegative = errors.New(f("limit must not be negative"))

func main() {
	err := run(os.Args[0], os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

// run parses the arguments and prints the sequence to out.
func run(name string, args []string, out io.Writer) (err error) {
	var cfgPath string
	var limit string
	var word string
	var stackLimit int
	var check bool
	var lang string
	var verbose bool

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.StringVar(&cfgPath, "c", "", ".toml settings file")
	flags.StringVar(&limit, "n", "", "Number of indices to print (expression)")
	flags.StringVar(&word, "w", "", "Word type: int64 or big")
	flags.IntVar(&stackLimit, "s", -1, "Stack limit, 0 for unbounded")
	flags.BoolVar(&check, "check", false, "Cross-check against the iterative reference")
	flags.StringVar(&lang, "lang", "", "Message language")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if flags.NArg() != 0 {
		err = fmt.Errorf("%v", f("unknown arguments: %v", flags.Args()))
		return
	}

	cfg := config.Default()
	if len(cfgPath) != 0 {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			err = fmt.Errorf("%v: %w", cfgPath, err)
			return
		}
	}

	// Flags override the settings file.
	flags.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "n":
			cfg.Limit = limit
		case "w":
			cfg.Word = word
		case "s":
			cfg.StackLimit = stackLimit
		case "check":
			cfg.Check = check
		case "lang":
			cfg.Language = lang
		case "v":
			cfg.Verbose = verbose
		}
	})

	err = cfg.Validate()
	if err != nil {
		return
	}

	if len(cfg.Language) != 0 {
		translate.SetLanguage(cfg.Language)
	}

	count, err := internal.Eval(cfg.Limit, _fib_defines, cfg.Define)
	if err != nil {
		return
	}
	if count < 0 {
		err = ErrLimitNegative
		return
	}

	switch cfg.Word {
	case config.WORD_INT64:
		err = printAll[int64](cpu.Int64{}, &cfg, count, out)
	case config.WORD_BIG:
		err = printAll[*big.Int](cpu.Big{}, &cfg, count, out)
	}

	return
}

// printAll prints "Fib k: v" for k in [0, count).
func printAll[T any](w cpu.Word[T], cfg *config.Config, count int64, out io.Writer) (err error) {
	d := fib.NewDriver(w)
	d.Verbose = cfg.Verbose
	d.StackLimit = cfg.StackLimit

	for k := range count {
		n := w.FromInt(k)

		var value T
		value, err = d.Fibonacci(n)
		if err != nil {
			err = fmt.Errorf("fib(%d): %w", k, err)
			return
		}

		if cfg.Check {
			var want T
			want, err = fib.Iterative(w, n)
			if err != nil {
				return
			}
			if w.Cmp(want, value) != 0 {
				err = ErrMismatch{Index: k, Driver: w.Format(value), Want: w.Format(want)}
				return
			}
		}

		_, err = fmt.Fprintf(out, "Fib %d: %s\n", k, w.Format(value))
		if err != nil {
			return
		}
	}

	return
}
