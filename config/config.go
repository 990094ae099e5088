// Package config loads the fib6502 settings file.
package config

import (
	"errors"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/fib6502/translate"
)

var f = translate.From

const (
	WORD_INT64 = "int64" // Fixed-width 64-bit words.
	WORD_BIG   = "big"   // Unbounded words.
)

var (
	ErrWordInvalid   = errors.New(f("word must be int64 or big"))
	ErrStackNegative = errors.New(f("stack_limit must not be negative"))
)

// ErrUnknownKey reports a settings key that is not understood.
type ErrUnknownKey string

func (err ErrUnknownKey) Error() string {
	return f("unknown key '%v'", string(err))
}

// Config holds the command settings.
type Config struct {
	Limit      string `toml:"limit"`       // Expression for the number of indices to print.
	Word       string `toml:"word"`        // Word type: int64 or big.
	StackLimit int    `toml:"stack_limit"` // Machine stack limit, 0 for unbounded.
	Verbose    bool   `toml:"verbose"`     // Trace the machine.
	Check      bool   `toml:"check"`       // Cross-check against the iterative reference.
	Language   string `toml:"language"`    // Message language, empty for the system locale.

	// Names usable in the limit expression.
	Define map[string]int64 `toml:"define"`
}

// Default returns the settings used when no file is given.
func Default() (cfg Config) {
	cfg = Config{
		Limit: "10",
		Word:  WORD_BIG,
	}
	return
}

// Decode reads TOML settings over the defaults.
func Decode(r io.Reader) (cfg Config, err error) {
	cfg = Default()

	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		err = ErrUnknownKey(undecoded[0].String())
		return
	}

	err = cfg.Validate()
	return
}

// Load reads TOML settings from a file.
func Load(path string) (cfg Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Decode(inf)
}

// Validate checks the settings.
func (cfg *Config) Validate() (err error) {
	switch cfg.Word {
	case WORD_INT64, WORD_BIG:
	default:
		return ErrWordInvalid
	}

	if cfg.StackLimit < 0 {
		return ErrStackNegative
	}

	return
}
