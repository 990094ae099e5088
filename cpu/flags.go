package cpu

// Flags is the condition flag set.
type Flags struct {
	Zero     bool // Z: last result was zero.
	Negative bool // N: last result was negative.
	Overflow bool // V: see the instruction for its meaning.
	Carry    bool // C: set by Compare when no borrow is needed.
}

// String returns the flags as "NVZC", with '-' for a clear flag.
func (fl Flags) String() string {
	text := []byte("----")
	for n, set := range []bool{fl.Negative, fl.Overflow, fl.Zero, fl.Carry} {
		if set {
			text[n] = "NVZC"[n]
		}
	}
	return string(text)
}
