package cpu

// Register selects one of the machine registers.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A = Register(0) // a
	REG_X = Register(1) // x
	REG_Y = Register(2) // y

	REGISTER_COUNT = 3
)

// Valid returns true if the register exists on the machine.
func (r Register) Valid() bool {
	return r >= 0 && r < REGISTER_COUNT
}
