package cpu

// Register is the 2-bit identifier of a general-purpose register.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A  = Register(0) // A
	REG_X  = Register(1) // X
	REG_Y  = Register(2) // Y
	REG_AX = Register(3) // AX
)

const REG_COUNT = 4 // Number of registers in the register file.

// registerMap maps upper-cased register names to register ids.
var registerMap = map[string]Register{
	"A":  REG_A,
	"X":  REG_X,
	"Y":  REG_Y,
	"AX": REG_AX,
}

// Valid returns true if the register id fits in a register slot.
func (reg Register) Valid() bool {
	return reg >= REG_A && reg <= REG_AX
}

// Flags are the CPU condition flags.
type Flags struct {
	Zero     bool // Reserved, never written by an instruction.
	Negative bool // Reserved, never written by an instruction.

	Equal        bool
	NotEqual     bool
	Greater      bool
	GreaterEqual bool
	Less         bool
	LessEqual    bool
}

// Compare recomputes the six comparison flags from an unsigned compare of a and b.
func (fl *Flags) Compare(a, b uint16) {
	fl.Equal = a == b
	fl.NotEqual = a != b
	fl.Greater = a > b
	fl.GreaterEqual = a >= b
	fl.Less = a < b
	fl.LessEqual = a <= b
}
