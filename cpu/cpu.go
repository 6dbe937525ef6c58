package cpu

// Word geometry for the Hack architecture.
const (
	// WordSize is the width of one machine word in bits.
	WordSize = 16
	// AddressBits is the width of the A-instruction address field.
	AddressBits = 15
	// MaxAddress is the largest value an A-instruction can load.
	MaxAddress = 1<<AddressBits - 1
)

// Addresses of the predefined symbols.
const (
	// SP is the stack pointer.
	SP = 0
	// LCL is the local segment base pointer.
	LCL = 1
	// ARG is the argument segment base pointer.
	ARG = 2
	// THIS is the this segment base pointer.
	THIS = 3
	// THAT is the that segment base pointer.
	THAT = 4
	// Screen is the base of the memory-mapped screen.
	Screen = 16384
	// Keyboard is the memory-mapped keyboard register.
	Keyboard = 24576
	// VarBase is the first RAM address handed out to user variables.
	VarBase = 16
)

// Predefined maps every architecture-defined symbol to its RAM address.
// R0 through R15 alias the first sixteen addresses, so several names can
// share one address.
var Predefined = map[string]uint16{
	"SP":   SP,
	"LCL":  LCL,
	"ARG":  ARG,
	"THIS": THIS,
	"THAT": THAT,

	"R0":  0,
	"R1":  1,
	"R2":  2,
	"R3":  3,
	"R4":  4,
	"R5":  5,
	"R6":  6,
	"R7":  7,
	"R8":  8,
	"R9":  9,
	"R10": 10,
	"R11": 11,
	"R12": 12,
	"R13": 13,
	"R14": 14,
	"R15": 15,

	"SCREEN": Screen,
	"KBD":    Keyboard,
}
