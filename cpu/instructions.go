package cpu

// CPrefix is the fixed three-bit marker in the high bits of every
// C-instruction.
const CPrefix = 0xE000

// DestBits maps a destination mnemonic to its 3-bit code. Each bit enables
// one write target: bit 2 is A, bit 1 is D, bit 0 is M. The empty mnemonic
// writes nothing.
var DestBits = map[string]uint16{
	"":    0b000,
	"M":   0b001,
	"D":   0b010,
	"MD":  0b011,
	"A":   0b100,
	"AM":  0b101,
	"AD":  0b110,
	"AMD": 0b111,
}

// CompBits maps a computation mnemonic to its 7-bit ALU code. The leading
// bit selects the second operand: 0 for register A, 1 for memory.
var CompBits = map[string]uint16{
	"0":   0b0101010,
	"1":   0b0111111,
	"-1":  0b0111010,
	"D":   0b0001100,
	"A":   0b0110000,
	"!D":  0b0001101,
	"!A":  0b0110001,
	"-D":  0b0001111,
	"-A":  0b0110011,
	"D+1": 0b0011111,
	"A+1": 0b0110111,
	"D-1": 0b0001110,
	"A-1": 0b0110010,
	"D+A": 0b0000010,
	"D-A": 0b0010011,
	"A-D": 0b0000111,
	"D&A": 0b0000000,
	"D|A": 0b0010101,

	"M":   0b1110000,
	"!M":  0b1110001,
	"-M":  0b1110011,
	"M+1": 0b1110111,
	"M-1": 0b1110010,
	"D+M": 0b1000010,
	"D-M": 0b1010011,
	"M-D": 0b1000111,
	"D&M": 0b1000000,
	"D|M": 0b1010101,
}

// JumpBits maps a jump mnemonic to its 3-bit condition code. The empty
// mnemonic never jumps; JMP always jumps.
var JumpBits = map[string]uint16{
	"":    0b000,
	"JGT": 0b001,
	"JEQ": 0b010,
	"JGE": 0b011,
	"JLT": 0b100,
	"JNE": 0b101,
	"JLE": 0b110,
	"JMP": 0b111,
}

// Reverse lookups for the disassembler, built once from the forward tables.
var (
	destNames = invert(DestBits)
	compNames = invert(CompBits)
	jumpNames = invert(JumpBits)
)

func invert(m map[string]uint16) map[uint16]string {
	out := make(map[uint16]string, len(m))
	for mn, code := range m {
		out[code] = mn
	}
	return out
}

// EncodeC builds a C-word from its three field codes.
func EncodeC(comp, dest, jump uint16) uint16 {
	return CPrefix | comp<<6 | dest<<3 | jump
}

// Fields splits a C-word into its comp, dest and jump codes.
func Fields(w uint16) (comp, dest, jump uint16) {
	return w >> 6 & 0x7F, w >> 3 & 0x7, w & 0x7
}

// IsAddress reports whether a word is an A-instruction.
func IsAddress(w uint16) bool {
	return w&0x8000 == 0
}

// IsCompute reports whether a word carries the C-instruction marker.
func IsCompute(w uint16) bool {
	return w&CPrefix == CPrefix
}

// DestName resolves a 3-bit destination code back to its mnemonic.
func DestName(code uint16) (string, bool) {
	mn, ok := destNames[code]
	return mn, ok
}

// CompName resolves a 7-bit computation code back to its mnemonic. Not
// every code is a valid ALU operation.
func CompName(code uint16) (string, bool) {
	mn, ok := compNames[code]
	return mn, ok
}

// JumpName resolves a 3-bit jump code back to its mnemonic.
func JumpName(code uint16) (string, bool) {
	mn, ok := jumpNames[code]
	return mn, ok
}
