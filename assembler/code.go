package assembler

import (
	"fmt"
	"strconv"

	"github.com/Urethramancer/hack16/cpu"
)

// encodeAddress resolves an @-reference to an address and renders the
// A-word. Numeric references are literals; known names resolve through the
// symbol table; anything else becomes a fresh variable.
func (asm *Assembler) encodeAddress(n *Node) (uint16, error) {
	ref, err := n.Symbol()
	if err != nil {
		return 0, err
	}
	if ref == "" {
		return 0, fmt.Errorf("line %d: empty address reference", n.Line)
	}

	if isNumeric(ref) {
		v, err := strconv.ParseUint(ref, 10, 32)
		if err != nil || v > cpu.MaxAddress {
			return 0, fmt.Errorf("line %d: address '%s' does not fit in %d bits", n.Line, ref, cpu.AddressBits)
		}
		return uint16(v), nil
	}

	if addr, ok := asm.symbols.Lookup(ref); ok {
		return addr, nil
	}

	addr, err := asm.symbols.Variable(ref)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", n.Line, err)
	}
	return addr, nil
}

// encodeCompute renders a C-word from the three mnemonic tables. A
// mnemonic missing from its table fails the whole run rather than encoding
// to zero bits.
func encodeCompute(n *Node) (uint16, error) {
	comp, ok := cpu.CompBits[n.Comp]
	if !ok {
		return 0, fmt.Errorf("line %d: unknown computation '%s'", n.Line, n.Comp)
	}
	dest, ok := cpu.DestBits[n.Dest]
	if !ok {
		return 0, fmt.Errorf("line %d: unknown destination '%s'", n.Line, n.Dest)
	}
	jump, ok := cpu.JumpBits[n.Jump]
	if !ok {
		return 0, fmt.Errorf("line %d: unknown jump '%s'", n.Line, n.Jump)
	}
	return cpu.EncodeC(comp, dest, jump), nil
}

// isNumeric reports whether a reference is a decimal literal.
func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
