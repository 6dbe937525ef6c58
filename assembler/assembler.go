package assembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/hack16/cpu"
)

// Assembler holds the state for the assembly process.
type Assembler struct {
	symbols *SymbolTable
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{
		symbols: NewSymbolTable(),
	}
}

// Symbols returns the symbol table, fully populated after Assemble.
func (asm *Assembler) Symbols() *SymbolTable {
	return asm.symbols
}

// Assemble takes Hack assembly code and returns the machine words, one per
// real instruction, in program order.
func (asm *Assembler) Assemble(src string) ([]uint16, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	nodes := parseLines(lines)

	// First pass: bind each label to the address of the next real
	// instruction. Labels consume no address themselves.
	count := 0
	for _, n := range nodes {
		if n.Type != NodeLabel {
			count++
			if count > cpu.MaxAddress+1 {
				return nil, fmt.Errorf("line %d: program exceeds %d instructions", n.Line, cpu.MaxAddress+1)
			}
			continue
		}
		name, err := n.Symbol()
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, fmt.Errorf("line %d: empty label name", n.Line)
		}
		asm.symbols.Define(name, uint16(count))
	}

	// Second pass: encode. Words accumulate in memory, so an error on a
	// later line never leaves partial output behind.
	words := make([]uint16, 0, count)
	for _, n := range nodes {
		var w uint16
		var err error

		switch n.Type {
		case NodeLabel:
			continue
		case NodeAddress:
			w, err = asm.encodeAddress(n)
		case NodeCompute:
			w, err = encodeCompute(n)
		}
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, nil
}
