package assembler

import (
	"fmt"

	"github.com/Urethramancer/hack16/cpu"
)

// SymbolTable maps symbolic names to RAM or ROM addresses. It starts out
// seeded with the architecture's predefined symbols and only grows within
// one assembly run.
type SymbolTable struct {
	entries map[string]uint16
	nextVar uint16
}

// NewSymbolTable creates a symbol table seeded with the predefined symbols.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{
		entries: make(map[string]uint16, len(cpu.Predefined)+16),
		nextVar: cpu.VarBase,
	}
	for name, addr := range cpu.Predefined {
		st.entries[name] = addr
	}
	return st
}

// Define binds a name to an address, overwriting any previous binding.
// The assembler uses it for labels during the first pass.
func (st *SymbolTable) Define(name string, addr uint16) {
	st.entries[name] = addr
}

// Contains reports whether a name is already bound.
func (st *SymbolTable) Contains(name string) bool {
	_, ok := st.entries[name]
	return ok
}

// Lookup returns the address bound to a name.
func (st *SymbolTable) Lookup(name string) (uint16, bool) {
	addr, ok := st.entries[name]
	return addr, ok
}

// Variable returns the address for a variable name, allocating the next
// free RAM address on first use. Callers must weed out numeric literals
// before calling this.
func (st *SymbolTable) Variable(name string) (uint16, error) {
	if addr, ok := st.entries[name]; ok {
		return addr, nil
	}
	if st.nextVar > cpu.MaxAddress {
		return 0, fmt.Errorf("no addresses left for variable '%s'", name)
	}
	addr := st.nextVar
	st.nextVar++
	st.entries[name] = addr
	return addr, nil
}

// Snapshot returns a copy of the current bindings.
func (st *SymbolTable) Snapshot() map[string]uint16 {
	out := make(map[string]uint16, len(st.entries))
	for name, addr := range st.entries {
		out[name] = addr
	}
	return out
}
