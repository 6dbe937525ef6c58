package assembler_test

import (
	"fmt"
	"testing"

	"github.com/Urethramancer/hack16/assembler"
	"github.com/Urethramancer/hack16/cpu"
)

func TestPredefinedLookup(t *testing.T) {
	st := assembler.NewSymbolTable()

	// Every predefined symbol resolves without a prior Define or
	// allocation.
	tests := map[string]uint16{
		"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
		"SCREEN": cpu.Screen, "KBD": cpu.Keyboard,
	}
	for i := uint16(0); i < 16; i++ {
		tests[fmt.Sprintf("R%d", i)] = i
	}
	for name, want := range tests {
		addr, ok := st.Lookup(name)
		if !ok || addr != want {
			t.Errorf("Lookup(%s) = %d, %v, want %d", name, addr, ok, want)
		}
		if !st.Contains(name) {
			t.Errorf("Contains(%s) = false", name)
		}
	}
}

func TestVariableAddresses(t *testing.T) {
	st := assembler.NewSymbolTable()

	first, err := st.Variable("i")
	if err != nil || first != cpu.VarBase {
		t.Fatalf("first variable = %d, %v, want %d", first, err, cpu.VarBase)
	}
	second, err := st.Variable("sum")
	if err != nil || second != cpu.VarBase+1 {
		t.Fatalf("second variable = %d, %v, want %d", second, err, cpu.VarBase+1)
	}

	// Re-resolving returns the same address, not a new one.
	again, err := st.Variable("i")
	if err != nil || again != first {
		t.Errorf("re-resolved variable = %d, %v, want %d", again, err, first)
	}

	// A defined name never allocates.
	addr, err := st.Variable("R7")
	if err != nil || addr != 7 {
		t.Errorf("Variable(R7) = %d, %v, want 7", addr, err)
	}
	next, err := st.Variable("third")
	if err != nil || next != cpu.VarBase+2 {
		t.Errorf("allocation after lookups = %d, %v, want %d", next, err, cpu.VarBase+2)
	}
}

func TestDefineOverwrites(t *testing.T) {
	st := assembler.NewSymbolTable()

	st.Define("loop", 4)
	st.Define("loop", 9)
	if addr, ok := st.Lookup("loop"); !ok || addr != 9 {
		t.Errorf("Lookup(loop) = %d, %v, want 9", addr, ok)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	st := assembler.NewSymbolTable()
	st.Define("loop", 4)

	snap := st.Snapshot()
	snap["loop"] = 99
	snap["ghost"] = 1

	if addr, _ := st.Lookup("loop"); addr != 4 {
		t.Errorf("snapshot mutation leaked: loop = %d", addr)
	}
	if st.Contains("ghost") {
		t.Error("snapshot mutation leaked: ghost exists")
	}
}
