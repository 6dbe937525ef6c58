package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDeriveOut(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Prog.asm", "Prog.hack"},
		{"dir/Prog.asm", "dir/Prog.hack"},
		{"Prog.s", "Prog.hack"},
		{"Prog", "Prog.hack"},
	}
	for _, tt := range tests {
		if got := deriveOut(tt.in); got != tt.want {
			t.Errorf("deriveOut(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAssembleFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Add.asm")
	if err := os.WriteFile(src, []byte("@2\nD=A\n@3\nD=D+A\n@0\nM=D\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := assemble(src); err != nil {
		t.Fatalf("assemble failed: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(dir, "Add.hack"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	want := "0000000000000010\n" +
		"1110110000010000\n" +
		"0000000000000011\n" +
		"1110000010010000\n" +
		"0000000000000000\n" +
		"1110001100001000\n"
	if string(out) != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}
