package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/Urethramancer/hack16/assembler"
	"github.com/Urethramancer/hack16/cpu"
)

var (
	outName string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "hackasm sourcefile",
	Short: "The Hack assembler",
	Long: `Hackasm translates Hack assembly (.asm) into binary machine code:
one 16-bit word per line, written next to the source as a .hack file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return assemble(args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outName, "out", "o", "", "write output to this file instead of the derived name")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "dump the resolved symbol table to stderr")
}

func assemble(in string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	asm := assembler.New()
	words, err := asm.Assemble(string(data))
	if err != nil {
		return err
	}

	out := outName
	if out == "" {
		out = deriveOut(in)
	}

	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(cpu.WordString(w))
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(out, []byte(sb.String()), 0644); err != nil {
		return err
	}

	if verbose {
		pp.Fprintf(os.Stderr, "Symbols: %v\n", asm.Symbols().Snapshot())
	}

	fmt.Printf("Assembled %d instructions to %s\n", len(words), out)
	return nil
}

// deriveOut replaces the source extension with the .hack suffix.
func deriveOut(in string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".hack"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
