package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Urethramancer/hack16/cpu"
	"github.com/Urethramancer/hack16/disassembler"
)

var outName string

var rootCmd = &cobra.Command{
	Use:   "hackdis programfile",
	Short: "The Hack disassembler",
	Long: `Hackdis reads a .hack listing of binary machine words and prints
the equivalent Hack assembly, with labels synthesized for branch targets.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return disassemble(args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outName, "out", "o", "", "write output to this file instead of stdout")
}

func disassemble(in string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	var words []uint16
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		w, err := cpu.ParseWord(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		words = append(words, w)
	}

	text, err := disassembler.Disassemble(words)
	if err != nil {
		return err
	}

	if outName == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(outName, []byte(text), 0644); err != nil {
		return err
	}
	fmt.Printf("Disassembly written to %s\n", outName)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
