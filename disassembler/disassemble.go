package disassembler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Urethramancer/hack16/cpu"
)

// Disassemble converts machine words back into Hack assembly. An address
// loaded immediately before a jumping C-instruction is treated as a branch
// target and gets a synthesized label; every other A-word renders as a
// numeric reference.
func Disassemble(words []uint16) (string, error) {
	labels := findLabels(words)

	var out strings.Builder
	for i, w := range words {
		if name, ok := labels[uint16(i)]; ok {
			fmt.Fprintf(&out, "(%s)\n", name)
		}
		text, err := decode(w, labels)
		if err != nil {
			return "", fmt.Errorf("word %d: %w", i, err)
		}
		out.WriteString(text)
		out.WriteByte('\n')
	}
	// A branch target can sit just past the last instruction.
	if name, ok := labels[uint16(len(words))]; ok {
		fmt.Fprintf(&out, "(%s)\n", name)
	}
	return out.String(), nil
}

// findLabels scans for the @target/jump pair and names each distinct target
// in address order.
func findLabels(words []uint16) map[uint16]string {
	targets := make(map[uint16]bool)
	for i := 0; i+1 < len(words); i++ {
		if !cpu.IsAddress(words[i]) || !cpu.IsCompute(words[i+1]) {
			continue
		}
		if _, _, jump := cpu.Fields(words[i+1]); jump == 0 {
			continue
		}
		if int(words[i]) <= len(words) {
			targets[words[i]] = true
		}
	}

	addrs := make([]int, 0, len(targets))
	for t := range targets {
		addrs = append(addrs, int(t))
	}
	sort.Ints(addrs)

	labels := make(map[uint16]string, len(addrs))
	for i, a := range addrs {
		labels[uint16(a)] = fmt.Sprintf("L%d", i)
	}
	return labels
}

// decode renders one word as assembly text.
func decode(w uint16, labels map[uint16]string) (string, error) {
	if cpu.IsAddress(w) {
		if name, ok := labels[w]; ok {
			return "@" + name, nil
		}
		return fmt.Sprintf("@%d", w), nil
	}
	if !cpu.IsCompute(w) {
		return "", fmt.Errorf("not a valid instruction: %s", cpu.WordString(w))
	}

	compCode, destCode, jumpCode := cpu.Fields(w)
	comp, ok := cpu.CompName(compCode)
	if !ok {
		return "", fmt.Errorf("unknown computation code %07b", compCode)
	}
	dest, _ := cpu.DestName(destCode)
	jump, _ := cpu.JumpName(jumpCode)

	var sb strings.Builder
	if dest != "" {
		sb.WriteString(dest)
		sb.WriteByte('=')
	}
	sb.WriteString(comp)
	if jump != "" {
		sb.WriteByte(';')
		sb.WriteString(jump)
	}
	return sb.String(), nil
}
