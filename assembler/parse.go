package assembler

import "strings"

// parseLines converts raw source lines into a slice of Node objects.
// Comments and blank lines are dropped; everything else classifies by
// syntax alone, so malformed input still yields a node for the encoder
// to reject.
func parseLines(lines []string) []*Node {
	var nodes []*Node
	for i, line := range lines {
		if c := strings.Index(line, "//"); c != -1 {
			line = line[:c]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		nodes = append(nodes, classify(line, i+1))
	}
	return nodes
}

// classify determines the node type from the first character and scans the
// remainder into fields. The scan is total: every non-empty string yields
// a node.
func classify(line string, lineNo int) *Node {
	switch line[0] {
	case '@':
		return &Node{
			Type: NodeAddress,
			Sym:  strings.TrimSpace(line[1:]),
			Line: lineNo,
		}
	case '(':
		name := strings.TrimSuffix(line[1:], ")")
		return &Node{
			Type: NodeLabel,
			Sym:  strings.TrimSpace(name),
			Line: lineNo,
		}
	}

	// A compute line splits on at most one '=' and one ';', left to right:
	// dest '=' comp ';' jump. Missing delimiters leave dest or jump empty.
	n := &Node{Type: NodeCompute, Line: lineNo}
	rest := line
	if i := strings.IndexByte(rest, '='); i >= 0 {
		n.Dest = strings.TrimSpace(rest[:i])
		rest = rest[i+1:]
	}
	if i := strings.IndexByte(rest, ';'); i >= 0 {
		n.Jump = strings.TrimSpace(rest[i+1:])
		rest = rest[:i]
	}
	n.Comp = strings.TrimSpace(rest)
	return n
}
