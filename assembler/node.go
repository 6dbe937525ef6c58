package assembler

import "fmt"

// NodeType defines the type of an assembly node.
type NodeType int

const (
	// NodeAddress is an A-instruction (@value or @symbol).
	NodeAddress NodeType = iota
	// NodeLabel is a label pseudo-instruction ((NAME)). It emits no word.
	NodeLabel
	// NodeCompute is a C-instruction (dest=comp;jump).
	NodeCompute
)

// Node represents one parsed element from the assembly source.
type Node struct {
	Type NodeType
	// Sym holds the reference of an address node or the name of a label node.
	Sym string
	// Dest, Comp and Jump are the compute fields. Dest and Jump may be empty.
	Dest string
	Comp string
	Jump string
	// Line is the 1-based source line the node came from.
	Line int
}

// Symbol returns the symbolic field of an address or label node. Compute
// instructions carry no symbol; asking for one is a caller bug.
func (n *Node) Symbol() (string, error) {
	if n.Type == NodeCompute {
		return "", fmt.Errorf("line %d: compute instruction has no symbol", n.Line)
	}
	return n.Sym, nil
}
