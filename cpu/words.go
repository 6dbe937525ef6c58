package cpu

import (
	"fmt"
	"strconv"
)

// WordString renders a machine word as the fixed-width binary string used
// for one line of a .hack listing.
func WordString(w uint16) string {
	return fmt.Sprintf("%016b", w)
}

// ParseWord parses one binary-string line from a .hack listing.
func ParseWord(s string) (uint16, error) {
	if len(s) != WordSize {
		return 0, fmt.Errorf("expected %d binary digits, got %d", WordSize, len(s))
	}
	v, err := strconv.ParseUint(s, 2, WordSize)
	if err != nil {
		return 0, fmt.Errorf("invalid binary word %q", s)
	}
	return uint16(v), nil
}
