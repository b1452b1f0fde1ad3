package elementary

import "fmt"

// Rule is the Wolfram code of an elementary automaton: bit n holds the next
// value of a cell whose neighborhood, read left to right as a 3-bit number,
// equals n.
type Rule uint8

// Apply returns the next value for the center of neighborhood, ordered
// (left, center, right). Left is the most significant bit.
func (r Rule) Apply(neighborhood [3]bool) bool {
	idx := bit(neighborhood[0])<<2 | bit(neighborhood[1])<<1 | bit(neighborhood[2])
	return (r>>idx)&1 != 0
}

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Table returns the code as 8 binary digits, the outcome for neighborhood
// 111 first and for 000 last.
func (r Rule) Table() string {
	return fmt.Sprintf("%08b", uint8(r))
}
