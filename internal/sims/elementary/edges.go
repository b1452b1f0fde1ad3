package elementary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEdges reports an unknown edge handling name.
var ErrEdges = errors.New("edge handling must be one of copy, crop, wrap")

// EdgeHandling selects how the neighbors beyond both ends are synthesized.
type EdgeHandling int

const (
	// Copy keeps the previous edge values.
	Copy EdgeHandling = iota
	// Crop treats the neighbors beyond the edges as dead.
	Crop
	// Wrap joins both ends into a ring.
	Wrap
)

var edgeNames = [...]string{Copy: "copy", Crop: "crop", Wrap: "wrap"}

func (e EdgeHandling) String() string {
	if e < 0 || int(e) >= len(edgeNames) {
		return fmt.Sprintf("EdgeHandling(%d)", int(e))
	}
	return edgeNames[e]
}

// ParseEdgeHandling maps a case-insensitive name to its EdgeHandling.
func ParseEdgeHandling(s string) (EdgeHandling, error) {
	for i, name := range edgeNames {
		if strings.EqualFold(s, name) {
			return EdgeHandling(i), nil
		}
	}
	return 0, fmt.Errorf("%w: got %q", ErrEdges, s)
}

// Set implements flag.Value.
func (e *EdgeHandling) Set(s string) error {
	v, err := ParseEdgeHandling(s)
	if err != nil {
		return err
	}
	*e = v
	return nil
}
