package elementary

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// MinWidth is the smallest number of cells a sequence may hold.
const MinWidth = 3

const (
	glyphOn  = "██"
	glyphOff = "╶╴"
)

var (
	// ErrTooShort reports an initial configuration narrower than MinWidth.
	ErrTooShort = errors.New("initial configuration must be at least 3 cells wide")
	// ErrInvalidCell reports a character other than '0' or '1'.
	ErrInvalidCell = errors.New("initial configuration must only contain '0' or '1'")
)

// BoolSource supplies random cell values.
type BoolSource interface {
	Bool() bool
}

// Cells is one generation of the automaton.
type Cells []bool

// NewRandom returns width cells drawn from src. It panics if width is below
// MinWidth.
func NewRandom(width int, src BoolSource) Cells {
	if width < MinWidth {
		panic(fmt.Sprintf("elementary: random width %d below minimum %d", width, MinWidth))
	}
	c := make(Cells, width)
	for i := range c {
		c[i] = src.Bool()
	}
	return c
}

// Parse reads a configuration of '0' (dead) and '1' (live) characters.
func Parse(s string) (Cells, error) {
	if len(s) < MinWidth {
		return nil, fmt.Errorf("%w: got %d", ErrTooShort, len(s))
	}
	c := make(Cells, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			c = append(c, false)
		case '1':
			c = append(c, true)
		default:
			return nil, fmt.Errorf("%w: found %q at offset %d", ErrInvalidCell, r, i)
		}
	}
	return c, nil
}

// Neighborhoods yields every overlapping 3-cell window from left to right.
// A sequence of length L has L-2 windows.
func (c Cells) Neighborhoods() iter.Seq[[3]bool] {
	return func(yield func([3]bool) bool) {
		for i := 0; i+3 <= len(c); i++ {
			if !yield([3]bool{c[i], c[i+1], c[i+2]}) {
				return
			}
		}
	}
}

// Edges returns the first two and the last two cells.
func (c Cells) Edges() [2][2]bool {
	n := len(c)
	return [2][2]bool{{c[0], c[1]}, {c[n-2], c[n-1]}}
}

// String renders every cell two columns wide.
func (c Cells) String() string {
	var b strings.Builder
	b.Grow(len(c) * len(glyphOn))
	for _, v := range c {
		if v {
			b.WriteString(glyphOn)
		} else {
			b.WriteString(glyphOff)
		}
	}
	return b.String()
}

// Bits renders the cells in the form accepted by Parse.
func (c Cells) Bits() string {
	b := make([]byte, len(c))
	for i, v := range c {
		b[i] = '0' + bit(v)
	}
	return string(b)
}

// Density returns the fraction of live cells.
func (c Cells) Density() float64 {
	if len(c) == 0 {
		return 0
	}
	live := 0
	for _, v := range c {
		if v {
			live++
		}
	}
	return float64(live) / float64(len(c))
}
