package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Row returns the slice backing row y.
func (g *ByteGrid) Row(y int) []uint8 {
	start := g.Index(0, y)
	return g.data[start : start+g.W]
}

// ScrollUp moves every row up by one, dropping the top row, and clears the
// bottom row.
func (g *ByteGrid) ScrollUp() {
	copy(g.data, g.data[g.W:])
	last := g.Row(g.H - 1)
	for i := range last {
		last[i] = 0
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
