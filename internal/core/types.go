package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a frame-driven automaton view must
// implement to be painted by a frontend.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}
