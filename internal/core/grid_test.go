package core

import (
	"slices"
	"testing"
)

func TestByteGridScrollUp(t *testing.T) {
	g := NewByteGrid(3, 3)
	copy(g.Row(0), []uint8{1, 0, 0})
	copy(g.Row(1), []uint8{0, 1, 0})
	copy(g.Row(2), []uint8{0, 0, 1})

	g.ScrollUp()

	want := []uint8{
		0, 1, 0,
		0, 0, 1,
		0, 0, 0,
	}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("after scroll cells=%v, want %v", g.Cells(), want)
	}
}

func TestByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -4)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("grid dimensions %dx%d, want 1x1", g.W, g.H)
	}
	if len(g.Cells()) != 1 {
		t.Fatalf("grid holds %d cells, want 1", len(g.Cells()))
	}
}
