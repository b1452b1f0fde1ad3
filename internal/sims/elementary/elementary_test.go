package elementary

import (
	"slices"
	"testing"
)

func rows(a *Automaton) []string {
	size := a.Size()
	cells := a.Cells()
	out := make([]string, size.H)
	for y := range out {
		b := make([]byte, size.W)
		for x := range b {
			b[x] = '0' + cells[y*size.W+x]
		}
		out[y] = string(b)
	}
	return out
}

func TestAutomatonScrollsHistory(t *testing.T) {
	a := New(mustParse(t, "00100"), Settings{Rule: 90, Edges: Crop, Generations: 5}, 3)
	if got, want := rows(a), []string{"00100", "00000", "00000"}; !slices.Equal(got, want) {
		t.Fatalf("initial history = %v, want %v", got, want)
	}

	a.Step()
	a.Step()
	if got, want := rows(a), []string{"00100", "01010", "10001"}; !slices.Equal(got, want) {
		t.Fatalf("history after two steps = %v, want %v", got, want)
	}

	a.Step()
	if got, want := rows(a), []string{"01010", "10001", "01010"}; !slices.Equal(got, want) {
		t.Fatalf("history after scrolling = %v, want %v", got, want)
	}

	a.Step()
	if !a.Done() || a.Shown() != 5 {
		t.Fatalf("after five generations Done=%v Shown=%d", a.Done(), a.Shown())
	}
	before := rows(a)
	a.Step()
	if !slices.Equal(rows(a), before) {
		t.Fatal("Step advanced past the configured generations")
	}
}

func TestAutomatonReset(t *testing.T) {
	a := New(mustParse(t, "00100"), Settings{Rule: 90, Edges: Crop, Generations: 10}, 4)
	a.Step()
	a.Step()
	a.Reset(0)
	if a.Shown() != 1 || a.Front().Bits() != "00100" {
		t.Fatalf("Reset(0) gave shown=%d front=%q", a.Shown(), a.Front().Bits())
	}

	a.Reset(5)
	first := a.Front().Bits()
	a.Reset(5)
	if a.Front().Bits() != first {
		t.Fatal("Reset with a seed is not deterministic")
	}
}
