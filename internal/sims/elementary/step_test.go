package elementary

import (
	"fmt"
	"slices"
	"testing"

	"eca/internal/core"
)

var policies = []EdgeHandling{Copy, Crop, Wrap}

// ring computes the next generation of c treated as a circular buffer.
func ring(c Cells, rule Rule) Cells {
	n := len(c)
	next := make(Cells, n)
	for i := range c {
		next[i] = rule.Apply([3]bool{c[(i-1+n)%n], c[i], c[(i+1)%n]})
	}
	return next
}

func mustParse(t *testing.T, s string) Cells {
	t.Helper()
	c, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return c
}

func TestStepPreservesLength(t *testing.T) {
	rng := core.NewRNG(7)
	for width := MinWidth; width <= 12; width++ {
		front := NewRandom(width, rng)
		back := make(Cells, width)
		for _, edges := range policies {
			for rule := 0; rule < 256; rule++ {
				got, _ := Step(front, back, Settings{Rule: Rule(rule), Edges: edges})
				if len(got) != width {
					t.Fatalf("width %d rule %d %v: stepped to %d cells", width, rule, edges, len(got))
				}
			}
		}
	}
}

func TestStepRotatesBuffers(t *testing.T) {
	front := mustParse(t, "0110")
	back := make(Cells, len(front))
	newFront, newBack := Step(front, back, Settings{Rule: 90, Edges: Wrap})
	if &newFront[0] != &back[0] {
		t.Fatal("new front does not reuse the back buffer")
	}
	if &newBack[0] != &front[0] {
		t.Fatal("new back is not the old front")
	}
	if want := "0110"; front.Bits() != want {
		t.Fatalf("front was modified to %q", front.Bits())
	}
}

func TestStepOverwritesStaleBack(t *testing.T) {
	front := mustParse(t, "00100")
	back := mustParse(t, "1111111")
	got, _ := Step(front, back, Settings{Rule: 90, Edges: Crop})
	if got.Bits() != "01010" {
		t.Fatalf("Step into a longer stale buffer = %q, want 01010", got.Bits())
	}
}

func TestStepCopyKeepsEdges(t *testing.T) {
	rng := core.NewRNG(11)
	for rule := 0; rule < 256; rule++ {
		front := NewRandom(9, rng)
		got, _ := Step(front, make(Cells, 9), Settings{Rule: Rule(rule), Edges: Copy})
		if got[0] != front[0] || got[8] != front[8] {
			t.Fatalf("rule %d: copy edges changed %q -> %q", rule, front.Bits(), got.Bits())
		}
	}
}

func TestStepCopyInterior(t *testing.T) {
	got, _ := Step(mustParse(t, "00100"), make(Cells, 5), Settings{Rule: 255, Edges: Copy})
	if got.Bits() != "01110" {
		t.Fatalf("rule 255 with copy edges = %q, want 01110", got.Bits())
	}
}

func TestStepCropTreatsOutsideAsDead(t *testing.T) {
	// Only 001 turns on under rule 2, so the left edge of 010 sees 001.
	got, _ := Step(mustParse(t, "010"), make(Cells, 3), Settings{Rule: 2, Edges: Crop})
	if got.Bits() != "100" {
		t.Fatalf("rule 2 with crop edges = %q, want 100", got.Bits())
	}

	// Under rule 1 only 000 turns on: the right edge of 100 sees 000.
	got, _ = Step(mustParse(t, "100"), make(Cells, 3), Settings{Rule: 1, Edges: Crop})
	if got.Bits() != "001" {
		t.Fatalf("rule 1 with crop edges = %q, want 001", got.Bits())
	}
}

func TestStepWrapMatchesRing(t *testing.T) {
	rng := core.NewRNG(3)
	for _, rule := range []Rule{30, 45, 90, 110, 150, 184} {
		for width := MinWidth; width <= 12; width++ {
			front := NewRandom(width, rng)
			t.Run(fmt.Sprintf("rule%d/%s", rule, front.Bits()), func(t *testing.T) {
				got, _ := Step(front, make(Cells, width), Settings{Rule: rule, Edges: Wrap})
				if want := ring(front, rule); !slices.Equal(got, want) {
					t.Fatalf("wrap step = %q, want %q", got.Bits(), want.Bits())
				}
			})
		}
	}
}

func TestStepWrapEdgeNeighborhoods(t *testing.T) {
	// Rule 16 only turns on for 100: the left edge turns on when the last
	// cell is live and the first two are dead.
	got, _ := Step(mustParse(t, "00001"), make(Cells, 5), Settings{Rule: 16, Edges: Wrap})
	if got.Bits() != "10000" {
		t.Fatalf("rule 16 wrap = %q, want 10000", got.Bits())
	}
	// Rule 4 only turns on for 010: the right edge reads the first cell as
	// its right neighbor.
	got, _ = Step(mustParse(t, "00001"), make(Cells, 5), Settings{Rule: 4, Edges: Wrap})
	if got.Bits() != "00001" {
		t.Fatalf("rule 4 wrap = %q, want 00001", got.Bits())
	}
	got, _ = Step(mustParse(t, "10001"), make(Cells, 5), Settings{Rule: 4, Edges: Wrap})
	if got.Bits() != "00000" {
		t.Fatalf("rule 4 wrap = %q, want 00000", got.Bits())
	}
}

func TestStepRule90Crop(t *testing.T) {
	s := Settings{Rule: 90, Edges: Crop}
	front := mustParse(t, "00100")
	back := make(Cells, len(front))
	var seen []string
	for i := 0; i < 3; i++ {
		seen = append(seen, front.Bits())
		front, back = Step(front, back, s)
	}
	want := []string{"00100", "01010", "10001"}
	if !slices.Equal(seen, want) {
		t.Fatalf("rule 90 evolution = %v, want %v", seen, want)
	}
}

func TestStepUnknownEdgesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Step with an unknown edge handling did not panic")
		}
	}()
	Step(mustParse(t, "010"), make(Cells, 3), Settings{Rule: 90, Edges: EdgeHandling(9)})
}
