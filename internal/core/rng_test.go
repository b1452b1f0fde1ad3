package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 64; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}
