package elementary

import (
	"fmt"
	"time"
)

// Settings is the per-run configuration of a simulation.
type Settings struct {
	Rule        Rule
	Edges       EdgeHandling
	Generations int
	Delay       time.Duration
}

// Step computes the generation after front into back and returns
// (new front, new back): the buffer just written and the buffer just read.
// back is overwritten and reuses its capacity, so Step does not allocate once
// back can hold len(front) cells.
func Step(front, back Cells, s Settings) (Cells, Cells) {
	rule := s.Rule
	var left, right bool
	edges := front.Edges()
	l1, l2 := edges[0][0], edges[0][1]
	r1, r2 := edges[1][0], edges[1][1]
	switch s.Edges {
	case Copy:
		left, right = l1, r2
	case Crop:
		left = rule.Apply([3]bool{false, l1, l2})
		right = rule.Apply([3]bool{r1, r2, false})
	case Wrap:
		left = rule.Apply([3]bool{r2, l1, l2})
		right = rule.Apply([3]bool{r1, r2, l1})
	default:
		panic(fmt.Sprintf("elementary: unknown edge handling %v", s.Edges))
	}

	back = append(back[:0], left)
	for n := range front.Neighborhoods() {
		back = append(back, rule.Apply(n))
	}
	back = append(back, right)

	if len(back) != len(front) {
		panic(fmt.Sprintf("elementary: stepped %d cells into %d", len(front), len(back)))
	}
	return back, front
}
