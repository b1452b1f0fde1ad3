package elementary

import (
	"slices"
	"sync"
)

// SurveyResult summarizes how a rule evolves from a fixed start.
type SurveyResult struct {
	Rule  Rule
	Steps int
	// Transient is the generation at which the cycle starts, or -1 when no
	// state repeated within Steps.
	Transient int
	// Period is the cycle length, zero when no cycle was found.
	Period  int
	Density float64
}

// Cyclic reports whether a repeated state was found.
func (r SurveyResult) Cyclic() bool { return r.Period > 0 }

// Survey runs rule from initial for at most steps generations and stops at
// the first repeated state.
func Survey(rule Rule, edges EdgeHandling, initial Cells, steps int) SurveyResult {
	s := Settings{Rule: rule, Edges: edges}
	front := slices.Clone(initial)
	back := make(Cells, len(initial))
	seen := map[string]int{front.Bits(): 0}
	res := SurveyResult{Rule: rule, Transient: -1}
	for i := 1; i <= steps; i++ {
		front, back = Step(front, back, s)
		res.Steps = i
		key := front.Bits()
		if first, ok := seen[key]; ok {
			res.Transient = first
			res.Period = i - first
			break
		}
		seen[key] = i
	}
	res.Density = front.Density()
	return res
}

// SurveyAll surveys all 256 rules with up to workers in parallel. Results are
// indexed by rule.
func SurveyAll(edges EdgeHandling, initial Cells, steps, workers int) []SurveyResult {
	if workers <= 0 {
		workers = 1
	}
	results := make([]SurveyResult, 256)
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for r := range results {
		wg.Add(1)
		sem <- struct{}{}
		go func(rule Rule) {
			defer wg.Done()
			results[rule] = Survey(rule, edges, initial, steps)
			<-sem
		}(Rule(r))
	}
	wg.Wait()
	return results
}
