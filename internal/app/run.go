package app

import (
	"slices"
	"time"

	"eca/internal/sims/elementary"
)

// Display shows one generation per call, each on a new line.
type Display interface {
	ShowGeneration(c elementary.Cells) error
}

// Input reports user input to the run loop.
type Input interface {
	// Poll waits up to timeout for an input event and consumes it. A zero
	// timeout never blocks.
	Poll(timeout time.Duration) (bool, error)
	// WaitKey blocks until a key is pressed.
	WaitKey() error
}

// Outcome is how a run ended.
type Outcome int

const (
	// Completed means every configured generation was shown.
	Completed Outcome = iota
	// Cancelled means input arrived before the last generation.
	Cancelled
)

func (o Outcome) String() string {
	if o == Cancelled {
		return "cancelled"
	}
	return "completed"
}

// Result summarizes a finished run.
type Result struct {
	Outcome     Outcome
	Generations int
}

// Run shows s.Generations generations starting at initial. Input observed
// while waiting s.Delay between generations cancels the run. Either way Run
// then waits for a key press before returning. Errors from d or in end the
// run immediately and are returned as is.
func Run(initial elementary.Cells, s elementary.Settings, d Display, in Input) (Result, error) {
	// front holds the current generation; back receives the next one.
	front := slices.Clone(initial)
	back := make(elementary.Cells, len(initial))

	var res Result
	for res.Generations < s.Generations {
		if err := d.ShowGeneration(front); err != nil {
			return res, err
		}
		res.Generations++

		front, back = elementary.Step(front, back, s)

		pending, err := in.Poll(s.Delay)
		if err != nil {
			return res, err
		}
		if pending {
			res.Outcome = Cancelled
			break
		}
	}

	if err := in.WaitKey(); err != nil {
		return res, err
	}
	return res, nil
}
