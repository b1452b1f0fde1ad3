// Package elementary implements one-dimensional, two-state cellular automata
// addressed by their Wolfram code.
package elementary

import (
	"slices"

	"eca/internal/core"
)

// Automaton keeps a scrolling history of generations for frame-driven
// frontends. The newest generation is the lowest filled row; once every row
// is used the history scrolls upward.
type Automaton struct {
	settings    Settings
	initial     Cells
	front, back Cells
	history     *core.ByteGrid
	rows        int
	shown       int
}

// New creates an automaton with height rows of history that starts from
// initial.
func New(initial Cells, s Settings, height int) *Automaton {
	a := &Automaton{
		settings: s,
		initial:  slices.Clone(initial),
		front:    make(Cells, len(initial)),
		back:     make(Cells, len(initial)),
		history:  core.NewByteGrid(len(initial), height),
	}
	a.Reset(0)
	return a
}

// Name returns the simulation identifier.
func (a *Automaton) Name() string { return "elementary" }

// Size returns the history dimensions.
func (a *Automaton) Size() core.Size { return core.Size{W: a.history.W, H: a.history.H} }

// Cells exposes the history buffer, one byte per cell.
func (a *Automaton) Cells() []uint8 { return a.history.Cells() }

// Front returns the newest generation.
func (a *Automaton) Front() Cells { return a.front }

// Settings returns the settings the automaton runs with.
func (a *Automaton) Settings() Settings { return a.settings }

// Parameters describes the settings the automaton runs with.
func (a *Automaton) Parameters() core.ParameterSnapshot { return a.settings.Parameters() }

// Shown returns how many generations have been pushed into the history.
func (a *Automaton) Shown() int { return a.shown }

// Done reports whether the configured number of generations has been shown.
func (a *Automaton) Done() bool { return a.shown >= a.settings.Generations }

// Reset clears the history and restarts from the initial configuration, or
// from a random one of the same width when seed is non-zero.
func (a *Automaton) Reset(seed int64) {
	if seed != 0 {
		rng := core.NewRNG(seed)
		for i := range a.front {
			a.front[i] = rng.Bool()
		}
	} else {
		copy(a.front, a.initial)
	}
	a.history.Clear()
	a.rows = 0
	a.shown = 0
	if !a.Done() {
		a.push(a.front)
	}
}

// Step computes the next generation and appends it to the history. It does
// nothing once Done reports true.
func (a *Automaton) Step() {
	if a.Done() {
		return
	}
	a.front, a.back = Step(a.front, a.back, a.settings)
	a.push(a.front)
}

func (a *Automaton) push(c Cells) {
	if a.rows == a.history.H {
		a.history.ScrollUp()
		a.rows--
	}
	row := a.history.Row(a.rows)
	for i, v := range c {
		row[i] = bit(v)
	}
	a.rows++
	a.shown++
}
