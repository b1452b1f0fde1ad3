package app

import (
	"fmt"
	"time"

	"eca/internal/core"
	"eca/internal/ui"
)

// Animation is a frame-driven simulation that stops after a fixed number of
// generations.
type Animation interface {
	core.Sim
	Done() bool
	Shown() int
	Parameters() core.ParameterSnapshot
}

// Command is the action requested by one frame of input.
type Command int

const (
	// NoCommand lets the animation advance.
	NoCommand Command = iota
	// Cancel stops a running animation, or exits a stopped one.
	Cancel
	// Restart resets the animation with the current seed.
	Restart
	// Reseed resets the animation with a fresh seed.
	Reseed
)

// Session drives an Animation one frame at a time.
type Session struct {
	sim       Animation
	pacer     *core.FixedStep
	seed      int64
	cancelled bool
	newSeed   func() int64
}

// NewSession paces sim at one generation per delay. Restart resets it with
// seed, where zero means the initial configuration.
func NewSession(sim Animation, delay time.Duration, seed int64) *Session {
	return &Session{
		sim:     sim,
		pacer:   core.NewFixedStep(delay),
		seed:    seed,
		newSeed: func() int64 { return time.Now().UnixNano() },
	}
}

// Sim returns the driven simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// Frame applies one frame of input and reports whether the frontend should
// exit.
func (s *Session) Frame(cmd Command) bool {
	switch cmd {
	case Restart:
		s.reset(s.seed)
	case Reseed:
		s.seed = s.newSeed()
		s.reset(s.seed)
	case Cancel:
		if s.Finished() {
			return true
		}
		s.cancelled = true
	default:
		if !s.Finished() && s.pacer.ShouldStep() {
			s.sim.Step()
		}
	}
	return false
}

func (s *Session) reset(seed int64) {
	s.cancelled = false
	s.sim.Reset(seed)
}

// Finished reports whether the animation was cancelled or ran to completion.
func (s *Session) Finished() bool { return s.cancelled || s.sim.Done() }

// Status describes the progress of the animation.
func (s *Session) Status() string {
	switch {
	case s.cancelled:
		return fmt.Sprintf("cancelled at %d, press any key", s.sim.Shown())
	case s.sim.Done():
		return fmt.Sprintf("completed %d, press any key", s.sim.Shown())
	default:
		return fmt.Sprintf("generation %d", s.sim.Shown())
	}
}

// Lines lays out the panel text for the current frame.
func (s *Session) Lines() []string {
	return ui.Lines(s.sim.Name(), s.sim.Parameters(), s.Status())
}
