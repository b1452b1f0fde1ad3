package core

import "time"

// FixedStep paces updates so that at most one step happens per interval.
// A zero interval allows a step on every call.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per step interval.
// The first call to ShouldStep always fires.
func NewFixedStep(step time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetStep(step)
	fs.accumulator = fs.step
	return fs
}

// SetStep changes the interval. It is safe to call from the main loop.
func (f *FixedStep) SetStep(step time.Duration) {
	if step < 0 {
		step = 0
	}
	f.step = step
}

// ShouldStep reports whether the caller should advance by one step.
func (f *FixedStep) ShouldStep() bool {
	if f.step == 0 {
		return true
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
