package core

import (
	"testing"
	"time"
)

func TestFixedStepPacesByInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	clock = clock.Add(40 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before the interval elapsed")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step once the interval elapsed")
	}
	if fs.ShouldStep() {
		t.Fatal("stepped twice for one interval")
	}
}

func TestFixedStepZeroIntervalAlwaysSteps(t *testing.T) {
	fs := NewFixedStep(0)
	for i := 0; i < 5; i++ {
		if !fs.ShouldStep() {
			t.Fatalf("call %d did not step with a zero interval", i)
		}
	}
}
