package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepPacing(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := newFixedStep(10, clock.now)

	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	clock.advance(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped after half a period")
	}
	clock.advance(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step after a full period")
	}
}

func TestFixedStepCapsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := newFixedStep(10, clock.now)
	fs.ShouldStep()

	clock.advance(5 * time.Second)
	steps := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 2 {
		t.Fatalf("got %d steps after a long stall, expected 2", steps)
	}
}

func TestFixedStepReset(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := newFixedStep(1, clock.now)
	fs.ShouldStep()
	clock.advance(100 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped early")
	}
	fs.Reset()
	if !fs.ShouldStep() {
		t.Fatal("Reset should allow an immediate step")
	}
}
