package core

import (
	"testing"
	"time"
)

func fakeClock(start time.Time) (*time.Time, func() time.Time) {
	now := start
	return &now, func() time.Time { return now }
}

func TestFixedIntervalFiresOncePerInterval(t *testing.T) {
	now, clock := fakeClock(time.Unix(1000, 0))
	fs := NewFixedInterval(20 * time.Millisecond)
	fs.now = clock

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time passed, should not step")
	}
	*now = now.Add(10 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half an interval passed, should not step")
	}
	*now = now.Add(10 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("full interval passed, should step")
	}
}

func TestFixedIntervalZeroAlwaysSteps(t *testing.T) {
	_, clock := fakeClock(time.Unix(0, 0))
	fs := NewFixedInterval(0)
	fs.now = clock
	for i := 0; i < 3; i++ {
		if !fs.ShouldStep() {
			t.Fatalf("call %d: zero interval should always step", i)
		}
	}
}

func TestSetInterval(t *testing.T) {
	fs := NewFixedInterval(time.Second)
	fs.SetInterval(-time.Second)
	if fs.Interval() != 0 {
		t.Fatalf("negative interval = %v, want 0", fs.Interval())
	}
	fs.SetTPS(50)
	if fs.Interval() != 20*time.Millisecond {
		t.Fatalf("50 TPS interval = %v, want 20ms", fs.Interval())
	}
	if got := NewFixedStep(0).Interval(); got != time.Second/60 {
		t.Fatalf("default TPS interval = %v", got)
	}
}
