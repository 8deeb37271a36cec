package core

import "time"

// FixedStep paces simulation updates at a steady interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return NewFixedInterval(time.Second / time.Duration(tps))
}

// NewFixedInterval constructs a FixedStep that fires once per interval. A
// zero interval fires on every call to ShouldStep.
func NewFixedInterval(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// SetInterval changes the time between ticks.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	f.step = interval
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// Interval reports the configured time between ticks.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
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
