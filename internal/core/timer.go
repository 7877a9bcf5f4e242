package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
// When the caller falls behind, the backlog is dropped instead of replayed so
// ticks never pile up.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	skipped     int

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
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

// Interval returns the duration of a single tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Skipped reports how many ticks were dropped because the loop fell behind.
func (f *FixedStep) Skipped() int { return f.skipped }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator >= f.step {
		f.skipped += int(f.accumulator / f.step)
		f.accumulator %= f.step
	}
	return true
}
