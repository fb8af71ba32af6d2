package core

import "time"

// FixedStep meters how many simulation advances are due each frame for a
// target ticks-per-second rate. A rate of zero means unlimited, which the
// host interprets as exactly one advance per frame.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
// Negative rates are treated as unlimited.
func (f *FixedStep) SetTPS(tps int) {
	if tps < 0 {
		tps = 0
	}
	f.tps = tps
	f.step = 0
	if tps > 0 {
		f.step = time.Second / time.Duration(tps)
	}
}

// TPS returns the configured rate.
func (f *FixedStep) TPS() int { return f.tps }

// Budget reports how many advances should run now, consuming the elapsed
// time since the previous call.
func (f *FixedStep) Budget() int {
	if f.step == 0 {
		return 1
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	return n
}
