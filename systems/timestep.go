package systems

import (
	"time"
)

// FixedStep runs simulation updates at a fixed rate, independent of how often
// the host calls it.
//
// Elapsed time is accumulated as nanoseconds multiplied by the rate, and one
// step consumes a full second of that. Keeping the accumulator in integers means
// the number of steps over any interval is exactly floor(elapsed * rate), no
// matter how the interval is split between calls.
// Ebitengine's own TPS scheduling caps catch-up updates per frame, which would
// drop steps after a stall, so the game runs at SyncWithFPS and steps here.
type FixedStep struct {
	rate        int64
	dt          float64
	accumulator int64
	last        time.Time
	clock       func() time.Time
}

// NewFixedStep creates a driver producing rate steps per second of wall-clock time
func NewFixedStep(rate int) *FixedStep {
	return newFixedStepWithClock(rate, time.Now)
}

func newFixedStepWithClock(rate int, clock func() time.Time) *FixedStep {
	if rate <= 0 {
		rate = 1
	}
	return &FixedStep{
		rate:  int64(rate),
		dt:    1.0 / float64(rate),
		last:  clock(),
		clock: clock,
	}
}

// Advance calls step once for each whole step that fits into the time elapsed
// since the previous call. It returns how many steps ran. If step fails the
// remaining steps are skipped and the error is returned.
func (f *FixedStep) Advance(step func(dt float64) error) (int, error) {
	now := f.clock()
	elapsed := now.Sub(f.last)
	f.last = now
	if elapsed > 0 {
		f.accumulator += int64(elapsed) * f.rate
	}

	steps := 0
	for f.accumulator >= int64(time.Second) {
		f.accumulator -= int64(time.Second)
		steps++
		if err := step(f.dt); err != nil {
			return steps, err
		}
	}
	return steps, nil
}

