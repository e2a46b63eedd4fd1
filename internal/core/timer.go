package core

import "time"

// FixedStep gates simulation advances to a steady generations-per-second
// rate, independent of how often the host loop runs.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting fps generations
// per second. The first call to ShouldStep fires immediately.
func NewFixedStep(fps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetFPS(fps)
	fs.accumulator = fs.step
	return fs
}

// MaxFPS is the highest rate a FixedStep accepts: one step per nanosecond.
const MaxFPS = int(time.Second)

// SetFPS changes the rate, clamped to [1, MaxFPS]. It is safe to call from
// the main loop.
func (f *FixedStep) SetFPS(fps int) {
	fps = min(max(fps, 1), MaxFPS)
	f.step = time.Second / time.Duration(fps)
}

// FPS returns the configured rate.
func (f *FixedStep) FPS() int { return int(time.Second / f.step) }

// Interval is the time between two advances, 1/fps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset drops accumulated time so the next step waits a full interval. Call
// it when resuming from pause so the paused time is not replayed.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

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
		// At most one step stays queued after a stall.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
