package core

import (
	"context"
	"time"
)

// FixedStep paces generation advances at a steady ticks-per-second rate.
type FixedStep struct {
	step time.Duration
	last time.Time
	now  func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// A non-positive TPS disables pacing.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		f.step = 0
		return
	}
	f.step = time.Second / time.Duration(tps)
}

// Step reports the configured tick duration.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether a full tick has elapsed since the last one.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.step == 0 || f.last.IsZero() || now.Sub(f.last) >= f.step {
		f.last = now
		return true
	}
	return false
}

// Wait blocks until the next tick is due or ctx is done.
func (f *FixedStep) Wait(ctx context.Context) error {
	if f.step == 0 || f.last.IsZero() {
		f.last = f.now()
		return ctx.Err()
	}
	remaining := f.step - f.now().Sub(f.last)
	if remaining > 0 {
		t := time.NewTimer(remaining)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	f.last = f.now()
	return nil
}
