package core

import (
	"context"
	"time"
)

// DefaultInterval is the time between generations when none is configured.
const DefaultInterval = 500 * time.Millisecond

// FixedStep decides when a frame-driven loop should advance the simulation so
// that generations happen once per interval regardless of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval. The first
// call to ShouldStep fires immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the step interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	f.step = interval
}

// Interval returns the configured step interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one generation.
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

// Pacer spaces blocking work at a fixed cadence. Deadlines advance by exactly
// one interval each time, so time spent between calls to Wait does not
// accumulate as drift.
type Pacer struct {
	interval time.Duration
	next     time.Time
}

// NewPacer returns a Pacer whose first deadline is one interval from now.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Pacer{interval: interval, next: time.Now().Add(interval)}
}

// Wait blocks until the next deadline or until ctx is done, in which case
// ctx.Err() is returned. A deadline that has already passed returns at once.
func (p *Pacer) Wait(ctx context.Context) error {
	d := time.Until(p.next)
	p.next = p.next.Add(p.interval)
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
