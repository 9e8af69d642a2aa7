package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// ClockScheduler drives a tick function on a fixed interval, feeding it the
// scaled scene time elapsed on a pausable clock since the previous tick.
// Drift is corrected against a running deadline.
type ClockScheduler struct {
	clock        *PausableClock
	tickInterval time.Duration
	scale        float64

	lastSceneTime    time.Duration
	nextTickDeadline time.Time
	tickCount        atomic.Uint64
}

// NewClockScheduler creates a scheduler; scale <= 0 means real time
func NewClockScheduler(clock *PausableClock, tickInterval time.Duration, scale float64) *ClockScheduler {
	if scale <= 0 {
		scale = 1.0
	}
	return &ClockScheduler{
		clock:        clock,
		tickInterval: tickInterval,
		scale:        scale,
	}
}

// Run ticks on the calling goroutine until ctx is done or tick returns false
func (cs *ClockScheduler) Run(ctx context.Context, tick func(dt time.Duration) bool) error {
	cs.lastSceneTime = cs.clock.Elapsed()
	cs.nextTickDeadline = cs.clock.RealTime().Add(cs.tickInterval)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		now := cs.clock.Elapsed()
		dt := time.Duration(float64(now-cs.lastSceneTime) * cs.scale)
		cs.lastSceneTime = now
		cs.tickCount.Add(1)

		if !tick(dt) {
			return nil
		}

		wall := cs.clock.RealTime()
		cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
		maxBehind := cs.tickInterval * 2
		if wall.Sub(cs.nextTickDeadline) > maxBehind {
			cs.nextTickDeadline = wall.Add(cs.tickInterval)
		}

		sleep := cs.nextTickDeadline.Sub(wall)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// TickCount returns the number of ticks delivered
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}
