package engine

import (
	"sync/atomic"
	"time"
)

// ManualTimeProvider is a TimeProvider that only moves when told to.
// Tests drive pausable clocks and schedulers with it.
type ManualTimeProvider struct {
	base   time.Time
	offset atomic.Int64 // nanoseconds since base
}

// NewManualTimeProvider starts at start
func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{base: start}
}

// Now returns base plus every advance so far
func (m *ManualTimeProvider) Now() time.Time {
	return m.base.Add(time.Duration(m.offset.Load()))
}

// Set jumps to t
func (m *ManualTimeProvider) Set(t time.Time) {
	m.offset.Store(int64(t.Sub(m.base)))
}

// Advance moves forward by d and returns the new time
func (m *ManualTimeProvider) Advance(d time.Duration) time.Time {
	return m.base.Add(time.Duration(m.offset.Add(int64(d))))
}
