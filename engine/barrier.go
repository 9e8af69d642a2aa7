package engine

// Barrier counts outstanding scene transitions. When the count returns to
// zero the queued continuation runs exactly once and is cleared.
// Not safe for concurrent use; hosts drive it from the loop goroutine.
type Barrier struct {
	pending int
	next    func()
	onIdle  func()
	onCount func(pending int)
}

// Begin registers one outstanding transition
func (b *Barrier) Begin() {
	b.pending++
	b.notify()
}

// End completes one transition, firing the continuation on drain
func (b *Barrier) End() {
	if b.pending == 0 {
		panic("barrier: End without matching Begin")
	}
	b.pending--
	b.notify()
	if b.pending > 0 {
		return
	}
	b.drain()
}

// RunWhenIdle queues fn as the single continuation, replacing any earlier
// one. If nothing is outstanding fn runs immediately.
func (b *Barrier) RunWhenIdle(fn func()) {
	if fn == nil {
		b.next = nil
		return
	}
	b.next = fn
	if b.pending == 0 {
		b.drain()
	}
}

// Pending returns the number of outstanding transitions
func (b *Barrier) Pending() int { return b.pending }

// Idle reports whether nothing is outstanding
func (b *Barrier) Idle() bool { return b.pending == 0 }

// Queued reports whether a continuation is waiting
func (b *Barrier) Queued() bool { return b.next != nil }

// SetIdleHook installs fn to run whenever the barrier settles at zero
func (b *Barrier) SetIdleHook(fn func()) { b.onIdle = fn }

// SetCountHook installs fn to observe every counter change
func (b *Barrier) SetCountHook(fn func(pending int)) { b.onCount = fn }

// drain clears the continuation before invoking it so it may queue a successor
func (b *Barrier) drain() {
	if next := b.next; next != nil {
		b.next = nil
		next()
	}
	if b.pending == 0 && b.onIdle != nil {
		b.onIdle()
	}
}

func (b *Barrier) notify() {
	if b.onCount != nil {
		b.onCount(b.pending)
	}
}
