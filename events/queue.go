// @focus: #event { queue }
package events

import (
	"sync/atomic"

	"github.com/lixenwraith/rocket-range/constants"
)

// EventQueue is a fixed ring of scene events with many producers and one
// consumer. Animator callbacks, the host and the page script all push;
// only the router drains.
//
// A slot is readable once its ready flag is set, so the consumer never sees
// a half-written event. When the ring is full the oldest unread events are
// overwritten and counted in Overwritten.
type EventQueue struct {
	slots [constants.EventQueueSize]SceneEvent
	ready [constants.EventQueueSize]atomic.Bool
	read  atomic.Uint64
	write atomic.Uint64
	lost  atomic.Uint64
}

// NewEventQueue returns an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims the next write slot and publishes ev into it
func (q *EventQueue) Push(ev SceneEvent) {
	var slot uint64
	for {
		slot = q.write.Load()
		if q.write.CompareAndSwap(slot, slot+1) {
			break
		}
	}

	i := slot & constants.EventBufferMask
	q.slots[i] = ev
	q.ready[i].Store(true)

	// Drag the reader forward past anything this write clobbered
	end := slot + 1
	if r := q.read.Load(); end-r > constants.EventQueueSize {
		if q.read.CompareAndSwap(r, end-constants.EventQueueSize) {
			q.lost.Add(end - constants.EventQueueSize - r)
		}
	}
}

// Consume takes every published event in push order; nil when empty
func (q *EventQueue) Consume() []SceneEvent {
	for {
		from := q.read.Load()
		to := q.write.Load()
		if from == to {
			return nil
		}
		if to-from > constants.EventQueueSize {
			from = to - constants.EventQueueSize
		}

		batch := make([]SceneEvent, 0, to-from)
		for s := from; s < to; s++ {
			i := s & constants.EventBufferMask
			if !q.ready[i].Load() {
				// Producer still writing, pick it up next time
				break
			}
			batch = append(batch, q.slots[i])
			q.ready[i].Store(false)
		}

		if q.read.CompareAndSwap(from, from+uint64(len(batch))) {
			if len(batch) == 0 {
				return nil
			}
			return batch
		}
	}
}

// Len returns the number of unread events
func (q *EventQueue) Len() int {
	n := q.write.Load() - q.read.Load()
	if n > constants.EventQueueSize {
		n = constants.EventQueueSize
	}
	return int(n)
}

// Overwritten returns how many unread events were lost to a full ring
func (q *EventQueue) Overwritten() uint64 {
	return q.lost.Load()
}
