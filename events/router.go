package events

// Handler reacts to scene events routed with context T
type Handler[T any] interface {
	// HandleEvent runs on the host goroutine while events are dispatched
	HandleEvent(ctx T, event SceneEvent)

	// EventTypes lists the events this handler wants
	EventTypes() []EventType
}

// HandlerFunc adapts a function to Handler for a fixed set of types
type HandlerFunc[T any] struct {
	Types []EventType
	Fn    func(ctx T, event SceneEvent)
}

func (f HandlerFunc[T]) HandleEvent(ctx T, event SceneEvent) { f.Fn(ctx, event) }

func (f HandlerFunc[T]) EventTypes() []EventType { return f.Types }

// Router drains a queue and fans each event out to its handlers.
// Dispatch is single-threaded; handlers of one type run in registration order.
type Router[T any] struct {
	byType     [eventTypeCount][]Handler[T]
	queue      *EventQueue
	dispatched uint64
}

// NewRouter creates a router draining queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{queue: queue}
}

// Register subscribes handler to each type it lists. Unknown types are ignored
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		if !t.Valid() {
			continue
		}
		r.byType[t] = append(r.byType[t], handler)
	}
}

// DispatchAll drains the queue, routes every event and returns them in push order
func (r *Router[T]) DispatchAll(ctx T) []SceneEvent {
	batch := r.queue.Consume()
	for _, ev := range batch {
		if !ev.Type.Valid() {
			continue
		}
		for _, h := range r.byType[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
	r.dispatched += uint64(len(batch))
	return batch
}

// HandlerCount returns how many handlers receive t
func (r *Router[T]) HandlerCount(t EventType) int {
	if !t.Valid() {
		return 0
	}
	return len(r.byType[t])
}

// Dispatched returns the total number of events routed so far
func (r *Router[T]) Dispatched() uint64 {
	return r.dispatched
}
