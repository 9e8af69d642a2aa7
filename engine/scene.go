package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/rocket-range/catalog"
	"github.com/lixenwraith/rocket-range/constants"
	"github.com/lixenwraith/rocket-range/events"
	"github.com/lixenwraith/rocket-range/physics"
)

// Scene owns the nodes of the live view and schedules their transitions.
// Every transition begins on the barrier when scheduled and ends on it when
// its sequence completes.
type Scene struct {
	nodes      []*Node
	stationary map[catalog.Object]*Node
	animator   *Animator
	barrier    *Barrier
	queue      *events.EventQueue
	nextID     int
}

// NewScene creates an empty scene
func NewScene(barrier *Barrier, queue *events.EventQueue) *Scene {
	return &Scene{
		stationary: make(map[catalog.Object]*Node),
		animator:   NewAnimator(),
		barrier:    barrier,
		queue:      queue,
	}
}

// Add places a stationary sprite. A positive expiring holds it that long
// and then fades it out over one second.
func (s *Scene) Add(o catalog.Object, alive bool, position, altitude float64, expiring time.Duration) *Node {
	n := s.spawn(Node{
		Kind:   NodeSprite,
		Object: o,
		X:      position,
		Y:      altitude,
		Alpha:  1.0,
		Size:   o.Size() / constants.SpriteScale,
		Dimmed: !alive,
	})
	s.stationary[o] = n

	if expiring > 0 {
		s.run(n, FadeTo(1.0, expiring), FadeTo(0.0, constants.FadeOutDuration))
	}

	s.emit(events.EventObjectAdded, &events.ObjectPayload{
		Object:   o,
		Position: position,
		Altitude: altitude,
		Alive:    alive,
	})
	return n
}

// AddMoving places a sprite at from and moves it to to. Launch sprites are
// drawn below their logical altitude.
func (s *Scene) AddMoving(o catalog.Object, position, from, to float64, expiring time.Duration, shield bool) *Node {
	var offset float64
	if o == catalog.RocketLaunch {
		offset = constants.LaunchSpriteOffset
	}

	n := s.spawn(Node{
		Kind:   NodeSprite,
		Object: o,
		X:      position,
		Y:      from,
		Offset: offset,
		Alpha:  1.0,
		Size:   o.Size() / constants.SpriteScale,
		Shield: shield && o == catalog.RocketShield,
	})

	distance := to - from
	s.run(n, MoveBy(distance, physics.AnimationDuration(distance)))
	if expiring > 0 {
		s.run(n, FadeTo(1.0, expiring), FadeTo(0.0, constants.FadeOutDuration))
	}

	s.emit(events.EventLaunched, &events.LaunchPayload{
		Object:   o,
		Position: position,
		From:     from,
		To:       to,
		Shield:   n.Shield,
	})
	return n
}

// Disappear holds a stationary object for its altitude's travel time, then
// fades it out. Panics if the object is not in the scene.
func (s *Scene) Disappear(o catalog.Object) {
	n := s.take(o)
	payload := &events.ObjectPayload{Object: o, Position: n.X, Altitude: n.Y, Alive: !n.Dimmed}
	s.run(n,
		FadeTo(1.0, physics.AnimationDuration(o.Altitude())),
		Run(func() { s.emit(events.EventDisappear, payload) }),
		FadeTo(0.0, constants.FadeOutDuration),
	)
}

// Remove holds a stationary object, then flies it upward off the view.
// Debris lifts from above its catalog altitude. Panics if the object is
// not in the scene.
func (s *Scene) Remove(o catalog.Object) {
	n := s.take(o)
	altitude := o.Altitude()
	if o == catalog.Debris {
		altitude *= constants.DebrisLiftScale
	}
	distance := 1.0 - altitude
	payload := &events.ObjectPayload{Object: o, Position: n.X, Altitude: n.Y, Alive: !n.Dimmed}
	s.run(n,
		FadeTo(1.0, physics.AnimationDuration(altitude)),
		Run(func() { s.emit(events.EventRemoved, payload) }),
		MoveBy(distance, physics.AnimationDuration(distance)),
	)
}

// Crash fades a full-view flash in over one second after delay
func (s *Scene) Crash(delay time.Duration) {
	n := s.spawn(Node{
		Kind:  NodeCrash,
		X:     0.5,
		Y:     0.0,
		Alpha: 0.0,
		Size:  constants.LiveViewSize,
	})
	s.run(n,
		FadeTo(0.0, delay),
		Run(func() { s.emit(events.EventCrash, &events.EffectPayload{Position: 0.5, Altitude: 0.5}) }),
		FadeTo(1.0, constants.CrashFadeIn),
	)
}

// Collision flashes a burst at the given point after delay
func (s *Scene) Collision(position, altitude float64, delay time.Duration) {
	n := s.spawn(Node{
		Kind:  NodeCollision,
		X:     position,
		Y:     altitude,
		Alpha: 0.0,
		Size:  constants.CollisionBurstSize,
	})
	s.run(n,
		FadeTo(0.0, delay),
		Run(func() { s.emit(events.EventCollision, &events.EffectPayload{Position: position, Altitude: altitude}) }),
		FadeTo(1.0, constants.CollisionFadeIn),
		FadeTo(0.0, constants.CollisionFadeOut),
	)
}

// Advance steps every running transition by dt
func (s *Scene) Advance(dt time.Duration) {
	s.animator.Advance(dt)
}

// Elapsed returns the scene time advanced so far
func (s *Scene) Elapsed() time.Duration {
	return s.animator.Elapsed()
}

// Busy reports whether any transition is still running
func (s *Scene) Busy() bool {
	return s.animator.Busy()
}

// Nodes returns a snapshot of every node in draw order
func (s *Scene) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	for i, n := range s.nodes {
		out[i] = *n
	}
	return out
}

// Node returns the stationary node registered for o
func (s *Scene) Node(o catalog.Object) (Node, bool) {
	n, ok := s.stationary[o]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

func (s *Scene) spawn(n Node) *Node {
	s.nextID++
	n.ID = s.nextID
	node := &n
	s.nodes = append(s.nodes, node)
	return node
}

// take unregisters a stationary node; a missing node is an invariant violation
func (s *Scene) take(o catalog.Object) *Node {
	n, ok := s.stationary[o]
	if !ok {
		panic(fmt.Sprintf("collided with a non-existent sprite node (%s)", o))
	}
	delete(s.stationary, o)
	return n
}

func (s *Scene) run(n *Node, actions ...Action) {
	s.barrier.Begin()
	s.animator.Run(n, actions, s.barrier.End)
}

func (s *Scene) emit(t events.EventType, payload any) {
	if s.queue == nil {
		return
	}
	s.queue.Push(events.SceneEvent{Type: t, Payload: payload, At: s.animator.Elapsed()})
}
