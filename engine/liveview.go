package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/rocket-range/catalog"
	"github.com/lixenwraith/rocket-range/components"
	"github.com/lixenwraith/rocket-range/constants"
	"github.com/lixenwraith/rocket-range/events"
	"github.com/lixenwraith/rocket-range/logging"
	"github.com/lixenwraith/rocket-range/narration"
	"github.com/lixenwraith/rocket-range/physics"
)

// TrackOptions adjusts how a moving entity is sequenced
type TrackOptions struct {
	// Ignoring is skipped when looking for the nearest obstruction
	Ignoring []catalog.Object
	// Target makes a missile collide with this object regardless of the path
	Target *catalog.Object
	// To overrides a missile's terminal altitude
	To *float64
	// Shield draws the aura on a shielded rocket
	Shield bool
}

// Flight describes what Track scheduled
type Flight struct {
	Altitude    float64 // terminal altitude of the sprite
	Obstruction *catalog.Object
	Lifetime    time.Duration // zero when the sprite does not expire
	Crashed     bool
	Static      bool
}

// LiveView is the scene facade the pages talk to: it remembers which
// catalog objects were added, answers obstruction queries over them, turns
// entity state into scheduled transitions, and gates follow-up actions on
// the pending counter.
type LiveView struct {
	Events *events.EventQueue

	scene    *Scene
	barrier  *Barrier
	router   *events.Router[*LiveView]
	objects  []catalog.Object
	excluded []catalog.Object
	narrator narration.Narrator
	log      logging.Logger
}

// NewLiveView creates an empty live view; narrator and log may be nil
func NewLiveView(narrator narration.Narrator, log logging.Logger) *LiveView {
	if narrator == nil {
		narrator = narration.Discard
	}
	if log == nil {
		log = logging.Noop()
	}

	queue := events.NewEventQueue()
	barrier := &Barrier{}
	lv := &LiveView{
		Events:   queue,
		scene:    NewScene(barrier, queue),
		barrier:  barrier,
		router:   events.NewRouter[*LiveView](queue),
		narrator: narrator,
		log:      log,
	}
	barrier.SetIdleHook(func() {
		lv.Emit(events.EventIdle, nil)
	})
	return lv
}

// Register attaches an event handler
func (lv *LiveView) Register(h events.Handler[*LiveView]) {
	lv.router.Register(h)
}

// Add places a catalog object at its catalog coordinates and makes it
// visible to obstruction queries
func (lv *LiveView) Add(o catalog.Object, alive bool) {
	lv.scene.Add(o, alive, o.Position(), o.Altitude(), 0)
	if !catalog.Contains(lv.objects, o) {
		lv.objects = append(lv.objects, o)
	}
	lv.log.Debug(context.Background(), "object added",
		logging.String("object", o.String()),
		logging.Any("alive", alive),
	)
}

// Objects returns the added catalog objects in insertion order
func (lv *LiveView) Objects() []catalog.Object {
	out := make([]catalog.Object, len(lv.objects))
	copy(out, lv.objects)
	return out
}

// Excluded returns objects logically removed from the view
func (lv *LiveView) Excluded() []catalog.Object {
	out := make([]catalog.Object, len(lv.excluded))
	copy(out, lv.excluded)
	return out
}

// ObstructionsOnPath returns the added objects above x, lowest first
func (lv *LiveView) ObstructionsOnPath(x float64) []catalog.Object {
	return physics.ObstructionsAt(lv.objects, x, lv.excluded...)
}

// ObstructionsWithObjects runs the same query over an arbitrary object set
func ObstructionsWithObjects(objects []catalog.Object, x float64) []catalog.Object {
	return physics.ObstructionsAt(objects, x)
}

// Track schedules the animation of a moving entity from the ground to its
// altitude, cutting it short at the nearest obstruction when its type
// collides with things
func (lv *LiveView) Track(k components.Kinetics, typ catalog.Object, opts TrackOptions) Flight {
	ctx := context.Background()

	if k.Altitude == 0.0 {
		lv.scene.Add(typ, true, k.Position, 0.0, 0)
		return Flight{Static: true}
	}

	obstruction := lv.nearestObstruction(k.Position, opts.Ignoring)
	if typ == catalog.Missile && opts.Target != nil {
		target := *opts.Target
		obstruction = &target
	}

	flight := Flight{Altitude: k.Altitude}
	switch typ {
	case catalog.Drone:
		flight.Lifetime = physics.AnimationDuration(flight.Altitude)
		lv.narrator.Say("Drone launched!")
	case catalog.Missile:
		lv.narrator.Say("Missile launched!")
	case catalog.RocketLaunch, catalog.RocketShield:
		lv.narrator.Say("Rocket launched!")
	}

	if obstruction != nil {
		o := *obstruction
		switch typ {
		case catalog.RocketLaunch, catalog.RocketShield:
			flight.Altitude = o.Altitude() - constants.CrashOffset
			flight.Obstruction = obstruction
			flight.Crashed = true
			flight.Lifetime = physics.AnimationDuration(flight.Altitude)
			lv.narrator.Say("Collided with %s and crashed", o)
			lv.scene.Crash(flight.Lifetime)

		case catalog.Missile:
			flight.Altitude = o.Altitude()
			if opts.To != nil {
				flight.Altitude = *opts.To
			}
			flight.Obstruction = obstruction
			flight.Lifetime = physics.AnimationDuration(flight.Altitude)
			lv.narrator.Say("Hit and removed %s", o)
			lv.scene.Collision(k.Position, flight.Altitude+constants.CollisionLift, flight.Lifetime)
			lv.exclude(o)
		}
	}

	lv.scene.AddMoving(typ, k.Position, 0.0, flight.Altitude, flight.Lifetime, opts.Shield)

	lv.log.Debug(ctx, "tracked",
		logging.String("type", typ.String()),
		logging.Float("position", k.Position),
		logging.Float("altitude", flight.Altitude),
		logging.Any("crashed", flight.Crashed),
		logging.Int("pending", lv.barrier.Pending()),
	)
	return flight
}

// Remove takes o out of the view the way cause would: missiles make it
// fade, drones haul it upward. Removing an object that is not shown panics.
func (lv *LiveView) Remove(o catalog.Object, cause catalog.Object) {
	switch cause {
	case catalog.Missile:
		lv.scene.Disappear(o)
	case catalog.Drone:
		lv.scene.Remove(o)
	default:
		lv.log.Warn(context.Background(), "remove ignored",
			logging.String("object", o.String()),
			logging.String("cause", cause.String()),
		)
		return
	}
	lv.exclude(o)
}

// QueueActions runs fn once every pending transition has completed,
// replacing any earlier continuation
func (lv *LiveView) QueueActions(fn func()) {
	lv.barrier.RunWhenIdle(fn)
}

// Pending returns the number of outstanding transitions
func (lv *LiveView) Pending() int {
	return lv.barrier.Pending()
}

// Idle reports whether nothing is left to animate or continue
func (lv *LiveView) Idle() bool {
	return lv.barrier.Idle() && !lv.barrier.Queued() && !lv.scene.Busy()
}

// Step advances the scene by dt and dispatches the events it produced
func (lv *LiveView) Step(dt time.Duration) []events.SceneEvent {
	lv.scene.Advance(dt)
	return lv.Dispatch()
}

// Dispatch routes pending events to the registered handlers
func (lv *LiveView) Dispatch() []events.SceneEvent {
	return lv.router.DispatchAll(lv)
}

// Emit pushes an event stamped with the current scene time
func (lv *LiveView) Emit(t events.EventType, payload any) {
	lv.Events.Push(events.SceneEvent{Type: t, Payload: payload, At: lv.scene.Elapsed()})
}

// Elapsed returns the scene time advanced so far
func (lv *LiveView) Elapsed() time.Duration {
	return lv.scene.Elapsed()
}

// Nodes returns a snapshot of the scene in draw order
func (lv *LiveView) Nodes() []Node {
	return lv.scene.Nodes()
}

// Scene exposes the underlying scene surface
func (lv *LiveView) Scene() *Scene {
	return lv.scene
}

// SetCountHook observes every pending counter change
func (lv *LiveView) SetCountHook(fn func(pending int)) {
	lv.barrier.SetCountHook(fn)
}

func (lv *LiveView) nearestObstruction(x float64, ignoring []catalog.Object) *catalog.Object {
	for _, o := range lv.ObstructionsOnPath(x) {
		if catalog.Contains(ignoring, o) {
			continue
		}
		return &o
	}
	return nil
}

func (lv *LiveView) exclude(o catalog.Object) {
	if !catalog.Contains(lv.excluded, o) {
		lv.excluded = append(lv.excluded, o)
	}
}
