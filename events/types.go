package events

import (
	"time"
)

// EventType represents the type of scene event
type EventType int

const (
	// EventPageStart marks the beginning of a page run
	// Trigger: host before running a page script | Payload: *PagePayload
	EventPageStart EventType = iota

	// EventObjectAdded signals a stationary sprite placed in the scene
	// Trigger: Scene.Add | Payload: *ObjectPayload
	EventObjectAdded

	// EventLaunched signals a moving sprite starting its climb
	// Trigger: Scene.AddMoving | Payload: *LaunchPayload
	EventLaunched

	// EventCrash signals the full-screen crash flash beginning
	// Trigger: crash effect after its delay | Payload: *EffectPayload
	EventCrash

	// EventCollision signals a missile burst beginning
	// Trigger: collision effect after its delay | Payload: *EffectPayload
	EventCollision

	// EventDisappear signals a destroyed object starting to fade
	// Trigger: Scene.Disappear hold elapsed | Payload: *ObjectPayload
	EventDisappear

	// EventRemoved signals a grabbed object starting to fly off
	// Trigger: Scene.Remove hold elapsed | Payload: *ObjectPayload
	EventRemoved

	// EventIdle signals the pending counter returning to zero
	// Trigger: Barrier drain | Payload: nil
	EventIdle

	// EventPageDone marks the end of a page run
	// Trigger: host once the page is idle | Payload: *PagePayload
	EventPageDone

	eventTypeCount
)

// SceneEvent represents a single scene event with metadata
type SceneEvent struct {
	Type    EventType
	Payload any
	// At is scene time, not wall time
	At time.Duration
}
