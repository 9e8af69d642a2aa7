package audio

import (
	"github.com/lixenwraith/rocket-range/engine"
	"github.com/lixenwraith/rocket-range/events"
)

// Player plays one-shot effects
type Player interface {
	Play(st SoundType)
}

// EventSounds maps scene events to effects
type EventSounds struct {
	player Player
}

// NewEventSounds creates the scene event handler for p
func NewEventSounds(p Player) *EventSounds {
	return &EventSounds{player: p}
}

// HandleEvent plays the effect bound to the event
func (h *EventSounds) HandleEvent(_ *engine.LiveView, ev events.SceneEvent) {
	switch ev.Type {
	case events.EventLaunched:
		h.player.Play(SoundLaunch)
	case events.EventCrash:
		h.player.Play(SoundCrash)
	case events.EventCollision:
		h.player.Play(SoundCollision)
	case events.EventRemoved:
		h.player.Play(SoundGrab)
	}
}

// EventTypes returns the sound-bearing events
func (h *EventSounds) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventLaunched,
		events.EventCrash,
		events.EventCollision,
		events.EventRemoved,
	}
}
