package events

import (
	"fmt"
	"strings"
)

var typeNames = [eventTypeCount]string{
	EventPageStart:   "page_start",
	EventObjectAdded: "object_added",
	EventLaunched:    "launched",
	EventCrash:       "crash",
	EventCollision:   "collision",
	EventDisappear:   "disappear",
	EventRemoved:     "removed",
	EventIdle:        "idle",
	EventPageDone:    "page_done",
}

// AllTypes returns every event type in declaration order
func AllTypes() []EventType {
	out := make([]EventType, 0, eventTypeCount)
	for t := EventType(0); t < eventTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

// Valid reports whether t is a declared event type
func (t EventType) Valid() bool { return t >= 0 && t < eventTypeCount }

// String returns the wire name of the event type
func (t EventType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("event(%d)", int(t))
	}
	return typeNames[t]
}

// ParseEventType resolves a wire name
func ParseEventType(name string) (EventType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == name {
			return EventType(t), nil
		}
	}
	return 0, fmt.Errorf("unknown event type %q", name)
}

// MarshalText encodes the type by wire name
func (t EventType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid event type %d", int(t))
	}
	return []byte(typeNames[t]), nil
}

// UnmarshalText decodes a wire name
func (t *EventType) UnmarshalText(b []byte) error {
	parsed, err := ParseEventType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
