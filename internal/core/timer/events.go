package timer

import "time"

// EventType defines the type of Timer event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventComplete    EventType = "complete"
)

// Event represents a Timer update for observers.
type Event struct {
	Type  EventType
	State State
	At    time.Time
}
