package engine

import (
	"github.com/lixenwraith/skyfall/event"
)

// System is a unit of per-tick game logic
type System interface {
	// Init resets internal state; called once after registration and on world reset
	Init()
	// Name identifies the system in logs
	Name() string
	// Priority orders execution, lower runs first
	Priority() int
	// Update runs one tick
	Update()
}

// EventHandler processes specific event types
// Systems implement this to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event during the dispatch phase
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}


