package engine

import (
	"github.com/lixenwraith/skyfall/event"
)

// Router dispatches events to registered handlers
// Single-threaded dispatch; handlers run in registration order per event
type Router struct {
	handlers map[event.EventType][]EventHandler
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[event.EventType][]EventHandler),
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// GetHandlers returns the handlers registered for an event type
func (r *Router) GetHandlers(t event.EventType) ([]EventHandler, bool) {
	h, ok := r.handlers[t]
	return h, ok
}

// Dispatch routes a single event to all of its handlers
func (r *Router) Dispatch(ev event.GameEvent) {
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ev)
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
