package engine

import (
	"time"

	"github.com/lixenwraith/skyfall/event"
)

// TransitionResource holds at most one pending delayed FSM trigger
// Requests are resolved by the Scheduler once per tick after event dispatch
type TransitionResource struct {
	pending   bool
	trigger   event.EventType
	remaining time.Duration
}

// Request schedules trigger to fire after delay, replacing any other pending trigger
// Re-requesting the trigger already pending keeps the earlier deadline
func (t *TransitionResource) Request(trigger event.EventType, delay time.Duration) {
	if t.pending && t.trigger == trigger {
		return
	}
	if delay < 0 {
		delay = 0
	}
	t.pending = true
	t.trigger = trigger
	t.remaining = delay
}

// Cancel drops the pending trigger
func (t *TransitionResource) Cancel() {
	t.pending = false
	t.remaining = 0
}

// Pending returns the pending trigger and whether one exists
func (t *TransitionResource) Pending() (event.EventType, bool) {
	return t.trigger, t.pending
}

// Advance counts the pending request down by dt and returns the trigger once due
func (t *TransitionResource) Advance(dt time.Duration) (event.EventType, bool) {
	if !t.pending {
		return event.EventTick, false
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return event.EventTick, false
	}
	trigger := t.trigger
	t.Cancel()
	return trigger, true
}
