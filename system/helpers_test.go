package system

import (
	"time"

	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/vmath"
)

// newGameWorld returns a world already in the Game state with a player spawned
func newGameWorld(dt time.Duration) (*engine.World, *Factory, core.Entity) {
	event.InitRegistry()
	w := engine.NewWorld()
	w.Resources.Game.Current = core.StateGame
	w.Resources.Time.Update(dt, 1)
	f := NewFactory(w, vmath.NewFastRand(7))
	return w, f, f.SpawnPlayer()
}

// drain returns the pending events of the given type
func drain(w *engine.World, et event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range w.Resources.Event.Queue.Consume() {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}
