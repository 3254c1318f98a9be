package game

import (
	"log"

	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/engine/fsm"
)

// RegisterFSMComponents binds the action and guard names used by the screen graph
func RegisterFSMComponents(m *fsm.Machine[*engine.World]) {
	m.RegisterAction("SetGameState", actionSetGameState)
	m.RegisterAction("EmitEvent", actionEmitEvent)
	m.RegisterGuard("PlayerDefeated", guardPlayerDefeated)
}

func actionSetGameState(w *engine.World, args any) {
	a, ok := args.(*fsm.SetStateArgs)
	if !ok {
		return
	}
	st, ok := core.ParseGameState(a.State)
	if !ok {
		log.Printf("[fsm] unknown game state %q", a.State)
		return
	}
	w.Resources.Game.Current = st
}

func actionEmitEvent(w *engine.World, args any) {
	a, ok := args.(*fsm.EmitEventArgs)
	if !ok {
		return
	}
	w.PushEvent(a.Type, a.Payload)
}

// guardPlayerDefeated holds when the player is gone or out of hit points
func guardPlayerDefeated(w *engine.World) bool {
	players := w.Components.Player.GetAllEntities()
	if len(players) == 0 {
		return true
	}
	p, ok := w.Components.Player.GetComponent(players[0])
	return !ok || p.HitPoints <= 0
}
