package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/skyfall/component"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/spawn"
)

func TestCollisionStartOnlyOnce(t *testing.T) {
	w, f, player := newGameWorld(33 * time.Millisecond)
	sys := NewCollisionSystem(w)

	enemy := f.Spawn(spawn.KindBasic, spawn.VariantEgg, spawn.DirAny, 0, -200)

	sys.Update()
	starts := drain(w, event.EventCollisionStart)
	if len(starts) != 1 {
		t.Fatalf("Expected 1 collision start, got %d", len(starts))
	}
	p := starts[0].Payload.(*event.CollisionPayload)
	if !(p.A == player && p.B == enemy) && !(p.A == enemy && p.B == player) {
		t.Errorf("Expected player/enemy pair, got %v/%v", p.A, p.B)
	}

	sys.Update()
	if n := len(drain(w, event.EventCollisionStart)); n != 0 {
		t.Errorf("Expected no repeat while overlapping, got %d", n)
	}

	// Separate then touch again
	w.Components.Position.SetComponent(enemy, component.PositionComponent{X: 0, Y: 300})
	sys.Update()
	w.Components.Position.SetComponent(enemy, component.PositionComponent{X: 0, Y: -200})
	sys.Update()
	if n := len(drain(w, event.EventCollisionStart)); n != 1 {
		t.Errorf("Expected new contact after separation, got %d", n)
	}
}

func TestHiddenPlayerHasNoContacts(t *testing.T) {
	w, f, player := newGameWorld(33 * time.Millisecond)
	sys := NewCollisionSystem(w)

	f.Spawn(spawn.KindBasic, spawn.VariantEgg, spawn.DirAny, 0, -200)
	w.Components.Hitbox.RemoveEntity(player)

	sys.Update()
	if n := len(drain(w, event.EventCollisionStart)); n != 0 {
		t.Errorf("Expected no contacts for hidden player, got %d", n)
	}
}

func TestHoleHasNoContact(t *testing.T) {
	w, f, _ := newGameWorld(33 * time.Millisecond)
	sys := NewCollisionSystem(w)

	f.Spawn(spawn.KindHole, spawn.VariantAny, spawn.DirAny, 0, -200)
	sys.Update()
	if n := len(drain(w, event.EventCollisionStart)); n != 0 {
		t.Errorf("Expected holes to be collision-transparent, got %d contacts", n)
	}
}
