package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/skyfall/component"
	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/spawn"
)

func collide(s *DamageSystem, a, b core.Entity) {
	s.HandleEvent(event.GameEvent{
		Type:    event.EventCollisionStart,
		Payload: &event.CollisionPayload{A: a, B: b},
	})
}

func TestEnergyPickup(t *testing.T) {
	tests := []struct {
		before, after float64
	}{
		{35, 95},
		{45, 100},
		{40, 100},
		{0, 60},
	}

	for _, tt := range tests {
		w, f, player := newGameWorld(33 * time.Millisecond)
		sys := NewDamageSystem(w, f).(*DamageSystem)

		h, _ := w.Components.Hidden.GetComponent(player)
		h.Energy = tt.before
		w.Components.Hidden.SetComponent(player, h)

		bar := f.Spawn(spawn.KindEnergyBar, spawn.VariantAny, spawn.DirAny, 0, 0)
		collide(sys, bar, player)

		h, _ = w.Components.Hidden.GetComponent(player)
		if h.Energy != tt.after {
			t.Errorf("Energy %.0f: expected %.0f after pickup, got %.0f", tt.before, tt.after, h.Energy)
		}
		if w.IsAlive(bar) {
			t.Error("Expected energy bar to be destroyed")
		}
	}
}

func TestLastHitRequestsGameOver(t *testing.T) {
	w, f, player := newGameWorld(33 * time.Millisecond)
	sys := NewDamageSystem(w, f).(*DamageSystem)

	p, _ := w.Components.Player.GetComponent(player)
	p.HitPoints = 1
	w.Components.Player.SetComponent(player, p)

	enemy := f.Spawn(spawn.KindBasic, spawn.VariantEgg, spawn.DirAny, 0, 0)
	collide(sys, player, enemy)

	p, _ = w.Components.Player.GetComponent(player)
	if p.HitPoints != 0 {
		t.Fatalf("Expected 0 hit points, got %d", p.HitPoints)
	}

	trigger, pending := w.Resources.Transition.Pending()
	if !pending || trigger != event.EventGameOver {
		t.Fatalf("Expected pending EventGameOver, got %v (pending=%v)", trigger, pending)
	}
	if got, ok := w.Resources.Transition.Advance(0); !ok || got != event.EventGameOver {
		t.Error("Expected zero-delay game over to be due immediately")
	}

	events := w.Resources.Event.Queue.Consume()
	var shake *event.ShakeRequestPayload
	var sound *event.SoundRequestPayload
	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case *event.ShakeRequestPayload:
			shake = p
		case *event.SoundRequestPayload:
			sound = p
		}
	}
	if shake == nil || shake.Count != 7 {
		t.Errorf("Expected shake request of 7, got %+v", shake)
	}
	if sound == nil || sound.Sound != core.SoundGameOver {
		t.Errorf("Expected game over sound, got %+v", sound)
	}
}

func TestGraceBlocksSecondHit(t *testing.T) {
	w, f, player := newGameWorld(33 * time.Millisecond)
	sys := NewDamageSystem(w, f).(*DamageSystem)

	first := f.Spawn(spawn.KindBasic, spawn.VariantHeart, spawn.DirAny, 0, 0)
	second := f.Spawn(spawn.KindBasic, spawn.VariantDrink, spawn.DirAny, 0, 0)

	collide(sys, player, first)
	collide(sys, second, player)

	p, _ := w.Components.Player.GetComponent(player)
	if p.HitPoints != 2 {
		t.Errorf("Expected 2 hit points after grace, got %d", p.HitPoints)
	}

	h, _ := w.Components.Hidden.GetComponent(player)
	if !h.Hit || !h.Hidden || h.HitEnergy != 100 {
		t.Errorf("Expected grace state, got %+v", h)
	}
	if w.Components.Hitbox.HasEntity(player) {
		t.Error("Expected hitbox removed during grace")
	}
	if _, pending := w.Resources.Transition.Pending(); pending {
		t.Error("Expected no game over while hit points remain")
	}
}

func TestSensorLaunchesPlane(t *testing.T) {
	w, f, player := newGameWorld(33 * time.Millisecond)
	sys := NewDamageSystem(w, f).(*DamageSystem)

	sensor := f.Spawn(spawn.KindPlane, spawn.VariantAny, spawn.DirRight, 0, 120)
	collide(sys, player, sensor)

	if w.IsAlive(sensor) {
		t.Error("Expected sensor to be destroyed")
	}

	planes := w.Components.Plane.GetAllEntities()
	if len(planes) != 1 {
		t.Fatalf("Expected 1 plane, got %d", len(planes))
	}
	pos, _ := w.Components.Position.GetComponent(planes[0])
	if pos.Y != 420 {
		t.Errorf("Expected plane y 420, got %.1f", pos.Y)
	}
	if pos.X != -420 {
		t.Errorf("Expected plane to start left of the viewport at -420, got %.1f", pos.X)
	}
	plane, _ := w.Components.Plane.GetComponent(planes[0])
	if plane.Dir != component.PlaneRight {
		t.Errorf("Expected right heading, got %d", plane.Dir)
	}
}

func TestCollisionWithoutPlayerIgnored(t *testing.T) {
	w, f, _ := newGameWorld(33 * time.Millisecond)
	sys := NewDamageSystem(w, f).(*DamageSystem)

	a := f.Spawn(spawn.KindEnergyBar, spawn.VariantAny, spawn.DirAny, 0, 0)
	b := f.Spawn(spawn.KindBasic, spawn.VariantEgg, spawn.DirAny, 0, 0)
	collide(sys, a, b)

	if !w.IsAlive(a) || !w.IsAlive(b) {
		t.Error("Expected non-player contact to change nothing")
	}
}
