package system

import (
	"testing"
	"time"
)

func TestHideDrainsEnergy(t *testing.T) {
	w, f, player := newGameWorld(time.Second)
	sys := NewPlayerSystem(w, f)
	w.Resources.Input.Move(0, -200)

	w.Resources.Input.Press()
	sys.Update()

	h, _ := w.Components.Hidden.GetComponent(player)
	if !h.Hidden {
		t.Fatal("Expected player hidden while button held")
	}
	if h.Energy != 70 {
		t.Errorf("Expected energy 70 after 1s hidden, got %.1f", h.Energy)
	}
	if w.Components.Hitbox.HasEntity(player) {
		t.Error("Expected hitbox removed while hidden")
	}

	w.Resources.Input.Release()
	sys.Update()

	h, _ = w.Components.Hidden.GetComponent(player)
	if h.Hidden {
		t.Error("Expected player visible after release")
	}
	if h.Energy != 74 {
		t.Errorf("Expected energy 74 after 1s regen, got %.1f", h.Energy)
	}
	if !w.Components.Hitbox.HasEntity(player) {
		t.Error("Expected hitbox restored")
	}
}

func TestHideEndsWhenEnergyRunsOut(t *testing.T) {
	w, f, player := newGameWorld(time.Second)
	sys := NewPlayerSystem(w, f)
	w.Resources.Input.Move(0, -200)

	h, _ := w.Components.Hidden.GetComponent(player)
	h.Energy = 20
	w.Components.Hidden.SetComponent(player, h)

	w.Resources.Input.Press()
	sys.Update()

	h, _ = w.Components.Hidden.GetComponent(player)
	if h.Energy != 0 {
		t.Errorf("Expected energy clamped at 0, got %.1f", h.Energy)
	}
	if h.Hidden {
		t.Error("Expected player visible with no energy")
	}
}

func TestGraceExpires(t *testing.T) {
	w, f, player := newGameWorld(time.Second)
	sys := NewPlayerSystem(w, f)
	w.Resources.Input.Move(0, -200)

	h, _ := w.Components.Hidden.GetComponent(player)
	h.Hit, h.Hidden, h.HitEnergy = true, true, 100
	w.Components.Hidden.SetComponent(player, h)

	for i := 0; i < 3; i++ {
		sys.Update()
	}
	h, _ = w.Components.Hidden.GetComponent(player)
	if !h.Hit || !h.Hidden {
		t.Fatalf("Expected grace after 3s, got %+v", h)
	}

	sys.Update()
	h, _ = w.Components.Hidden.GetComponent(player)
	if h.Hit || h.Hidden {
		t.Errorf("Expected grace over after 4s, got %+v", h)
	}
	if !w.Components.Hitbox.HasEntity(player) {
		t.Error("Expected hitbox back after grace")
	}
}

func TestSteeringClampsToViewport(t *testing.T) {
	w, f, player := newGameWorld(time.Second)
	sys := NewPlayerSystem(w, f)

	w.Resources.Input.Move(5000, 0)
	sys.Update()

	pos, _ := w.Components.Position.GetComponent(player)
	if pos.X != w.Resources.Config.HalfWidth() {
		t.Errorf("Expected x clamped to %.0f, got %.1f", w.Resources.Config.HalfWidth(), pos.X)
	}
}

func TestHoldingWithoutFreshPressDoesNotHide(t *testing.T) {
	w, f, player := newGameWorld(time.Second)
	sys := NewPlayerSystem(w, f)
	w.Resources.Input.Move(0, -200)

	w.Resources.Input.Press()
	w.Resources.Input.EndFrame()
	sys.Update()

	h, _ := w.Components.Hidden.GetComponent(player)
	if h.Hidden {
		t.Error("Expected a held button without a press edge to leave the player visible")
	}
}

func TestGraceFreezesEnergy(t *testing.T) {
	w, f, player := newGameWorld(time.Second)
	sys := NewPlayerSystem(w, f)
	w.Resources.Input.Move(0, -200)

	h, _ := w.Components.Hidden.GetComponent(player)
	h.Energy = 50
	h.Hit, h.Hidden, h.HitEnergy = true, true, 100
	w.Components.Hidden.SetComponent(player, h)

	w.Resources.Input.Press()
	w.Resources.Input.EndFrame()
	for i := 0; i < 4; i++ {
		sys.Update()
	}

	h, _ = w.Components.Hidden.GetComponent(player)
	if h.Hit {
		t.Fatal("Expected grace over after 4s")
	}
	if h.Energy != 50 {
		t.Errorf("Expected energy frozen at 50 through grace, got %.1f", h.Energy)
	}
	if !h.Hidden {
		t.Error("Expected a player holding through the grace to stay hidden")
	}
	if !w.Resources.Status.Bools.Get("player.hidden").Load() {
		t.Error("Expected player.hidden status true")
	}

	w.Resources.Input.Release()
	sys.Update()
	if w.Resources.Status.Bools.Get("player.hidden").Load() {
		t.Error("Expected player.hidden status false after release")
	}
}
