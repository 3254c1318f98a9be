package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/spawn"
	"github.com/lixenwraith/skyfall/vmath"
)

func TestSpawnRandomPeriod(t *testing.T) {
	w, f, _ := newGameWorld(parameter.SpawnPeriod)
	w.Resources.Session.Speed = 1
	sys := NewSpawnSystem(w, f, vmath.NewFastRand(3)).(*SpawnSystem)

	sys.Update()
	if w.Components.Enemy.CountEntities() != 0 {
		t.Fatal("Expected no spawns before the run starts")
	}

	sys.HandleEvent(event.GameEvent{Type: event.EventGameStart})
	if sys.Table() == nil || sys.Table().Len() != len(spawn.DefaultStructures()) {
		t.Fatal("Expected default table on game start")
	}

	sys.Update()
	if n := w.Components.Enemy.CountEntities(); n != 1 {
		t.Errorf("Expected 1 spawn after one period, got %d", n)
	}

	sys.HandleEvent(event.GameEvent{Type: event.EventGameExit})
	if sys.Table() != nil {
		t.Error("Expected table dropped on exit")
	}
}

func TestSpawnSequenceFirst(t *testing.T) {
	w, f, _ := newGameWorld(100 * time.Millisecond)
	w.Resources.Session.Speed = 1

	seq := spawn.Structure{
		Name: "intro",
		Offsets: []spawn.Offset{
			{Kind: spawn.KindPlanet, X: spawn.Int(0), Y: spawn.Int(0)},
			{Kind: spawn.KindPlanet, X: spawn.Int(50), Y: spawn.Int(1000)},
		},
	}
	engine.AddResource(w.ResourceStore, &engine.SpawnSourceResource{Sequence: &seq})

	sys := NewSpawnSystem(w, f, vmath.NewFastRand(3)).(*SpawnSystem)
	sys.HandleEvent(event.GameEvent{Type: event.EventGameStart})

	sys.Update()
	if n := w.Components.Enemy.CountEntities(); n != 1 {
		t.Fatalf("Expected first sequence offset released, got %d entities", n)
	}

	// 20 world units per tick at speed 1
	for i := 0; i < 48; i++ {
		sys.Update()
	}
	if n := w.Components.Enemy.CountEntities(); n != 1 {
		t.Fatalf("Expected second offset held back, got %d entities", n)
	}

	sys.Update()
	if n := w.Components.Enemy.CountEntities(); n != 2 {
		t.Errorf("Expected second offset after 1000 units of scroll, got %d entities", n)
	}

	for _, e := range w.Components.Enemy.GetAllEntities() {
		pos, _ := w.Components.Position.GetComponent(e)
		if pos.Y != parameter.SpawnHeight {
			t.Errorf("Expected sequence offsets to enter at %.0f, got %.0f", parameter.SpawnHeight, pos.Y)
		}
	}
}
