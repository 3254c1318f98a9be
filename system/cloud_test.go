package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/skyfall/component"
	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/vmath"
)

func TestCloudCadenceScalesWithSpeed(t *testing.T) {
	tests := []struct {
		speed float64
		want  int
	}{
		{1, 2},
		{2, 4},
	}

	for _, tt := range tests {
		w, f, _ := newGameWorld(time.Second)
		w.Resources.Session.Speed = tt.speed
		sys := NewCloudSystem(w, f, vmath.NewFastRand(3))

		sys.Update()
		if got := w.Components.Cloud.CountEntities(); got != tt.want {
			t.Errorf("Speed %.0f: expected %d clouds after 1s, got %d", tt.speed, tt.want, got)
		}
	}
}

func TestCloudIsBackgroundOnly(t *testing.T) {
	w, f, _ := newGameWorld(time.Second)
	e := f.SpawnCloud(10, parameter.CloudSpawnY, 3)

	glyph, _ := w.Components.Glyph.GetComponent(e)
	if glyph.Layer >= component.LayerBackground || glyph.Style != component.StyleCloud {
		t.Errorf("Expected cloud drawn behind everything, got %+v", glyph)
	}
	if w.Components.Hitbox.HasEntity(e) || w.Components.Enemy.HasEntity(e) {
		t.Error("Expected cloud without hitbox or enemy tag")
	}
	timer, _ := w.Components.Timer.GetComponent(e)
	if timer.Remaining != parameter.CloudLifetime || !timer.SpeedScaled {
		t.Errorf("Expected speed-scaled %v timer, got %+v", parameter.CloudLifetime, timer)
	}
}

func TestCloudFallsAndExpires(t *testing.T) {
	w, f, _ := newGameWorld(100 * time.Millisecond)
	w.Resources.Session.Speed = 1
	e := f.SpawnCloud(0, parameter.CloudSpawnY, 0)

	NewFallSystem(w).Update()
	pos, _ := w.Components.Position.GetComponent(e)
	want := parameter.CloudSpawnY - parameter.FallRate*0.1
	if math.Abs(pos.Y-want) > 1e-9 {
		t.Errorf("Expected cloud at y=%.1f, got %.1f", want, pos.Y)
	}

	w.Resources.Time.Update(parameter.CloudLifetime, 2)
	NewTimerSystem(w).Update()
	if !w.Components.Death.HasEntity(e) {
		t.Error("Expected cloud marked dead after its lifetime at speed 1")
	}
}

func TestCloudIdleOutsideGame(t *testing.T) {
	w, f, _ := newGameWorld(time.Second)
	w.Resources.Game.Current = core.StateMainMenu
	NewCloudSystem(w, f, vmath.NewFastRand(3)).Update()
	if n := w.Components.Cloud.CountEntities(); n != 0 {
		t.Errorf("Expected no clouds outside a run, got %d", n)
	}
}
