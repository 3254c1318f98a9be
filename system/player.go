package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/skyfall/component"
	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/vmath"
)

// PlayerSystem steers the player toward the cursor and runs hiding, energy and post-hit grace
type PlayerSystem struct {
	world   *engine.World
	factory *Factory

	statHidden *atomic.Bool

	enabled bool
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(world *engine.World, factory *Factory) engine.System {
	s := &PlayerSystem{
		world:      world,
		factory:    factory,
		statHidden: world.Resources.Status.Bools.Get("player.hidden"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *PlayerSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *PlayerSystem) Name() string {
	return "player"
}

// Priority returns the system's priority
func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

// EventTypes returns the event types PlayerSystem handles
func (s *PlayerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameStart,
	}
}

// HandleEvent spawns a fresh player for the run
func (s *PlayerSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventGameStart {
		return
	}
	for _, e := range s.world.Components.Player.GetAllEntities() {
		s.world.DestroyEntity(e)
	}
	e := s.factory.SpawnPlayer()
	log.Printf("[player] spawned entity %d", e)
}

// Update runs steering then the hide state machine
func (s *PlayerSystem) Update() {
	if !s.enabled || !s.world.Resources.Game.InGame() {
		return
	}

	player, ok := findPlayer(s.world)
	if !ok {
		return
	}

	s.steer(player)
	s.updateHidden(player)
}

// steer closes SteerGain of the cursor offset per second and keeps the player on screen
func (s *PlayerSystem) steer(player core.Entity) {
	c := &s.world.Components
	cfg := s.world.Resources.Config
	in := s.world.Resources.Input
	dt := s.world.Resources.Time.Seconds()

	pos, ok := c.Position.GetComponent(player)
	if !ok {
		return
	}
	kin, _ := c.Kinetic.GetComponent(player)

	kin.VX = (in.CursorX - pos.X) * parameter.SteerGain
	kin.VY = (in.CursorY - pos.Y) * parameter.SteerGain
	pos.X = vmath.Clamp(pos.X+kin.VX*dt, -cfg.HalfWidth(), cfg.HalfWidth())
	pos.Y = vmath.Clamp(pos.Y+kin.VY*dt, -cfg.HalfHeight(), cfg.HalfHeight())

	c.Kinetic.SetComponent(player, kin)
	c.Position.SetComponent(player, pos)
}

// updateHidden starts hiding on a fresh press and ends it on release or empty energy
// Energy is frozen while the post-hit grace runs
func (s *PlayerSystem) updateHidden(player core.Entity) {
	c := &s.world.Components
	settings := s.world.Resources.Config.Settings
	in := s.world.Resources.Input
	dt := s.world.Resources.Time.Seconds()

	h, ok := c.Hidden.GetComponent(player)
	if !ok {
		return
	}

	if h.Hit {
		h.HitEnergy -= parameter.GraceDecay * dt
		if h.HitEnergy <= 0 {
			// Holding through the grace keeps the player hidden
			h.HitEnergy = 0
			h.Hit = false
			h.Hidden = in.ButtonHeld && h.Energy > 0
		}
	} else {
		if in.JustPressed && h.Energy > 0 {
			h.Hidden = true
		}

		if in.ButtonHeld && h.Energy > 0 {
			h.Energy -= settings.EnergyDrain * dt
		} else {
			h.Energy += settings.EnergyRegen * dt
		}
		h.Energy = vmath.Clamp(h.Energy, 0, parameter.EnergyMax)

		if !in.ButtonHeld || h.Energy <= 0 {
			h.Hidden = false
		}
	}
	s.statHidden.Store(h.Hidden)

	c.Hidden.SetComponent(player, h)

	// Hidden players are collision-transparent
	if h.Hidden {
		c.Hitbox.RemoveEntity(player)
	} else if !c.Hitbox.HasEntity(player) {
		c.Hitbox.SetComponent(player, component.HitboxComponent{Shape: playerShape()})
	}

	if glyph, ok := c.Glyph.GetComponent(player); ok {
		style := component.StylePlayer
		if h.Hidden {
			style = component.StylePlayerHidden
		}
		if glyph.Style != style {
			glyph.Style = style
			c.Glyph.SetComponent(player, glyph)
		}
	}
}
