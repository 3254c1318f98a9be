package system

import (
	"sync/atomic"

	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/physics"
)

// CollisionSystem reports the start of each player contact exactly once
// Contacts are tracked per other entity; leaving and re-entering starts a new contact
type CollisionSystem struct {
	world *engine.World

	contacts map[core.Entity]struct{}
	flip     bool

	statCollisions *atomic.Int64

	enabled bool
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{
		world:          world,
		statCollisions: world.Resources.Status.Ints.Get("collision.count"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *CollisionSystem) Init() {
	s.contacts = make(map[core.Entity]struct{})
	s.flip = false
	s.enabled = true
}

// Name returns system's name
func (s *CollisionSystem) Name() string {
	return "collision"
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

// EventTypes returns the event types CollisionSystem handles
func (s *CollisionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameStart,
		event.EventGameExit,
	}
}

// HandleEvent forgets all contacts between runs
func (s *CollisionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameStart, event.EventGameExit:
		s.Init()
	}
}

// Update tests the player hitbox against every other hitbox
func (s *CollisionSystem) Update() {
	if !s.enabled || !s.world.Resources.Game.InGame() {
		return
	}

	c := &s.world.Components
	current := make(map[core.Entity]struct{}, len(s.contacts))
	defer func() { s.contacts = current }()

	player, ok := findPlayer(s.world)
	if !ok {
		return
	}
	pbox, ok := c.Hitbox.GetComponent(player)
	if !ok {
		return
	}
	ppos, ok := c.Position.GetComponent(player)
	if !ok {
		return
	}

	entities := s.world.Query().
		With(c.Hitbox).
		With(c.Position).
		Execute()

	for _, e := range entities {
		if e == player {
			continue
		}
		box, _ := c.Hitbox.GetComponent(e)
		pos, _ := c.Position.GetComponent(e)
		if !physics.Overlaps(ppos.X, ppos.Y, pbox.Shape, pos.X, pos.Y, box.Shape) {
			continue
		}

		current[e] = struct{}{}
		if _, seen := s.contacts[e]; seen {
			continue
		}

		payload := &event.CollisionPayload{A: player, B: e}
		if s.flip {
			payload.A, payload.B = e, player
		}
		s.flip = !s.flip

		s.world.PushEvent(event.EventCollisionStart, payload)
		s.statCollisions.Add(1)
	}
}
