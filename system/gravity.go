package system

import (
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/physics"
)

var gravityProfile = physics.GravityProfile{
	Radius:      parameter.GravityRadius,
	Coefficient: parameter.GravityCoefficient,
	SnapBound:   parameter.GravitySnapBound,
}

// GravitySystem pulls the visible player toward gravitating entities
type GravitySystem struct {
	world *engine.World

	enabled bool
}

// NewGravitySystem creates a new gravity system
func NewGravitySystem(world *engine.World) engine.System {
	s := &GravitySystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *GravitySystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *GravitySystem) Name() string {
	return "gravity"
}

// Priority returns the system's priority
func (s *GravitySystem) Priority() int {
	return parameter.PriorityGravity
}

// Update applies each source in query order; a snap places the player on the source
func (s *GravitySystem) Update() {
	if !s.enabled || !s.world.Resources.Game.InGame() {
		return
	}

	c := &s.world.Components
	player, ok := findPlayer(s.world)
	if !ok {
		return
	}
	if hidden, _ := c.Hidden.GetComponent(player); hidden.Hidden {
		return
	}
	ppos, ok := c.Position.GetComponent(player)
	if !ok {
		return
	}

	dt := s.world.Resources.Time.Seconds()
	sources := s.world.Query().
		With(c.Gravitating).
		With(c.Position).
		Execute()

	for _, e := range sources {
		g, _ := c.Gravitating.GetComponent(e)
		spos, _ := c.Position.GetComponent(e)

		res := physics.GravityPull(ppos.X, ppos.Y, spos.X, spos.Y, g.Strength, dt, &gravityProfile)
		switch {
		case res.Snap:
			ppos.X, ppos.Y = spos.X, spos.Y
		case res.InRange:
			ppos.X += res.DX
			ppos.Y += res.DY
		}
	}
	c.Position.SetComponent(player, ppos)
}
