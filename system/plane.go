package system

import (
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/parameter"
)

// PlaneSystem flies launched planes sideways at their kinetic velocity
type PlaneSystem struct {
	world *engine.World

	enabled bool
}

// NewPlaneSystem creates a new plane system
func NewPlaneSystem(world *engine.World) engine.System {
	s := &PlaneSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *PlaneSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *PlaneSystem) Name() string {
	return "plane"
}

// Priority returns the system's priority
func (s *PlaneSystem) Priority() int {
	return parameter.PriorityPlane
}

// Update applies horizontal velocity; the vertical drift comes from FallSystem
func (s *PlaneSystem) Update() {
	if !s.enabled || !s.world.Resources.Game.InGame() {
		return
	}

	c := &s.world.Components
	dt := s.world.Resources.Time.Seconds()

	entities := s.world.Query().
		With(c.Plane).
		With(c.Kinetic).
		With(c.Position).
		Execute()

	for _, e := range entities {
		kin, _ := c.Kinetic.GetComponent(e)
		pos, _ := c.Position.GetComponent(e)
		pos.X += kin.VX * dt
		c.Position.SetComponent(e, pos)
	}
}
