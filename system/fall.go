package system

import (
	"github.com/lixenwraith/skyfall/component"
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/parameter"
)

// FallSystem scrolls falling entities down and tags them once they leave the bottom edge
type FallSystem struct {
	world *engine.World

	enabled bool
}

// NewFallSystem creates a new fall system
func NewFallSystem(world *engine.World) engine.System {
	s := &FallSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *FallSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *FallSystem) Name() string {
	return "fall"
}

// Priority returns the system's priority
func (s *FallSystem) Priority() int {
	return parameter.PriorityFall
}

// Update moves every falling entity by FallRate * speed * rate
func (s *FallSystem) Update() {
	if !s.enabled || !s.world.Resources.Game.InGame() {
		return
	}

	c := &s.world.Components
	step := parameter.FallRate * s.world.Resources.Session.Speed * s.world.Resources.Time.Seconds()
	floor := -s.world.Resources.Config.HalfHeight() - parameter.OffscreenMargin

	entities := s.world.Query().
		With(c.Falling).
		With(c.Position).
		Execute()

	for _, e := range entities {
		fall, _ := c.Falling.GetComponent(e)
		pos, _ := c.Position.GetComponent(e)

		pos.Y -= step * fall.Rate
		c.Position.SetComponent(e, pos)

		if pos.Y < floor && !c.Death.HasEntity(e) {
			c.Death.SetComponent(e, component.DeathComponent{})
		}
	}
}
