package system

import (
	"time"

	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/vmath"
)

// StarSystem sprinkles cosmetic stars behind the player and drifts them down
type StarSystem struct {
	world   *engine.World
	factory *Factory
	rng     *vmath.FastRand

	elapsed time.Duration

	enabled bool
}

// NewStarSystem creates a new star system
func NewStarSystem(world *engine.World, factory *Factory, rng *vmath.FastRand) engine.System {
	s := &StarSystem{
		world:   world,
		factory: factory,
		rng:     rng,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *StarSystem) Init() {
	s.elapsed = 0
	s.enabled = true
}

// Name returns system's name
func (s *StarSystem) Name() string {
	return "star"
}

// Priority returns the system's priority
func (s *StarSystem) Priority() int {
	return parameter.PriorityStar
}

// Update emits on a fixed interval and moves existing stars
func (s *StarSystem) Update() {
	if !s.enabled || !s.world.Resources.Game.InGame() {
		return
	}

	c := &s.world.Components
	dt := s.world.Resources.Time.DeltaTime

	for _, e := range c.Star.GetAllEntities() {
		if pos, ok := c.Position.GetComponent(e); ok {
			pos.Y -= parameter.StarFallRate * dt.Seconds()
			c.Position.SetComponent(e, pos)
		}
	}

	s.elapsed += dt
	for s.elapsed >= parameter.StarInterval {
		s.elapsed -= parameter.StarInterval
		if !s.rng.Chance(parameter.StarChance) {
			continue
		}
		player, ok := findPlayer(s.world)
		if !ok {
			continue
		}
		pos, _ := c.Position.GetComponent(player)
		x := pos.X + s.rng.Range(-parameter.StarSpreadX, parameter.StarSpreadX)
		s.factory.SpawnStar(x, pos.Y-parameter.PlayerRadius)
	}
}
