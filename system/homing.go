package system

import (
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/physics"
)

var homingProfile = physics.HomingProfile{
	Coefficient: parameter.HomingCoefficient,
	MinDistance: parameter.HomingMinDistance,
	MaxDistance: parameter.HomingMaxDistance,
	StepBound:   parameter.HomingStepBound,
}

// HomingSystem steers homing entities toward the visible player and drops damaging trails
type HomingSystem struct {
	world   *engine.World
	factory *Factory

	enabled bool
}

// NewHomingSystem creates a new homing system
func NewHomingSystem(world *engine.World, factory *Factory) engine.System {
	s := &HomingSystem{
		world:   world,
		factory: factory,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *HomingSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *HomingSystem) Name() string {
	return "homing"
}

// Priority returns the system's priority
func (s *HomingSystem) Priority() int {
	return parameter.PriorityHoming
}

// Update moves each homing entity and emits at most one trail per tick
func (s *HomingSystem) Update() {
	if !s.enabled || !s.world.Resources.Game.InGame() {
		return
	}

	c := &s.world.Components
	dtDur := s.world.Resources.Time.DeltaTime
	dt := dtDur.Seconds()

	player, ok := findPlayer(s.world)
	var tx, ty float64
	chase := false
	if ok {
		hidden, _ := c.Hidden.GetComponent(player)
		if pos, has := c.Position.GetComponent(player); has && !hidden.Hidden {
			tx, ty = pos.X, pos.Y
			chase = true
		}
	}

	entities := s.world.Query().
		With(c.Homing).
		With(c.Position).
		Execute()

	for _, e := range entities {
		pos, _ := c.Position.GetComponent(e)

		if chase {
			res := physics.HomingStep(pos.X, pos.Y, tx, ty, dt, &homingProfile)
			if res.Moved {
				pos.X += res.DX
				pos.Y += res.DY
				c.Position.SetComponent(e, pos)
			}
			if kin, has := c.Kinetic.GetComponent(e); has {
				kin.Facing = res.Facing
				c.Kinetic.SetComponent(e, kin)
			}
		}

		homing, _ := c.Homing.GetComponent(e)
		homing.SinceTrail += dtDur
		if homing.SinceTrail >= parameter.TrailInterval {
			s.factory.SpawnTrail(pos.X, pos.Y)
			homing.SinceTrail %= parameter.TrailInterval
		}
		c.Homing.SetComponent(e, homing)
	}
}
