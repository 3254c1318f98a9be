package system

import (
	"time"

	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/vmath"
)

// CloudSystem drops background clouds above the viewport every CloudPeriod/speed
// Movement and expiry are left to the fall and timer systems
type CloudSystem struct {
	world   *engine.World
	factory *Factory
	rng     *vmath.FastRand

	elapsed time.Duration

	enabled bool
}

func NewCloudSystem(world *engine.World, factory *Factory, rng *vmath.FastRand) engine.System {
	s := &CloudSystem{
		world:   world,
		factory: factory,
		rng:     rng,
	}
	s.Init()
	return s
}

func (s *CloudSystem) Init() {
	s.elapsed = 0
	s.enabled = true
}

func (s *CloudSystem) Name() string {
	return "cloud"
}

func (s *CloudSystem) Priority() int {
	return parameter.PriorityCloud
}

func (s *CloudSystem) Update() {
	if !s.enabled || !s.world.Resources.Game.InGame() {
		return
	}

	speed := s.world.Resources.Session.Speed
	if speed <= 0 {
		return
	}
	period := time.Duration(float64(parameter.CloudPeriod) / speed)
	if period <= 0 {
		return
	}

	s.elapsed += s.world.Resources.Time.DeltaTime
	for s.elapsed >= period {
		s.elapsed -= period
		x := s.rng.Range(-parameter.CloudSpreadX, parameter.CloudSpreadX)
		s.factory.SpawnCloud(x, parameter.CloudSpawnY, s.rng.Intn(len(cloudShapes)))
	}
}
