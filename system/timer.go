package system

import (
	"time"

	"github.com/lixenwraith/skyfall/component"
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/parameter"
)

// TimerSystem manages entity lifetimes
type TimerSystem struct {
	world *engine.World

	enabled bool
}

// NewTimerSystem creates a new timer system
func NewTimerSystem(world *engine.World) engine.System {
	s := &TimerSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *TimerSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *TimerSystem) Name() string {
	return "timer"
}

// Priority returns the system's priority
func (s *TimerSystem) Priority() int {
	return parameter.PriorityTimer
}

// Update decrements timers and tags expired entities for the cull pass
func (s *TimerSystem) Update() {
	if !s.enabled || !s.world.Resources.Game.InGame() {
		return
	}

	c := &s.world.Components
	dt := s.world.Resources.Time.DeltaTime
	scaled := time.Duration(float64(dt) * s.world.Resources.Session.Speed)

	for _, e := range c.Timer.GetAllEntities() {
		timer, ok := c.Timer.GetComponent(e)
		if !ok {
			continue
		}

		if timer.SpeedScaled {
			timer.Remaining -= scaled
		} else {
			timer.Remaining -= dt
		}

		if timer.Remaining <= 0 {
			c.Timer.RemoveEntity(e)
			c.Death.SetComponent(e, component.DeathComponent{})
			continue
		}
		c.Timer.SetComponent(e, timer)
	}
}
