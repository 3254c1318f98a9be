package system

import (
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/status"
)

// SpeedSystem ramps the difficulty multiplier while a run is in progress
type SpeedSystem struct {
	world *engine.World

	statSpeed *status.AtomicFloat

	enabled bool
}

// NewSpeedSystem creates a new speed system
func NewSpeedSystem(world *engine.World) engine.System {
	s := &SpeedSystem{
		world:     world,
		statSpeed: world.Resources.Status.Floats.Get("session.speed"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *SpeedSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *SpeedSystem) Name() string {
	return "speed"
}

// Priority returns the system's priority
func (s *SpeedSystem) Priority() int {
	return parameter.PrioritySpeed
}

// Update adds SpeedScaling per second of play
func (s *SpeedSystem) Update() {
	if !s.enabled || !s.world.Resources.Game.InGame() {
		return
	}

	session := s.world.Resources.Session
	session.Speed += s.world.Resources.Config.Settings.SpeedScaling * s.world.Resources.Time.Seconds()
	s.statSpeed.Set(session.Speed)
}
