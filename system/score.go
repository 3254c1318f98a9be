package system

import (
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/parameter"
)

// ScoreSystem accrues score proportional to speed
type ScoreSystem struct {
	world *engine.World

	enabled bool
}

// NewScoreSystem creates a new score system
func NewScoreSystem(world *engine.World) engine.System {
	s := &ScoreSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *ScoreSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *ScoreSystem) Name() string {
	return "score"
}

// Priority returns the system's priority
func (s *ScoreSystem) Priority() int {
	return parameter.PriorityScore
}

// Update adds ScoreRate * Speed per second of play
func (s *ScoreSystem) Update() {
	if !s.enabled || !s.world.Resources.Game.InGame() {
		return
	}

	session := s.world.Resources.Session
	session.Score += parameter.ScoreRate * session.Speed * s.world.Resources.Time.Seconds()
}
