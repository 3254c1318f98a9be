package system

import (
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
)

// ShakeSystem runs the screen shake requested by hits
type ShakeSystem struct {
	world *engine.World

	enabled bool
}

// NewShakeSystem creates a new shake system
func NewShakeSystem(world *engine.World) engine.System {
	s := &ShakeSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *ShakeSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *ShakeSystem) Name() string {
	return "shake"
}

// Priority returns the system's priority
func (s *ShakeSystem) Priority() int {
	return parameter.PriorityShake
}

// EventTypes returns the event types ShakeSystem handles
func (s *ShakeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShakeRequest,
		event.EventGameExit,
	}
}

// HandleEvent starts or stops a shake
func (s *ShakeSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventShakeRequest:
		if p, ok := ev.Payload.(*event.ShakeRequestPayload); ok {
			s.world.Resources.Shake.Start(p.Count)
		}
	case event.EventGameExit:
		s.world.Resources.Shake.Start(0)
	}
}

// Update advances the shake in progress
func (s *ShakeSystem) Update() {
	if !s.enabled {
		return
	}
	s.world.Resources.Shake.Advance(s.world.Resources.Time.DeltaTime)
}
