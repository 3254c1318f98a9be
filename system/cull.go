package system

import (
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
)

// CullSystem destroys entities tagged for death and sweeps the world when a run ends
type CullSystem struct {
	world *engine.World

	enabled bool
}

// NewCullSystem creates a new cull system
func NewCullSystem(world *engine.World) engine.System {
	s := &CullSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *CullSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *CullSystem) Name() string {
	return "cull"
}

// Priority returns the system's priority
func (s *CullSystem) Priority() int {
	return parameter.PriorityCull
}

// EventTypes returns the event types CullSystem handles
func (s *CullSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameExit,
	}
}

// HandleEvent clears every game-scoped entity
func (s *CullSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameExit {
		s.world.Clear()
	}
}

// Update destroys tagged entities
func (s *CullSystem) Update() {
	if !s.enabled {
		return
	}
	for _, e := range s.world.Components.Death.GetAllEntities() {
		s.world.DestroyEntity(e)
	}
}
