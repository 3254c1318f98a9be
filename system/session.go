package system

import (
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/status"
)

// SessionSystem owns the run lifecycle of speed, score and run identity
type SessionSystem struct {
	world *engine.World

	statRunID *status.AtomicString

	enabled bool
}

// NewSessionSystem creates a new session system
func NewSessionSystem(world *engine.World) engine.System {
	s := &SessionSystem{
		world:     world,
		statRunID: world.Resources.Status.Strings.Get("session.id"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *SessionSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *SessionSystem) Name() string {
	return "session"
}

// Priority returns the system's priority
func (s *SessionSystem) Priority() int {
	return parameter.PrioritySession
}

// EventTypes returns the event types SessionSystem handles
func (s *SessionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameStart,
		event.EventEndScreenExit,
	}
}

// HandleEvent assigns a run ID on start and restores startup values when results are dismissed
func (s *SessionSystem) HandleEvent(ev event.GameEvent) {
	if !s.enabled {
		return
	}

	switch ev.Type {
	case event.EventGameStart:
		session := s.world.Resources.Session
		session.RunID = uuid.New()
		s.statRunID.Store(session.RunID.String())
		log.Printf("[session] run %s started at speed %.2f", session.RunID, session.Speed)

	case event.EventEndScreenExit:
		s.Reset()
	}
}

// Reset restores startup speed and score
func (s *SessionSystem) Reset() {
	s.world.Resources.Session.Reset(s.world.Resources.Config.Settings)
}

// Update implements System interface (no tick-based logic)
func (s *SessionSystem) Update() {}
