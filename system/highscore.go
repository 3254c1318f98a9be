package system

import (
	"errors"
	"log"
	"math"

	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/persistence"
)

// HighScoreSystem persists the best score across runs
// Store failures are logged and never interrupt play
type HighScoreSystem struct {
	world *engine.World
	store *persistence.Store

	best int64
	last int64

	enabled bool
}

// NewHighScoreSystem creates a new high score system backed by store
func NewHighScoreSystem(world *engine.World, store *persistence.Store) engine.System {
	s := &HighScoreSystem{
		world: world,
		store: store,
	}
	s.Init()
	return s
}

// Init reloads the best score from the store
func (s *HighScoreSystem) Init() {
	s.enabled = s.store != nil
	if !s.enabled {
		return
	}
	best, err := s.store.GetInt(parameter.HighScoreKey)
	switch {
	case err == nil:
		s.best = best
	case errors.Is(err, persistence.ErrKeyNotFound):
		s.best = 0
	default:
		log.Printf("[highscore] read %s: %v", s.store.Path(), err)
	}
}

// Name returns system's name
func (s *HighScoreSystem) Name() string {
	return "highscore"
}

// Priority returns the system's priority
func (s *HighScoreSystem) Priority() int {
	return parameter.PriorityHighScore
}

// Best returns the best score known to this process
func (s *HighScoreSystem) Best() int64 {
	return s.best
}

// Last returns the floored score of the most recent finished run
func (s *HighScoreSystem) Last() int64 {
	return s.last
}

// EventTypes returns the event types HighScoreSystem handles
func (s *HighScoreSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameStart,
		event.EventGameExit,
	}
}

// HandleEvent records the run result on exit
func (s *HighScoreSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameStart:
		log.Printf("[highscore] run %s, best %d", s.world.Resources.Session.RunID, s.best)
	case event.EventGameExit:
		s.record()
		log.Printf("[highscore] run %s ended: %s", s.world.Resources.Session.RunID, s.world.Resources.Status.Summary())
	}
}

func (s *HighScoreSystem) record() {
	session := s.world.Resources.Session
	s.last = int64(math.Floor(session.Score))
	if s.last > s.best {
		s.best = s.last
	}
	if !s.enabled {
		return
	}

	stored, err := s.store.GetInt(parameter.HighScoreKey)
	if errors.Is(err, persistence.ErrKeyNotFound) {
		stored = 0
		if err = s.store.SetInt(parameter.HighScoreKey, 0); err != nil {
			log.Printf("[highscore] init %s: %v", parameter.HighScoreKey, err)
		}
	} else if err != nil {
		log.Printf("[highscore] read %s: %v", parameter.HighScoreKey, err)
		return
	}

	if s.last > stored {
		if err := s.store.SetInt(parameter.HighScoreKey, s.last); err != nil {
			log.Printf("[highscore] write %s: %v", parameter.HighScoreKey, err)
		}
	} else if stored > s.best {
		s.best = stored
	}

	if err := s.store.Set(parameter.LastRunKey, session.RunID.String()); err != nil {
		log.Printf("[highscore] write %s: %v", parameter.LastRunKey, err)
	}
}

// Update implements System interface (no tick-based logic)
func (s *HighScoreSystem) Update() {}
