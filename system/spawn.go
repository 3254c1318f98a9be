package system

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/spawn"
	"github.com/lixenwraith/skyfall/vmath"
)

// SpawnSystem samples the weighted structure table on a speed-scaled period
// A pre-authored sequence, when configured, plays first and suspends random sampling until exhausted
type SpawnSystem struct {
	world   *engine.World
	factory *Factory
	rng     *vmath.FastRand

	table    *spawn.Table
	sequence *spawn.Sequence
	elapsed  time.Duration

	statSpawned *atomic.Int64

	enabled bool
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(world *engine.World, factory *Factory, rng *vmath.FastRand) engine.System {
	s := &SpawnSystem{
		world:       world,
		factory:     factory,
		rng:         rng,
		statSpawned: world.Resources.Status.Ints.Get("spawn.count"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *SpawnSystem) Init() {
	s.table = nil
	s.sequence = nil
	s.elapsed = 0
	s.enabled = true
}

// Name returns system's name
func (s *SpawnSystem) Name() string {
	return "spawn"
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// EventTypes returns the event types SpawnSystem handles
func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameStart,
		event.EventGameExit,
	}
}

// HandleEvent builds the table on run start and drops it on exit
func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameStart:
		s.Init()
		s.build()
	case event.EventGameExit:
		s.Init()
	}
}

func (s *SpawnSystem) build() {
	var extra []spawn.Structure
	var seq *spawn.Structure
	if src, ok := engine.GetResource[*engine.SpawnSourceResource](s.world.ResourceStore); ok {
		extra = src.Structures
		seq = src.Sequence
	}

	table, err := spawn.DefaultTable(extra...)
	if err != nil {
		// Imported weights were validated at load; the built-in table alone cannot fail
		log.Printf("[spawn] table rejected, falling back to defaults: %v", err)
		table, _ = spawn.DefaultTable()
	}
	s.table = table

	if seq != nil {
		s.sequence = spawn.NewSequence(*seq)
		log.Printf("[spawn] sequence %q with %d offsets", seq.Name, s.sequence.Remaining())
	}
}

// Table exposes the active table, nil outside a run
func (s *SpawnSystem) Table() *spawn.Table {
	return s.table
}

// Update releases sequence offsets or samples the table
func (s *SpawnSystem) Update() {
	if !s.enabled || s.table == nil || !s.world.Resources.Game.InGame() {
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	speed := s.world.Resources.Session.Speed

	if !s.sequence.Empty() {
		scroll := parameter.FallRate * speed * dt.Seconds()
		for _, o := range s.sequence.Advance(scroll) {
			s.factory.SpawnOffset(o)
			s.statSpawned.Add(1)
		}
		return
	}

	if speed <= 0 {
		return
	}
	period := time.Duration(float64(parameter.SpawnPeriod) / speed)

	s.elapsed += dt
	for s.elapsed >= period {
		s.elapsed -= period
		structure, ok := s.table.SampleRand(s.rng)
		if !ok {
			continue
		}
		for _, o := range structure.Offsets {
			s.factory.SpawnOffset(o)
			s.statSpawned.Add(1)
		}
	}
}
