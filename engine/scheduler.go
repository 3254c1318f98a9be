package engine

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/skyfall/engine/fsm"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/status"
)

// maxDispatchPasses bounds how many times one dispatch phase drains the queue
// FSM actions and handlers may push follow-up events that belong to the same tick
const maxDispatchPasses = 8

// Scheduler drives one simulation tick at a time on the caller's goroutine
// Tick order: time -> FSM tick -> systems -> event dispatch -> scheduled transitions -> input edges
type Scheduler struct {
	world *World
	clock Clock

	router *Router
	fsm    *fsm.Machine[*World]

	lastTick time.Time
	started  bool
	frame    int64

	// Cached metric pointers
	statTicks      *atomic.Int64
	statEntities   *atomic.Int64
	statScreenTime *status.AtomicFloat
}

// NewScheduler creates a scheduler over world using clock for frame deltas
func NewScheduler(world *World, clock Clock) *Scheduler {
	return &Scheduler{
		world:        world,
		clock:        clock,
		router:       NewRouter(),
		fsm:          fsm.NewMachine[*World](),
		statTicks:      world.Resources.Status.Ints.Get("engine.ticks"),
		statEntities:   world.Resources.Status.Ints.Get("entity.count"),
		statScreenTime: world.Resources.Status.Floats.Get("screen.seconds"),
	}
}

// RegisterEventHandler adds an event handler to the router
func (s *Scheduler) RegisterEventHandler(handler EventHandler) {
	s.router.Register(handler)
}

// RegisterSystems initializes every world system and routes events to those that handle them
func (s *Scheduler) RegisterSystems() {
	for _, sys := range s.world.Systems() {
		sys.Init()
		if h, ok := sys.(EventHandler); ok {
			s.router.Register(h)
		}
	}
}

// Router exposes the event router
func (s *Scheduler) Router() *Router {
	return s.router
}

// FSM exposes the screen state machine
func (s *Scheduler) FSM() *fsm.Machine[*World] {
	return s.fsm
}

// LoadFSM registers actions and guards, loads the graph and enters the initial state
// Lifecycle events emitted while entering are dispatched before returning
func (s *Scheduler) LoadFSM(config string, registerComponents func(*fsm.Machine[*World])) error {
	registerComponents(s.fsm)

	if err := s.fsm.LoadConfig(config); err != nil {
		return fmt.Errorf("load FSM: %w", err)
	}
	if err := s.fsm.Init(s.world); err != nil {
		return fmt.Errorf("init FSM: %w", err)
	}

	s.dispatchAndProcessEvents()
	return nil
}

// Step runs one tick using the clock delta since the previous Step
// The first Step after creation uses the nominal frame interval
func (s *Scheduler) Step() time.Duration {
	now := s.clock.Now()
	dt := parameter.FrameUpdateInterval
	if s.started {
		dt = now.Sub(s.lastTick)
	}
	s.started = true
	s.lastTick = now

	dt = max(0, min(dt, parameter.MaxFrameDelta))
	s.Tick(dt)
	return dt
}

// Tick runs one simulation tick of length dt
func (s *Scheduler) Tick(dt time.Duration) {
	s.frame++
	s.world.Resources.Time.Update(dt, s.frame)

	s.fsm.Update(s.world, dt)

	s.world.Update()

	// Collision, damage, shake and sound traffic from this tick's systems
	s.dispatchAndProcessEvents()

	// Delayed transitions resolve after dispatch so a zero-delay request made by a handler lands this tick
	if trigger, ok := s.world.Resources.Transition.Advance(dt); ok {
		from, spent := s.fsm.CurrentState(), s.fsm.TimeInState()
		if s.fsm.HandleEvent(s.world, trigger) {
			log.Printf("[scheduler] %s left after %v", from, spent.Round(time.Millisecond))
		} else {
			log.Printf("[scheduler] trigger %s ignored in state %s", event.GetEventName(trigger), s.fsm.CurrentState())
		}
		s.dispatchAndProcessEvents()
	}

	s.world.Resources.Input.EndFrame()

	s.statTicks.Store(s.frame)
	s.statEntities.Store(int64(s.world.EntityCount()))
	s.statScreenTime.Set(s.fsm.TimeInState().Seconds())
}

// DispatchEventsImmediately processes all pending events synchronously
// Used for UI feedback that should not wait for the next tick
func (s *Scheduler) DispatchEventsImmediately() {
	s.dispatchAndProcessEvents()
}

// dispatchAndProcessEvents routes pending events through the FSM and the handlers
// Events pushed while dispatching are drained in further passes
func (s *Scheduler) dispatchAndProcessEvents() {
	queue := s.world.Resources.Event.Queue
	for pass := 0; pass < maxDispatchPasses; pass++ {
		events := queue.Consume()
		if len(events) == 0 {
			return
		}
		for _, ev := range events {
			s.fsm.HandleEvent(s.world, ev.Type)
			s.router.Dispatch(ev)
		}
	}
	if n := queue.Len(); n > 0 {
		log.Printf("[scheduler] %d events deferred to next tick", n)
	}
}

// Frame returns the number of ticks run
func (s *Scheduler) Frame() int64 {
	return s.frame
}
