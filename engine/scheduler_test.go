package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/engine/fsm"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
)

const testGraph = `
initial = "MainMenu"

[states.MainMenu]
on_enter = [{ action = "SetGameState", state = "MainMenu" }]
transitions = [{ trigger = "EventPlayRequest", target = "Game" }]

[states.Game]
on_enter = [
  { action = "SetGameState", state = "Game" },
  { action = "EmitEvent", event = "EventGameStart" },
]
transitions = [{ trigger = "EventGameOver", target = "MainMenu" }]
`

func registerTestFSM(m *fsm.Machine[*World]) {
	m.RegisterAction("SetGameState", func(w *World, args any) {
		if st, ok := core.ParseGameState(args.(*fsm.SetStateArgs).State); ok {
			w.Resources.Game.Current = st
		}
	})
	m.RegisterAction("EmitEvent", func(w *World, args any) {
		a := args.(*fsm.EmitEventArgs)
		w.PushEvent(a.Type, a.Payload)
	})
}

type countingHandler struct {
	types []event.EventType
	seen  []event.GameEvent
}

func (h *countingHandler) EventTypes() []event.EventType { return h.types }
func (h *countingHandler) HandleEvent(ev event.GameEvent) {
	h.seen = append(h.seen, ev)
}

// gameOverSystem requests game over from inside the dispatch phase
type gameOverSystem struct {
	world *World
}

func (s *gameOverSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventShakeRequest}
}
func (s *gameOverSystem) HandleEvent(event.GameEvent) {
	s.world.Resources.Transition.Request(event.EventGameOver, 0)
}

func newTestScheduler(t *testing.T) (*World, *Scheduler, *MockTimeProvider) {
	t.Helper()
	event.InitRegistry()
	w := NewWorld()
	clock := NewMockTimeProvider(time.Unix(0, 0))
	s := NewScheduler(w, clock)
	if err := s.LoadFSM(testGraph, registerTestFSM); err != nil {
		t.Fatalf("LoadFSM failed: %v", err)
	}
	return w, s, clock
}

func TestStepClampsDelta(t *testing.T) {
	w, s, clock := newTestScheduler(t)

	if dt := s.Step(); dt != parameter.FrameUpdateInterval {
		t.Errorf("Expected first step %v, got %v", parameter.FrameUpdateInterval, dt)
	}
	clock.Advance(5 * time.Second)
	if dt := s.Step(); dt != parameter.MaxFrameDelta {
		t.Errorf("Expected clamped %v, got %v", parameter.MaxFrameDelta, dt)
	}
	if w.Resources.Time.FrameNumber != 2 {
		t.Errorf("Expected frame 2, got %d", w.Resources.Time.FrameNumber)
	}
}

func TestDelayedPlayRequestEntersGame(t *testing.T) {
	w, s, _ := newTestScheduler(t)
	started := &countingHandler{types: []event.EventType{event.EventGameStart}}
	s.RegisterEventHandler(started)

	w.Resources.Transition.Request(event.EventPlayRequest, parameter.PlayRequestDelay)

	s.Tick(parameter.FrameUpdateInterval)
	if w.Resources.Game.Current != core.StateMainMenu {
		t.Fatalf("Expected still in menu after 33ms, got %s", w.Resources.Game.Current)
	}

	s.Tick(parameter.FrameUpdateInterval)
	if w.Resources.Game.Current != core.StateGame {
		t.Fatalf("Expected Game after 66ms, got %s", w.Resources.Game.Current)
	}
	if len(started.seen) != 1 {
		t.Errorf("Expected game start dispatched in the same tick, got %d", len(started.seen))
	}
}

func TestZeroDelayRequestFromHandlerResolvesSameTick(t *testing.T) {
	w, s, _ := newTestScheduler(t)
	s.RegisterEventHandler(&gameOverSystem{world: w})

	w.Resources.Transition.Request(event.EventPlayRequest, 0)
	s.Tick(parameter.FrameUpdateInterval)
	if w.Resources.Game.Current != core.StateGame {
		t.Fatalf("Expected Game, got %s", w.Resources.Game.Current)
	}

	w.PushEvent(event.EventShakeRequest, &event.ShakeRequestPayload{Count: 7})
	s.Tick(parameter.FrameUpdateInterval)
	if w.Resources.Game.Current != core.StateMainMenu {
		t.Errorf("Expected transition in the same tick, got %s", w.Resources.Game.Current)
	}
}

func TestRegisterSystemsRoutesHandlers(t *testing.T) {
	w, s, _ := newTestScheduler(t)
	w.AddSystem(&handlerSystem{})
	s.RegisterSystems()

	if s.Router().HandlerCount(event.EventGameExit) != 1 {
		t.Errorf("Expected 1 handler, got %d", s.Router().HandlerCount(event.EventGameExit))
	}
}

type handlerSystem struct{ inits int }

func (h *handlerSystem) Init()                         { h.inits++ }
func (h *handlerSystem) Name() string                  { return "handler" }
func (h *handlerSystem) Priority() int                 { return 1 }
func (h *handlerSystem) Update()                       {}
func (h *handlerSystem) EventTypes() []event.EventType { return []event.EventType{event.EventGameExit} }
func (h *handlerSystem) HandleEvent(event.GameEvent)   {}

func TestStatusCountersUpdated(t *testing.T) {
	w, s, _ := newTestScheduler(t)
	w.CreateEntity()
	s.Tick(parameter.FrameUpdateInterval)

	if got := w.Resources.Status.Ints.Get("engine.ticks").Load(); got != 1 {
		t.Errorf("Expected 1 tick, got %d", got)
	}
	if got := w.Resources.Status.Ints.Get("entity.count").Load(); got != 1 {
		t.Errorf("Expected 1 entity, got %d", got)
	}

	s.Tick(parameter.FrameUpdateInterval)
	want := (2 * parameter.FrameUpdateInterval).Seconds()
	if got := w.Resources.Status.Floats.Get("screen.seconds").Get(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %.3fs on screen, got %.3f", want, got)
	}
}
