package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/skyfall/config"
	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/spawn"
	"github.com/lixenwraith/skyfall/status"
)

// Resource holds singleton game resources, initialized with the world, accessed via World.Resources
type Resource struct {
	Time       *TimeResource
	Config     *ConfigResource
	Game       *GameStateResource
	Session    *SessionResource
	Input      *InputResource
	Transition *TransitionResource
	Shake      *ShakeResource
	Event      *EventQueueResource

	// Telemetry
	Status *status.Registry
}

// initResources creates core resources with default settings
func initResources(w *World) {
	settings := config.Default()
	queue := event.NewEventQueue()

	w.Resources = Resource{
		Time: &TimeResource{},
		Config: &ConfigResource{
			Width:    parameter.ViewportWidth,
			Height:   parameter.ViewportHeight,
			Settings: settings,
			Seed:     1,
		},
		Game:       &GameStateResource{Current: core.StateMainMenu},
		Session:    NewSessionResource(settings),
		Input:      &InputResource{},
		Transition: &TransitionResource{},
		Shake:      &ShakeResource{},
		Event:      &EventQueueResource{Queue: queue},
		Status:     status.NewRegistry(),
	}
	w.eventQueue = queue
}

// ApplySettings replaces the active settings and resets the session to the new startup values
func (w *World) ApplySettings(s config.Settings, seed uint64) {
	w.Resources.Config.Settings = s
	w.Resources.Config.Seed = seed
	w.Resources.Session.Reset(s)
}

// === World Resources ===

// TimeResource wraps frame timing for systems
// Updated by the Scheduler at the start of a tick
type TimeResource struct {
	// DeltaTime is the clamped duration since the last tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(deltaTime time.Duration, frameNumber int64) {
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// Seconds returns DeltaTime as float seconds
func (tr *TimeResource) Seconds() float64 {
	return tr.DeltaTime.Seconds()
}

// ConfigResource holds viewport geometry and user settings
// World coordinates are centered on the viewport with y pointing up
type ConfigResource struct {
	Width    float64
	Height   float64
	Settings config.Settings
	Seed     uint64
}

// HalfWidth returns half the viewport width
func (c *ConfigResource) HalfWidth() float64 { return c.Width / 2 }

// HalfHeight returns half the viewport height
func (c *ConfigResource) HalfHeight() float64 { return c.Height / 2 }

// GameStateResource holds the active screen state written by the FSM
type GameStateResource struct {
	Current core.GameState
}

// InGame reports whether gameplay systems should run
func (g *GameStateResource) InGame() bool {
	return g.Current == core.StateGame
}

// SessionResource holds the simulation context of one run
type SessionResource struct {
	Speed float64
	Score float64
	RunID uuid.UUID
}

// NewSessionResource creates a session at the startup values
func NewSessionResource(s config.Settings) *SessionResource {
	sr := &SessionResource{}
	sr.Reset(s)
	return sr
}

// Reset restores startup speed and score; calling it repeatedly yields the same values
func (sr *SessionResource) Reset(s config.Settings) {
	sr.Speed = s.StartupSpeed
	sr.Score = s.StartupScore
}

// InputResource holds the pointer state written by the UI between ticks
// JustPressed lives for exactly one tick
type InputResource struct {
	CursorX, CursorY float64
	ButtonHeld       bool
	JustPressed      bool
}

// Move records the cursor position in world coordinates
func (in *InputResource) Move(x, y float64) {
	in.CursorX = x
	in.CursorY = y
}

// Press records a button down edge
func (in *InputResource) Press() {
	if !in.ButtonHeld {
		in.JustPressed = true
	}
	in.ButtonHeld = true
}

// Release records the button going up
func (in *InputResource) Release() {
	in.ButtonHeld = false
}

// EndFrame clears the press edge after systems have observed it
func (in *InputResource) EndFrame() {
	in.JustPressed = false
}

// ShakeResource tracks the screen shake in progress
type ShakeResource struct {
	// Remaining half-swings, odd while a shake is active
	Remaining int
	// Offset is the current horizontal screen offset in cells
	Offset int
	since  time.Duration
}

// Start begins a shake with count half-swings, replacing any shake in progress
func (s *ShakeResource) Start(count int) {
	s.Remaining = count
	s.since = 0
	s.Offset = 0
}

// Active reports whether a shake is in progress
func (s *ShakeResource) Active() bool {
	return s.Remaining > 0
}

// Advance steps the shake by dt, one half-swing per interval
// Offset alternates sign each swing and the final swing returns it to zero
func (s *ShakeResource) Advance(dt time.Duration) {
	if s.Remaining <= 0 {
		return
	}
	s.since += dt
	for s.Remaining > 0 && s.since >= parameter.ShakeStepInterval {
		s.since -= parameter.ShakeStepInterval
		s.Remaining--
		switch {
		case s.Remaining == 0:
			s.Offset = 0
		case s.Remaining%2 == 0:
			s.Offset = -parameter.ShakeAmplitude
		default:
			s.Offset = parameter.ShakeAmplitude
		}
	}
}

// EventQueueResource wraps the event queue
type EventQueueResource struct {
	Queue *event.EventQueue
}

// === Store Resources ===

// SpawnSourceResource holds the structures a run samples from
// Built at startup from the default table plus imported structure files
type SpawnSourceResource struct {
	Structures []spawn.Structure
	// Sequence is the optional pre-authored structure played first in each run
	Sequence *spawn.Structure
}

// AudioPlayer is the sound sink systems talk to
type AudioPlayer interface {
	Play(sound core.SoundType)
	SetMusic(playing bool)
	SetMuted(muted bool)
	IsMuted() bool
}

// AudioResource exposes the audio player, absent when audio failed to initialize
type AudioResource struct {
	Player AudioPlayer
}
