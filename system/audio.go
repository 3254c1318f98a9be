package system

import (
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
)

// AudioSystem forwards sound and music requests to the audio player
// Requests are dropped when no player is registered
type AudioSystem struct {
	world *engine.World

	enabled bool
}

// NewAudioSystem creates a new audio system
func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AudioSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventMusicRequest,
	}
}

// HandleEvent plays the requested effect or toggles music
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if !s.enabled {
		return
	}
	res, ok := engine.GetResource[*engine.AudioResource](s.world.ResourceStore)
	if !ok || res.Player == nil {
		return
	}

	switch ev.Type {
	case event.EventSoundRequest:
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			res.Player.Play(p.Sound)
		}
	case event.EventMusicRequest:
		if p, ok := ev.Payload.(*event.MusicRequestPayload); ok {
			res.Player.SetMusic(p.Playing)
		}
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
