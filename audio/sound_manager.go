package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager owns the speaker and mixes effects over an optional music loop
// Without Initialize every call is a no-op, which keeps tests and muted runs silent
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	initialized bool
	muted       bool

	// played counts effects accepted since creation, including silent ones
	played [core.SoundTypeCount]int
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		master: newVolume(mixer, parameter.MasterVolume),
	}
}

// Initialize opens the speaker and starts the master mix
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferWindow)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	sm.music = nil
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play mixes a one-shot effect
func (sm *SoundManager) Play(sound core.SoundType) {
	if sound < 0 || sound >= core.SoundTypeCount {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.played[sound]++
	if !sm.initialized || sm.muted {
		return
	}

	s := GetSoundEffect(sound, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetMusic starts or pauses the background loop
func (sm *SoundManager) SetMusic(playing bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.music == nil {
		if !playing {
			return
		}
		loop := beep.Iterate(func() beep.Streamer { return NewMusicBar(sampleRate) })
		sm.music = &beep.Ctrl{Streamer: newVolume(loop, parameter.MusicVolume)}
		sm.mixer.Add(sm.music)
	}
	sm.music.Paused = !playing
}

// SetMuted silences or restores the master mix
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.master.Silent = muted
	log.Printf("[audio] muted=%t", muted)
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayedCount returns how many times a sound was requested
func (sm *SoundManager) PlayedCount(sound core.SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sound < 0 || sound >= core.SoundTypeCount {
		return 0
	}
	return sm.played[sound]
}
