package parameter

import "time"

// Audio output
const (
	AudioSampleRate   = 44100
	AudioBufferWindow = 100 * time.Millisecond
	MasterVolume      = 0.6
	MusicVolume       = 0.35
)

// Effect envelopes
const (
	HitSoundDuration = 220 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 150 * time.Millisecond

	PickupSoundDuration = 180 * time.Millisecond
	PickupSoundAttack   = 5 * time.Millisecond
	PickupSoundRelease  = 100 * time.Millisecond

	PlaneSoundDuration = 600 * time.Millisecond
	PlaneSoundAttack   = 150 * time.Millisecond
	PlaneSoundRelease  = 300 * time.Millisecond

	GameOverNoteDuration = 250 * time.Millisecond
	GameOverNoteAttack   = 10 * time.Millisecond
	GameOverNoteRelease  = 120 * time.Millisecond

	ClickSoundDuration = 40 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 30 * time.Millisecond
)

// Music loop: four bass notes per bar
const (
	MusicBeat = 400 * time.Millisecond
)
