package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is reserved for FSM tick transitions and never pushed
	EventTick EventType = iota

	// === Screen Flow Triggers ===

	// EventPlayRequest starts a run from the main menu
	// Trigger: menu click, delayed | Consumer: FSM | Payload: nil
	EventPlayRequest

	// EventTutorialRequest opens the how-to screen
	// Trigger: "How to play" button | Consumer: FSM | Payload: nil
	EventTutorialRequest

	// EventMenuRequest returns to the main menu
	// Trigger: tutorial Back, end screen Continue | Consumer: FSM | Payload: nil
	EventMenuRequest

	// EventGameOver ends the run
	// Trigger: DamageSystem when hit points are exhausted | Consumer: FSM | Payload: nil
	EventGameOver

	// === Lifecycle (emitted by FSM actions) ===

	// EventGameStart prepares a fresh run
	// Consumer: Player, Spawn, Session, HighScore, Audio | Payload: nil
	EventGameStart

	// EventGameExit tears the run down
	// Consumer: Spawn (drops table), HighScore (persists), Cull sweep | Payload: nil
	EventGameExit

	// EventEndScreenEnter shows results
	// Consumer: Audio | Payload: nil
	EventEndScreenEnter

	// EventEndScreenExit resets speed and score
	// Consumer: SessionSystem | Payload: nil
	EventEndScreenExit

	// EventFrontendEnter fires when entering the menu/tutorial group
	// Consumer: Audio | Payload: nil
	EventFrontendEnter

	// EventFrontendExit fires when leaving the menu/tutorial group
	// Consumer: Audio | Payload: nil
	EventFrontendExit

	// === Gameplay ===

	// EventCollisionStart reports a newly overlapping pair, order arbitrary
	// Trigger: CollisionSystem | Consumer: DamageSystem | Payload: *CollisionPayload
	EventCollisionStart

	// EventShakeRequest enqueues a screen shake
	// Trigger: DamageSystem | Consumer: ShakeSystem | Payload: *ShakeRequestPayload
	EventShakeRequest

	// === Audio ===

	// EventSoundRequest requests a one-shot effect
	// Trigger: Systems requiring audio feedback | Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventMusicRequest starts or stops the background loop
	// Trigger: FSM actions | Consumer: AudioSystem | Payload: *MusicRequestPayload
	EventMusicRequest
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
