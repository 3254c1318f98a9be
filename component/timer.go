package component

import "time"

// TimerComponent tracks remaining lifetime until the entity is tagged for death
// SpeedScaled timers advance by delta multiplied by the session speed
type TimerComponent struct {
	Remaining   time.Duration
	SpeedScaled bool
}

// DeathComponent tags an entity for removal by the cull pass
type DeathComponent struct{}
