package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit      SoundType = iota // Player took damage
	SoundPickup                    // Energy bar collected
	SoundPlane                     // Plane sensor tripped
	SoundGameOver                  // Hit points exhausted
	SoundClick                     // Menu button
	SoundTypeCount
)
