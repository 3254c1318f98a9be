package parameter

import "time"

// Player
const (
	PlayerHitPoints  = 3
	PlayerStartY     = -200.0
	PlayerRadius     = 28.0
	SteerGain        = 8.0 // Fraction of cursor offset closed per second
	EnergyMax        = 100.0
	EnergyDrain      = 30.0 // Per second while hidden by choice
	EnergyRegen      = 4.0  // Per second while visible
	GraceDecay       = 30.0 // Hit energy lost per second
	EnergyPickupHigh = 40.0 // Above this, a pickup fills energy
	EnergyPickupAdd  = 60.0
)

// Screen shake
const (
	ShakeStepInterval = 40 * time.Millisecond
	ShakeAmplitude    = 1 // Cells
)

// Star sparkle trail behind the player
const (
	StarInterval = 200 * time.Millisecond
	StarChance   = 0.9
	StarLifetime = 1350 * time.Millisecond
	StarFallRate = 40.0
	StarSpreadX  = 80.0
)

// Background clouds
const (
	CloudPeriod   = 500 * time.Millisecond // Divided by current speed
	CloudSpawnY   = 600.0
	CloudSpreadX  = ViewportWidth / 2
	CloudLifetime = 6 * time.Second // Speed-scaled
)
