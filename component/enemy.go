package component

import (
	"time"

	"github.com/lixenwraith/skyfall/spawn"
)

// EnemyComponent records what template an entity was built from
type EnemyComponent struct {
	Kind    spawn.EnemyKind
	Variant spawn.BasicVariant
}

// FallingComponent moves an entity down at FallRate * speed * Rate
// Rate 0 keeps the entity stationary while still subject to off-screen culling
type FallingComponent struct {
	Rate float64
}

// DamagingComponent marks an entity that costs the player a hit point on contact
type DamagingComponent struct{}

// GravitatingComponent pulls the player toward the entity
type GravitatingComponent struct {
	Strength float64
}

// HomingComponent steers the entity toward the player and drops trails
type HomingComponent struct {
	SinceTrail time.Duration
}

// TrailComponent marks a hazard left behind a homing entity
type TrailComponent struct{}

// PlaneDir is the horizontal flight direction of a plane
type PlaneDir int8

const (
	PlaneLeft  PlaneDir = -1
	PlaneRight PlaneDir = 1
)

// PlaneSensorComponent is an invisible trigger that launches a plane when touched
type PlaneSensorComponent struct {
	Dir PlaneDir
}

// PlaneComponent flies sideways while falling slowly
type PlaneComponent struct {
	Dir PlaneDir
}

// EnergyBarComponent marks an energy pickup
type EnergyBarComponent struct{}

// StarComponent marks a cosmetic sparkle behind the player
type StarComponent struct{}

// CloudComponent marks a background cloud; clouds fall but never collide
type CloudComponent struct{}
