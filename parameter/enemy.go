package parameter

import "time"

// Lifetimes, speed-scaled unless noted
const (
	LifetimeDefault   = 6 * time.Second
	LifetimeEnergyBar = 8850 * time.Millisecond
	LifetimeRainbow   = 16 * time.Second // Unscaled
	LifetimeTrail     = 2 * time.Second  // Unscaled
	LifetimePlane     = 10 * time.Second // Unscaled
)

// Gravity
const (
	GravityRadius      = 400.0
	GravityCoefficient = 10000.0
	GravitySnapBound   = 1500.0
	HoleStrength       = 2.5
	PlanetStrength     = 1.0
)

// Homing
const (
	HomingCoefficient = 14000.0
	HomingMinDistance = 1.0
	HomingMaxDistance = 220.0
	HomingStepBound   = 1500.0
	TrailInterval     = 15 * time.Millisecond
)

// Plane
const (
	PlaneSpeedX     = 200.0
	PlaneFallRate   = 0.5 // Multiplier on FallRate
	PlaneLaunchRise = 300.0
	PlaneLaunchPad  = 100.0 // Outside the viewport edge
)

// Hitbox sizes in world units
const (
	PlanetRadius   = 46.0
	TrailHalfW     = 28.0
	TrailHalfH     = 4.0
	EnergyBarHalfW = 72.0
	EnergyBarHalfH = 35.0
	SensorHalfW    = 2000.0
	SensorHalfH    = 1.0
	PlaneHalfW     = 90.0
	PlaneHalfH     = 24.0
	BasicRadius    = 30.0
	BasicBoxHalfW  = 40.0
	BasicBoxHalfH  = 22.0
	BasicThinHalfW = 10.0
	BasicThinHalfH = 40.0
)

// Default random table placement
const (
	RainbowSpawnX    = 0
	PlaneSpawnWeight = 19.5 // Each direction, 39 of 200 combined
)
