package parameter

import "time"

// Session defaults, overridable through config.Settings
const (
	StartupSpeed  = 1.6
	SpeedScaling  = 0.01 // Speed gained per second in Game
	StartupScore  = 120.0
	ScoreRate     = 50.0 // Score per second at speed 1
	HitResistance = 100.0
	Shakes        = 4 // Screen shake swings per hit, doubled minus one on enqueue
)

// Viewport in world units, origin at centre, y up
const (
	ViewportWidth   = 640.0
	ViewportHeight  = 700.0
	OffscreenMargin = 100.0
)

// Spawn timing and placement
const (
	SpawnPeriod      = 700 * time.Millisecond // Divided by current speed
	SpawnHeight      = 500.0
	SpawnHeightLow   = 400.0 // Energy bars and plane sensors
	SpawnBias        = 600   // Added to imported structure y offsets
	FallRate         = 200.0 // World units per second at speed 1
	StructuresDir    = "./structures"
	HighScoreKey     = "highscore"
	LastRunKey       = "last_run"
	DefaultScoreFile = "scores.yaml"
)

// DefaultConfigFile is the settings file read at startup
const DefaultConfigFile = "skyfall.toml"
