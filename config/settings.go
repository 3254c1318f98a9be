package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/skyfall/parameter"
)

// Settings are the user-tunable values read from the TOML settings file
type Settings struct {
	StartupSpeed  float64 `toml:"startup_speed"`
	SpeedScaling  float64 `toml:"speed_scaling"`
	StartupScore  float64 `toml:"startup_score"`
	HitResistance float64 `toml:"hit_resistance"`
	Shakes        int     `toml:"shakes"`
	HitPoints     int     `toml:"hit_points"`
	EnergyDrain   float64 `toml:"energy_drain"`
	EnergyRegen   float64 `toml:"energy_regen"`

	StructuresDir string `toml:"structures_dir"`
	SequenceFile  string `toml:"sequence_file"`
	ScoreFile     string `toml:"score_file"`
	Mute          bool   `toml:"mute"`
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		StartupSpeed:  parameter.StartupSpeed,
		SpeedScaling:  parameter.SpeedScaling,
		StartupScore:  parameter.StartupScore,
		HitResistance: parameter.HitResistance,
		Shakes:        parameter.Shakes,
		HitPoints:     parameter.PlayerHitPoints,
		EnergyDrain:   parameter.EnergyDrain,
		EnergyRegen:   parameter.EnergyRegen,
		StructuresDir: parameter.StructuresDir,
		ScoreFile:     parameter.DefaultScoreFile,
	}
}

// Load reads settings from path over the defaults
// A missing file is not an error and yields the defaults
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("decode settings %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes settings to path as TOML
func Save(path string, s Settings) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return nil
}

// Validate rejects values the simulation cannot run with
func (s Settings) Validate() error {
	switch {
	case s.StartupSpeed <= 0:
		return fmt.Errorf("startup_speed must be positive, got %v", s.StartupSpeed)
	case s.SpeedScaling < 0:
		return fmt.Errorf("speed_scaling must not be negative, got %v", s.SpeedScaling)
	case s.HitPoints <= 0:
		return fmt.Errorf("hit_points must be positive, got %d", s.HitPoints)
	case s.Shakes < 0:
		return fmt.Errorf("shakes must not be negative, got %d", s.Shakes)
	case s.HitResistance < 0:
		return fmt.Errorf("hit_resistance must not be negative, got %v", s.HitResistance)
	case s.EnergyDrain < 0:
		return fmt.Errorf("energy_drain must not be negative, got %v", s.EnergyDrain)
	case s.EnergyRegen < 0:
		return fmt.Errorf("energy_regen must not be negative, got %v", s.EnergyRegen)
	}
	return nil
}

// ShakeCount returns the odd number of half-swings enqueued per hit
func (s Settings) ShakeCount() int {
	if s.Shakes <= 0 {
		return 0
	}
	return s.Shakes*2 - 1
}
