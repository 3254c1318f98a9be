package event

import "github.com/lixenwraith/skyfall/core"

// CollisionPayload names the two entities whose hitboxes started overlapping
type CollisionPayload struct {
	A core.Entity
	B core.Entity
}

// ShakeRequestPayload carries the number of half-swings, expected odd
type ShakeRequestPayload struct {
	Count int `toml:"count"`
}

// SoundRequestPayload selects a one-shot effect
type SoundRequestPayload struct {
	Sound core.SoundType `toml:"sound"`
}

// MusicRequestPayload toggles the background loop
type MusicRequestPayload struct {
	Playing bool `toml:"playing"`
}
