package component

// PlayerComponent holds the player's remaining hit points
type PlayerComponent struct {
	HitPoints int
}

// HiddenComponent tracks invulnerability state
// Hidden covers both manual hiding and post-hit grace
// Hit is set for the grace period, HitEnergy counts it down
// Energy is the 0-100 budget spent while hiding by choice
type HiddenComponent struct {
	Hidden    bool
	Hit       bool
	HitEnergy float64
	Energy    float64
}
