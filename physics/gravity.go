package physics

import (
	"math"

	"github.com/lixenwraith/skyfall/vmath"
)

// GravityProfile defines inverse-square attraction parameters
type GravityProfile struct {
	Radius      float64 // Activation distance
	Coefficient float64 // Numerator of coefficient / distance²
	SnapBound   float64 // Per-axis raw pull at which the target snaps onto the source
}

// GravityResult is the displacement to apply to the attracted body for one step
type GravityResult struct {
	DX, DY  float64
	Snap    bool // Target should be placed on the source instead of displaced
	InRange bool
}

// GravityPull computes the pull of a source at (sx, sy) on a target at (tx, ty)
// The raw per-axis pull is coefficient / d² * (target - source); the applied displacement is
// its negation scaled by strength and dt. Either raw axis reaching SnapBound selects snapping,
// which also covers the singular d = 0 case
func GravityPull(tx, ty, sx, sy, strength, dt float64, p *GravityProfile) GravityResult {
	d := vmath.Distance(tx, ty, sx, sy)
	if d > p.Radius {
		return GravityResult{}
	}
	if d == 0 {
		return GravityResult{Snap: true, InRange: true}
	}

	k := p.Coefficient / (d * d)
	rawX := k * (tx - sx)
	rawY := k * (ty - sy)

	if math.Abs(rawX) >= p.SnapBound || math.Abs(rawY) >= p.SnapBound {
		return GravityResult{Snap: true, InRange: true}
	}

	return GravityResult{
		DX:      -rawX * dt * strength,
		DY:      -rawY * dt * strength,
		InRange: true,
	}
}

// GravityMagnitude returns the raw pull magnitude at distance d, coefficient / d
func GravityMagnitude(d float64, p *GravityProfile) float64 {
	if d <= 0 {
		return math.Inf(1)
	}
	return p.Coefficient / d
}
