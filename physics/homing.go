package physics

import (
	"math"

	"github.com/lixenwraith/skyfall/vmath"
)

// HomingProfile defines homing behavior parameters
type HomingProfile struct {
	Coefficient float64 // Numerator of coefficient / distance²
	MinDistance float64 // Lower distance clamp, avoids the singularity
	MaxDistance float64 // Upper distance clamp, keeps far pursuit from stalling
	StepBound   float64 // Per-axis attraction at or above which the step is skipped
}

// HomingResult is one homing step
type HomingResult struct {
	DX, DY float64
	Facing float64 // Radians from up, along the step direction
	Moved  bool
}

// HomingStep moves a homer at (hx, hy) toward a target at (tx, ty)
// Attraction is coefficient / d² * (homer - target) with d clamped to the profile bounds;
// the homer moves by -attraction * dt unless either axis reaches StepBound
func HomingStep(hx, hy, tx, ty, dt float64, p *HomingProfile) HomingResult {
	d := vmath.Clamp(vmath.Distance(hx, hy, tx, ty), p.MinDistance, p.MaxDistance)

	k := p.Coefficient / (d * d)
	ax := k * (hx - tx)
	ay := k * (hy - ty)

	res := HomingResult{Facing: vmath.FacingAngle(-ax, -ay)}
	if math.Abs(ax) < p.StepBound && math.Abs(ay) < p.StepBound {
		res.DX = -ax * dt
		res.DY = -ay * dt
		res.Moved = true
	}
	return res
}
