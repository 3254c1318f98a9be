package component

// PositionComponent is the world-space centre of an entity, y up
type PositionComponent struct {
	X, Y float64
}

// KineticComponent carries per-entity velocity and facing
// Facing is radians from the up axis, used by renderers for directional glyphs
type KineticComponent struct {
	VX, VY float64
	Facing float64
}
