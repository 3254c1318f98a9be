package component

import "github.com/lixenwraith/skyfall/physics"

// HitboxComponent makes an entity collidable
// Removing it makes the entity collision-transparent
type HitboxComponent struct {
	Shape physics.Shape
}
