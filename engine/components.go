package engine

import (
	"github.com/lixenwraith/skyfall/component"
)

// ComponentStore holds one typed store per component
// Fields are named so systems reach stores without reflection
type ComponentStore struct {
	Position *Store[component.PositionComponent]
	Kinetic  *Store[component.KineticComponent]
	Glyph    *Store[component.GlyphComponent]
	Hitbox   *Store[component.HitboxComponent]
	Timer    *Store[component.TimerComponent]
	Death    *Store[component.DeathComponent]

	Enemy       *Store[component.EnemyComponent]
	Falling     *Store[component.FallingComponent]
	Damaging    *Store[component.DamagingComponent]
	Gravitating *Store[component.GravitatingComponent]
	Homing      *Store[component.HomingComponent]
	Trail       *Store[component.TrailComponent]
	PlaneSensor *Store[component.PlaneSensorComponent]
	Plane       *Store[component.PlaneComponent]
	EnergyBar   *Store[component.EnergyBarComponent]
	Star        *Store[component.StarComponent]
	Cloud       *Store[component.CloudComponent]

	Player *Store[component.PlayerComponent]
	Hidden *Store[component.HiddenComponent]
}

// initComponentStores allocates every store and registers it for lifecycle operations
func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Position: NewStore[component.PositionComponent](),
		Kinetic:  NewStore[component.KineticComponent](),
		Glyph:    NewStore[component.GlyphComponent](),
		Hitbox:   NewStore[component.HitboxComponent](),
		Timer:    NewStore[component.TimerComponent](),
		Death:    NewStore[component.DeathComponent](),

		Enemy:       NewStore[component.EnemyComponent](),
		Falling:     NewStore[component.FallingComponent](),
		Damaging:    NewStore[component.DamagingComponent](),
		Gravitating: NewStore[component.GravitatingComponent](),
		Homing:      NewStore[component.HomingComponent](),
		Trail:       NewStore[component.TrailComponent](),
		PlaneSensor: NewStore[component.PlaneSensorComponent](),
		Plane:       NewStore[component.PlaneComponent](),
		EnergyBar:   NewStore[component.EnergyBarComponent](),
		Star:        NewStore[component.StarComponent](),
		Cloud:       NewStore[component.CloudComponent](),

		Player: NewStore[component.PlayerComponent](),
		Hidden: NewStore[component.HiddenComponent](),
	}

	c := &w.Components
	w.stores = []AnyStore{
		c.Position, c.Kinetic, c.Glyph, c.Hitbox, c.Timer, c.Death,
		c.Enemy, c.Falling, c.Damaging, c.Gravitating, c.Homing, c.Trail,
		c.PlaneSensor, c.Plane, c.EnergyBar, c.Star, c.Cloud,
		c.Player, c.Hidden,
	}
}
