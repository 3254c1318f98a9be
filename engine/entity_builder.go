package engine

import "github.com/lixenwraith/skyfall/core"

// EntityBuilder provides a fluent, type-safe interface for constructing entities
// The entity handle is allocated upfront and components are added before Build()
//
// Example usage:
//
//	e := engine.With(
//	    engine.With(world.NewEntity(), world.Components.Position, pos),
//	    world.Components.Glyph, glyph,
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates a new EntityBuilder with a freshly allocated handle
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.SetComponent(eb.entity, component)
	return eb
}

// Entity returns the handle being built
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build finalizes construction and returns the entity handle
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
