package engine

import (
	"github.com/lixenwraith/skyfall/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World uses it to destroy entities without knowing concrete component types
type AnyStore interface {
	// RemoveEntity deletes a component from an entity
	RemoveEntity(e core.Entity)

	// HasEntity checks if an entity has this component
	HasEntity(e core.Entity) bool

	// CountEntities returns the number of entities with this component
	CountEntities() int

	// ClearAllComponents removes all components from this store
	ClearAllComponents()
}

// QueryableStore extends AnyStore with the set access the query builder intersects on
type QueryableStore interface {
	AnyStore

	// GetAllEntities returns all entities that have this component type
	GetAllEntities() []core.Entity
}
