package engine

import (
	"github.com/lixenwraith/skyfall/core"
)

// Store holds one component type densely packed alongside its owning entities
// index maps an entity to its slot; removal shifts later slots down so iteration
// order stays insertion order, which keeps collision ordering reproducible for a seed
// Stores are touched only from the simulation goroutine and carry no lock
type Store[T any] struct {
	index    map[core.Entity]int
	entities []core.Entity
	values   []T
}

// NewStore creates an empty store for T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int),
		entities: make([]core.Entity, 0, 64),
		values:   make([]T, 0, 64),
	}
}

// SetComponent inserts or replaces the component of e
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	if i, ok := s.index[e]; ok {
		s.values[i] = val
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

// GetComponent returns a copy of the component of e
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	i, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

// RemoveEntity drops the component of e if present
func (s *Store[T]) RemoveEntity(e core.Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	delete(s.index, e)
	s.entities = append(s.entities[:i], s.entities[i+1:]...)
	s.values = append(s.values[:i], s.values[i+1:]...)
	for j := i; j < len(s.entities); j++ {
		s.index[s.entities[j]] = j
	}
}

// HasEntity reports whether e has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// GetAllEntities returns a snapshot of owning entities in insertion order
// Safe to mutate the store while ranging over the result
func (s *Store[T]) GetAllEntities() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

func (s *Store[T]) CountEntities() int {
	return len(s.entities)
}

// ClearAllComponents empties the store keeping its capacity
func (s *Store[T]) ClearAllComponents() {
	clear(s.index)
	s.entities = s.entities[:0]
	var zero T
	for i := range s.values {
		s.values[i] = zero
	}
	s.values = s.values[:0]
}

// RemoveBatch drops several entities with a single compaction pass
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	removed := 0
	for _, e := range entities {
		if _, ok := s.index[e]; ok {
			delete(s.index, e)
			removed++
		}
	}
	if removed == 0 {
		return
	}

	w := 0
	for r, e := range s.entities {
		if _, keep := s.index[e]; !keep {
			continue
		}
		s.entities[w] = e
		s.values[w] = s.values[r]
		s.index[e] = w
		w++
	}
	var zero T
	for i := w; i < len(s.values); i++ {
		s.values[i] = zero
	}
	s.entities = s.entities[:w]
	s.values = s.values[:w]
}
