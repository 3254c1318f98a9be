package core

// Entity is an opaque handle into the world arena
// Low 32 bits hold the slot index, high 32 bits hold the slot generation
// Zero is never a live entity
type Entity uint64

// NewEntity packs an arena index and generation into a handle
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena slot of the handle
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation the handle was issued for
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}
