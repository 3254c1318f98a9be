package engine

import (
	"sync"

	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
)

// World contains all entities and their components using typed stores
// Entities are slots in a generational arena: destroying an entity bumps the slot
// generation so stale handles never resolve to a reused slot
type World struct {
	mu sync.RWMutex

	generations []uint32
	alive       []bool
	free        []uint32
	liveCount   int

	// Typed singleton resources, see Resource
	Resources Resource
	// Generic resource lookup for optional or service-provided resources
	ResourceStore *ResourceStore

	Components ComponentStore
	stores     []AnyStore

	eventQueue *event.EventQueue

	systems []System
}

// NewWorld creates a new ECS world with all component stores and core resources
func NewWorld() *World {
	w := &World{
		generations:   make([]uint32, 0, parameter.InitialEntityCapacity),
		alive:         make([]bool, 0, parameter.InitialEntityCapacity),
		ResourceStore: NewResourceStore(),
		systems:       make([]System, 0),
	}

	initComponentStores(w)
	initResources(w)

	return w
}

// CreateEntity allocates a fresh entity handle, reusing freed slots
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.generations))
		// Generation starts at 1 so the zero handle is never live
		w.generations = append(w.generations, 1)
		w.alive = append(w.alive, false)
	}

	w.alive[idx] = true
	w.liveCount++
	return core.NewEntity(idx, w.generations[idx])
}

// IsAlive reports whether the handle refers to a live entity of the current slot generation
func (w *World) IsAlive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.isAliveLocked(e)
}

func (w *World) isAliveLocked(e core.Entity) bool {
	idx := e.Index()
	if int(idx) >= len(w.generations) {
		return false
	}
	return w.alive[idx] && w.generations[idx] == e.Generation()
}

// DestroyEntity removes all components of an entity and retires its handle
// Stale or already destroyed handles are ignored
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	if !w.isAliveLocked(e) {
		w.mu.Unlock()
		return
	}
	idx := e.Index()
	w.alive[idx] = false
	w.generations[idx]++
	w.free = append(w.free, idx)
	w.liveCount--
	w.mu.Unlock()

	for _, s := range w.stores {
		s.RemoveEntity(e)
	}
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.liveCount
}

// Clear removes all entities and components from the world
// Slot generations advance so handles issued before Clear stay dead
func (w *World) Clear() {
	w.mu.Lock()
	w.free = w.free[:0]
	for i := range w.generations {
		if w.alive[i] {
			w.generations[i]++
			w.alive[i] = false
		}
		w.free = append(w.free, uint32(i))
	}
	w.liveCount = 0
	w.mu.Unlock()

	for _, s := range w.stores {
		s.ClearAllComponents()
	}
}

// AddSystem adds a system to the world and sorts by priority
// Systems with equal priority keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Bubble sort, small N, stable
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
// Used by the scheduler for event handler auto-registration
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially in priority order
func (w *World) Update() {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}
}

// FrameNumber returns the current frame index
func (w *World) FrameNumber() int64 {
	return w.Resources.Time.FrameNumber
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.FrameNumber(),
	})
}
