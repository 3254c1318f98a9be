package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the tick and redraw interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// MaxFrameDelta caps a single tick so a stalled terminal does not teleport objects
	MaxFrameDelta = 100 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023

	// InitialEntityCapacity pre-sizes the entity arena
	InitialEntityCapacity = 256
)
