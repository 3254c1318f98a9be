package fsm

import (
	"time"

	"github.com/lixenwraith/skyfall/event"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is the generic Hierarchical Finite State Machine runtime
// T is the context type passed to actions and guards (e.g., *engine.World)
type Machine[T any] struct {
	// Graph data, immutable after load
	nodes map[StateID]*Node[T]

	// InitialStateID is stored during load for Init and Reset
	InitialStateID StateID

	// Runtime state
	activeStateID StateID       // Current leaf node
	timeInState   time.Duration // Time elapsed in current leaf
	activePath    []StateID     // Root -> ... -> Leaf

	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // EventTick = auto-transition
	Guard    GuardFunc[T]    // nil = always true
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args any // Pre-compiled args struct
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args any)

// EmitEventArgs is the compiled argument of the EmitEvent action
type EmitEventArgs struct {
	Type    event.EventType
	Payload any
}

// SetStateArgs is the compiled argument of actions naming a game state
type SetStateArgs struct {
	State string
}
