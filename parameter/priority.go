package parameter

// System Execution Priorities (lower runs first)
const (
	PrioritySpeed     = 10
	PriorityScore     = 20
	PriorityPlayer    = 30 // Input, hide and grace before anything moves
	PrioritySpawn     = 40
	PriorityCloud     = 45
	PriorityFall      = 50
	PriorityPlane     = 60
	PriorityHoming    = 70
	PriorityGravity   = 80 // After movers, pulls the player toward final positions
	PriorityStar      = 90
	PriorityCollision = 100 // After all movement
	PriorityShake     = 200
	PriorityDamage    = 300 // Event driven, no per-tick work
	PrioritySession   = 310
	PriorityHighScore = 320
	PriorityAudio     = 330
	PriorityTimer     = 900 // After game logic
	PriorityCull      = 1000
)
