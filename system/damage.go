package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
)

// DamageSystem resolves player contacts into plane launches, pickups and hit point loss
type DamageSystem struct {
	world   *engine.World
	factory *Factory

	statHits *atomic.Int64

	enabled bool
}

// NewDamageSystem creates a new damage system
func NewDamageSystem(world *engine.World, factory *Factory) engine.System {
	s := &DamageSystem{
		world:    world,
		factory:  factory,
		statHits: world.Resources.Status.Ints.Get("damage.hits"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *DamageSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *DamageSystem) Name() string {
	return "damage"
}

// Priority returns the system's priority
func (s *DamageSystem) Priority() int {
	return parameter.PriorityDamage
}

// EventTypes returns the event types DamageSystem handles
func (s *DamageSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCollisionStart,
	}
}

// HandleEvent applies the contact to the player
func (s *DamageSystem) HandleEvent(ev event.GameEvent) {
	if !s.enabled {
		return
	}
	payload, ok := ev.Payload.(*event.CollisionPayload)
	if !ok {
		return
	}

	c := &s.world.Components
	var player, other core.Entity
	switch {
	case c.Player.HasEntity(payload.A):
		player, other = payload.A, payload.B
	case c.Player.HasEntity(payload.B):
		player, other = payload.B, payload.A
	default:
		return
	}
	if !s.world.IsAlive(other) {
		return
	}

	switch {
	case c.PlaneSensor.HasEntity(other):
		s.launchPlane(other)
	case c.EnergyBar.HasEntity(other):
		s.pickup(player, other)
	case c.Damaging.HasEntity(other):
		s.hit(player)
	}
}

// Update implements System interface (no tick-based logic)
func (s *DamageSystem) Update() {}

func (s *DamageSystem) launchPlane(sensor core.Entity) {
	c := &s.world.Components
	ps, _ := c.PlaneSensor.GetComponent(sensor)
	pos, _ := c.Position.GetComponent(sensor)

	s.factory.SpawnPlane(ps.Dir, pos.Y)
	s.world.DestroyEntity(sensor)
	s.playSound(core.SoundPlane)
}

func (s *DamageSystem) pickup(player, bar core.Entity) {
	c := &s.world.Components
	s.world.DestroyEntity(bar)

	h, ok := c.Hidden.GetComponent(player)
	if !ok {
		return
	}
	if h.Energy > parameter.EnergyPickupHigh {
		h.Energy = parameter.EnergyMax
	} else {
		h.Energy += parameter.EnergyPickupAdd
	}
	c.Hidden.SetComponent(player, h)
	s.playSound(core.SoundPickup)
}

func (s *DamageSystem) hit(player core.Entity) {
	c := &s.world.Components
	settings := s.world.Resources.Config.Settings

	p, ok := c.Player.GetComponent(player)
	if !ok || p.HitPoints <= 0 {
		return
	}
	h, _ := c.Hidden.GetComponent(player)
	if h.Hit {
		return
	}

	p.HitPoints--
	c.Player.SetComponent(player, p)

	h.Hit = true
	h.HitEnergy = settings.HitResistance
	h.Hidden = true
	c.Hidden.SetComponent(player, h)
	c.Hitbox.RemoveEntity(player)

	s.statHits.Add(1)
	s.world.PushEvent(event.EventShakeRequest, &event.ShakeRequestPayload{Count: settings.ShakeCount()})

	if p.HitPoints <= 0 {
		log.Printf("[damage] player defeated at score %.0f", s.world.Resources.Session.Score)
		s.world.Resources.Transition.Request(event.EventGameOver, 0)
		s.playSound(core.SoundGameOver)
		return
	}
	s.playSound(core.SoundHit)
}

func (s *DamageSystem) playSound(sound core.SoundType) {
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: sound})
}
