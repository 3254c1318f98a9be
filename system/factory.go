package system

import (
	"time"

	"github.com/lixenwraith/skyfall/component"
	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/physics"
	"github.com/lixenwraith/skyfall/spawn"
	"github.com/lixenwraith/skyfall/vmath"
)

// Factory instantiates entity templates for every spawnable kind
// Shared by the spawn table, collision reactions and trail emitters
type Factory struct {
	world *engine.World
	rng   *vmath.FastRand
}

// NewFactory creates a factory drawing random placement from rng
func NewFactory(world *engine.World, rng *vmath.FastRand) *Factory {
	return &Factory{world: world, rng: rng}
}

// basicTemplate is the look and hitbox of one basic variant
type basicTemplate struct {
	text  string
	shape physics.Shape
}

var basicTemplates = [...]basicTemplate{
	spawn.VariantChocolate:       {"[#]", physics.Box(parameter.BasicBoxHalfW, parameter.BasicBoxHalfH)},
	spawn.VariantBrokenChocolate: {"[%", physics.Box(parameter.BasicBoxHalfW, parameter.BasicBoxHalfH)},
	spawn.VariantEgg:             {"()", physics.Circle(parameter.BasicRadius)},
	spawn.VariantLollipop:        {"-o", physics.Circle(parameter.BasicRadius)},
	spawn.VariantHeart:           {"<3", physics.Circle(parameter.BasicRadius)},
	spawn.VariantDrink:           {"|U|", physics.Box(parameter.BasicThinHalfW, parameter.BasicThinHalfH)},
}

// DefaultHeight returns the spawn y used when an offset carries none
func DefaultHeight(kind spawn.EnemyKind) float64 {
	switch kind {
	case spawn.KindEnergyBar, spawn.KindPlane:
		return parameter.SpawnHeightLow
	default:
		return parameter.SpawnHeight
	}
}

// SpawnOffset resolves missing coordinates and spawns one structure offset
func (f *Factory) SpawnOffset(o spawn.Offset) core.Entity {
	cfg := f.world.Resources.Config

	x := f.rng.Range(-cfg.HalfWidth(), cfg.HalfWidth())
	if o.X != nil {
		x = float64(*o.X)
	}
	y := DefaultHeight(o.Kind)
	if o.Y != nil {
		y = float64(*o.Y)
	}
	return f.Spawn(o.Kind, o.Variant, o.Dir, x, y)
}

// Spawn creates the template for kind at (x, y)
// VariantAny and DirAny are resolved randomly
func (f *Factory) Spawn(kind spawn.EnemyKind, variant spawn.BasicVariant, dir spawn.Direction, x, y float64) core.Entity {
	switch kind {
	case spawn.KindHole:
		return f.spawnHole(x, y)
	case spawn.KindEnergyBar:
		return f.spawnEnergyBar(x, y)
	case spawn.KindRainbow:
		return f.spawnRainbow(x, y)
	case spawn.KindPlane:
		return f.spawnPlaneSensor(y, f.resolveDir(dir))
	case spawn.KindBasic:
		return f.spawnBasic(x, y, f.resolveVariant(variant))
	default:
		return f.spawnPlanet(x, y)
	}
}

func (f *Factory) resolveVariant(v spawn.BasicVariant) spawn.BasicVariant {
	if v == spawn.VariantAny || int(v) >= len(basicTemplates) {
		return spawn.BasicVariant(1 + f.rng.Intn(spawn.BasicVariantCount))
	}
	return v
}

func (f *Factory) resolveDir(d spawn.Direction) component.PlaneDir {
	switch d {
	case spawn.DirLeft:
		return component.PlaneLeft
	case spawn.DirRight:
		return component.PlaneRight
	}
	if f.rng.Chance(0.5) {
		return component.PlaneLeft
	}
	return component.PlaneRight
}

// faller starts an entity with the parts every falling enemy shares
func (f *Factory) faller(kind spawn.EnemyKind, x, y, rate float64, lifetime time.Duration, scaled bool) *engine.EntityBuilder {
	c := &f.world.Components
	eb := f.world.NewEntity()
	engine.With(eb, c.Position, component.PositionComponent{X: x, Y: y})
	engine.With(eb, c.Kinetic, component.KineticComponent{})
	engine.With(eb, c.Enemy, component.EnemyComponent{Kind: kind})
	engine.With(eb, c.Falling, component.FallingComponent{Rate: rate})
	engine.With(eb, c.Timer, component.TimerComponent{Remaining: lifetime, SpeedScaled: scaled})
	return eb
}

func (f *Factory) spawnHole(x, y float64) core.Entity {
	c := &f.world.Components
	eb := f.faller(spawn.KindHole, x, y, 1, parameter.LifetimeDefault, true)
	engine.With(eb, c.Glyph, component.GlyphComponent{Text: "(@)", Style: component.StyleHole, Layer: component.LayerEnemy})
	engine.With(eb, c.Gravitating, component.GravitatingComponent{Strength: parameter.HoleStrength})
	return eb.Build()
}

func (f *Factory) spawnPlanet(x, y float64) core.Entity {
	c := &f.world.Components
	eb := f.faller(spawn.KindPlanet, x, y, 1, parameter.LifetimeDefault, true)
	engine.With(eb, c.Glyph, component.GlyphComponent{Text: "(O)", Style: component.StylePlanet, Layer: component.LayerEnemy})
	engine.With(eb, c.Hitbox, component.HitboxComponent{Shape: physics.Circle(parameter.PlanetRadius)})
	engine.With(eb, c.Gravitating, component.GravitatingComponent{Strength: parameter.PlanetStrength})
	return eb.Build()
}

func (f *Factory) spawnEnergyBar(x, y float64) core.Entity {
	c := &f.world.Components
	eb := f.faller(spawn.KindEnergyBar, x, y, 1, parameter.LifetimeEnergyBar, true)
	engine.With(eb, c.Glyph, component.GlyphComponent{Text: "[+]", Style: component.StyleEnergyBar, Layer: component.LayerEnemy})
	engine.With(eb, c.Hitbox, component.HitboxComponent{Shape: physics.Box(parameter.EnergyBarHalfW, parameter.EnergyBarHalfH)})
	engine.With(eb, c.EnergyBar, component.EnergyBarComponent{})
	return eb.Build()
}

// spawnRainbow creates the homing emitter; it has no hitbox, only its trail hurts
func (f *Factory) spawnRainbow(x, y float64) core.Entity {
	c := &f.world.Components
	eb := f.world.NewEntity()
	engine.With(eb, c.Position, component.PositionComponent{X: x, Y: y})
	engine.With(eb, c.Kinetic, component.KineticComponent{})
	engine.With(eb, c.Enemy, component.EnemyComponent{Kind: spawn.KindRainbow})
	engine.With(eb, c.Glyph, component.GlyphComponent{Text: "~=~", Style: component.StyleRainbow, Layer: component.LayerEnemy})
	engine.With(eb, c.Damaging, component.DamagingComponent{})
	engine.With(eb, c.Homing, component.HomingComponent{})
	engine.With(eb, c.Timer, component.TimerComponent{Remaining: parameter.LifetimeRainbow})
	return eb.Build()
}

func (f *Factory) spawnBasic(x, y float64, v spawn.BasicVariant) core.Entity {
	c := &f.world.Components
	tpl := basicTemplates[v]
	eb := f.faller(spawn.KindBasic, x, y, 1, parameter.LifetimeDefault, true)
	engine.With(eb, c.Enemy, component.EnemyComponent{Kind: spawn.KindBasic, Variant: v})
	engine.With(eb, c.Glyph, component.GlyphComponent{Text: tpl.text, Style: component.StyleBasic, Layer: component.LayerEnemy})
	engine.With(eb, c.Hitbox, component.HitboxComponent{Shape: tpl.shape})
	engine.With(eb, c.Damaging, component.DamagingComponent{})
	return eb.Build()
}

// spawnPlaneSensor creates the invisible full-width trip line that launches a plane
func (f *Factory) spawnPlaneSensor(y float64, dir component.PlaneDir) core.Entity {
	c := &f.world.Components
	eb := f.faller(spawn.KindPlane, 0, y, 1, parameter.LifetimeDefault, true)
	engine.With(eb, c.Hitbox, component.HitboxComponent{Shape: physics.Box(parameter.SensorHalfW, parameter.SensorHalfH)})
	engine.With(eb, c.PlaneSensor, component.PlaneSensorComponent{Dir: dir})
	return eb.Build()
}

// SpawnPlane launches a plane from outside the viewport edge opposite its heading
func (f *Factory) SpawnPlane(dir component.PlaneDir, sensorY float64) core.Entity {
	c := &f.world.Components
	cfg := f.world.Resources.Config

	x := -float64(dir) * (cfg.HalfWidth() + parameter.PlaneLaunchPad)
	y := sensorY + parameter.PlaneLaunchRise

	text := ">=>"
	if dir == component.PlaneLeft {
		text = "<=<"
	}

	eb := f.faller(spawn.KindPlane, x, y, parameter.PlaneFallRate, parameter.LifetimePlane, false)
	engine.With(eb, c.Kinetic, component.KineticComponent{VX: float64(dir) * parameter.PlaneSpeedX})
	engine.With(eb, c.Glyph, component.GlyphComponent{Text: text, Style: component.StylePlane, Layer: component.LayerEnemy})
	engine.With(eb, c.Hitbox, component.HitboxComponent{Shape: physics.Box(parameter.PlaneHalfW, parameter.PlaneHalfH)})
	engine.With(eb, c.Damaging, component.DamagingComponent{})
	engine.With(eb, c.Plane, component.PlaneComponent{Dir: dir})
	return eb.Build()
}

// SpawnTrail drops a stationary damaging hazard
func (f *Factory) SpawnTrail(x, y float64) core.Entity {
	c := &f.world.Components
	eb := f.world.NewEntity()
	engine.With(eb, c.Position, component.PositionComponent{X: x, Y: y})
	engine.With(eb, c.Glyph, component.GlyphComponent{Text: "~", Style: component.StyleTrail, Layer: component.LayerTrail})
	engine.With(eb, c.Hitbox, component.HitboxComponent{Shape: physics.Box(parameter.TrailHalfW, parameter.TrailHalfH)})
	engine.With(eb, c.Falling, component.FallingComponent{Rate: 0})
	engine.With(eb, c.Damaging, component.DamagingComponent{})
	engine.With(eb, c.Trail, component.TrailComponent{})
	engine.With(eb, c.Timer, component.TimerComponent{Remaining: parameter.LifetimeTrail})
	return eb.Build()
}

// SpawnStar drops a decorative sparkle
func (f *Factory) SpawnStar(x, y float64) core.Entity {
	c := &f.world.Components
	eb := f.world.NewEntity()
	engine.With(eb, c.Position, component.PositionComponent{X: x, Y: y})
	engine.With(eb, c.Glyph, component.GlyphComponent{Text: "*", Style: component.StyleStar, Layer: component.LayerBackground})
	engine.With(eb, c.Star, component.StarComponent{})
	engine.With(eb, c.Timer, component.TimerComponent{Remaining: parameter.StarLifetime})
	return eb.Build()
}

// cloudShapes are the background cloud silhouettes, small to large
var cloudShapes = [...]string{
	"~", "~~", "(~)", "(~~)", "(~~~)", "(~~~~)", "((~~~))", "((~~~~~))",
}

// SpawnCloud creates a background cloud that falls at scroll speed and dies on a scaled timer
// shape indexes cloudShapes modulo its length
func (f *Factory) SpawnCloud(x, y float64, shape int) core.Entity {
	c := &f.world.Components
	text := cloudShapes[shape%len(cloudShapes)]

	eb := f.world.NewEntity()
	engine.With(eb, c.Position, component.PositionComponent{X: x, Y: y})
	engine.With(eb, c.Glyph, component.GlyphComponent{Text: text, Style: component.StyleCloud, Layer: component.LayerCloud})
	engine.With(eb, c.Cloud, component.CloudComponent{})
	engine.With(eb, c.Falling, component.FallingComponent{Rate: 1})
	engine.With(eb, c.Timer, component.TimerComponent{Remaining: parameter.CloudLifetime, SpeedScaled: true})
	return eb.Build()
}

// SpawnPlayer creates the player at the start position with full energy
func (f *Factory) SpawnPlayer() core.Entity {
	c := &f.world.Components
	settings := f.world.Resources.Config.Settings

	eb := f.world.NewEntity()
	engine.With(eb, c.Position, component.PositionComponent{X: 0, Y: parameter.PlayerStartY})
	engine.With(eb, c.Kinetic, component.KineticComponent{})
	engine.With(eb, c.Glyph, component.GlyphComponent{Text: "/^\\", Style: component.StylePlayer, Layer: component.LayerPlayer})
	engine.With(eb, c.Hitbox, component.HitboxComponent{Shape: playerShape()})
	engine.With(eb, c.Player, component.PlayerComponent{HitPoints: settings.HitPoints})
	engine.With(eb, c.Hidden, component.HiddenComponent{Energy: parameter.EnergyMax})
	return eb.Build()
}

func playerShape() physics.Shape {
	return physics.Circle(parameter.PlayerRadius)
}

// findPlayer returns the live player entity
func findPlayer(w *engine.World) (core.Entity, bool) {
	players := w.Components.Player.GetAllEntities()
	if len(players) == 0 {
		return 0, false
	}
	return players[0], true
}
