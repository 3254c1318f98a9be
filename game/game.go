package game

import (
	"fmt"
	"log"

	"github.com/lixenwraith/skyfall/asset"
	"github.com/lixenwraith/skyfall/config"
	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/persistence"
	"github.com/lixenwraith/skyfall/spawn"
	"github.com/lixenwraith/skyfall/system"
	"github.com/lixenwraith/skyfall/vmath"
)

// Options configures a new Game
type Options struct {
	Settings config.Settings
	Seed     uint64

	// Structures are appended to the default spawn table
	Structures []spawn.Structure
	// Sequence is played at the start of every run, nil for none
	Sequence *spawn.Structure

	// Audio is optional; nil runs silent
	Audio engine.AudioPlayer
	// Clock defaults to the system clock
	Clock engine.Clock
	// FSMConfig defaults to asset.DefaultScreenFSMConfig
	FSMConfig string
}

// Game owns the world, its systems and the scheduler driving them
type Game struct {
	World     *engine.World
	Scheduler *engine.Scheduler
	Factory   *system.Factory

	highScore *system.HighScoreSystem
	spawn     *system.SpawnSystem
}

// New wires every system into a fresh world and enters the main menu
func New(opts Options) (*Game, error) {
	event.InitRegistry()

	if err := opts.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewTimeProvider()
	}
	if opts.FSMConfig == "" {
		opts.FSMConfig = asset.DefaultScreenFSMConfig
	}

	world := engine.NewWorld()
	world.ApplySettings(opts.Settings, opts.Seed)

	engine.AddResource(world.ResourceStore, &engine.SpawnSourceResource{
		Structures: opts.Structures,
		Sequence:   opts.Sequence,
	})
	if opts.Audio != nil {
		opts.Audio.SetMuted(opts.Settings.Mute)
		engine.AddResource(world.ResourceStore, &engine.AudioResource{Player: opts.Audio})
	}

	// Separate streams so cosmetic stars and clouds do not perturb spawn sampling
	spawnRng := vmath.NewFastRand(opts.Seed)
	factory := system.NewFactory(world, vmath.NewFastRand(opts.Seed^0x9e3779b97f4a7c15))
	starRng := vmath.NewFastRand(opts.Seed ^ 0xbf58476d1ce4e5b9)
	cloudRng := vmath.NewFastRand(opts.Seed ^ 0x94d049bb133111eb)

	var store *persistence.Store
	if opts.Settings.ScoreFile != "" {
		store = persistence.NewStore(opts.Settings.ScoreFile)
	}

	g := &Game{
		World:   world,
		Factory: factory,
	}
	g.spawn = system.NewSpawnSystem(world, factory, spawnRng).(*system.SpawnSystem)
	g.highScore = system.NewHighScoreSystem(world, store).(*system.HighScoreSystem)

	systems := []engine.System{
		system.NewSpeedSystem(world),
		system.NewScoreSystem(world),
		system.NewPlayerSystem(world, factory),
		g.spawn,
		system.NewCloudSystem(world, factory, cloudRng),
		system.NewFallSystem(world),
		system.NewPlaneSystem(world),
		system.NewHomingSystem(world, factory),
		system.NewGravitySystem(world),
		system.NewStarSystem(world, factory, starRng),
		system.NewCollisionSystem(world),
		system.NewShakeSystem(world),
		system.NewDamageSystem(world, factory),
		system.NewSessionSystem(world),
		g.highScore,
		system.NewAudioSystem(world),
		system.NewTimerSystem(world),
		system.NewCullSystem(world),
	}
	for _, s := range systems {
		world.AddSystem(s)
	}

	g.Scheduler = engine.NewScheduler(world, opts.Clock)
	g.Scheduler.RegisterSystems()

	if err := g.Scheduler.LoadFSM(opts.FSMConfig, RegisterFSMComponents); err != nil {
		return nil, err
	}

	log.Printf("[game] ready: %d systems, %d extra structures, sequence=%v, seed=%d",
		len(systems), len(opts.Structures), opts.Sequence != nil, opts.Seed)
	return g, nil
}

// State returns the active screen
func (g *Game) State() core.GameState {
	return g.World.Resources.Game.Current
}

// Step advances the simulation by the wall-clock time since the previous Step
func (g *Game) Step() {
	g.Scheduler.Step()
}

// InFrontend reports whether a menu screen is showing
func (g *Game) InFrontend() bool {
	return g.Scheduler.FSM().IsActive("Frontend")
}

// PlaySound plays an effect right away instead of at the next tick
func (g *Game) PlaySound(sound core.SoundType) {
	g.World.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: sound})
	g.Scheduler.DispatchEventsImmediately()
}

// BestScore returns the persisted best score
func (g *Game) BestScore() int64 {
	return g.highScore.Best()
}

// LastScore returns the floored score of the most recent finished run
func (g *Game) LastScore() int64 {
	return g.highScore.Last()
}

// Score returns the floored score of the run in progress
func (g *Game) Score() int64 {
	return int64(g.World.Resources.Session.Score)
}

// === Screen flow requests ===

// RequestPlay starts a run after a short delay so the menu click is not read as game input
func (g *Game) RequestPlay() {
	g.World.Resources.Transition.Request(event.EventPlayRequest, parameter.PlayRequestDelay)
}

// RequestTutorial opens the tutorial immediately, replacing a pending play request
func (g *Game) RequestTutorial() {
	g.World.Resources.Transition.Request(event.EventTutorialRequest, 0)
}

// RequestMenu returns to the main menu immediately
func (g *Game) RequestMenu() {
	g.World.Resources.Transition.Request(event.EventMenuRequest, 0)
}

// RequestContinue leaves the end screen after a short delay
func (g *Game) RequestContinue() {
	g.World.Resources.Transition.Request(event.EventMenuRequest, parameter.ContinueRequestDelay)
}
