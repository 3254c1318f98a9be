package game

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/skyfall/config"
	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/event"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/persistence"
	"github.com/lixenwraith/skyfall/spawn"
)

const tick = 33 * time.Millisecond

type recordingPlayer struct {
	sounds  []core.SoundType
	playing bool
	muted   bool
}

func (p *recordingPlayer) Play(s core.SoundType) { p.sounds = append(p.sounds, s) }
func (p *recordingPlayer) SetMusic(on bool)      { p.playing = on }
func (p *recordingPlayer) SetMuted(m bool)       { p.muted = m }
func (p *recordingPlayer) IsMuted() bool         { return p.muted }

func newTestGame(t *testing.T) (*Game, *recordingPlayer) {
	t.Helper()
	settings := config.Default()
	settings.ScoreFile = filepath.Join(t.TempDir(), "scores.yaml")

	audio := &recordingPlayer{}
	g, err := New(Options{
		Settings: settings,
		Seed:     42,
		Audio:    audio,
		Clock:    engine.NewMockTimeProvider(time.Unix(0, 0)),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g, audio
}

func TestStartsAtMainMenu(t *testing.T) {
	g, _ := newTestGame(t)
	if g.State() != core.StateMainMenu {
		t.Errorf("Expected MainMenu, got %s", g.State())
	}
	if g.BestScore() != 0 {
		t.Errorf("Expected best 0 on a fresh store, got %d", g.BestScore())
	}
}

func TestPlayAfterDelay(t *testing.T) {
	g, audio := newTestGame(t)

	g.RequestPlay()
	g.Scheduler.Tick(tick)
	if g.State() != core.StateMainMenu {
		t.Fatalf("Expected play to wait %v, got %s after %v", parameter.PlayRequestDelay, g.State(), tick)
	}

	g.Scheduler.Tick(tick)
	if g.State() != core.StateGame {
		t.Fatalf("Expected Game, got %s", g.State())
	}
	if g.World.Components.Player.CountEntities() != 1 {
		t.Error("Expected a player on game start")
	}
	if !audio.playing {
		t.Error("Expected music to start with the run")
	}
	if g.World.Resources.Session.RunID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("Expected a run ID")
	}
}

func TestTutorialCancelsPendingPlay(t *testing.T) {
	g, _ := newTestGame(t)

	g.RequestPlay()
	g.RequestTutorial()
	g.Scheduler.Tick(tick)
	if g.State() != core.StateTutorial {
		t.Fatalf("Expected Tutorial, got %s", g.State())
	}

	for i := 0; i < 5; i++ {
		g.Scheduler.Tick(tick)
	}
	if g.State() != core.StateTutorial {
		t.Errorf("Expected the play request to be dropped, got %s", g.State())
	}

	g.RequestMenu()
	g.Scheduler.Tick(tick)
	if g.State() != core.StateMainMenu {
		t.Errorf("Expected MainMenu after back, got %s", g.State())
	}
}

func TestLastHitEndsRunSameTick(t *testing.T) {
	g, audio := newTestGame(t)
	w := g.World

	g.RequestPlay()
	g.Scheduler.Tick(tick)
	g.Scheduler.Tick(tick)

	player := w.Components.Player.GetAllEntities()[0]
	p, _ := w.Components.Player.GetComponent(player)
	p.HitPoints = 1
	w.Components.Player.SetComponent(player, p)

	// Hold the cursor on the player so it stays put
	w.Resources.Input.Move(0, parameter.PlayerStartY)
	g.Factory.Spawn(spawn.KindBasic, spawn.VariantEgg, spawn.DirAny, 0, parameter.PlayerStartY)

	g.Scheduler.Tick(tick)
	if g.State() != core.StateEndScreen {
		t.Fatalf("Expected EndScreen in the same tick, got %s", g.State())
	}
	if w.EntityCount() != 0 {
		t.Errorf("Expected the world cleared on exit, got %d entities", w.EntityCount())
	}
	if audio.playing {
		t.Error("Expected music stopped on exit")
	}
	if n := len(audio.sounds); n == 0 || audio.sounds[n-1] != core.SoundGameOver {
		t.Errorf("Expected game over sound, got %v", audio.sounds)
	}

	best := g.BestScore()
	if best < int64(parameter.StartupScore) || best != g.LastScore() {
		t.Errorf("Expected best score from the run, got best %d last %d", best, g.LastScore())
	}
	stored, err := persistence.NewStore(w.Resources.Config.Settings.ScoreFile).GetInt(parameter.HighScoreKey)
	if err != nil || stored != best {
		t.Errorf("Expected stored highscore %d, got %d (%v)", best, stored, err)
	}

	g.RequestContinue()
	for i := 0; i < 3; i++ {
		g.Scheduler.Tick(tick)
	}
	if g.State() != core.StateEndScreen {
		t.Fatalf("Expected continue to wait %v, got %s", parameter.ContinueRequestDelay, g.State())
	}
	g.Scheduler.Tick(tick)
	if g.State() != core.StateMainMenu {
		t.Fatalf("Expected MainMenu after continue, got %s", g.State())
	}
	if w.Resources.Session.Score != parameter.StartupScore || w.Resources.Session.Speed != parameter.StartupSpeed {
		t.Errorf("Expected session reset, got score %.2f speed %.2f", w.Resources.Session.Score, w.Resources.Session.Speed)
	}
}

func TestGameOverIgnoredWhilePlayerAlive(t *testing.T) {
	g, _ := newTestGame(t)

	g.RequestPlay()
	g.Scheduler.Tick(tick)
	g.Scheduler.Tick(tick)

	// Hit points remain, so the guarded edge must not fire
	g.World.Resources.Transition.Request(event.EventGameOver, 0)
	g.Scheduler.Tick(tick)
	if g.State() != core.StateGame {
		t.Errorf("Expected guard to keep the run going, got %s", g.State())
	}
}

func TestInvalidSettingsRejected(t *testing.T) {
	settings := config.Default()
	settings.HitPoints = 0
	if _, err := New(Options{Settings: settings}); err == nil {
		t.Error("Expected invalid settings to be rejected")
	}
}

func TestPlaySoundIsImmediate(t *testing.T) {
	g, audio := newTestGame(t)

	g.PlaySound(core.SoundClick)
	if len(audio.sounds) != 1 || audio.sounds[0] != core.SoundClick {
		t.Errorf("Expected click played without a tick, got %v", audio.sounds)
	}
}

func TestInFrontend(t *testing.T) {
	g, _ := newTestGame(t)
	if !g.InFrontend() {
		t.Error("Expected main menu to be part of the frontend")
	}

	g.RequestTutorial()
	g.Scheduler.Tick(tick)
	if !g.InFrontend() {
		t.Error("Expected tutorial to be part of the frontend")
	}

	g.RequestMenu()
	g.Scheduler.Tick(tick)
	g.RequestPlay()
	g.Scheduler.Tick(tick)
	g.Scheduler.Tick(tick)
	if g.State() != core.StateGame || g.InFrontend() {
		t.Errorf("Expected a run outside the frontend, got %s", g.State())
	}
}
