package ui

import (
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/game"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/render"
	"github.com/lixenwraith/skyfall/render/renderer"
)

// Page names, one per screen state
const (
	pageMenu     = "MainMenu"
	pageTutorial = "Tutorial"
	pageGame     = "Game"
	pageEnd      = "EndScreen"
)

// App binds the game to a tview application
// All game access happens on the tview event goroutine: input handlers run there
// and the frame ticker hops onto it through QueueUpdateDraw
type App struct {
	app   *tview.Application
	pages *tview.Pages
	game  *game.Game
	view  *render.GameView

	menu     *menuScreen
	tutorial *tutorialScreen
	end      *endScreen

	shown core.GameState

	stopOnce sync.Once
	stop     chan struct{}
}

// New builds every screen for g
func New(g *game.Game, debug bool) *App {
	a := &App{
		app:   tview.NewApplication(),
		pages: tview.NewPages(),
		game:  g,
		stop:  make(chan struct{}),
		shown: -1,
	}

	orchestrator := render.NewRenderOrchestrator(g.World)
	orchestrator.Register(renderer.NewGlyphRenderer(g.World), render.PriorityEntities)
	orchestrator.Register(renderer.NewHUDRenderer(g.World), render.PriorityUI)
	orchestrator.Register(renderer.NewStatusRenderer(g.World, debug), render.PriorityDebug)
	a.view = render.NewGameView(g.World, orchestrator)

	a.menu = newMenuScreen(a.click(g.RequestTutorial))
	a.tutorial = newTutorialScreen(a.click(g.RequestMenu))
	a.end = newEndScreen(a.click(g.RequestContinue))

	a.pages.
		AddPage(pageMenu, a.menu.root, true, true).
		AddPage(pageTutorial, a.tutorial.root, true, false).
		AddPage(pageGame, a.view, true, false).
		AddPage(pageEnd, a.end.root, true, false)

	a.app.SetRoot(a.pages, true).
		EnableMouse(true).
		SetMouseCapture(a.captureMouse).
		SetInputCapture(a.captureKey)

	a.sync()
	return a
}

// click wraps a button action with the click sound
func (a *App) click(action func()) func() {
	return func() {
		a.game.PlaySound(core.SoundClick)
		action()
	}
}

// captureMouse starts a run on any click in the main menu
// Buttons still receive the event afterwards, so a click on one replaces the pending play
func (a *App) captureMouse(ev *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
	if action == tview.MouseLeftClick && a.game.State() == core.StateMainMenu {
		a.game.RequestPlay()
	}
	return ev, action
}

// captureKey quits with q from any menu screen and with Esc from the main menu
func (a *App) captureKey(ev *tcell.EventKey) *tcell.EventKey {
	if a.game.InFrontend() && ev.Rune() == 'q' {
		a.Stop()
		return nil
	}

	switch a.game.State() {
	case core.StateMainMenu:
		if ev.Key() == tcell.KeyEscape {
			a.Stop()
			return nil
		}
	case core.StateTutorial:
		if ev.Key() == tcell.KeyEscape {
			a.game.RequestMenu()
			return nil
		}
	case core.StateGame:
		if ev.Key() == tcell.KeyCtrlC {
			a.Stop()
			return nil
		}
		// Keyboard has no role during a run
		return nil
	}
	return ev
}

// step advances one frame and follows screen changes
func (a *App) step() {
	a.game.Step()
	a.sync()
}

// sync shows the page matching the current state and refreshes its text
func (a *App) sync() {
	state := a.game.State()
	if state == a.shown {
		return
	}
	log.Printf("[ui] screen %s -> %s", a.shown, state)
	a.shown = state

	switch state {
	case core.StateMainMenu:
		a.menu.setBest(a.game.BestScore())
		a.pages.SwitchToPage(pageMenu)
		a.app.SetFocus(a.menu.tutorial)
	case core.StateTutorial:
		a.pages.SwitchToPage(pageTutorial)
		a.app.SetFocus(a.tutorial.back)
	case core.StateGame:
		a.pages.SwitchToPage(pageGame)
		a.app.SetFocus(a.view)
	case core.StateEndScreen:
		a.end.setResult(a.game.LastScore(), a.game.BestScore())
		a.pages.SwitchToPage(pageEnd)
		a.app.SetFocus(a.end.cont)
	}
}

// Run drives the frame ticker and blocks until the application exits
func (a *App) Run() error {
	core.SetCrashCleanup(a.app.Stop)
	defer core.SetCrashCleanup(nil)

	core.Go(func() {
		ticker := time.NewTicker(parameter.FrameUpdateInterval)
		defer ticker.Stop()
		for {
			select {
			case <-a.stop:
				return
			case <-ticker.C:
				a.app.QueueUpdateDraw(a.step)
			}
		}
	})

	err := a.app.Run()
	a.stopOnce.Do(func() { close(a.stop) })
	return err
}

// Stop ends the ticker and the application
func (a *App) Stop() {
	a.stopOnce.Do(func() { close(a.stop) })
	a.app.Stop()
}
