package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/skyfall/engine"
)

// GameView is the tview primitive showing the running game
// Mouse input inside the view is written to the world's InputResource in world coordinates
type GameView struct {
	*tview.Box

	world        *engine.World
	orchestrator *RenderOrchestrator
}

// NewGameView creates a game view over world drawing through orchestrator
func NewGameView(world *engine.World, orchestrator *RenderOrchestrator) *GameView {
	return &GameView{
		Box:          tview.NewBox(),
		world:        world,
		orchestrator: orchestrator,
	}
}

// Draw renders the current frame into the inner rectangle
func (v *GameView) Draw(screen tcell.Screen) {
	v.Box.DrawForSubclass(screen, v)
	x, y, w, h := v.GetInnerRect()
	if w <= 0 || h <= 0 {
		return
	}
	v.orchestrator.RenderFrame(screen, x, y, w, h)
}

// MouseHandler steers with the pointer and hides while the left button is held
func (v *GameView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return v.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		mx, my := event.Position()
		in := v.world.Resources.Input

		switch action {
		case tview.MouseLeftUp:
			// Release is honoured anywhere so a drag off the view cannot stick
			in.Release()
			return true, nil
		}

		if !v.InRect(mx, my) {
			return false, nil
		}

		v.moveCursor(mx, my)
		switch action {
		case tview.MouseLeftDown:
			setFocus(v)
			in.Press()
			return true, v
		case tview.MouseMove:
			return true, nil
		}
		return false, nil
	})
}

// moveCursor converts a screen position into world coordinates
func (v *GameView) moveCursor(mx, my int) {
	x, y, w, h := v.GetInnerRect()
	cfg := v.world.Resources.Config
	wx, wy := NewProjection(cfg.Width, cfg.Height, w, h).ToWorld(mx-x, my-y)
	v.world.Resources.Input.Move(wx, wy)
}
