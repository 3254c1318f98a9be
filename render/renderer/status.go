package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/render"
)

// StatusRenderer prints the metric registry summary on the second row in debug mode
type StatusRenderer struct {
	world   *engine.World
	visible bool
}

// NewStatusRenderer creates a status line renderer, shown only when visible is set
func NewStatusRenderer(world *engine.World, visible bool) *StatusRenderer {
	return &StatusRenderer{
		world:   world,
		visible: visible,
	}
}

// IsVisible implements render.VisibilityToggle
func (r *StatusRenderer) IsVisible() bool {
	return r.visible
}

// Render draws the summary line
func (r *StatusRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Height < 3 {
		return
	}
	buf.SetString(1, 1, r.world.Resources.Status.Summary(), render.RgbDebugText, tcell.AttrDim)
}
