package render

import (
	"github.com/lixenwraith/skyfall/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	DeltaTime   float64
	FrameNumber int64

	// Grid dimensions of the game view
	Width  int
	Height int

	// Horizontal screen shake in cells
	ShakeOffset int

	Projection Projection
}

// NewRenderContext creates a RenderContext for a width x height cell view of world
func NewRenderContext(world *engine.World, width, height int) RenderContext {
	cfg := world.Resources.Config
	return RenderContext{
		DeltaTime:   world.Resources.Time.Seconds(),
		FrameNumber: world.Resources.Time.FrameNumber,
		Width:       width,
		Height:      height,
		ShakeOffset: world.Resources.Shake.Offset,
		Projection:  NewProjection(cfg.Width, cfg.Height, width, height),
	}
}

// WorldToCell projects a world point and applies the shake offset
func (rc *RenderContext) WorldToCell(x, y float64) (int, int, bool) {
	col, row, _ := rc.Projection.ToCell(x, y)
	col += rc.ShakeOffset
	visible := col >= 0 && col < rc.Width && row >= 0 && row < rc.Height
	return col, row, visible
}
