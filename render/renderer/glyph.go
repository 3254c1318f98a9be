package renderer

import (
	"sort"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skyfall/component"
	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/render"
)

// GlyphRenderer draws every entity with a glyph, lower layers first
type GlyphRenderer struct {
	world *engine.World

	// Reused across frames
	order []glyphEntry
}

type glyphEntry struct {
	entity core.Entity
	glyph  component.GlyphComponent
	pos    component.PositionComponent
}

// NewGlyphRenderer creates a new glyph renderer
func NewGlyphRenderer(world *engine.World) *GlyphRenderer {
	return &GlyphRenderer{
		world: world,
	}
}

// Render draws all glyph entities centred on their projected position
func (r *GlyphRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	c := &r.world.Components

	r.order = r.order[:0]
	for _, e := range c.Glyph.GetAllEntities() {
		glyph, ok := c.Glyph.GetComponent(e)
		if !ok {
			continue
		}
		pos, ok := c.Position.GetComponent(e)
		if !ok {
			continue
		}
		r.order = append(r.order, glyphEntry{entity: e, glyph: glyph, pos: pos})
	}
	sort.SliceStable(r.order, func(i, j int) bool {
		return r.order[i].glyph.Layer < r.order[j].glyph.Layer
	})

	for _, g := range r.order {
		col, row, _ := ctx.WorldToCell(g.pos.X, g.pos.Y)
		if row < 0 || row >= ctx.Height {
			continue
		}

		fg := render.StyleColor(g.glyph.Style)
		attrs := tcell.AttrNone
		switch g.glyph.Style {
		case component.StylePlayer:
			attrs = tcell.AttrBold
		case component.StylePlayerHidden:
			fg = render.RgbBackground.Blend(fg, 0.6)
			attrs = tcell.AttrDim
		}

		start := col - utf8.RuneCountInString(g.glyph.Text)/2
		buf.SetString(start, row, g.glyph.Text, fg, attrs)
	}
}
