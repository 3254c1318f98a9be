package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skyfall/engine"
	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/render"
)

const energyBarCells = 20

// HUDRenderer draws score, speed and hit points on the top row and the energy meter on the bottom row
type HUDRenderer struct {
	world *engine.World
}

// NewHUDRenderer creates a new HUD renderer
func NewHUDRenderer(world *engine.World) *HUDRenderer {
	return &HUDRenderer{
		world: world,
	}
}

// Render draws both HUD rows
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Height < 2 {
		return
	}
	c := &r.world.Components
	session := r.world.Resources.Session

	for x := 0; x < ctx.Width; x++ {
		buf.SetBgOnly(x, 0, render.RgbHUDBg)
		buf.SetBgOnly(x, ctx.Height-1, render.RgbHUDBg)
	}

	top := fmt.Sprintf(" SCORE %d   SPEED %.2f   ", int64(math.Floor(session.Score)), session.Speed)
	x := buf.SetString(0, 0, top, render.RgbHUDText, tcell.AttrBold)

	var hp int
	var energy float64
	players := c.Player.GetAllEntities()
	if len(players) > 0 {
		p, _ := c.Player.GetComponent(players[0])
		h, _ := c.Hidden.GetComponent(players[0])
		hp, energy = p.HitPoints, h.Energy
	}
	buf.SetString(x, 0, strings.Repeat("♥", max(hp, 0)), render.RgbHeart, tcell.AttrNone)

	ratio := energy / parameter.EnergyMax
	filled := int(math.Round(ratio * energyBarCells))
	x = buf.SetString(0, ctx.Height-1, " ENERGY ", render.RgbHUDText, tcell.AttrNone)
	color := render.EnergyColor(ratio)
	for i := 0; i < energyBarCells; i++ {
		if i < filled {
			buf.SetWithBg(x+i, ctx.Height-1, '█', color, render.RgbHUDBg)
		} else {
			buf.SetWithBg(x+i, ctx.Height-1, '░', render.RgbPlayerHidden, render.RgbHUDBg)
		}
	}
	buf.SetString(x+energyBarCells+1, ctx.Height-1, fmt.Sprintf("%3.0f", energy), render.RgbHUDText, tcell.AttrNone)
}
