package component

// GlyphComponent is the terminal representation of an entity
// Text is drawn centred on the projected position
type GlyphComponent struct {
	Text  string
	Style GlyphStyle
	Layer int // Higher draws later
}

// GlyphStyle selects a palette entry in the renderer
type GlyphStyle int

const (
	StylePlayer GlyphStyle = iota
	StylePlayerHidden
	StyleHole
	StylePlanet
	StyleRainbow
	StyleTrail
	StylePlane
	StyleEnergyBar
	StyleBasic
	StyleStar
	StyleCloud
)

// Draw layers
const (
	LayerCloud      = -10
	LayerBackground = 0
	LayerTrail      = 5
	LayerEnemy      = 10
	LayerPlayer     = 20
)
