package render

import (
	"github.com/lixenwraith/skyfall/component"
)

// Palette
var (
	RgbBackground = RGB{12, 14, 32} // Night sky
	RgbBlack      = RGB{0, 0, 0}
	RgbWhite      = RGB{255, 255, 255}

	RgbPlayer       = RGB{255, 220, 120}
	RgbPlayerHidden = RGB{90, 90, 120}
	RgbHole         = RGB{140, 60, 200}
	RgbPlanet       = RGB{80, 170, 255}
	RgbRainbow      = RGB{255, 90, 200}
	RgbTrail        = RGB{255, 140, 220}
	RgbPlane        = RGB{220, 220, 220}
	RgbEnergyBar    = RGB{90, 255, 140}
	RgbBasic        = RGB{255, 120, 80}
	RgbStar         = RGB{255, 255, 160}
	RgbCloud        = RGB{70, 78, 110}

	RgbHUDText    = RGB{230, 230, 240}
	RgbHUDBg      = RGB{30, 32, 60}
	RgbEnergyLow  = RGB{200, 40, 40}
	RgbEnergyHigh = RGB{0, 220, 255}
	RgbHeart      = RGB{255, 60, 90}
	RgbDebugText  = RGB{150, 150, 150}
)

var styleColors = [...]RGB{
	component.StylePlayer:       RgbPlayer,
	component.StylePlayerHidden: RgbPlayerHidden,
	component.StyleHole:         RgbHole,
	component.StylePlanet:       RgbPlanet,
	component.StyleRainbow:      RgbRainbow,
	component.StyleTrail:        RgbTrail,
	component.StylePlane:        RgbPlane,
	component.StyleEnergyBar:    RgbEnergyBar,
	component.StyleBasic:        RgbBasic,
	component.StyleStar:         RgbStar,
	component.StyleCloud:        RgbCloud,
}

// StyleColor maps a glyph style to its foreground color
func StyleColor(s component.GlyphStyle) RGB {
	if s < 0 || int(s) >= len(styleColors) {
		return RgbWhite
	}
	return styleColors[s]
}

// EnergyColor returns the HUD energy gradient color for a 0..1 fill ratio
func EnergyColor(ratio float64) RGB {
	return RgbEnergyLow.Blend(RgbEnergyHigh, ratio)
}
