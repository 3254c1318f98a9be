package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBufferClipsOutOfBounds(t *testing.T) {
	b := NewRenderBuffer(4, 2)
	b.SetWithBg(-1, 0, 'x', RgbWhite, RgbBlack)
	b.SetWithBg(4, 1, 'x', RgbWhite, RgbBlack)

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if r := b.Cell(x, y).Rune; r != 0 {
				t.Errorf("Expected empty cell at (%d,%d), got %q", x, y, r)
			}
		}
	}
}

func TestBufferSetString(t *testing.T) {
	b := NewRenderBuffer(5, 1)
	next := b.SetString(3, 0, "abc", RgbWhite, tcell.AttrNone)

	if next != 6 {
		t.Errorf("Expected next column 6, got %d", next)
	}
	if b.Cell(3, 0).Rune != 'a' || b.Cell(4, 0).Rune != 'b' {
		t.Errorf("Expected \"ab\" written before the edge, got %q%q", b.Cell(3, 0).Rune, b.Cell(4, 0).Rune)
	}
}

func TestBufferClearAfterResize(t *testing.T) {
	b := NewRenderBuffer(3, 3)
	b.SetWithBg(1, 1, '#', RgbWhite, RgbBlack)
	b.Resize(2, 2)

	if w, h := b.Size(); w != 2 || h != 2 {
		t.Fatalf("Expected 2x2, got %dx%d", w, h)
	}
	if b.Cell(1, 1).Rune != 0 {
		t.Error("Expected resize to clear cells")
	}
}

func TestBlendModes(t *testing.T) {
	dst := RGB{100, 100, 100}
	src := RGB{200, 50, 0}

	if got := BlendReplace.apply(dst, src, 0.5); got != src {
		t.Errorf("Replace: expected %v, got %v", src, got)
	}
	if got := BlendMax.apply(dst, src, 0); got != (RGB{200, 100, 100}) {
		t.Errorf("Max: expected {200 100 100}, got %v", got)
	}
	if got := BlendAdd.apply(dst, src, 0); got != (RGB{255, 150, 100}) {
		t.Errorf("Add: expected {255 150 100}, got %v", got)
	}
	if got := BlendAlpha.apply(dst, src, 0.5); got != (RGB{150, 75, 50}) {
		t.Errorf("Alpha: expected {150 75 50}, got %v", got)
	}
}

func TestEnergyColorEnds(t *testing.T) {
	if got := EnergyColor(0); got != RgbEnergyLow {
		t.Errorf("Expected low color at 0, got %v", got)
	}
	if got := EnergyColor(1); got != RgbEnergyHigh {
		t.Errorf("Expected high color at 1, got %v", got)
	}
}
