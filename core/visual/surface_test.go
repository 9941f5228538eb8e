package visual

import (
	"image/color"
	"math"
	"testing"
)

func TestNewSurfaceSnapsDegenerateDims(t *testing.T) {
	s := NewSurface(0, -5)
	w, h := s.Size()
	if w != 1 || h != 1 {
		t.Fatalf("degenerate dims must snap to 1x1, got %dx%d", w, h)
	}
}

func TestFillScreenFullAlphaCoversEveryPixel(t *testing.T) {
	s := NewSurface(4, 3)
	want := color.RGBA{R: 8, G: 10, B: 18, A: 255}
	s.FillScreen(want, 1)

	img := s.Image()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillScreenPartialAlphaLeavesTrail(t *testing.T) {
	s := NewSurface(2, 2)
	s.FillScreen(color.RGBA{R: 255, G: 255, B: 255, A: 255}, 1)
	s.FillScreen(color.RGBA{A: 255}, 0.1)

	// A 10% black veil over white must dim, not erase.
	got := s.Image().RGBAAt(0, 0)
	if got.R == 255 || got.R < 200 {
		t.Fatalf("expected a slightly dimmed pixel, got %v", got)
	}
}

func TestDrawingOffSurfaceIsSafe(t *testing.T) {
	s := NewSurface(8, 8)
	c := color.RGBA{R: 200, A: 255}

	s.FillCircle(-50, -50, 10, c, 1)
	s.FillCircle(100, 4, 30, c, 1)
	s.FillDiamond(4, 100, 5, 5, c, 1)
	s.FillRoundedRect(-20, 4, 6, 2, c, 1)
	s.DrawLine(-10, -10, 50, 50, c, 1)
	s.FillBlob(4, 4, math.NaN(), 0.2, 0, c, 1)
}

func TestHSLColorHueWrap(t *testing.T) {
	if got, want := hslColor(-30, 0.5, 0.5), hslColor(330, 0.5, 0.5); got != want {
		t.Fatalf("negative hue must wrap: %v vs %v", got, want)
	}
	if got, want := hslColor(400, 0.5, 0.5), hslColor(40, 0.5, 0.5); got != want {
		t.Fatalf("hue over 360 must wrap: %v vs %v", got, want)
	}
}

func TestHSLColorClampsSaturationAndLightness(t *testing.T) {
	if got := hslColor(120, math.NaN(), 2); got.A != 255 {
		t.Fatalf("hostile sat/light must still yield opaque color, got %v", got)
	}
	// Zero lightness is black regardless of hue.
	if got := hslColor(275, 0.8, -1); (got != color.RGBA{A: 255}) {
		t.Fatalf("clamped lightness 0 must be black, got %v", got)
	}
	// Full lightness is white.
	if got := hslColor(40, 0.8, 5); (got != color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("clamped lightness 1 must be white, got %v", got)
	}
}
