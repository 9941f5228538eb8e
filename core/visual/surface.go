package visual

import (
	"image"
	"image/color"
	"math"
)

// Surface is a CPU-rasterized RGBA drawing target. Every primitive blends
// source-over with an explicit alpha in [0,1]; out-of-bounds pixels are
// silently skipped, so callers never need to pre-clip.
type Surface struct {
	img  *image.RGBA
	w, h int
}

// NewSurface allocates a surface. Degenerate dimensions snap to 1x1 rather
// than erroring; the visualizer must keep drawing through hostile input.
func NewSurface(w, h int) *Surface {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h)), w: w, h: h}
}

// Size returns the pixel dimensions.
func (s *Surface) Size() (int, int) {
	return s.w, s.h
}

// Image exposes the backing frame for encoding. Treat it as read-only between
// ticks.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// blendPixel source-over blends c into (x, y) at the given alpha.
func (s *Surface) blendPixel(x, y int, c color.RGBA, alpha float64) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h || alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	i := s.img.PixOffset(x, y)
	pix := s.img.Pix
	pix[i] = uint8(float64(c.R)*alpha + float64(pix[i])*(1-alpha))
	pix[i+1] = uint8(float64(c.G)*alpha + float64(pix[i+1])*(1-alpha))
	pix[i+2] = uint8(float64(c.B)*alpha + float64(pix[i+2])*(1-alpha))
	pix[i+3] = 255
}

// FillScreen covers the whole surface with c at the given alpha. Partial
// alpha over previous frames is what produces motion trails.
func (s *Surface) FillScreen(c color.RGBA, alpha float64) {
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			s.blendPixel(x, y, c, alpha)
		}
	}
}

// FillBlob fills an ellipse whose radius wobbles with angle — the organic
// particle shape. wobble is the relative amplitude; phase rotates the lobes.
func (s *Surface) FillBlob(cx, cy, r, wobble, phase float64, c color.RGBA, alpha float64) {
	if r <= 0 || math.IsNaN(r) {
		return
	}
	maxR := r * (1 + math.Abs(wobble))
	for y := int(cy - maxR); y <= int(cy+maxR); y++ {
		for x := int(cx - maxR); x <= int(cx+maxR); x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			dist := math.Hypot(dx, dy)
			if dist > maxR {
				continue
			}
			angle := math.Atan2(dy, dx)
			edge := r * (1 + wobble*math.Sin(3*angle+phase))
			if dist <= edge {
				s.blendPixel(x, y, c, alpha)
			}
		}
	}
}

// FillCircle fills a plain disc; the glow pass uses it with large radii and
// low alpha.
func (s *Surface) FillCircle(cx, cy, r float64, c color.RGBA, alpha float64) {
	s.FillBlob(cx, cy, r, 0, 0, c, alpha)
}

// FillDiamond fills a rhombus with half-diagonals rx and ry.
func (s *Surface) FillDiamond(cx, cy, rx, ry float64, c color.RGBA, alpha float64) {
	if rx <= 0 || ry <= 0 || math.IsNaN(rx) || math.IsNaN(ry) {
		return
	}
	for y := int(cy - ry); y <= int(cy+ry); y++ {
		for x := int(cx - rx); x <= int(cx+rx); x++ {
			dx := math.Abs(float64(x)-cx) / rx
			dy := math.Abs(float64(y)-cy) / ry
			if dx+dy <= 1 {
				s.blendPixel(x, y, c, alpha)
			}
		}
	}
}

// FillRoundedRect fills a square of half-extent r with corner radius corner.
func (s *Surface) FillRoundedRect(cx, cy, r, corner float64, c color.RGBA, alpha float64) {
	if r <= 0 || math.IsNaN(r) {
		return
	}
	if corner > r {
		corner = r
	}
	for y := int(cy - r); y <= int(cy+r); y++ {
		for x := int(cx - r); x <= int(cx+r); x++ {
			dx := math.Abs(float64(x) - cx)
			dy := math.Abs(float64(y) - cy)
			if dx > r || dy > r {
				continue
			}
			// Corner test: inside unless beyond the corner circle.
			if dx > r-corner && dy > r-corner {
				if math.Hypot(dx-(r-corner), dy-(r-corner)) > corner {
					continue
				}
			}
			s.blendPixel(x, y, c, alpha)
		}
	}
}

// DrawLine draws a 1px line by sampling along the segment.
func (s *Surface) DrawLine(x0, y0, x1, y1 float64, c color.RGBA, alpha float64) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)))
	if steps < 1 {
		s.blendPixel(int(x0), int(y0), c, alpha)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.blendPixel(int(x0+(x1-x0)*t), int(y0+(y1-y0)*t), c, alpha)
	}
}

// hslColor converts HSL (hue in degrees, s and l in [0,1]) to RGBA. Hue wraps
// and s/l clamp, so no feature combination can produce an invalid channel.
func hslColor(h, sat, light float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	sat = clampUnit(sat)
	light = clampUnit(light)

	c := (1 - math.Abs(2*light-1)) * sat
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := light - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
