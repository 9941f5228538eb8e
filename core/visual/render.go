package visual

import (
	"image/color"
	"math"
)

// Rendering tuning. Hues map low valence to blue/purple and high valence to
// warm orange; the shared pulse is a sine whose frequency tracks tempo.
const (
	trailBaseAlpha   = 0.08
	trailEnergyAlpha = 0.15
	hueBase          = 240.0
	hueValenceSpan   = 210.0
	hueLifeSpread    = 40.0
	glowEnergyCutoff = 0.6
	linkDanceCutoff  = 0.5
	linkSampleStride = 7
	diamondCutoff    = 0.3 // instrumentalness above this draws diamonds
	pulseBaseHz      = 0.8
	pulseTempoSpanHz = 5.2
)

var backgroundColor = color.RGBA{R: 8, G: 10, B: 18, A: 255}

// renderFrame draws one tick. Deterministic given the current features, the
// elapsed time and the particle states; all randomness lives in the particle
// step, not here.
func renderFrame(s *Surface, cur Features, particles []Particle, elapsed float64) {
	// Low energy leaves long motion trails, high energy wipes them fast.
	s.FillScreen(backgroundColor, trailBaseAlpha+(1-cur.Energy)*trailEnergyAlpha)

	pulse := math.Sin(elapsed * (pulseBaseHz + cur.TempoNorm*pulseTempoSpanHz) * 2 * math.Pi)
	baseHue := hueBase - cur.Valence*hueValenceSpan
	sizeScale := 1 + 0.2*pulse
	light := clampUnit(0.45 + 0.12*pulse + 0.2*cur.LoudnessNorm)
	glow := cur.Energy > glowEnergyCutoff

	for i := range particles {
		p := &particles[i]
		hue := baseHue + (p.Life-0.5)*hueLifeSpread
		col := hslColor(hue, 0.8, light)
		size := p.Size * sizeScale

		if glow {
			s.FillCircle(p.X, p.Y, size*2.6, col, 0.08)
		}

		switch {
		case p.Organic:
			wobble := 0.12 + cur.Acousticness*0.35
			s.FillBlob(p.X, p.Y, size, wobble, p.Phase, col, 0.85)
		case cur.Instrumentalness > diamondCutoff:
			s.FillDiamond(p.X, p.Y, size*1.2, size*1.2, col, 0.85)
		default:
			s.FillRoundedRect(p.X, p.Y, size, size*0.4, col, 0.85)
		}
	}

	if cur.Danceability > linkDanceCutoff {
		drawLinks(s, cur, particles, baseHue)
	}
}

// drawLinks draws faint lines between close particles. Only a stride-sampled
// subset is considered — the full pairwise set is far too expensive and the
// sparse look is the point.
func drawLinks(s *Surface, cur Features, particles []Particle, baseHue float64) {
	threshold := 40 + cur.Danceability*70
	col := hslColor(baseHue, 0.7, 0.6)
	for i := 0; i < len(particles); i += linkSampleStride {
		for j := i + linkSampleStride; j < len(particles); j += linkSampleStride {
			a, b := &particles[i], &particles[j]
			dist := math.Hypot(a.X-b.X, a.Y-b.Y)
			if dist >= threshold {
				continue
			}
			s.DrawLine(a.X, a.Y, b.X, b.Y, col, 0.25*(1-dist/threshold))
		}
	}
}
