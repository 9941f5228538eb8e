// Package visual renders a track's audio features as a continuous particle
// animation on a CPU raster surface. One Visualizer owns one animation: a
// current feature record chasing a target, a particle population regenerated
// on every track change, and the render loop driving both.
package visual

import (
	"math"

	"AuraFM/model"
)

// Features is the eight-value record the visualizer animates over. Every
// field lives in [0,1].
type Features struct {
	Valence          float64
	Energy           float64
	Danceability     float64
	TempoNorm        float64
	LoudnessNorm     float64
	Acousticness     float64
	Liveness         float64
	Instrumentalness float64
}

// FromTrack derives the feature record driving the animation. Hostile values
// (NaN, negatives, above 1) clamp silently: a slightly wrong color beats a
// dead animation.
func FromTrack(t *model.Track) Features {
	return Features{
		Valence:          sanitize(t.Valence),
		Energy:           sanitize(t.Energy),
		Danceability:     sanitize(t.Danceability),
		TempoNorm:        sanitize(t.TempoNorm),
		LoudnessNorm:     sanitize(t.LoudnessNorm),
		Acousticness:     sanitize(t.Acousticness),
		Liveness:         sanitize(t.Liveness),
		Instrumentalness: sanitize(t.Instrumentalness),
	}
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// blendToward moves every field a fixed fraction of the remaining gap toward
// target — exponential decay, so the transition eases out instead of snapping.
func (f *Features) blendToward(target Features, rate float64) {
	f.Valence += (target.Valence - f.Valence) * rate
	f.Energy += (target.Energy - f.Energy) * rate
	f.Danceability += (target.Danceability - f.Danceability) * rate
	f.TempoNorm += (target.TempoNorm - f.TempoNorm) * rate
	f.LoudnessNorm += (target.LoudnessNorm - f.LoudnessNorm) * rate
	f.Acousticness += (target.Acousticness - f.Acousticness) * rate
	f.Liveness += (target.Liveness - f.Liveness) * rate
	f.Instrumentalness += (target.Instrumentalness - f.Instrumentalness) * rate
}
