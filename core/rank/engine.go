// Package rank scores library tracks against a free-text query, a set of
// audio-feature sliders, or both, and orders the results deterministically.
package rank

import (
	"errors"
	"math"
	"sort"
	"strings"

	"AuraFM/model"
)

// ErrInvalidLimit is returned when Search is called with a non-positive limit.
var ErrInvalidLimit = errors.New("rank: limit must be positive")

// Signal weights when text and sliders are both active.
const (
	textWeight    = 0.55
	featureWeight = 0.45
)

// maxFeatureDistance normalizes the Euclidean feature distance. sqrt(5) is the
// bound for five [0,1] dimensions; raw tempo is normalized before distancing
// so the bound holds.
var maxFeatureDistance = math.Sqrt(5)

// Indexes into the fixed dimension order. The order doubles as the tie-break
// order when explaining the closest dimension.
const (
	dimDanceability = iota
	dimEnergy
	dimValence
	dimTempo
	dimAcousticness
	numDims
)

var dimLabels = [numDims]string{"danceability", "energy", "valence", "tempo", "acousticness"}

// Search ranks tracks against the query and returns at most limit results in
// descending score order. Ties keep library order. An empty query (no trimmed
// text, no sliders) is not an error; it means there is nothing to search for
// and yields an empty result set.
func Search(tracks []model.Track, query model.SearchQuery, limit int) ([]model.ScoredResult, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	text := strings.ToLower(strings.TrimSpace(query.Text))
	textActive := text != ""
	slidersActive := query.Sliders.Active()
	if !textActive && !slidersActive {
		return []model.ScoredResult{}, nil
	}

	targets := sliderTargets(query.Sliders)

	results := make([]model.ScoredResult, 0, len(tracks))
	for i := range tracks {
		t := &tracks[i]

		var ts, fs float64
		if textActive {
			ts = textScore(t, text)
		}
		if slidersActive {
			fs = featureScore(t, targets)
		}

		var score float64
		switch {
		case textActive && slidersActive:
			score = textWeight*ts + featureWeight*fs
		case textActive:
			score = ts
		default:
			score = fs
		}

		// With text active, a zero combined score means the track is simply
		// unrelated; sliders-only distance is always informative.
		if textActive && score == 0 {
			continue
		}

		results = append(results, model.ScoredResult{
			Track:   t,
			Score:   score,
			Reasons: buildReasons(t, text, ts, targets, slidersActive),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// sliderTargets resolves the optional sliders into the fixed dimension order,
// normalizing the tempo slider with the same formula tracks are ingested with.
func sliderTargets(s model.SliderTargets) [numDims]*float64 {
	var targets [numDims]*float64
	targets[dimDanceability] = s.Danceability
	targets[dimEnergy] = s.Energy
	targets[dimValence] = s.Valence
	if s.Tempo != nil {
		norm := model.NormalizeTempo(*s.Tempo)
		targets[dimTempo] = &norm
	}
	targets[dimAcousticness] = s.Acousticness
	return targets
}

// trackValues extracts the five comparable dimensions of a track.
func trackValues(t *model.Track) [numDims]float64 {
	return [numDims]float64{
		dimDanceability: t.Danceability,
		dimEnergy:       t.Energy,
		dimValence:      t.Valence,
		dimTempo:        t.TempoNorm,
		dimAcousticness: t.Acousticness,
	}
}

// textScore combines name, artist, album and word-overlap signals additively,
// capped at 1. The name and artist checks are exclusive ladders: an exact
// match must outrank a prefix match, which must outrank a substring match.
func textScore(t *model.Track, query string) float64 {
	name := strings.ToLower(t.Name)
	artists := strings.ToLower(t.Artists)
	album := strings.ToLower(t.Album)

	score := 0.0
	switch {
	case name == query:
		score += 1.0
	case strings.HasPrefix(name, query):
		score += 0.8
	case strings.Contains(name, query):
		score += 0.6
	}
	switch {
	case artists == query:
		score += 0.9
	case strings.Contains(artists, query):
		score += 0.5
	}
	if album != "" && strings.Contains(album, query) {
		score += 0.2
	}

	if words := strings.Fields(query); len(words) > 1 {
		matched := 0
		for _, w := range words {
			if strings.Contains(name, w) || strings.Contains(artists, w) {
				matched++
			}
		}
		score += float64(matched) / float64(len(words)) * 0.3
	}

	return math.Min(score, 1)
}

// featureScore inverts the normalized Euclidean distance between the track and
// the slider targets. A nil slider contributes zero distance: both sides of
// that dimension default to 0.
func featureScore(t *model.Track, targets [numDims]*float64) float64 {
	vals := trackValues(t)
	sum := 0.0
	for i, target := range targets {
		if target == nil {
			continue
		}
		d := vals[i] - *target
		sum += d * d
	}
	return 1 - math.Sqrt(sum)/maxFeatureDistance
}
