package rank

import (
	"fmt"
	"math"
	"strings"

	"AuraFM/model"
)

// buildReasons produces the human-readable reasons for one scored track: a
// text reason when the text signal fired (name checked before artists), and a
// closest-dimension reason when sliders are active.
func buildReasons(t *model.Track, text string, textScore float64, targets [numDims]*float64, slidersActive bool) []string {
	var reasons []string

	if text != "" && textScore > 0 {
		name := strings.ToLower(t.Name)
		artists := strings.ToLower(t.Artists)
		switch {
		case strings.Contains(name, text):
			reasons = append(reasons, fmt.Sprintf("The title %q matches your search.", t.Name))
		case strings.Contains(artists, text):
			reasons = append(reasons, fmt.Sprintf("Found among the artists (%s).", t.Artists))
		default:
			reasons = append(reasons, "Words from your search appear in the title or artists.")
		}
	}

	if slidersActive {
		if dim, ok := closestDimension(t, targets); ok {
			reasons = append(reasons, dimensionReason(dim, t))
		}
	}

	return reasons
}

// closestDimension finds the active slider dimension with the smallest
// absolute difference to the track. Ties resolve to the first dimension in the
// fixed order. Nil sliders are skipped: their zero-distance dimensions would
// always win the tie while naming something the user never asked about.
func closestDimension(t *model.Track, targets [numDims]*float64) (int, bool) {
	vals := trackValues(t)
	best := -1
	bestDiff := math.Inf(1)
	for i, target := range targets {
		if target == nil {
			continue
		}
		diff := math.Abs(vals[i] - *target)
		if diff < bestDiff {
			bestDiff = diff
			best = i
		}
	}
	return best, best >= 0
}

// dimensionReason phrases how close the track sits on a dimension. Tempo reads
// in BPM; every other dimension reads as a percentage.
func dimensionReason(dim int, t *model.Track) string {
	if dim == dimTempo {
		return fmt.Sprintf("Its tempo sits right around %.0f BPM.", t.Tempo)
	}
	vals := trackValues(t)
	return fmt.Sprintf("Its %s (%.0f%%) is close to your target.", dimLabels[dim], vals[dim]*100)
}

// BuildExplanation renders a scored result as a single block of prose: a
// percentage lead-in followed by the joined reason sentences.
func BuildExplanation(r model.ScoredResult) string {
	parts := make([]string, 0, len(r.Reasons)+1)
	parts = append(parts, fmt.Sprintf("%d%% match.", int(math.Round(r.Score*100))))
	parts = append(parts, r.Reasons...)
	return strings.Join(parts, " ")
}
