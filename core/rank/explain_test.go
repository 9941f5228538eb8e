package rank

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"AuraFM/model"
)

func TestBuildExplanationPercentage(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{score: 1, want: "100% match."},
		{score: 0.847, want: "85% match."},
		{score: 0.5, want: "50% match."},
		{score: 0.004, want: "0% match."},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := BuildExplanation(model.ScoredResult{Score: tt.score, Reasons: []string{"Because."}})
			if !strings.HasPrefix(got, tt.want) {
				t.Fatalf("explanation %q should start with %q", got, tt.want)
			}
			if !strings.HasSuffix(got, "Because.") {
				t.Fatalf("explanation %q should end with the joined reasons", got)
			}
			// The lead-in percentage must be exactly round(score*100).
			wantPct := int(math.Round(tt.score * 100))
			if !strings.HasPrefix(got, fmt.Sprintf("%d%%", wantPct)) {
				t.Fatalf("explanation %q does not state %d%%", got, wantPct)
			}
		})
	}
}

func TestReasonPrefersNameOverArtist(t *testing.T) {
	// "nova" appears in both the name and the artists; the name wins.
	lib := []model.Track{track("Nova Heart", "Nova Collective", 0, 0, 0, 0, 0)}
	results, err := Search(lib, model.SearchQuery{Text: "nova"}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || len(results[0].Reasons) == 0 {
		t.Fatal("expected one result with reasons")
	}
	if !strings.Contains(results[0].Reasons[0], "title") {
		t.Fatalf("expected a title reason, got %q", results[0].Reasons[0])
	}
}

func TestReasonArtistWhenNameMisses(t *testing.T) {
	lib := []model.Track{track("Sun", "Aria", 0, 0, 0, 0, 0)}
	results, err := Search(lib, model.SearchQuery{Text: "aria"}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || len(results[0].Reasons) == 0 {
		t.Fatal("expected one result with reasons")
	}
	if !strings.Contains(results[0].Reasons[0], "artists") {
		t.Fatalf("expected an artist reason, got %q", results[0].Reasons[0])
	}
}

func TestReasonClosestDimensionTempoInBPM(t *testing.T) {
	lib := []model.Track{track("Sun", "Aria", 0.1, 0.1, 0.1, 128, 0.1)}
	query := model.SearchQuery{Sliders: model.SliderTargets{
		Tempo:        ptr(130.0),
		Danceability: ptr(0.9),
	}}
	results, err := Search(lib, query, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || len(results[0].Reasons) == 0 {
		t.Fatal("expected one result with reasons")
	}
	// Tempo diff is ~0.011 normalized, danceability diff 0.8: tempo is closest
	// and must be phrased in BPM, not as a percentage.
	reason := results[0].Reasons[0]
	if !strings.Contains(reason, "128 BPM") {
		t.Fatalf("expected a BPM reason, got %q", reason)
	}
}

func TestReasonTieBreaksOnDimensionOrder(t *testing.T) {
	// Danceability and energy are equally close; the fixed order names
	// danceability.
	lib := []model.Track{track("Sun", "Aria", 0.5, 0.5, 0.1, 0, 0.1)}
	query := model.SearchQuery{Sliders: model.SliderTargets{
		Danceability: ptr(0.6),
		Energy:       ptr(0.6),
	}}
	results, err := Search(lib, query, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || len(results[0].Reasons) == 0 {
		t.Fatal("expected one result with reasons")
	}
	if !strings.Contains(results[0].Reasons[0], "danceability") {
		t.Fatalf("expected danceability to win the tie, got %q", results[0].Reasons[0])
	}
}

func TestReasonIgnoresUnsetSliders(t *testing.T) {
	// Valence diff would be 0 if nil sliders were considered; the reason must
	// name the one dimension the user actually set.
	lib := []model.Track{track("Sun", "Aria", 0.3, 0.9, 0.0, 0, 0.9)}
	query := model.SearchQuery{Sliders: model.SliderTargets{Energy: ptr(0.7)}}
	results, err := Search(lib, query, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || len(results[0].Reasons) == 0 {
		t.Fatal("expected one result with reasons")
	}
	if !strings.Contains(results[0].Reasons[0], "energy") {
		t.Fatalf("expected an energy reason, got %q", results[0].Reasons[0])
	}
}
