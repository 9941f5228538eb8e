package model

// SliderTargets holds the optional feature sliders of a search. A nil slider
// means the user did not constrain that dimension.
type SliderTargets struct {
	Danceability *float64 `json:"danceability"`
	Energy       *float64 `json:"energy"`
	Valence      *float64 `json:"valence"`
	Tempo        *float64 `json:"tempo"` // Raw BPM in [40,220]
	Acousticness *float64 `json:"acousticness"`
}

// Active reports whether at least one slider is set.
func (s SliderTargets) Active() bool {
	return s.Danceability != nil || s.Energy != nil || s.Valence != nil ||
		s.Tempo != nil || s.Acousticness != nil
}

// SearchQuery is what the UI sends: free text, sliders, or both.
type SearchQuery struct {
	Text    string        `json:"text"`
	Sliders SliderTargets `json:"sliders"`
}

// ScoredResult is one ranked search hit. The track pointer is a read reference
// into the shared library snapshot, not an owned copy.
type ScoredResult struct {
	Track   *Track   `json:"track"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}
