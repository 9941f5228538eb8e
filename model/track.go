package model

import "math"

// Track represents one entry in the music library. Numeric audio feature
// fields are resolved to finite values at ingestion time; everything
// downstream reads them without further validation.
type Track struct {
	ID  uint   `gorm:"primaryKey" json:"-"`
	URI string `gorm:"size:191;uniqueIndex" json:"uri"`

	Name    string `gorm:"size:512" json:"name"`
	Artists string `gorm:"size:512" json:"artists"`
	Album   string `gorm:"size:512" json:"album"`

	Danceability     float64 `json:"danceability"`
	Energy           float64 `json:"energy"`
	Valence          float64 `json:"valence"`
	Tempo            float64 `json:"tempo"`     // Raw BPM
	TempoNorm        float64 `json:"tempoNorm"` // Tempo rescaled into [0,1]
	Loudness         float64 `json:"loudness"`  // dB, typically negative
	LoudnessNorm     float64 `json:"loudnessNorm"`
	Acousticness     float64 `json:"acousticness"`
	Speechiness      float64 `json:"speechiness"`
	Instrumentalness float64 `json:"instrumentalness"`
	Liveness         float64 `json:"liveness"`
	Popularity       float64 `json:"popularity"`
	DurationMS       float64 `json:"durationMs"`
	Key              int     `json:"key"`
	Mode             int     `json:"mode"`
	TimeSignature    int     `json:"timeSignature"`
}

// TableName sets the table used by GORM.
func (Track) TableName() string {
	return "tracks"
}

// Clamp01 squeezes v into [0,1]. NaN resolves to 0, never propagates.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NormalizeTempo maps raw BPM into [0,1]: 40 BPM is 0, 220 BPM is 1.
func NormalizeTempo(bpm float64) float64 {
	return Clamp01((bpm - 40) / 180)
}

// NormalizeLoudness maps dB loudness into [0,1]: -60 dB is 0, 0 dB is 1.
func NormalizeLoudness(db float64) float64 {
	return Clamp01((db + 60) / 60)
}
