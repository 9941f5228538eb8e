// Package ingest loads the track library from its CSV source. Every numeric
// field is resolved to a finite value here, at the boundary — nothing
// downstream ever sees a missing or NaN feature.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"AuraFM/model"
)

// LoadCSV reads a library CSV file with a header row.
func LoadCSV(path string) ([]model.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open library csv: %w", err)
	}
	defer f.Close()
	return ReadLibrary(f)
}

// ReadLibrary parses library CSV data. Columns are looked up by header name,
// so column order does not matter and unknown columns are ignored. Rows
// without a usable URI or name are skipped.
func ReadLibrary(r io.Reader) ([]model.Track, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var tracks []model.Track
	row := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", row, err)
		}

		get := func(name string) string {
			if i, ok := col[name]; ok && i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}
		num := func(name string) float64 {
			return parseNumber(get(name))
		}

		t := model.Track{
			URI:              firstNonEmpty(get("uri"), get("id"), get("track_id")),
			Name:             firstNonEmpty(get("name"), get("track_name"), get("title")),
			Artists:          firstNonEmpty(get("artists"), get("artist"), get("artist_name")),
			Album:            firstNonEmpty(get("album"), get("album_name")),
			Danceability:     num("danceability"),
			Energy:           num("energy"),
			Valence:          num("valence"),
			Tempo:            num("tempo"),
			Loudness:         num("loudness"),
			Acousticness:     num("acousticness"),
			Speechiness:      num("speechiness"),
			Instrumentalness: num("instrumentalness"),
			Liveness:         num("liveness"),
			Popularity:       num("popularity"),
			DurationMS:       num("duration_ms"),
			Key:              int(num("key")),
			Mode:             int(num("mode")),
			TimeSignature:    int(num("time_signature")),
		}
		if t.URI == "" || t.Name == "" {
			continue
		}
		t.TempoNorm = model.NormalizeTempo(t.Tempo)
		t.LoudnessNorm = model.NormalizeLoudness(t.Loudness)
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// parseNumber resolves a CSV cell to a finite float. Missing or unparsable
// cells become 0 — absence must never surface as NaN downstream.
func parseNumber(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
