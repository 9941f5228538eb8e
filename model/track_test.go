package model

import (
	"math"
	"testing"
)

func TestNormalizeTempo(t *testing.T) {
	tests := []struct {
		name string
		bpm  float64
		want float64
	}{
		{name: "lower bound", bpm: 40, want: 0},
		{name: "midpoint", bpm: 130, want: 0.5},
		{name: "upper bound", bpm: 220, want: 1},
		{name: "below range clamps", bpm: 10, want: 0},
		{name: "above range clamps", bpm: 300, want: 1},
		{name: "missing defaults to zero", bpm: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTempo(tt.bpm); got != tt.want {
				t.Fatalf("NormalizeTempo(%v) = %v, want %v", tt.bpm, got, tt.want)
			}
		})
	}
}

func TestNormalizeLoudness(t *testing.T) {
	tests := []struct {
		name string
		db   float64
		want float64
	}{
		{name: "floor", db: -60, want: 0},
		{name: "midpoint", db: -30, want: 0.5},
		{name: "ceiling", db: 0, want: 1},
		{name: "clamps above", db: 5, want: 1},
		{name: "clamps below", db: -90, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLoudness(tt.db); got != tt.want {
				t.Fatalf("NormalizeLoudness(%v) = %v, want %v", tt.db, got, tt.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	if got := Clamp01(math.NaN()); got != 0 {
		t.Fatalf("NaN must clamp to 0, got %v", got)
	}
	if got := Clamp01(-0.3); got != 0 {
		t.Fatalf("negative must clamp to 0, got %v", got)
	}
	if got := Clamp01(1.7); got != 1 {
		t.Fatalf("overshoot must clamp to 1, got %v", got)
	}
	if got := Clamp01(0.42); got != 0.42 {
		t.Fatalf("in-range value must pass through, got %v", got)
	}
}
