package ingest

import (
	"strings"
	"testing"
)

func TestReadLibraryParsesRows(t *testing.T) {
	data := `uri,name,artists,album,danceability,energy,valence,tempo,loudness,acousticness
aurafm:track:1,Sun,Aria,Daybreak,0.8,0.7,0.9,130,-6.5,0.1
aurafm:track:2,Moon,Luna,Nightfall,0.2,0.3,0.2,80,-18.0,0.8
`
	tracks, err := ReadLibrary(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tracks))
	}

	sun := tracks[0]
	if sun.URI != "aurafm:track:1" || sun.Name != "Sun" || sun.Artists != "Aria" {
		t.Fatalf("first row parsed wrong: %+v", sun)
	}
	if sun.Danceability != 0.8 || sun.Tempo != 130 {
		t.Fatalf("numeric columns parsed wrong: %+v", sun)
	}
	// Derived normalizations are filled during ingest.
	if sun.TempoNorm != 0.5 {
		t.Fatalf("TempoNorm = %v, want 0.5", sun.TempoNorm)
	}
	if sun.LoudnessNorm <= 0.8 || sun.LoudnessNorm >= 0.95 {
		t.Fatalf("LoudnessNorm = %v, want ~0.89", sun.LoudnessNorm)
	}
}

func TestReadLibraryColumnOrderIndependent(t *testing.T) {
	data := `energy,track_name,tempo,track_id
0.7,Sun,130,aurafm:track:1
`
	tracks, err := ReadLibrary(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(tracks))
	}
	if tracks[0].URI != "aurafm:track:1" || tracks[0].Name != "Sun" || tracks[0].Energy != 0.7 {
		t.Fatalf("aliased columns parsed wrong: %+v", tracks[0])
	}
}

func TestReadLibrarySkipsUnusableRows(t *testing.T) {
	data := `uri,name,danceability
aurafm:track:1,Sun,0.8
,Nameless URI missing,0.5
aurafm:track:3,,0.5
aurafm:track:4,Moon,0.2
`
	tracks, err := ReadLibrary(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("rows without uri or name must be skipped, got %d", len(tracks))
	}
	if tracks[0].Name != "Sun" || tracks[1].Name != "Moon" {
		t.Fatalf("wrong survivors: %+v", tracks)
	}
}

func TestReadLibraryHostileNumbersBecomeZero(t *testing.T) {
	data := `uri,name,danceability,energy,tempo,loudness
aurafm:track:1,Sun,not-a-number,NaN,,Inf
`
	tracks, err := ReadLibrary(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(tracks))
	}
	tr := tracks[0]
	if tr.Danceability != 0 || tr.Energy != 0 || tr.Tempo != 0 || tr.Loudness != 0 {
		t.Fatalf("hostile cells must parse to 0: %+v", tr)
	}
	// Tempo 0 is below the normalization window.
	if tr.TempoNorm != 0 {
		t.Fatalf("TempoNorm = %v, want 0", tr.TempoNorm)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV("testdata/does-not-exist.csv"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
