package library

import (
	"testing"

	"AuraFM/model"
)

func TestEmptyStore(t *testing.T) {
	s := NewStore()
	if s.Len() != 0 {
		t.Fatalf("fresh store must be empty, got %d", s.Len())
	}
	if got := s.ByURI("aurafm:track:missing"); got != nil {
		t.Fatalf("lookup on empty store must be nil, got %+v", got)
	}
}

func TestReplaceSwapsSnapshot(t *testing.T) {
	s := NewStore()
	s.Replace([]model.Track{
		{URI: "aurafm:track:1", Name: "Sun"},
		{URI: "aurafm:track:2", Name: "Moon"},
	})

	if s.Len() != 2 {
		t.Fatalf("expected 2 tracks, got %d", s.Len())
	}
	if got := s.ByURI("aurafm:track:2"); got == nil || got.Name != "Moon" {
		t.Fatalf("ByURI returned %+v", got)
	}

	old := s.Tracks()
	s.Replace([]model.Track{{URI: "aurafm:track:3", Name: "Star"}})

	if s.Len() != 1 {
		t.Fatalf("replace must drop the old snapshot, got %d tracks", s.Len())
	}
	if s.ByURI("aurafm:track:1") != nil {
		t.Fatal("old URI must be gone after replace")
	}
	// The previously returned slice stays valid for readers that hold it.
	if len(old) != 2 || old[0].Name != "Sun" {
		t.Fatalf("old snapshot mutated: %+v", old)
	}
}
