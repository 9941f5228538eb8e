// Package library holds the in-memory snapshot of the track library shared by
// the search and visualizer handlers.
package library

import (
	"sync/atomic"

	"AuraFM/model"
)

type snapshot struct {
	tracks []model.Track
	byURI  map[string]*model.Track
}

// Store is a read-mostly container for the loaded library. Replace swaps the
// whole snapshot atomically, so concurrent readers never observe a partial
// load and need no locking.
type Store struct {
	snap atomic.Pointer[snapshot]
}

// NewStore returns an empty store.
func NewStore() *Store {
	s := &Store{}
	s.snap.Store(&snapshot{byURI: map[string]*model.Track{}})
	return s
}

// Replace installs tracks as the new library snapshot.
func (s *Store) Replace(tracks []model.Track) {
	byURI := make(map[string]*model.Track, len(tracks))
	for i := range tracks {
		byURI[tracks[i].URI] = &tracks[i]
	}
	s.snap.Store(&snapshot{tracks: tracks, byURI: byURI})
}

// Tracks returns the current snapshot slice. Callers must not mutate it.
func (s *Store) Tracks() []model.Track {
	return s.snap.Load().tracks
}

// ByURI looks a track up by URI; nil when absent.
func (s *Store) ByURI(uri string) *model.Track {
	return s.snap.Load().byURI[uri]
}

// Len returns the number of loaded tracks.
func (s *Store) Len() int {
	return len(s.snap.Load().tracks)
}
