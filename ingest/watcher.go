package ingest

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"

	"AuraFM/logger"
	"AuraFM/model"
)

// Watcher re-ingests the library CSV whenever it changes on disk and hands
// each fresh snapshot to its callback.
type Watcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// Watch starts watching path. The containing directory is watched rather than
// the file itself because editors and download tools replace files by rename.
// Event bursts for a single save are debounced into one reload.
func Watch(path string, onReload func([]model.Track)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{fsw: fsw, done: make(chan struct{})}
	debounced := debounce.New(500 * time.Millisecond)
	base := filepath.Base(path)

	go func() {
		for {
			select {
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				debounced(func() {
					tracks, err := LoadCSV(path)
					if err != nil {
						logger.Warn("library reload failed", logger.ErrorField(err))
						return
					}
					logger.Info("library reloaded", logger.Int("tracks", len(tracks)))
					onReload(tracks)
				})
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("library watcher error", logger.ErrorField(err))
			case <-w.done:
				return
			}
		}
	}()

	return w, nil
}

// Close stops the watcher. Pending debounced reloads may still fire once.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
