package repository

import (
	"fmt"

	"AuraFM/logger"
	"AuraFM/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TrackRepository defines the interface for track persistence.
type TrackRepository interface {
	UpsertTracks(tracks []model.Track) error
	GetAllTracks() ([]model.Track, error)
	GetTrackByURI(uri string) (*model.Track, error)
	CountTracks() (int64, error)
}

// gormTrackRepository implements TrackRepository on GORM/MySQL.
type gormTrackRepository struct {
	db *gorm.DB
}

// NewGormTrackRepository creates a track repository bound to conn.
func NewGormTrackRepository(conn *gorm.DB) TrackRepository {
	return &gormTrackRepository{db: conn}
}

// UpsertTracks inserts tracks in batches, updating existing rows by URI. The
// library CSV is re-ingestable: loading the same file twice is idempotent.
func (r *gormTrackRepository) UpsertTracks(tracks []model.Track) error {
	if len(tracks) == 0 {
		return nil
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uri"}},
		UpdateAll: true,
	}).CreateInBatches(tracks, 500).Error
	if err != nil {
		return fmt.Errorf("failed to upsert tracks: %w", err)
	}
	logger.Info("tracks upserted", logger.Int("count", len(tracks)))
	return nil
}

// GetAllTracks loads the whole library ordered by insertion.
func (r *gormTrackRepository) GetAllTracks() ([]model.Track, error) {
	var tracks []model.Track
	if err := r.db.Order("id").Find(&tracks).Error; err != nil {
		return nil, fmt.Errorf("failed to load tracks: %w", err)
	}
	return tracks, nil
}

// GetTrackByURI fetches one track; nil when not found.
func (r *gormTrackRepository) GetTrackByURI(uri string) (*model.Track, error) {
	var track model.Track
	err := r.db.Where("uri = ?", uri).First(&track).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load track %s: %w", uri, err)
	}
	return &track, nil
}

// CountTracks returns the number of persisted tracks.
func (r *gormTrackRepository) CountTracks() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Track{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tracks: %w", err)
	}
	return count, nil
}
