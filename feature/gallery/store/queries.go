package store

import (
	"errors"
	"fmt"
	"time"

	"gallery-manager/feature/gallery/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultOperationLimit = 50
	maxOperationLimit     = 200
)

// RecordOperation appends one entry to the operation log. It runs on the base
// connection on purpose, so that progress and error entries survive even when
// the surrounding business transaction rolls back.
func (s *Store) RecordOperation(category, status, message string, progress *float64) error {
	op := models.Operation{
		Category: category,
		Status:   status,
		Message:  message,
		Progress: progress,
	}
	if err := s.db.Create(&op).Error; err != nil {
		return fmt.Errorf("record operation: %w", err)
	}
	return nil
}

// RecentOperations returns the newest log entries, newest first. The limit is
// clamped to [1, 200]; non-positive values fall back to the default of 50.
func (s *Store) RecentOperations(limit int) ([]models.Operation, error) {
	if limit <= 0 {
		limit = defaultOperationLimit
	}
	if limit > maxOperationLimit {
		limit = maxOperationLimit
	}

	var ops []models.Operation
	if err := s.db.Order("id DESC").Limit(limit).Find(&ops).Error; err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	return ops, nil
}

// LastOperation returns the newest log entry of one category, or nil when the
// category has never been written.
func (s *Store) LastOperation(category string) (*models.Operation, error) {
	var op models.Operation
	err := s.db.Where("type = ?", category).Order("id DESC").First(&op).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("last operation: %w", err)
	}
	return &op, nil
}

// LastUpdatedTimes reports when album and EXIF data were last touched, for
// the freshness block of the updates feed. Missing data yields nil entries.
func (s *Store) LastUpdatedTimes() (map[string]*time.Time, error) {
	times := map[string]*time.Time{"albums": nil, "exif": nil}

	var album models.Album
	err := s.db.Order("updated_at DESC").First(&album).Error
	if err == nil {
		t := album.UpdatedAt
		times["albums"] = &t
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("album freshness: %w", err)
	}

	var exif models.ExifRecord
	err = s.db.Order("updated_at DESC").First(&exif).Error
	if err == nil {
		t := exif.UpdatedAt
		times["exif"] = &t
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("exif freshness: %w", err)
	}

	return times, nil
}

// Albums lists all albums that contain at least one image, newest date first.
func (s *Store) Albums() ([]models.Album, error) {
	var albums []models.Album
	err := s.db.
		Where("EXISTS (SELECT 1 FROM images WHERE images.album_id = albums.id)").
		Order("date DESC").
		Find(&albums).Error
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	return albums, nil
}

// AlbumWithImages loads one album and its images ordered by position, with
// unpositioned images last in creation order. Returns nil when the album
// does not exist.
func (s *Store) AlbumWithImages(albumID string) (*models.Album, error) {
	var album models.Album
	if err := s.db.First(&album, "id = ?", albumID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load album %s: %w", albumID, err)
	}

	err := s.db.
		Where("album_id = ?", albumID).
		Order("position IS NULL, position ASC, created_at ASC").
		Find(&album.Images).Error
	if err != nil {
		return nil, fmt.Errorf("load images of album %s: %w", albumID, err)
	}
	return &album, nil
}

// SetImageStar sets an image's star rating. Returns false when no such image
// exists.
func (s *Store) SetImageStar(imageID string, star int) (bool, error) {
	result := s.db.Model(&models.Image{}).Where("id = ?", imageID).Update("star", star)
	if result.Error != nil {
		return false, fmt.Errorf("set star of %s: %w", imageID, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// SetImageLikes sets an image's like counter. Returns false when no such
// image exists.
func (s *Store) SetImageLikes(imageID string, likes int) (bool, error) {
	result := s.db.Model(&models.Image{}).Where("id = ?", imageID).Update("likes", likes)
	if result.Error != nil {
		return false, fmt.Errorf("set likes of %s: %w", imageID, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GeotaggedPhotos lists every image whose EXIF record carries coordinates,
// joined with its album title for the map view.
func (s *Store) GeotaggedPhotos() ([]models.GeotaggedPhoto, error) {
	var photos []models.GeotaggedPhoto
	err := s.db.Raw(`
		SELECT i.id, i.url, a.title AS album_title, e.location,
		       e.latitude, e.longitude, e.date_time, e.camera_model
		FROM images i
		JOIN exif_data e ON e.image_id = i.id
		LEFT JOIN albums a ON a.id = i.album_id
		WHERE e.latitude IS NOT NULL AND e.longitude IS NOT NULL
		ORDER BY e.date_time DESC`).Scan(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("list geotagged photos: %w", err)
	}
	return photos, nil
}

// Settings returns all stored key/value settings.
func (s *Store) Settings() (map[string]string, error) {
	var rows []models.Setting
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

// SetSetting stores one key/value pair, last writer wins.
func (s *Store) SetSetting(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}
