package store

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"sort"

	"gallery-manager/feature/gallery/models"

	"gorm.io/gorm"
)

// Store is the relational persistence layer for albums, images, EXIF data,
// settings and the operation log. Every mutating operation runs in a single
// short-lived transaction, except RecordOperation which is deliberately kept
// outside any business transaction.
type Store struct {
	db *gorm.DB
}

// New creates a Store around an injected database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the schema for all gallery tables.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&models.Album{},
		&models.Image{},
		&models.ExifRecord{},
		&models.Operation{},
		&models.Setting{},
	)
}

// jpegExt matches the extensions EXIF source keys may carry; stored images
// use the transcoded .webp extension instead.
var jpegExt = regexp.MustCompile(`(?i)\.jpe?g$`)

// NormalizeImageKey rewrites a .jpg/.jpeg reference to the stored .webp id.
func NormalizeImageKey(key string) string {
	return jpegExt.ReplaceAllString(key, ".webp")
}

// AlbumsResult reports what an UpsertAlbums call touched.
type AlbumsResult struct {
	Albums int
	Images int
}

// UpsertAlbums merges the assembled album map into storage.
//
// Album fields are upsert-merged: incoming non-nil values overwrite, nil
// values preserve what is stored. Every image URL becomes an Image row with
// position set to its discovery order; star and likes are user-editorial and
// are never touched for existing rows.
func (s *Store) UpsertAlbums(albums map[string]*models.AlbumDocument) (*AlbumsResult, error) {
	res := &AlbumsResult{}

	ids := make([]string, 0, len(albums))
	for id := range albums {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, albumID := range ids {
			doc := albums[albumID]
			if doc == nil {
				continue
			}

			var existing models.Album
			found := true
			if err := tx.First(&existing, "id = ?", albumID).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("load album %s: %w", albumID, err)
				}
				found = false
			}

			merged := models.Album{
				ID:          albumID,
				Title:       pick(doc.Title, existing.Title),
				Description: pick(doc.Description, existing.Description),
				Location:    pick(doc.Location, existing.Location),
				Date:        pick(doc.Date, existing.Date),
				CoverImage:  existing.CoverImage,
			}
			if doc.Cover != nil {
				merged.CoverImage = doc.Cover
			} else if merged.CoverImage == nil && len(doc.Images) > 0 {
				merged.CoverImage = &doc.Images[0]
			}

			if found {
				updates := map[string]any{
					"title":       merged.Title,
					"description": merged.Description,
					"location":    merged.Location,
					"date":        merged.Date,
					"cover_image": merged.CoverImage,
				}
				if err := tx.Model(&models.Album{}).Where("id = ?", albumID).Updates(updates).Error; err != nil {
					return fmt.Errorf("update album %s: %w", albumID, err)
				}
			} else {
				if err := tx.Create(&merged).Error; err != nil {
					return fmt.Errorf("create album %s: %w", albumID, err)
				}
			}
			res.Albums++

			for index, imageURL := range doc.Images {
				position := index
				imageID := albumID + "/" + path.Base(imageURL)

				var existingImage models.Image
				imageFound := true
				if err := tx.First(&existingImage, "id = ?", imageID).Error; err != nil {
					if !errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("load image %s: %w", imageID, err)
					}
					imageFound = false
				}

				if imageFound {
					// Star and likes deliberately untouched.
					updates := map[string]any{
						"album_id": albumID,
						"url":      imageURL,
						"title":    pick(doc.Title, existingImage.Title),
						"location": pick(doc.Location, existingImage.Location),
						"date":     pick(doc.Date, existingImage.Date),
						"position": position,
					}
					if err := tx.Model(&models.Image{}).Where("id = ?", imageID).Updates(updates).Error; err != nil {
						return fmt.Errorf("update image %s: %w", imageID, err)
					}
				} else {
					image := models.Image{
						ID:       imageID,
						AlbumID:  albumID,
						URL:      imageURL,
						Title:    doc.Title,
						Location: doc.Location,
						Date:     doc.Date,
						Position: &position,
					}
					if err := tx.Create(&image).Error; err != nil {
						return fmt.Errorf("create image %s: %w", imageID, err)
					}
				}
				res.Images++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ExifResult reports what an UpsertExif call touched, together with its
// outcome classification.
type ExifResult struct {
	Processed int
	Inserted  int
	Skipped   int
	Success   bool
	Status    string
	Message   string
}

// UpsertExif reconciles a parsed EXIF document into storage.
//
// Entry keys are extension-normalized before lookup; entries with no matching
// image are skipped and counted, never treated as errors. When an entry
// supplies a capture date or location and the owning image's field is null,
// the image field is backfilled (one-directional).
func (s *Store) UpsertExif(doc models.ExifDocument) (*ExifResult, error) {
	if doc == nil {
		return &ExifResult{Success: false, Status: models.StatusError, Message: "EXIF document is missing"}, nil
	}
	if len(doc) == 0 {
		return &ExifResult{Success: true, Status: models.StatusWarning, Message: "EXIF data is empty"}, nil
	}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	res := &ExifResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, key := range keys {
			data := doc[key]
			if key == "" || data == nil {
				res.Skipped++
				continue
			}

			imageID := NormalizeImageKey(key)
			var image models.Image
			if err := tx.Select("id").First(&image, "id = ?", imageID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					res.Skipped++
					continue
				}
				return fmt.Errorf("look up image %s: %w", imageID, err)
			}

			rec := models.ExifRecordFromEntry(imageID, data)

			var existing models.ExifRecord
			recFound := true
			if err := tx.Select("image_id").First(&existing, "image_id = ?", imageID).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("load exif %s: %w", imageID, err)
				}
				recFound = false
			}
			if recFound {
				updates := map[string]any{
					"camera_model":  rec.CameraModel,
					"lens_model":    rec.LensModel,
					"f_number":      rec.FNumber,
					"exposure_time": rec.ExposureTime,
					"iso":           rec.ISO,
					"focal_length":  rec.FocalLength,
					"location":      rec.Location,
					"date_time":     rec.DateTime,
					"orientation":   rec.Orientation,
					"latitude":      rec.Latitude,
					"longitude":     rec.Longitude,
					"raw_data":      rec.RawData,
				}
				if err := tx.Model(&models.ExifRecord{}).Where("image_id = ?", imageID).Updates(updates).Error; err != nil {
					return fmt.Errorf("update exif %s: %w", imageID, err)
				}
			} else {
				if err := tx.Create(&rec).Error; err != nil {
					return fmt.Errorf("create exif %s: %w", imageID, err)
				}
			}

			// One-directional backfill: only fills currently-null fields.
			backfill := map[string]any{
				"date":     gorm.Expr("COALESCE(date, ?)", rec.DateTime),
				"location": gorm.Expr("COALESCE(location, ?)", rec.Location),
			}
			if err := tx.Model(&models.Image{}).Where("id = ?", imageID).Updates(backfill).Error; err != nil {
				return fmt.Errorf("backfill image %s: %w", imageID, err)
			}

			res.Inserted++
			res.Processed++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Success = true
	if res.Processed == 0 && res.Skipped > 0 {
		res.Status = models.StatusWarning
		res.Message = fmt.Sprintf("no matching images found; all %d EXIF entries were skipped", res.Skipped)
	} else {
		res.Status = models.StatusSuccess
		res.Message = fmt.Sprintf("processed %d EXIF entries, upserted %d, skipped %d", res.Processed, res.Inserted, res.Skipped)
	}
	return res, nil
}

// ReorderAlbumImages sets each image's position to its index in orderedIDs.
// Only images belonging to albumID are affected; foreign ids in the list are
// ignored. All positions commit together or not at all.
func (s *Store) ReorderAlbumImages(albumID string, orderedIDs []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for index, imageID := range orderedIDs {
			err := tx.Model(&models.Image{}).
				Where("id = ? AND album_id = ?", imageID, albumID).
				Update("position", index).Error
			if err != nil {
				return fmt.Errorf("reorder image %s: %w", imageID, err)
			}
		}
		return nil
	})
}

// DeleteAlbum removes an album and everything hanging off it, in dependency
// order: EXIF rows, then images, then the album row.
func (s *Store) DeleteAlbum(albumID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Exec("DELETE FROM exif_data WHERE image_id IN (SELECT id FROM images WHERE album_id = ?)", albumID).Error
		if err != nil {
			return fmt.Errorf("delete exif rows of album %s: %w", albumID, err)
		}
		if err := tx.Where("album_id = ?", albumID).Delete(&models.Image{}).Error; err != nil {
			return fmt.Errorf("delete images of album %s: %w", albumID, err)
		}
		if err := tx.Where("id = ?", albumID).Delete(&models.Album{}).Error; err != nil {
			return fmt.Errorf("delete album %s: %w", albumID, err)
		}
		return nil
	})
}

func pick(incoming, existing *string) *string {
	if incoming != nil {
		return incoming
	}
	return existing
}
