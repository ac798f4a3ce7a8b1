package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"gallery-manager/core/config"
	"gallery-manager/core/storage"
	"gallery-manager/feature/gallery/models"
	"gallery-manager/feature/gallery/store"
	"gallery-manager/feature/gallery/sync"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service wires the sync pipeline, the persistence layer and the object store
// behind the HTTP surface.
type Service struct {
	client     storage.Client
	store      *store.Store
	storageCfg storage.Config
	exifCfg    config.ExifConfig
	logger     *zap.Logger
}

// NewService creates a new gallery service.
func NewService(client storage.Client, st *store.Store, storageCfg storage.Config, exifCfg config.ExifConfig, logger *zap.Logger) *Service {
	return &Service{
		client:     client,
		store:      st,
		storageCfg: storageCfg,
		exifCfg:    exifCfg,
		logger:     logger,
	}
}

// newSyncer builds a fresh orchestrator so every run starts from Idle.
func (s *Service) newSyncer() *sync.Syncer {
	return sync.New(s.client, s.store, s.storageCfg, s.logger)
}

// SyncAll runs the full pipeline: albums, then EXIF with retries.
func (s *Service) SyncAll(ctx context.Context) sync.Outcome {
	return s.newSyncer().SyncAll(ctx)
}

// SyncAlbums runs only the album half of the pipeline.
func (s *Service) SyncAlbums(ctx context.Context) sync.Outcome {
	return s.newSyncer().SyncAlbums(ctx)
}

// SyncExif runs only the EXIF half of the pipeline.
func (s *Service) SyncExif(ctx context.Context) sync.Outcome {
	return s.newSyncer().SyncExif(ctx)
}

// Albums lists all non-empty albums.
func (s *Service) Albums() ([]models.Album, error) {
	return s.store.Albums()
}

// AlbumWithImages loads one album with its ordered images; nil if unknown.
func (s *Service) AlbumWithImages(albumID string) (*models.Album, error) {
	return s.store.AlbumWithImages(albumID)
}

// ReorderAlbumImages applies a manual image ordering to one album.
func (s *Service) ReorderAlbumImages(albumID string, orderedIDs []string) error {
	return s.store.ReorderAlbumImages(albumID, orderedIDs)
}

// DeleteAlbum removes an album from the database and then from the object
// store. The database cascade runs first so readers stop seeing the album
// even if the remote cleanup fails halfway.
func (s *Service) DeleteAlbum(ctx context.Context, albumID string) error {
	if err := s.store.DeleteAlbum(albumID); err != nil {
		return err
	}

	prefix := strings.TrimSuffix(s.storageCfg.GalleryPrefix, "/") + "/" + albumID + "/"
	lister := sync.NewLister(s.client, s.storageCfg.Bucket, s.logger)
	keys, err := lister.ListAll(ctx, prefix)
	if err != nil {
		return fmt.Errorf("list album objects for deletion: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	for rmErr := range s.client.RemoveObjects(ctx, s.storageCfg.Bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rmErr.Err != nil {
			return fmt.Errorf("remove object %s: %w", rmErr.ObjectName, rmErr.Err)
		}
	}
	return nil
}

// UploadImage stores one image under the album's images folder and returns
// the object key.
func (s *Service) UploadImage(ctx context.Context, albumID, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	key := strings.TrimSuffix(s.storageCfg.GalleryPrefix, "/") + "/" + albumID + "/images/" + filename
	_, err := s.client.PutObject(ctx, s.storageCfg.Bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.recordOp(models.CategoryUpload, models.StatusError, fmt.Sprintf("upload of %s failed: %v", key, err))
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	s.recordOp(models.CategoryUpload, models.StatusSuccess, "uploaded "+key)
	return key, nil
}

// ImportLocalExif ingests the EXIF document the out-of-process extractor
// writes to the local filesystem.
func (s *Service) ImportLocalExif() sync.Outcome {
	data, err := os.ReadFile(s.exifCfg.LocalPath)
	if err != nil {
		msg := fmt.Sprintf("reading local EXIF file %s failed: %v", s.exifCfg.LocalPath, err)
		s.recordOp(models.CategoryExif, models.StatusError, msg)
		return sync.Outcome{State: sync.StateFailed, Success: false, Status: models.StatusError, Message: msg}
	}

	doc, err := models.ParseExifDocument(data)
	if err != nil {
		msg := fmt.Sprintf("local EXIF file unparseable: %v", err)
		s.recordOp(models.CategoryExif, models.StatusError, msg)
		return sync.Outcome{State: sync.StateFailed, Success: false, Status: models.StatusError, Message: msg}
	}

	return s.newSyncer().ApplyExif(doc)
}

// RebuildExif spawns the configured EXIF extraction tool as a detached
// process. Completion is observed through the file it writes, never through
// the process itself.
func (s *Service) RebuildExif() error {
	if s.exifCfg.RebuildCommand == "" {
		return errors.New("no EXIF rebuild command configured")
	}

	cmd := exec.Command("sh", "-c", s.exifCfg.RebuildCommand)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start EXIF rebuild: %w", err)
	}
	s.logger.Info("EXIF rebuild spawned", zap.Int("pid", cmd.Process.Pid))
	return cmd.Process.Release()
}

// UpdatesFeed is the polling payload: recent operations plus per-category
// freshness timestamps.
type UpdatesFeed struct {
	Operations  []models.Operation    `json:"operations"`
	LastUpdated map[string]*time.Time `json:"last_updated"`
}

// Updates returns the most recent operation log entries and freshness info.
func (s *Service) Updates(limit int) (*UpdatesFeed, error) {
	ops, err := s.store.RecentOperations(limit)
	if err != nil {
		return nil, err
	}
	times, err := s.store.LastUpdatedTimes()
	if err != nil {
		return nil, err
	}
	return &UpdatesFeed{Operations: ops, LastUpdated: times}, nil
}

// SetImageStar stores a star rating; false when the image does not exist.
func (s *Service) SetImageStar(imageID string, star int) (bool, error) {
	return s.store.SetImageStar(imageID, star)
}

// SetImageLikes stores a like count; false when the image does not exist.
func (s *Service) SetImageLikes(imageID string, likes int) (bool, error) {
	return s.store.SetImageLikes(imageID, likes)
}

// GeotaggedPhotos lists photos carrying EXIF coordinates for the map view.
func (s *Service) GeotaggedPhotos() ([]models.GeotaggedPhoto, error) {
	return s.store.GeotaggedPhotos()
}

// Settings returns all stored settings.
func (s *Service) Settings() (map[string]string, error) {
	return s.store.Settings()
}

// SetSettings stores the given key/value pairs, last writer wins.
func (s *Service) SetSettings(values map[string]string) error {
	for key, value := range values {
		if err := s.store.SetSetting(key, value); err != nil {
			return err
		}
	}
	return nil
}

// RecordWebhookRejection logs a failed webhook authentication attempt.
func (s *Service) RecordWebhookRejection() {
	s.recordOp(models.CategoryWebhook, models.StatusError, "webhook rejected: invalid secret")
}

func (s *Service) recordOp(category, status, message string) {
	if err := s.store.RecordOperation(category, status, message, nil); err != nil {
		s.logger.Error("failed to record operation", zap.Error(err))
	}
}
