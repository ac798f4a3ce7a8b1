package sync

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"gallery-manager/core/storage"
	"gallery-manager/feature/gallery/models"
	"gallery-manager/feature/gallery/store"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const (
	exifMaxAttempts = 3
	exifRetryPause  = 3 * time.Second

	// legacySuffix marks pre-migration album folders. When any clean album
	// id exists, suffixed ids are stale duplicates and are discarded.
	legacySuffix = ".info"

	// reservedSegment is the path segment holding image files inside an
	// album folder; a top-level folder with this name is not an album.
	reservedSegment = "images"
)

// Syncer drives one synchronization run: listing, descriptor parsing,
// reconciliation, and outcome classification. It is not safe for concurrent
// runs; trigger discipline is left to the caller.
type Syncer struct {
	client storage.Client
	store  *store.Store
	cfg    storage.Config
	lister *Lister
	log    *zap.Logger

	sleep func(time.Duration)
	state State
}

// New creates a Syncer over an object-store client and the persistence layer.
func New(client storage.Client, st *store.Store, cfg storage.Config, log *zap.Logger) *Syncer {
	return &Syncer{
		client: client,
		store:  st,
		cfg:    cfg,
		lister: NewLister(client, cfg.Bucket, log),
		log:    log,
		sleep:  time.Sleep,
		state:  StateIdle,
	}
}

// State returns the orchestrator's current state.
func (s *Syncer) State() State {
	return s.state
}

// SyncAlbums runs the album half of the pipeline: enumerate the gallery
// prefix, classify keys, fetch and merge descriptors, then reconcile the
// assembled album map into storage.
func (s *Syncer) SyncAlbums(ctx context.Context) Outcome {
	s.transition(StateListing)
	s.progress(0, "sync started")

	if s.cfg.Domain == "" {
		return s.fail(models.CategoryAlbums, "storage domain is not configured")
	}

	prefix := strings.TrimSuffix(s.cfg.GalleryPrefix, "/") + "/"
	s.progress(5, "listing objects under "+prefix)

	keys, err := s.lister.ListAll(ctx, prefix)
	if err != nil {
		return s.fail(models.CategoryAlbums, fmt.Sprintf("object listing failed: %v", err))
	}
	s.progress(10, fmt.Sprintf("listed %d objects", len(keys)))

	albums, descriptors := s.classifyKeys(prefix, keys)

	s.transition(StateParsing)
	s.progress(30, fmt.Sprintf("parsing %d album descriptors", len(descriptors)))

	for _, d := range descriptors {
		data, err := s.fetchObject(ctx, d.key)
		if err != nil {
			return s.fail(models.CategoryAlbums, fmt.Sprintf("fetching descriptor %s failed: %v", d.key, err))
		}
		doc, err := models.ParseAlbumDescriptor(data)
		if err != nil {
			s.log.Warn("skipping malformed album descriptor",
				zap.String("key", d.key), zap.Error(err))
			continue
		}
		if existing, ok := albums[d.albumID]; ok {
			existing.Merge(doc)
		} else {
			albums[d.albumID] = doc
		}
	}

	dropLegacyAlbums(albums)
	for id, doc := range albums {
		if doc.Title == nil {
			title := id
			doc.Title = &title
		}
	}
	s.progress(60, fmt.Sprintf("assembled %d albums", len(albums)))

	if len(albums) == 0 {
		return s.fail(models.CategoryAlbums, "no albums found under prefix "+prefix)
	}

	s.transition(StateReconciling)
	s.progress(85, "writing albums to the database")

	res, err := s.store.UpsertAlbums(albums)
	if err != nil {
		return s.fail(models.CategoryAlbums, fmt.Sprintf("album reconciliation failed: %v", err))
	}

	s.transition(StateSucceeded)
	msg := fmt.Sprintf("synced %d albums with %d images", res.Albums, res.Images)
	s.record(models.CategoryAlbums, models.StatusSuccess, msg, ptrFloat(100))
	return Outcome{State: StateSucceeded, Success: true, Status: models.StatusSuccess, Message: msg}
}

// SyncExif fetches the bucket-wide EXIF document and reconciles it. It is
// chained after SyncAlbums but independently retryable.
func (s *Syncer) SyncExif(ctx context.Context) Outcome {
	data, err := s.fetchObject(ctx, s.cfg.ExifObjectKey)
	if err != nil {
		return s.exifFailure(fmt.Sprintf("fetching EXIF document %s failed: %v", s.cfg.ExifObjectKey, err))
	}

	doc, err := models.ParseExifDocument(data)
	if err != nil {
		return s.exifFailure(fmt.Sprintf("EXIF document unparseable: %v", err))
	}

	return s.ApplyExif(doc)
}

// ApplyExif reconciles an already-parsed EXIF document. The local one-shot
// import path enters here directly, bypassing the object store.
func (s *Syncer) ApplyExif(doc models.ExifDocument) Outcome {
	res, err := s.store.UpsertExif(doc)
	if err != nil {
		return s.exifFailure(fmt.Sprintf("EXIF reconciliation failed: %v", err))
	}

	s.record(models.CategoryExif, res.Status, res.Message, nil)
	return Outcome{
		State:   StateSucceeded,
		Success: res.Success,
		Status:  res.Status,
		Message: res.Message,
	}
}

// SyncAll runs albums then EXIF, retrying the EXIF half a few times before
// classifying the run. Albums failing fails the run outright; albums
// succeeding with EXIF exhausted yields a partial success.
func (s *Syncer) SyncAll(ctx context.Context) Outcome {
	albums := s.SyncAlbums(ctx)
	if !albums.Success {
		return albums
	}

	var exif Outcome
	for attempt := 1; attempt <= exifMaxAttempts; attempt++ {
		exif = s.SyncExif(ctx)
		if exif.Success {
			break
		}
		if attempt < exifMaxAttempts {
			s.log.Warn("EXIF ingestion failed, retrying",
				zap.Int("attempt", attempt),
				zap.String("message", exif.Message))
			s.sleep(exifRetryPause)
		}
	}

	if exif.Success {
		s.transition(StateSucceeded)
		msg := albums.Message + "; " + exif.Message
		s.progress(100, msg)
		return Outcome{State: StateSucceeded, Success: true, Status: exif.Status, Message: msg}
	}

	s.transition(StatePartiallySucceeded)
	msg := albums.Message + "; EXIF ingestion failed: " + exif.Message
	s.record(models.CategoryProgress, models.StatusPartialSuccess, msg, ptrFloat(100))
	return Outcome{State: StatePartiallySucceeded, Success: true, Status: models.StatusPartialSuccess, Message: msg}
}

type descriptorRef struct {
	albumID string
	key     string
}

// classifyKeys splits a listing into per-album image URL lists and a queue of
// descriptor objects. Keys under the reserved segment, the EXIF document, and
// anything unrecognized are ignored.
func (s *Syncer) classifyKeys(prefix string, keys []string) (map[string]*models.AlbumDocument, []descriptorRef) {
	albums := map[string]*models.AlbumDocument{}
	var descriptors []descriptorRef

	for _, key := range keys {
		if key == s.cfg.ExifObjectKey {
			continue
		}
		rel := strings.TrimPrefix(key, prefix)
		segments := strings.Split(rel, "/")
		lower := strings.ToLower(rel)

		switch {
		case strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml"):
			if len(segments) < 2 {
				continue
			}
			descriptors = append(descriptors, descriptorRef{
				albumID: segments[len(segments)-2],
				key:     key,
			})
		case strings.HasSuffix(lower, ".webp"):
			if len(segments) < 2 || segments[0] == reservedSegment {
				continue
			}
			albumID := segments[0]
			if _, ok := albums[albumID]; !ok {
				albums[albumID] = &models.AlbumDocument{}
			}
			albums[albumID].AddImage(s.objectURL(key))
		}
	}
	return albums, descriptors
}

// objectURL builds the public download URL of one object key.
func (s *Syncer) objectURL(key string) string {
	domain := s.cfg.Domain
	if !strings.Contains(domain, "://") {
		domain = "https://" + domain
	}
	return strings.TrimSuffix(domain, "/") + "/" + key
}

// dropLegacyAlbums removes suffixed album ids when their clean counterparts
// exist, so stale pre-migration folders cannot shadow current data.
func dropLegacyAlbums(albums map[string]*models.AlbumDocument) {
	hasClean := false
	for id := range albums {
		if !strings.HasSuffix(id, legacySuffix) {
			hasClean = true
			break
		}
	}
	if !hasClean {
		return
	}
	for id := range albums {
		if strings.HasSuffix(id, legacySuffix) {
			delete(albums, id)
		}
	}
}

// fetchObject downloads one object with the same bounded retry as listing.
func (s *Syncer) fetchObject(ctx context.Context, key string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		data, err := s.readObject(ctx, key)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if attempt < maxAttempts {
			s.log.Warn("object fetch failed, retrying",
				zap.String("key", key),
				zap.Int("attempt", attempt),
				zap.Error(err))
			s.sleep(time.Duration(attempt) * time.Second)
		}
	}
	return nil, lastErr
}

func (s *Syncer) readObject(ctx context.Context, key string) ([]byte, error) {
	reader, err := s.client.GetObject(ctx, s.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

func (s *Syncer) transition(next State) {
	s.log.Debug("sync state transition",
		zap.Stringer("from", s.state),
		zap.Stringer("to", next))
	s.state = next
}

// fail moves to the terminal Failed state and records the error. The log
// write happens outside any business transaction so the failure is never
// silent.
func (s *Syncer) fail(category, message string) Outcome {
	s.transition(StateFailed)
	s.record(category, models.StatusError, message, nil)
	return Outcome{State: StateFailed, Success: false, Status: models.StatusError, Message: message}
}

// exifFailure records an EXIF error without touching the album pipeline's
// state; the EXIF half is independently retryable.
func (s *Syncer) exifFailure(message string) Outcome {
	s.record(models.CategoryExif, models.StatusError, message, nil)
	return Outcome{State: StateFailed, Success: false, Status: models.StatusError, Message: message}
}

func (s *Syncer) progress(value float64, message string) {
	s.record(models.CategoryProgress, models.StatusInfo, message, &value)
}

func (s *Syncer) record(category, status, message string, progress *float64) {
	if err := s.store.RecordOperation(category, status, message, progress); err != nil {
		s.log.Error("failed to record operation", zap.Error(err))
	}
}

func ptrFloat(v float64) *float64 {
	return &v
}
