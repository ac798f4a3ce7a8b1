package store

import (
	"testing"

	"gallery-manager/core/database"
	"gallery-manager/feature/gallery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	s := New(db)
	require.NoError(t, s.Migrate())
	return s
}

func strPtr(s string) *string {
	return &s
}

func albumDoc(title string, images ...string) *models.AlbumDocument {
	doc := &models.AlbumDocument{}
	if title != "" {
		doc.Title = &title
	}
	doc.Images = images
	return doc
}

func TestNormalizeImageKey(t *testing.T) {
	assert.Equal(t, "trip/IMG_01.webp", NormalizeImageKey("trip/IMG_01.JPG"))
	assert.Equal(t, "trip/IMG_01.webp", NormalizeImageKey("trip/IMG_01.jpeg"))
	assert.Equal(t, "trip/IMG_01.webp", NormalizeImageKey("trip/IMG_01.webp"))
	assert.Equal(t, "trip/IMG_01.png", NormalizeImageKey("trip/IMG_01.png"))
}

func TestUpsertAlbumsCreatesAlbumAndImages(t *testing.T) {
	s := newTestStore(t)

	res, err := s.UpsertAlbums(map[string]*models.AlbumDocument{
		"trip": albumDoc("Road Trip",
			"https://cdn.example.com/gallery/trip/images/IMG_01.webp",
			"https://cdn.example.com/gallery/trip/images/IMG_02.webp",
		),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Albums)
	assert.Equal(t, 2, res.Images)

	album, err := s.AlbumWithImages("trip")
	require.NoError(t, err)
	require.NotNil(t, album)
	assert.Equal(t, "Road Trip", *album.Title)
	require.Len(t, album.Images, 2)
	assert.Equal(t, "trip/IMG_01.webp", album.Images[0].ID)
	assert.Equal(t, 0, *album.Images[0].Position)
	assert.Equal(t, "trip/IMG_02.webp", album.Images[1].ID)
	assert.Equal(t, 1, *album.Images[1].Position)
	assert.Equal(t, "Road Trip", *album.Images[0].Title)
}

func TestUpsertAlbumsIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	docs := map[string]*models.AlbumDocument{
		"trip": albumDoc("Road Trip",
			"https://cdn.example.com/gallery/trip/images/IMG_01.webp",
			"https://cdn.example.com/gallery/trip/images/IMG_02.webp",
		),
	}

	_, err := s.UpsertAlbums(docs)
	require.NoError(t, err)
	_, err = s.UpsertAlbums(docs)
	require.NoError(t, err)

	album, err := s.AlbumWithImages("trip")
	require.NoError(t, err)
	require.Len(t, album.Images, 2)
	assert.Equal(t, 0, *album.Images[0].Position)
	assert.Equal(t, 1, *album.Images[1].Position)
}

func TestUpsertAlbumsPreservesKnownFields(t *testing.T) {
	s := newTestStore(t)

	first := albumDoc("Road Trip", "https://cdn.example.com/gallery/trip/images/IMG_01.webp")
	first.Location = strPtr("Iceland")
	_, err := s.UpsertAlbums(map[string]*models.AlbumDocument{"trip": first})
	require.NoError(t, err)

	// Second run omits location; the stored value must survive.
	second := albumDoc("", "https://cdn.example.com/gallery/trip/images/IMG_01.webp")
	second.Description = strPtr("Two weeks on the ring road")
	_, err = s.UpsertAlbums(map[string]*models.AlbumDocument{"trip": second})
	require.NoError(t, err)

	album, err := s.AlbumWithImages("trip")
	require.NoError(t, err)
	assert.Equal(t, "Road Trip", *album.Title)
	assert.Equal(t, "Iceland", *album.Location)
	assert.Equal(t, "Two weeks on the ring road", *album.Description)
}

func TestUpsertAlbumsPreservesStarAndLikes(t *testing.T) {
	s := newTestStore(t)

	docs := map[string]*models.AlbumDocument{
		"trip": albumDoc("Road Trip", "https://cdn.example.com/gallery/trip/images/IMG_01.webp"),
	}
	_, err := s.UpsertAlbums(docs)
	require.NoError(t, err)

	ok, err := s.SetImageStar("trip/IMG_01.webp", 5)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = s.SetImageLikes("trip/IMG_01.webp", 12)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = s.UpsertAlbums(docs)
	require.NoError(t, err)

	album, err := s.AlbumWithImages("trip")
	require.NoError(t, err)
	require.Len(t, album.Images, 1)
	assert.Equal(t, 5, album.Images[0].Star)
	assert.Equal(t, 12, album.Images[0].Likes)
}

func TestUpsertExifMatchesAndBackfills(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpsertAlbums(map[string]*models.AlbumDocument{
		"trip": albumDoc("Road Trip", "https://cdn.example.com/gallery/trip/images/IMG_01.webp"),
	})
	require.NoError(t, err)

	res, err := s.UpsertExif(models.ExifDocument{
		"trip/IMG_01.JPG": {
			"CameraModel": "X-T5",
			"FNumber":     2.8,
			"ISO":         float64(400),
			"DateTime":    "2024:06:01 10:00:00",
			"Location":    "Vik",
			"GPSLatitude": 63.4187,
		},
		"other/IMG_99.jpg": {"CameraModel": "X-T5"},
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, models.StatusSuccess, res.Status)
	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 1, res.Skipped)

	album, err := s.AlbumWithImages("trip")
	require.NoError(t, err)
	require.Len(t, album.Images, 1)
	assert.Equal(t, "2024:06:01 10:00:00", *album.Images[0].Date)
	assert.Equal(t, "Vik", *album.Images[0].Location)

	var rec models.ExifRecord
	require.NoError(t, s.db.First(&rec, "image_id = ?", "trip/IMG_01.webp").Error)
	assert.Equal(t, "X-T5", *rec.CameraModel)
	assert.InDelta(t, 2.8, *rec.FNumber, 1e-9)
	assert.Equal(t, 400, *rec.ISO)
	assert.InDelta(t, 63.4187, *rec.Latitude, 1e-9)
}

func TestUpsertExifDoesNotOverwriteImageDate(t *testing.T) {
	s := newTestStore(t)

	doc := albumDoc("Road Trip", "https://cdn.example.com/gallery/trip/images/IMG_01.webp")
	doc.Date = strPtr("2024-06-01")
	_, err := s.UpsertAlbums(map[string]*models.AlbumDocument{"trip": doc})
	require.NoError(t, err)

	_, err = s.UpsertExif(models.ExifDocument{
		"trip/IMG_01.webp": {"DateTime": "1999:01:01 00:00:00"},
	})
	require.NoError(t, err)

	album, err := s.AlbumWithImages("trip")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", *album.Images[0].Date)
}

func TestUpsertExifAllSkipped(t *testing.T) {
	s := newTestStore(t)

	res, err := s.UpsertExif(models.ExifDocument{
		"nowhere/IMG_01.jpg": {"CameraModel": "X-T5"},
		"nowhere/IMG_02.jpg": {"CameraModel": "X-T5"},
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, models.StatusWarning, res.Status)
	assert.Equal(t, 0, res.Processed)
	assert.Equal(t, 2, res.Skipped)
	assert.Contains(t, res.Message, "no matching images")
}

func TestUpsertExifEmptyAndMissing(t *testing.T) {
	s := newTestStore(t)

	res, err := s.UpsertExif(models.ExifDocument{})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, models.StatusWarning, res.Status)
	assert.Equal(t, "EXIF data is empty", res.Message)

	res, err = s.UpsertExif(nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, models.StatusError, res.Status)
}

func TestReorderAlbumImages(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpsertAlbums(map[string]*models.AlbumDocument{
		"trip": albumDoc("Road Trip",
			"https://cdn.example.com/gallery/trip/images/a.webp",
			"https://cdn.example.com/gallery/trip/images/b.webp",
			"https://cdn.example.com/gallery/trip/images/c.webp",
		),
		"other": albumDoc("Other", "https://cdn.example.com/gallery/other/images/x.webp"),
	})
	require.NoError(t, err)

	err = s.ReorderAlbumImages("trip", []string{"trip/c.webp", "trip/a.webp", "trip/b.webp", "other/x.webp"})
	require.NoError(t, err)

	album, err := s.AlbumWithImages("trip")
	require.NoError(t, err)
	require.Len(t, album.Images, 3)
	assert.Equal(t, "trip/c.webp", album.Images[0].ID)
	assert.Equal(t, "trip/a.webp", album.Images[1].ID)
	assert.Equal(t, "trip/b.webp", album.Images[2].ID)

	// Images of other albums are never touched.
	other, err := s.AlbumWithImages("other")
	require.NoError(t, err)
	assert.Equal(t, 0, *other.Images[0].Position)
}

func TestDeleteAlbumCascades(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpsertAlbums(map[string]*models.AlbumDocument{
		"trip": albumDoc("Road Trip", "https://cdn.example.com/gallery/trip/images/IMG_01.webp"),
	})
	require.NoError(t, err)
	_, err = s.UpsertExif(models.ExifDocument{
		"trip/IMG_01.webp": {"CameraModel": "X-T5"},
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteAlbum("trip"))

	album, err := s.AlbumWithImages("trip")
	require.NoError(t, err)
	assert.Nil(t, album)

	var count int64
	require.NoError(t, s.db.Model(&models.ExifRecord{}).Count(&count).Error)
	assert.Zero(t, count)

	// A later EXIF run finds nothing to attach to and skips cleanly.
	res, err := s.UpsertExif(models.ExifDocument{
		"trip/IMG_01.webp": {"CameraModel": "X-T5"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusWarning, res.Status)
	assert.Equal(t, 1, res.Skipped)
}

func TestOperationLog(t *testing.T) {
	s := newTestStore(t)

	progress := 30.0
	require.NoError(t, s.RecordOperation(models.CategoryAlbums, models.StatusInfo, "listing objects", nil))
	require.NoError(t, s.RecordOperation(models.CategoryProgress, models.StatusInfo, "reconciling", &progress))
	require.NoError(t, s.RecordOperation(models.CategoryAlbums, models.StatusSuccess, "synced 3 albums", nil))

	ops, err := s.RecentOperations(0)
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, "synced 3 albums", ops[0].Message)
	assert.Equal(t, "listing objects", ops[2].Message)

	ops, err = s.RecentOperations(2)
	require.NoError(t, err)
	assert.Len(t, ops, 2)

	last, err := s.LastOperation(models.CategoryAlbums)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, models.StatusSuccess, last.Status)

	last, err = s.LastOperation(models.CategoryExif)
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestAlbumsExcludesEmptyAlbums(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpsertAlbums(map[string]*models.AlbumDocument{
		"full":  albumDoc("Full", "https://cdn.example.com/gallery/full/images/IMG_01.webp"),
		"empty": albumDoc("Empty"),
	})
	require.NoError(t, err)

	albums, err := s.Albums()
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "full", albums[0].ID)
}

func TestGeotaggedPhotos(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpsertAlbums(map[string]*models.AlbumDocument{
		"trip": albumDoc("Road Trip",
			"https://cdn.example.com/gallery/trip/images/IMG_01.webp",
			"https://cdn.example.com/gallery/trip/images/IMG_02.webp",
		),
	})
	require.NoError(t, err)
	_, err = s.UpsertExif(models.ExifDocument{
		"trip/IMG_01.webp": {"GPSLatitude": 63.4187, "GPSLongitude": -19.0060},
		"trip/IMG_02.webp": {"CameraModel": "X-T5"},
	})
	require.NoError(t, err)

	photos, err := s.GeotaggedPhotos()
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, "trip/IMG_01.webp", photos[0].ID)
	assert.Equal(t, "Road Trip", *photos[0].AlbumTitle)
	assert.InDelta(t, -19.0060, *photos[0].Longitude, 1e-9)
}

func TestSettings(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetSetting("site_title", "My Photos"))
	require.NoError(t, s.SetSetting("site_title", "Light & Shadow"))
	require.NoError(t, s.SetSetting("theme", "dark"))

	settings, err := s.Settings()
	require.NoError(t, err)
	assert.Equal(t, "Light & Shadow", settings["site_title"])
	assert.Equal(t, "dark", settings["theme"])
}

func TestLastUpdatedTimes(t *testing.T) {
	s := newTestStore(t)

	times, err := s.LastUpdatedTimes()
	require.NoError(t, err)
	assert.Nil(t, times["albums"])
	assert.Nil(t, times["exif"])

	_, err = s.UpsertAlbums(map[string]*models.AlbumDocument{
		"trip": albumDoc("Road Trip", "https://cdn.example.com/gallery/trip/images/IMG_01.webp"),
	})
	require.NoError(t, err)

	times, err = s.LastUpdatedTimes()
	require.NoError(t, err)
	assert.NotNil(t, times["albums"])
	assert.Nil(t, times["exif"])
}
