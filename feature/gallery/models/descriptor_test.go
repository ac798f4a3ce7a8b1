package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlbumDescriptor(t *testing.T) {
	doc, err := ParseAlbumDescriptor([]byte(`
title: Road Trip
desc: Two weeks on the ring road
location: Iceland
date: 2024-06-01
cover: IMG_01.webp
camera_bag: one body, two lenses
`))
	require.NoError(t, err)
	assert.Equal(t, "Road Trip", *doc.Title)
	assert.Equal(t, "Two weeks on the ring road", *doc.Description)
	assert.Equal(t, "Iceland", *doc.Location)
	assert.Equal(t, "2024-06-01", *doc.Date)
	assert.Equal(t, "IMG_01.webp", *doc.Cover)
	assert.Equal(t, "one body, two lenses", doc.Extra["camera_bag"])
}

func TestParseAlbumDescriptorCanonicalDescriptionWins(t *testing.T) {
	doc, err := ParseAlbumDescriptor([]byte(`
description: canonical
desc: legacy
`))
	require.NoError(t, err)
	assert.Equal(t, "canonical", *doc.Description)
}

func TestParseAlbumDescriptorInvalid(t *testing.T) {
	_, err := ParseAlbumDescriptor([]byte("{not yaml: ["))
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestAlbumDocumentMerge(t *testing.T) {
	title := "Road Trip"
	location := "Iceland"
	base := &AlbumDocument{Title: &title, Location: &location}

	desc := "Two weeks"
	base.Merge(&AlbumDocument{Description: &desc})

	// Non-nil incoming fields win, nil fields preserve.
	assert.Equal(t, "Road Trip", *base.Title)
	assert.Equal(t, "Iceland", *base.Location)
	assert.Equal(t, "Two weeks", *base.Description)

	newTitle := "Iceland 2024"
	base.Merge(&AlbumDocument{Title: &newTitle})
	assert.Equal(t, "Iceland 2024", *base.Title)
}

func TestParseExifDocumentKeyedObject(t *testing.T) {
	doc, err := ParseExifDocument([]byte(`{
		"trip/IMG_01.jpg": {"CameraModel": "X-T5"},
		"trip/IMG_02.jpg": "not an object"
	}`))
	require.NoError(t, err)
	require.Len(t, doc, 2)
	assert.Equal(t, "X-T5", doc["trip/IMG_01.jpg"]["CameraModel"])
	// A non-object entry survives as nil so the store can count the skip.
	assert.Nil(t, doc["trip/IMG_02.jpg"])
}

func TestParseExifDocumentArrayShape(t *testing.T) {
	doc, err := ParseExifDocument([]byte(`[
		{"FileName": "trip/IMG_01.jpg", "ISO": 400},
		{"fileName": "trip/IMG_02.jpg"},
		{"CameraModel": "no name field"}
	]`))
	require.NoError(t, err)
	require.Len(t, doc, 3)
	assert.Contains(t, doc, "trip/IMG_01.jpg")
	assert.Contains(t, doc, "trip/IMG_02.jpg")
	assert.Contains(t, doc, "item_2")
}

func TestParseExifDocumentRejectsUnusableInput(t *testing.T) {
	for _, input := range []string{`null`, `"a string"`, `42`, `[1, 2, 3]`} {
		_, err := ParseExifDocument([]byte(input))
		require.Error(t, err, "input %s", input)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	}
}

func TestExifRecordFromEntryPermissiveNumerics(t *testing.T) {
	rec := ExifRecordFromEntry("trip/IMG_01.webp", map[string]any{
		"CameraModel":  "X-T5",
		"FNumber":      "2.8",
		"ISO":          "not a number",
		"ExposureTime": "1/125",
		"GPSLatitude":  63.4187,
		"Orientation":  "Horizontal (normal)",
	})

	assert.Equal(t, "trip/IMG_01.webp", rec.ImageID)
	assert.Equal(t, "X-T5", *rec.CameraModel)
	require.NotNil(t, rec.FNumber)
	assert.InDelta(t, 2.8, *rec.FNumber, 1e-9)
	// An unparseable number is stored as absent, not an error.
	assert.Nil(t, rec.ISO)
	assert.Equal(t, "1/125", *rec.ExposureTime)
	assert.InDelta(t, 63.4187, *rec.Latitude, 1e-9)
	assert.Equal(t, "Horizontal (normal)", *rec.Orientation)
	assert.NotEmpty(t, rec.RawData)
}

func TestExifRecordFromEntryOrientationSynonyms(t *testing.T) {
	rec := ExifRecordFromEntry("trip/IMG_01.webp", map[string]any{
		"Image Orientation": "Rotate 90 CW",
	})
	require.NotNil(t, rec.Orientation)
	assert.Equal(t, "Rotate 90 CW", *rec.Orientation)
}
