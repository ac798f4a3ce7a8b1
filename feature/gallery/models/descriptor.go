package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gallery-manager/core/utils"

	"gopkg.in/yaml.v3"
)

// ParseError indicates a metadata document that could not be interpreted at
// all. Item-level oddities inside an otherwise valid document never produce
// a ParseError; those entries are skipped and counted instead.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "metadata parse error: " + e.Reason
}

// AlbumDocument is a parsed album descriptor. Known fields are typed; any
// other key the descriptor carries survives in Extra so that unknown fields
// are preserved rather than rejected.
type AlbumDocument struct {
	Title       *string
	Description *string
	Location    *string
	Date        *string
	Cover       *string
	Images      []string
	Extra       map[string]any
}

// ParseAlbumDescriptor deserializes a YAML album descriptor. The legacy
// "desc" synonym maps onto Description when the canonical field is absent.
func ParseAlbumDescriptor(data []byte) (*AlbumDocument, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("invalid album descriptor: %v", err)}
	}

	doc := &AlbumDocument{Extra: map[string]any{}}
	for key, value := range raw {
		switch key {
		case "title":
			doc.Title = scalarString(value)
		case "description":
			doc.Description = scalarString(value)
		case "desc":
			if doc.Description == nil {
				doc.Description = scalarString(value)
			}
		case "location":
			doc.Location = scalarString(value)
		case "date":
			doc.Date = scalarString(value)
		case "cover":
			doc.Cover = scalarString(value)
		default:
			doc.Extra[key] = value
		}
	}
	return doc, nil
}

// Merge folds a later descriptor into this one. Non-nil incoming fields win;
// nil fields preserve what is already known.
func (d *AlbumDocument) Merge(other *AlbumDocument) {
	if other.Title != nil {
		d.Title = other.Title
	}
	if other.Description != nil {
		d.Description = other.Description
	}
	if other.Location != nil {
		d.Location = other.Location
	}
	if other.Date != nil {
		d.Date = other.Date
	}
	if other.Cover != nil {
		d.Cover = other.Cover
	}
	for k, v := range other.Extra {
		if d.Extra == nil {
			d.Extra = map[string]any{}
		}
		d.Extra[k] = v
	}
}

// AddImage appends an image URL in discovery order.
func (d *AlbumDocument) AddImage(url string) {
	d.Images = append(d.Images, url)
}

// scalarString renders a YAML scalar as a trimmed string pointer, nil when
// absent or empty. YAML dates decode as time.Time and are stringified ISO.
func scalarString(value any) *string {
	var s string
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		s = v.Format("2006-01-02")
	default:
		s = utils.ToString(v)
	}
	if s == "" {
		return nil
	}
	return &s
}

// ExifDocument maps image reference keys to their raw attribute records.
// A nil record marks an entry whose value was not an object; the store skips
// (and counts) those.
type ExifDocument map[string]map[string]any

// exifKeyFields are tried in order when converting an array-shaped document
// into a keyed one.
var exifKeyFields = []string{"FileName", "fileName", "filename", "file_name", "name", "id"}

// ParseExifDocument deserializes the bucket-wide EXIF JSON document.
// Three shapes are accepted: a keyed object (happy path), a top-level array
// of records (each converted to a synthetic keyed entry), and anything else,
// which is rejected with a ParseError.
func ParseExifDocument(data []byte) (ExifDocument, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("invalid EXIF document: %v", err)}
	}

	switch v := raw.(type) {
	case map[string]any:
		doc := make(ExifDocument, len(v))
		for key, value := range v {
			if key == "" {
				continue
			}
			if record, ok := value.(map[string]any); ok {
				doc[key] = record
			} else {
				doc[key] = nil
			}
		}
		return doc, nil
	case []any:
		doc := ExifDocument{}
		for i, item := range v {
			record, ok := item.(map[string]any)
			if !ok {
				continue
			}
			key := ""
			for _, field := range exifKeyFields {
				if s := utils.ToString(record[field]); s != "" {
					key = s
					break
				}
			}
			if key == "" {
				key = fmt.Sprintf("item_%d", i)
			}
			doc[key] = record
		}
		if len(doc) == 0 {
			return nil, &ParseError{Reason: "EXIF array contains no usable records"}
		}
		return doc, nil
	case nil:
		return nil, &ParseError{Reason: "EXIF document is null"}
	default:
		return nil, &ParseError{Reason: fmt.Sprintf("EXIF document is %T, expected object", raw)}
	}
}

// ExifRecordFromEntry builds an ExifRecord from one raw document entry.
// Numeric subfields are parsed permissively: a field that fails to parse is
// stored as absent rather than failing the record.
func ExifRecordFromEntry(imageID string, data map[string]any) ExifRecord {
	rec := ExifRecord{
		ImageID:      imageID,
		CameraModel:  strField(data, "CameraModel"),
		LensModel:    strField(data, "LensModel"),
		FNumber:      utils.ToFloat(data["FNumber"]),
		ExposureTime: strField(data, "ExposureTime"),
		ISO:          utils.ToIntPtr(data["ISO"]),
		FocalLength:  strField(data, "FocalLength"),
		Location:     strField(data, "Location"),
		DateTime:     strField(data, "DateTime"),
		Orientation:  strField(data, "Orientation", "Image Orientation", "EXIF Orientation"),
		Latitude:     floatField(data, "GPSLatitude", "latitude", "Latitude"),
		Longitude:    floatField(data, "GPSLongitude", "longitude", "Longitude"),
	}
	if raw, err := json.Marshal(data); err == nil {
		rec.RawData = string(raw)
	}
	return rec
}

func strField(data map[string]any, keys ...string) *string {
	for _, key := range keys {
		if v, ok := data[key]; ok {
			if s := utils.ToString(v); s != "" {
				return &s
			}
		}
	}
	return nil
}

func floatField(data map[string]any, keys ...string) *float64 {
	for _, key := range keys {
		if f := utils.ToFloat(data[key]); f != nil {
			return f
		}
	}
	return nil
}
