// Package models defines the gallery's persistent entities and the parsers
// that turn raw object-store bytes into typed records.
//
// # Entities
//
// Album, Image, ExifRecord, Operation and Setting map 1:1 onto the relational
// schema (GORM-tagged). Image identity is the composite "{albumID}/{filename}".
//
// # Parsers
//
// ParseAlbumDescriptor reads the per-album YAML descriptor, keeping unknown
// keys in an Extra bag. ParseExifDocument reads the bucket-wide EXIF JSON and
// tolerates both a keyed object and a top-level array shape. Both reject only
// documents that cannot be interpreted at all, via ParseError.
package models
