// Package store implements the relational persistence layer of the gallery:
// merge-preserving album and image upserts, EXIF reconciliation with image
// metadata backfill, the append-only operation log, and the read queries the
// HTTP surface serves from.
package store
