// Package gallery exposes the photo gallery over HTTP: album and photo
// reads, manual ordering and editorial state, the synchronization trigger
// (manual and webhook), the operation-log feed, and EXIF ingestion.
//
// The heavy lifting lives in the subpackages: models (entities and parsers),
// store (persistence) and sync (the pipeline).
package gallery
