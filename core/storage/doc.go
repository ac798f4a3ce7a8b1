// Package storage provides an abstraction layer for the gallery object store.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the sync pipeline needs. The abstraction supports AWS S3,
// self-hosted MinIO, and any S3-compatible provider.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the gallery bucket.
//   - PutObject: Uploads content (local photo upload).
//   - GetObject: Retrieves content as a stream (album descriptors, EXIF doc).
//   - ListObjectsPage: Lists one page of keys with an explicit marker, so the
//     caller owns pagination and can resume or abort between pages.
//   - RemoveObject / RemoveObjects: Deletes objects (album deletion).
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	page, err := client.ListObjectsPage(ctx, "photos", "gallery/", "", 200)
package storage
