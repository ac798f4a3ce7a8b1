package sync

import (
	"context"
	"fmt"
	"time"

	"gallery-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const (
	listPageSize = 200
	maxAttempts  = 3
)

// Lister enumerates every object key under a prefix via marker pagination.
type Lister struct {
	client storage.Client
	bucket string
	log    *zap.Logger

	// sleep is swapped out in tests so retry backoff does not slow them down.
	sleep func(time.Duration)
}

// NewLister creates a Lister for one bucket.
func NewLister(client storage.Client, bucket string, log *zap.Logger) *Lister {
	return &Lister{
		client: client,
		bucket: bucket,
		log:    log,
		sleep:  time.Sleep,
	}
}

// ListAll drives the listing to exhaustion and returns all keys under prefix.
//
// Each page fetch is retried up to 3 times with linear backoff before the
// error aborts the listing. A page whose marker does not advance ends the
// listing early with a warning; a misbehaving backend must never turn the
// marker loop into an infinite one.
func (l *Lister) ListAll(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	marker := ""

	for page := 1; ; page++ {
		res, err := l.fetchPage(ctx, prefix, marker)
		if err != nil {
			return nil, fmt.Errorf("list page %d (marker %q): %w", page, marker, err)
		}

		for _, obj := range res.Contents {
			keys = append(keys, obj.Key)
		}

		if !res.IsTruncated {
			break
		}

		next := res.NextMarker
		if next == "" && len(res.Contents) > 0 {
			next = res.Contents[len(res.Contents)-1].Key
		}
		if next == marker {
			l.log.Warn("listing marker did not advance, stopping early",
				zap.String("marker", marker),
				zap.Int("page", page))
			break
		}
		marker = next
	}

	return keys, nil
}

func (l *Lister) fetchPage(ctx context.Context, prefix, marker string) (minio.ListBucketResult, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		res, err := l.client.ListObjectsPage(ctx, l.bucket, prefix, marker, listPageSize)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if attempt < maxAttempts {
			l.log.Warn("listing page failed, retrying",
				zap.Int("attempt", attempt),
				zap.String("marker", marker),
				zap.Error(err))
			l.sleep(time.Duration(attempt) * time.Second)
		}
	}
	return minio.ListBucketResult{}, lastErr
}
