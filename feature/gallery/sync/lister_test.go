package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"gallery-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func page(truncated bool, nextMarker string, keys ...string) minio.ListBucketResult {
	res := minio.ListBucketResult{IsTruncated: truncated, NextMarker: nextMarker}
	for _, key := range keys {
		res.Contents = append(res.Contents, minio.ObjectInfo{Key: key})
	}
	return res
}

func newTestLister(client *mocks.Client) *Lister {
	l := NewLister(client, "photos", zap.NewNop())
	l.sleep = func(time.Duration) {}
	return l
}

func TestListAllWalksAllPages(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjectsPage", mock.Anything, "photos", "gallery/", "", listPageSize).
		Return(page(true, "gallery/b", "gallery/a", "gallery/b"), nil)
	client.On("ListObjectsPage", mock.Anything, "photos", "gallery/", "gallery/b", listPageSize).
		Return(page(false, "", "gallery/c"), nil)

	keys, err := newTestLister(client).ListAll(context.Background(), "gallery/")
	require.NoError(t, err)
	assert.Equal(t, []string{"gallery/a", "gallery/b", "gallery/c"}, keys)
	client.AssertNumberOfCalls(t, "ListObjectsPage", 2)
}

func TestListAllFallsBackToLastKeyAsMarker(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjectsPage", mock.Anything, "photos", "gallery/", "", listPageSize).
		Return(page(true, "", "gallery/a"), nil)
	client.On("ListObjectsPage", mock.Anything, "photos", "gallery/", "gallery/a", listPageSize).
		Return(page(false, "", "gallery/b"), nil)

	keys, err := newTestLister(client).ListAll(context.Background(), "gallery/")
	require.NoError(t, err)
	assert.Equal(t, []string{"gallery/a", "gallery/b"}, keys)
}

func TestListAllStopsOnRepeatedMarker(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjectsPage", mock.Anything, "photos", "gallery/", "", listPageSize).
		Return(page(true, "stuck", "gallery/a"), nil).Once()
	// The backend keeps returning the same marker forever.
	client.On("ListObjectsPage", mock.Anything, "photos", "gallery/", "stuck", listPageSize).
		Return(page(true, "stuck", "gallery/b"), nil)

	keys, err := newTestLister(client).ListAll(context.Background(), "gallery/")
	require.NoError(t, err)
	assert.Equal(t, []string{"gallery/a", "gallery/b"}, keys)
	client.AssertNumberOfCalls(t, "ListObjectsPage", 2)
}

func TestListAllRetriesWithLinearBackoff(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjectsPage", mock.Anything, "photos", "gallery/", "", listPageSize).
		Return(minio.ListBucketResult{}, errors.New("connection reset"))

	l := NewLister(client, "photos", zap.NewNop())
	var pauses []time.Duration
	l.sleep = func(d time.Duration) { pauses = append(pauses, d) }

	_, err := l.ListAll(context.Background(), "gallery/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list page 1")
	client.AssertNumberOfCalls(t, "ListObjectsPage", maxAttempts)
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, pauses)
}
