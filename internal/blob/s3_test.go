package blob

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *S3Store {
	t.Helper()
	store, err := NewS3Store(context.Background(), S3Options{
		Region:    "us-east-1",
		Bucket:    "imagefeed-test",
		AccessKey: "test-access-key",
		SecretKey: "test-secret-key",
	})
	require.NoError(t, err)
	return store
}

func TestPresignPut_ContainsBucketAndKey(t *testing.T) {
	store := newTestStore(t)

	url, err := store.PresignPut(context.Background(), "test.jpg")
	require.NoError(t, err)
	require.Contains(t, url, "imagefeed-test")
	require.Contains(t, url, "test.jpg")
	require.Contains(t, url, "X-Amz-Signature=")
	require.Contains(t, url, "X-Amz-Expires=300")
}

func TestPresignGet_ContainsBucketAndKey(t *testing.T) {
	store := newTestStore(t)

	url, err := store.PresignGet(context.Background(), "test.jpg")
	require.NoError(t, err)
	require.Contains(t, url, "imagefeed-test")
	require.Contains(t, url, "test.jpg")
	require.True(t, strings.HasPrefix(url, "https://"), "url = %s", url)
}

func TestPresignPutAndGet_Differ(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	put, err := store.PresignPut(ctx, "test.jpg")
	require.NoError(t, err)
	get, err := store.PresignGet(ctx, "test.jpg")
	require.NoError(t, err)
	require.NotEqual(t, put, get)
}
