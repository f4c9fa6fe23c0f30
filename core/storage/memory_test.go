package storage_test

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"storage-facade/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Buckets(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemory()

	require.NoError(t, m.MakeBucket(ctx, "b1"))

	exists, err := m.BucketExists(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, exists)

	t.Run("CreateTwiceConflicts", func(t *testing.T) {
		assert.ErrorIs(t, m.MakeBucket(ctx, "b1"), storage.ErrConflict)
	})

	t.Run("EmptyName", func(t *testing.T) {
		assert.ErrorIs(t, m.MakeBucket(ctx, ""), storage.ErrInvalid)
	})

	t.Run("RemoveNonEmptyConflicts", func(t *testing.T) {
		require.NoError(t, m.PutObject(ctx, "b1", "k", strings.NewReader("v"), 1))
		assert.ErrorIs(t, m.RemoveBucket(ctx, "b1"), storage.ErrConflict)
		require.NoError(t, m.RemoveObject(ctx, "b1", "k"))
	})

	t.Run("RemoveMissing", func(t *testing.T) {
		assert.ErrorIs(t, m.RemoveBucket(ctx, "missing"), storage.ErrBucketNotFound)
	})

	require.NoError(t, m.RemoveBucket(ctx, "b1"))
	exists, err = m.BucketExists(ctx, "b1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemory_Objects(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemory()
	require.NoError(t, m.MakeBucket(ctx, "src"))
	require.NoError(t, m.MakeBucket(ctx, "dst"))

	keys, err := m.ListObjects(ctx, "src")
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, m.PutObject(ctx, "src", "b.txt", strings.NewReader("bee"), 3))
	require.NoError(t, m.PutObject(ctx, "src", "a.txt", strings.NewReader("hello"), 5))

	keys, err = m.ListObjects(ctx, "src")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, keys)

	t.Run("GetRoundTrip", func(t *testing.T) {
		rc, err := m.GetObject(ctx, "src", "a.txt")
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := m.GetObject(ctx, "src", "nope")
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})

	t.Run("RemoveAbsentKeySucceeds", func(t *testing.T) {
		assert.NoError(t, m.RemoveObject(ctx, "src", "nope"))
	})

	t.Run("CopyIsIndependent", func(t *testing.T) {
		src := storage.ObjectRef{Bucket: "src", Key: "a.txt"}
		dst := storage.ObjectRef{Bucket: "dst", Key: "copy.txt"}
		require.NoError(t, m.CopyObject(ctx, src, dst))

		require.NoError(t, m.RemoveObject(ctx, "src", "a.txt"))

		rc, err := m.GetObject(ctx, "dst", "copy.txt")
		require.NoError(t, err)
		data, _ := io.ReadAll(rc)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("CopyMissingSource", func(t *testing.T) {
		err := m.CopyObject(ctx, storage.ObjectRef{Bucket: "src", Key: "gone"}, storage.ObjectRef{Bucket: "dst", Key: "x"})
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})

	t.Run("PutIntoMissingBucket", func(t *testing.T) {
		err := m.PutObject(ctx, "missing", "k", strings.NewReader("v"), 1)
		assert.ErrorIs(t, err, storage.ErrBucketNotFound)
	})
}

func TestMemory_BlockPublicAccess(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemory()
	require.NoError(t, m.MakeBucket(ctx, "b"))
	assert.True(t, m.IsPublic("b"))

	require.NoError(t, m.BlockPublicAccess(ctx, "b"))
	assert.False(t, m.IsPublic("b"))

	assert.ErrorIs(t, m.BlockPublicAccess(ctx, "missing"), storage.ErrBucketNotFound)
}

func TestMemory_PresignGetObject(t *testing.T) {
	m := storage.NewMemory()
	before := time.Now()

	raw, err := m.PresignGetObject(context.Background(), "b", "dir/k.txt", 30*time.Second)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "memory", u.Scheme)
	assert.Equal(t, "b", u.Host)
	assert.Equal(t, "/dir/k.txt", u.Path)

	expires, err := strconv.ParseInt(u.Query().Get("X-Expires"), 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, before.Add(30*time.Second).Unix(), expires, 1)

	_, err = m.PresignGetObject(context.Background(), "b", "k", 0)
	assert.ErrorIs(t, err, storage.ErrInvalid)
}
