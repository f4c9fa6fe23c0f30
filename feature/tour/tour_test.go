package tour_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storage-facade/core/storage"
	"storage-facade/feature/facade"
	"storage-facade/feature/tour"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setup(t *testing.T) (*storage.Memory, tour.Config) {
	t.Helper()
	ctx := context.Background()
	mem := storage.NewMemory()
	require.NoError(t, mem.MakeBucket(ctx, "fpmlil"))
	require.NoError(t, mem.PutObject(ctx, "fpmlil", "lil1.txt", strings.NewReader("one"), 3))

	upDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(upDir, "lil2.txt"), []byte("two"), 0o644))

	return mem, tour.Config{
		PrimaryBucket:   "fpmlil",
		TransientBucket: "transient",
		UploadDir:       upDir,
		DownloadDir:     filepath.Join(t.TempDir(), "down"),
		UploadFile:      "lil2.txt",
		CopyFile:        "lil1.txt",
	}
}

func TestRunner_Run(t *testing.T) {
	mem, cfg := setup(t)
	svc := facade.NewService(mem, mem, facade.Config{}, zap.NewNop(), nil)
	var out bytes.Buffer

	report := tour.NewRunner(svc, cfg, &out, zap.NewNop()).Run(context.Background())

	require.NoError(t, report.Err())
	assert.Equal(t, "transient", report.Bucket)
	assert.Equal(t, []string{"lil1.txt", "lil2.txt"}, report.Keys)
	assert.Contains(t, report.PresignedURL.URL, "memory://transient/lil1.txt")
	assert.Len(t, report.Steps, 8)

	data, err := os.ReadFile(filepath.Join(cfg.DownloadDir, "lil1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))

	exists, err := mem.BucketExists(context.Background(), "transient")
	require.NoError(t, err)
	assert.False(t, exists)

	// the primary bucket is untouched
	keys, _ := mem.ListObjects(context.Background(), "fpmlil")
	assert.Equal(t, []string{"lil1.txt"}, keys)

	assert.Contains(t, out.String(), "These are the files in the transient bucket")
}

func TestRunner_ContinuesPastFailures(t *testing.T) {
	mem, cfg := setup(t)
	cfg.UploadFile = "missing.txt"
	svc := facade.NewService(mem, mem, facade.Config{}, zap.NewNop(), nil)
	var out bytes.Buffer

	report := tour.NewRunner(svc, cfg, &out, zap.NewNop()).Run(context.Background())

	err := report.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload missing.txt")

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, facade.KindNotFound, facade.KindOf(failed[0].Err))

	// later steps still ran and the bucket was cleaned up
	assert.Equal(t, []string{"lil1.txt"}, report.Keys)
	exists, _ := mem.BucketExists(context.Background(), "transient")
	assert.False(t, exists)
}

func TestTransientBucketName(t *testing.T) {
	assert.Equal(t, "fixed", tour.TransientBucketName(tour.Config{TransientBucket: "fixed"}))

	a := tour.TransientBucketName(tour.Config{})
	b := tour.TransientBucketName(tour.Config{})
	assert.Regexp(t, `^tour-[0-9a-f]{8}$`, a)
	assert.NotEqual(t, a, b)
}
