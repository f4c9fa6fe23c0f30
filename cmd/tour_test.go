package cmd

import (
	"testing"

	"storage-facade/feature/tour"

	"github.com/stretchr/testify/assert"
)

func TestMergeTourConfig(t *testing.T) {
	base := tour.Config{
		PrimaryBucket: "fpmlil",
		UploadDir:     ".",
		DownloadDir:   "downloads",
		UploadFile:    "lil2.txt",
		CopyFile:      "lil1.txt",
	}

	got := mergeTourConfig(base, tour.Config{PrimaryBucket: "other", TransientBucket: "tmp-1"})

	assert.Equal(t, "other", got.PrimaryBucket)
	assert.Equal(t, "tmp-1", got.TransientBucket)
	assert.Equal(t, "downloads", got.DownloadDir)
	assert.Equal(t, "lil2.txt", got.UploadFile)
	assert.Equal(t, base, mergeTourConfig(base, tour.Config{}))
}
