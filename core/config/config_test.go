package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"storage-facade/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the tests touch; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	for _, name := range []string{
		"SERVER_PORT", "STORAGE_PROVIDER", "STORAGE_REGION", "STORAGE_ACCESS_KEY",
		"STORAGE_SECRET_KEY", "STORAGE_SESSION_TOKEN", "AWS_ACCESS_KEY_ID",
		"AWS_SECRET_ACCESS_KEY", "AWS_SESSION_TOKEN", "FACADE_PRESIGN_EXPIRY",
		"TOUR_PRIMARY_BUCKET", "DATABASE_ENABLED", "LOG_LEVEL",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "s3", cfg.Storage.Provider)
	assert.Equal(t, "us-east-1", cfg.Storage.Region)
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Equal(t, 30*time.Second, cfg.Facade.PresignExpiry)
	assert.Equal(t, "fpmlil", cfg.Tour.PrimaryBucket)
	assert.Equal(t, "lil1.txt", cfg.Tour.CopyFile)
	assert.Equal(t, "lil2.txt", cfg.Tour.UploadFile)
	assert.Empty(t, cfg.Tour.TransientBucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoadConfig_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_PROVIDER", "minio")
	t.Setenv("FACADE_PRESIGN_EXPIRY", "2m")
	t.Setenv("TOUR_PRIMARY_BUCKET", "other")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "minio", cfg.Storage.Provider)
	assert.Equal(t, 2*time.Minute, cfg.Facade.PresignExpiry)
	assert.Equal(t, "other", cfg.Tour.PrimaryBucket)
}

func TestLoadConfig_AWSCredentialFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIAEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_SESSION_TOKEN", "token")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "AKIAEXAMPLE", cfg.Storage.AccessKey)
	assert.Equal(t, "secret", cfg.Storage.SecretKey)
	assert.Equal(t, "token", cfg.Storage.SessionToken)

	t.Run("NamespacedWins", func(t *testing.T) {
		t.Setenv("STORAGE_ACCESS_KEY", "minioadmin")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "minioadmin", cfg.Storage.AccessKey)
		assert.Equal(t, "secret", cfg.Storage.SecretKey)
	})
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := "SERVER_PORT=9090\nSTORAGE_REGION=eu-central-1\nDATABASE_ENABLED=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "eu-central-1", cfg.Storage.Region)
	assert.True(t, cfg.Database.Enabled)
}
