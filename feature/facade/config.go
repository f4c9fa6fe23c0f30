package facade

import "time"

// DefaultPresignExpiry is the validity window of presigned URLs when none is configured.
const DefaultPresignExpiry = 30 * time.Second

// Config holds configuration for the storage facade.
type Config struct {
	// PresignExpiry is how long a presigned URL stays valid.
	PresignExpiry time.Duration `mapstructure:"presign_expiry" default:"30s"`
}
