package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Provider selects the backend implementation (s3, minio, memory).
	Provider string `mapstructure:"provider" default:"s3"`
	// Endpoint is the URL of the storage service. Empty means the provider default (AWS).
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// SessionToken is the optional session token for temporary credentials.
	SessionToken string `mapstructure:"session_token" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// PathStyle forces path-style bucket addressing (required by most MinIO setups).
	PathStyle bool `mapstructure:"path_style" default:"false"`
	// Region is the location of the buckets (e.g., us-east-1).
	Region string `mapstructure:"region" default:"us-east-1"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	ProviderS3     = "s3"
	ProviderMinio  = "minio"
	ProviderMemory = "memory"
)

// IsValidProvider checks if the configured provider is supported.
func (c Config) IsValidProvider() bool {
	switch c.Provider {
	case ProviderS3, ProviderMinio, ProviderMemory:
		return true
	default:
		return false
	}
}
