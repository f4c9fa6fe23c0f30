package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// ObjectRef identifies a single object in a bucket.
type ObjectRef struct {
	Bucket string
	Key    string
}

// Client defines the interface for storage operations.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucket string) (bool, error)
	// MakeBucket creates a new bucket.
	MakeBucket(ctx context.Context, bucket string) error
	// RemoveBucket deletes an empty bucket.
	RemoveBucket(ctx context.Context, bucket string) error
	// PutObject uploads an object. A negative size means unknown length.
	PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64) error
	// GetObject downloads an object.
	GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error)
	// RemoveObject deletes an object from a bucket. Removing an absent key succeeds.
	RemoveObject(ctx context.Context, bucket, key string) error
	// ListObjects lists every key in a bucket in the order the service returns them.
	ListObjects(ctx context.Context, bucket string) ([]string, error)
	// CopyObject duplicates src into dst on the server side.
	CopyObject(ctx context.Context, src, dst ObjectRef) error
	// BlockPublicAccess prevents public exposure of the bucket contents.
	BlockPublicAccess(ctx context.Context, bucket string) error
}

// Signer issues temporary unauthenticated read URLs.
type Signer interface {
	// PresignGetObject returns a URL granting GET access to one object until expiry elapses.
	PresignGetObject(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}

// Backend is a provider implementation offering both handles.
type Backend interface {
	Client
	Signer
}

// NewClient creates a storage backend based on the configuration.
func NewClient(cfg Config) (Backend, error) {
	switch cfg.Provider {
	case ProviderS3, "":
		return newS3Backend(cfg)
	case ProviderMinio:
		return newMinioBackend(cfg)
	case ProviderMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

// newTransport builds an HTTP transport with strict timeouts shared by all providers.
func newTransport(cfg Config) *http.Transport {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}
}
