package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type minioBackend struct {
	client *minio.Client
	region string
}

// newMinioBackend creates a MinIO client based on the configuration.
func newMinioBackend(cfg Config) (*minioBackend, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	if endpoint == "" {
		return nil, fmt.Errorf("minio provider requires an endpoint")
	}

	lookup := minio.BucketLookupAuto
	if cfg.PathStyle {
		lookup = minio.BucketLookupPath
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, cfg.SessionToken),
		Secure:       cfg.UseSSL,
		Region:       cfg.Region,
		Transport:    newTransport(cfg),
		BucketLookup: lookup,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	// Minio client performs lazy connection; credential problems surface on the first call.

	return &minioBackend{client: client, region: cfg.Region}, nil
}

func (m *minioBackend) BucketExists(ctx context.Context, bucket string) (bool, error) {
	ok, err := m.client.BucketExists(ctx, bucket)
	return ok, wrapMinioError(err)
}

func (m *minioBackend) MakeBucket(ctx context.Context, bucket string) error {
	return wrapMinioError(m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: m.region}))
}

func (m *minioBackend) RemoveBucket(ctx context.Context, bucket string) error {
	return wrapMinioError(m.client.RemoveBucket(ctx, bucket))
}

func (m *minioBackend) PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64) error {
	_, err := m.client.PutObject(ctx, bucket, key, reader, size, minio.PutObjectOptions{})
	return wrapMinioError(err)
}

// GetObject stats the object before handing it out, because minio.Object
// defers request errors until the first Read.
func (m *minioBackend) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	obj, err := m.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, wrapMinioError(err)
	}
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, wrapMinioError(err)
	}
	return obj, nil
}

func (m *minioBackend) RemoveObject(ctx context.Context, bucket, key string) error {
	return wrapMinioError(m.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}))
}

func (m *minioBackend) ListObjects(ctx context.Context, bucket string) ([]string, error) {
	var keys []string
	for obj := range m.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, wrapMinioError(obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

func (m *minioBackend) CopyObject(ctx context.Context, src, dst ObjectRef) error {
	_, err := m.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: dst.Bucket, Object: dst.Key},
		minio.CopySrcOptions{Bucket: src.Bucket, Object: src.Key},
	)
	return wrapMinioError(err)
}

// BlockPublicAccess removes the bucket policy. MinIO has no public-access-block
// API; a bucket without policy only serves signed requests.
func (m *minioBackend) BlockPublicAccess(ctx context.Context, bucket string) error {
	err := m.client.SetBucketPolicy(ctx, bucket, "")
	if minio.ToErrorResponse(err).Code == "NoSuchBucketPolicy" {
		return nil
	}
	return wrapMinioError(err)
}

func (m *minioBackend) PresignGetObject(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, bucket, key, expiry, url.Values{})
	if err != nil {
		return "", wrapMinioError(err)
	}
	return u.String(), nil
}
