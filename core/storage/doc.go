// Package storage provides an abstraction layer for object storage services.
//
// It hides the provider SDKs behind two small interfaces: Client for bucket and
// object operations and Signer for presigned URL issuance. NewClient returns a
// Backend implementing both, selected by Config.Provider:
//
//   - s3: AWS SDK for Go v2 (S3, presign client, upload manager).
//   - minio: MinIO Go client, for self-hosted MinIO or any S3-compatible service.
//   - memory: in-process store with S3 semantics, for offline runs and tests.
//
// # Errors
//
// Provider errors are wrapped with one of ErrNotFound (ErrBucketNotFound,
// ErrObjectNotFound), ErrConflict, ErrDenied or ErrInvalid so callers can
// branch with errors.Is without depending on SDK error types.
//
// # Usage
//
//	backend, err := storage.NewClient(cfg.Storage)
//	exists, err := backend.BucketExists(ctx, "assets")
//	url, err := backend.PresignGetObject(ctx, "assets", "logo.png", 30*time.Second)
package storage
