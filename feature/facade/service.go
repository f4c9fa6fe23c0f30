package facade

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"storage-facade/core/logger"
	"storage-facade/core/storage"
	"storage-facade/feature/journal"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// PresignedURL is a temporary unauthenticated GET link to one object.
type PresignedURL struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service performs bucket and object operations against a remote store.
// It keeps no mutable state and is safe for concurrent use.
type Service struct {
	client   storage.Client
	signer   storage.Signer
	cfg      Config
	logger   *zap.Logger
	recorder journal.Recorder
	now      func() time.Time
}

// NewService creates a new facade service. A nil recorder disables the journal.
func NewService(client storage.Client, signer storage.Signer, cfg Config, logger *zap.Logger, recorder journal.Recorder) *Service {
	if cfg.PresignExpiry <= 0 {
		cfg.PresignExpiry = DefaultPresignExpiry
	}
	if recorder == nil {
		recorder = journal.Nop{}
	}
	return &Service{
		client:   client,
		signer:   signer,
		cfg:      cfg,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// CreateBucket creates a new bucket.
func (s *Service) CreateBucket(ctx context.Context, bucket string) error {
	start := time.Now()
	err := requireBucket(bucket)
	if err == nil {
		err = s.client.MakeBucket(ctx, bucket)
	}
	return s.observe(ctx, "createBucket", bucket, "", start, err)
}

// BucketExists reports whether bucket exists.
func (s *Service) BucketExists(ctx context.Context, bucket string) (bool, error) {
	start := time.Now()
	var exists bool
	err := requireBucket(bucket)
	if err == nil {
		exists, err = s.client.BucketExists(ctx, bucket)
	}
	return exists, s.observe(ctx, "bucketExists", bucket, "", start, err)
}

// Put stores the contents of r under key. A negative size means unknown length.
func (s *Service) Put(ctx context.Context, bucket, key string, r io.Reader, size int64) error {
	start := time.Now()
	err := requireObject(bucket, key)
	if err == nil {
		err = s.client.PutObject(ctx, bucket, key, r, size)
	}
	return s.observe(ctx, "putObject", bucket, key, start, err)
}

// UploadFile stores the local file dir/fileName under key. The local file is
// never modified.
func (s *Service) UploadFile(ctx context.Context, bucket, fileName, dir, key string) error {
	start := time.Now()
	err := requireObject(bucket, key)
	if err == nil {
		err = s.upload(ctx, bucket, key, filepath.Join(dir, fileName))
	}
	return s.observe(ctx, "uploadFile", bucket, key, start, err)
}

func (s *Service) upload(ctx context.Context, bucket, key, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	return s.client.PutObject(ctx, bucket, key, f, info.Size())
}

// Open returns a reader for the object. The caller must close it.
func (s *Service) Open(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	start := time.Now()
	var rc io.ReadCloser
	err := requireObject(bucket, key)
	if err == nil {
		rc, err = s.client.GetObject(ctx, bucket, key)
	}
	if err := s.observe(ctx, "getObject", bucket, key, start, err); err != nil {
		return nil, err
	}
	return rc, nil
}

// DownloadFile writes the object to the local file dir/fileName. The content
// is staged in a temporary file in dir, so a failed download leaves no
// partial file behind.
func (s *Service) DownloadFile(ctx context.Context, bucket, fileName, dir, key string) error {
	start := time.Now()
	err := requireObject(bucket, key)
	if err == nil {
		err = s.download(ctx, bucket, key, dir, fileName)
	}
	return s.observe(ctx, "downloadFile", bucket, key, start, err)
}

func (s *Service) download(ctx context.Context, bucket, key, dir, fileName string) (err error) {
	rc, err := s.client.GetObject(ctx, bucket, key)
	if err != nil {
		return err
	}
	defer rc.Close()

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fileName)+".*.part")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = io.Copy(tmp, rc); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", fileName, err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(dir, fileName))
}

// DeleteFile removes key from bucket. Deleting an absent key succeeds.
func (s *Service) DeleteFile(ctx context.Context, bucket, key string) error {
	start := time.Now()
	err := requireObject(bucket, key)
	if err == nil {
		err = s.client.RemoveObject(ctx, bucket, key)
		if errors.Is(err, storage.ErrObjectNotFound) {
			err = nil
		}
	}
	return s.observe(ctx, "deleteFile", bucket, key, start, err)
}

// ListFiles returns every key in bucket in the order the service returns them.
// A failed listing returns nil, so an empty bucket and an error are distinguishable.
func (s *Service) ListFiles(ctx context.Context, bucket string) ([]string, error) {
	start := time.Now()
	var keys []string
	err := requireBucket(bucket)
	if err == nil {
		keys, err = s.client.ListObjects(ctx, bucket)
	}
	if err := s.observe(ctx, "listFiles", bucket, "", start, err); err != nil {
		return nil, err
	}
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}

// CopyFile duplicates srcBucket/srcKey into dstBucket/dstKey on the server side.
func (s *Service) CopyFile(ctx context.Context, srcBucket, dstBucket, srcKey, dstKey string) error {
	start := time.Now()
	err := requireObject(srcBucket, srcKey)
	if err == nil {
		err = requireObject(dstBucket, dstKey)
	}
	if err == nil {
		src := storage.ObjectRef{Bucket: srcBucket, Key: srcKey}
		dst := storage.ObjectRef{Bucket: dstBucket, Key: dstKey}
		if err = s.client.CopyObject(ctx, src, dst); err != nil {
			err = fmt.Errorf("copy from %s/%s: %w", srcBucket, srcKey, err)
		}
	}
	return s.observe(ctx, "copyFile", dstBucket, dstKey, start, err)
}

// BlockPublicAccess blocks public ACLs and policies on bucket.
func (s *Service) BlockPublicAccess(ctx context.Context, bucket string) error {
	start := time.Now()
	err := requireBucket(bucket)
	if err == nil {
		err = s.client.BlockPublicAccess(ctx, bucket)
	}
	return s.observe(ctx, "blockPublicAccess", bucket, "", start, err)
}

// CreatePresignedURL issues a GET URL for the object valid for the configured window.
// Signing happens locally, so the object is not required to exist yet.
func (s *Service) CreatePresignedURL(ctx context.Context, bucket, key string) (PresignedURL, error) {
	start := time.Now()
	issued := s.now()
	var raw string
	err := requireObject(bucket, key)
	if err == nil {
		raw, err = s.signer.PresignGetObject(ctx, bucket, key, s.cfg.PresignExpiry)
	}
	if err := s.observe(ctx, "createPresignedUrl", bucket, key, start, err); err != nil {
		return PresignedURL{}, err
	}
	return PresignedURL{URL: raw, ExpiresAt: issued.Add(s.cfg.PresignExpiry)}, nil
}

// DeleteBucket removes an empty bucket.
func (s *Service) DeleteBucket(ctx context.Context, bucket string) error {
	start := time.Now()
	err := requireBucket(bucket)
	if err == nil {
		err = s.client.RemoveBucket(ctx, bucket)
	}
	return s.observe(ctx, "deleteBucket", bucket, "", start, err)
}

// EmptyBucket deletes every key in bucket. It keeps going past failed
// deletions and returns all of them combined.
func (s *Service) EmptyBucket(ctx context.Context, bucket string) error {
	keys, err := s.ListFiles(ctx, bucket)
	if err != nil {
		return err
	}

	var errs error
	for _, key := range keys {
		errs = multierr.Append(errs, s.DeleteFile(ctx, bucket, key))
	}
	return errs
}

// DeleteBucketRecursive empties bucket and then deletes it. The bucket is
// only deleted when every key was removed; otherwise the remaining keys are
// reported and the bucket is left in place.
func (s *Service) DeleteBucketRecursive(ctx context.Context, bucket string) error {
	if err := s.EmptyBucket(ctx, bucket); err != nil {
		failed := multierr.Errors(err)
		return &OpError{
			Op:     "deleteBucketRecursive",
			Bucket: bucket,
			Kind:   KindOf(failed[0]),
			Err:    fmt.Errorf("bucket kept, %d operation(s) failed: %w", len(failed), err),
		}
	}
	return s.DeleteBucket(ctx, bucket)
}

// observe logs and journals the outcome of op and converts err into an *OpError.
func (s *Service) observe(ctx context.Context, op, bucket, key string, start time.Time, err error) error {
	elapsed := time.Since(start)

	l := logger.FromContext(s.logger, ctx).With(zap.String("op", op), zap.String("bucket", bucket))
	if key != "" {
		l = l.With(zap.String("key", key))
	}

	entry := journal.Entry{
		RayID:      logger.RayIDFromContext(ctx),
		Operation:  op,
		Bucket:     bucket,
		Key:        key,
		Outcome:    journal.OutcomeOK,
		DurationMS: elapsed.Milliseconds(),
	}

	var opErr *OpError
	if err != nil {
		opErr = &OpError{Op: op, Bucket: bucket, Key: key, Kind: classify(err), Err: err}
		entry.Outcome = opErr.Kind.String()
		entry.Error = err.Error()
		l.Error("Storage operation failed", zap.Stringer("kind", opErr.Kind), zap.Error(err))
	} else {
		l.Debug("Storage operation succeeded", zap.Duration("duration", elapsed))
	}

	if rerr := s.recorder.Record(ctx, entry); rerr != nil {
		l.Warn("Failed to record journal entry", zap.Error(rerr))
	}

	if opErr == nil {
		return nil
	}
	return opErr
}

func requireBucket(bucket string) error {
	if bucket == "" {
		return fmt.Errorf("%w: bucket name is required", storage.ErrInvalid)
	}
	return nil
}

func requireObject(bucket, key string) error {
	if err := requireBucket(bucket); err != nil {
		return err
	}
	if key == "" {
		return fmt.Errorf("%w: object key is required", storage.ErrInvalid)
	}
	return nil
}
