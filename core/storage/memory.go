package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Make sure *Memory satisfies Backend interface.
var _ Backend = (*Memory)(nil)

// Memory is an in-process Backend following S3 semantics: creating an owned
// bucket conflicts, removing a non-empty bucket conflicts, removing an absent
// key succeeds and listing returns keys in lexicographic order.
//
// It is meant for offline runs of the CLI and for tests.
type Memory struct {
	mu      sync.RWMutex
	buckets map[string]map[string][]byte
	public  map[string]bool
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{
		buckets: make(map[string]map[string][]byte),
		public:  make(map[string]bool),
	}
}

func (m *Memory) BucketExists(_ context.Context, bucket string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.buckets[bucket]
	return ok, nil
}

func (m *Memory) MakeBucket(_ context.Context, bucket string) error {
	if bucket == "" {
		return fmt.Errorf("%w: bucket name cannot be empty", ErrInvalid)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.buckets[bucket]; ok {
		return fmt.Errorf("%w: bucket %s already owned by you", ErrConflict, bucket)
	}
	bucket = strings.Clone(bucket)
	m.buckets[bucket] = make(map[string][]byte)
	m.public[bucket] = true
	return nil
}

func (m *Memory) RemoveBucket(_ context.Context, bucket string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	objects, ok := m.buckets[bucket]
	if !ok {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	if len(objects) > 0 {
		return fmt.Errorf("%w: bucket %s is not empty", ErrConflict, bucket)
	}
	delete(m.buckets, bucket)
	delete(m.public, bucket)
	return nil
}

func (m *Memory) PutObject(_ context.Context, bucket, key string, reader io.Reader, _ int64) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("reading object body: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	objects, ok := m.buckets[bucket]
	if !ok {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	objects[strings.Clone(key)] = data
	return nil
}

func (m *Memory) GetObject(_ context.Context, bucket, key string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	objects, ok := m.buckets[bucket]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	data, ok := objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrObjectNotFound, bucket, key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *Memory) RemoveObject(_ context.Context, bucket, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	objects, ok := m.buckets[bucket]
	if !ok {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	delete(objects, key)
	return nil
}

func (m *Memory) ListObjects(_ context.Context, bucket string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	objects, ok := m.buckets[bucket]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	keys := make([]string, 0, len(objects))
	for k := range objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *Memory) CopyObject(_ context.Context, src, dst ObjectRef) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	srcObjects, ok := m.buckets[src.Bucket]
	if !ok {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, src.Bucket)
	}
	data, ok := srcObjects[src.Key]
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrObjectNotFound, src.Bucket, src.Key)
	}
	dstObjects, ok := m.buckets[dst.Bucket]
	if !ok {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, dst.Bucket)
	}
	dstObjects[strings.Clone(dst.Key)] = bytes.Clone(data)
	return nil
}

func (m *Memory) BlockPublicAccess(_ context.Context, bucket string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.buckets[bucket]; !ok {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	m.public[bucket] = false
	return nil
}

// IsPublic reports whether public access to the bucket is still allowed.
func (m *Memory) IsPublic(bucket string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.public[bucket]
}

// PresignGetObject returns a memory:// URL carrying the expiry as a unix timestamp.
func (m *Memory) PresignGetObject(_ context.Context, bucket, key string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		return "", fmt.Errorf("%w: expiry must be positive", ErrInvalid)
	}
	u := url.URL{
		Scheme:   "memory",
		Host:     bucket,
		Path:     "/" + key,
		RawQuery: url.Values{"X-Expires": {strconv.FormatInt(time.Now().Add(expiry).Unix(), 10)}}.Encode(),
	}
	return u.String(), nil
}
