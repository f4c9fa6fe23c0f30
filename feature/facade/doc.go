// Package facade provides the storage facade: bucket and object operations
// against an S3-compatible store behind a small, typed API.
//
// # Operations
//
//   - CreateBucket, DeleteBucket, BucketExists, BlockPublicAccess
//   - UploadFile / DownloadFile: local file transfer (dir + file name)
//   - Put / Open: streaming variants used by the HTTP API
//   - DeleteFile: idempotent, an absent key is not an error
//   - ListFiles: every key, in the order the service returns them
//   - CopyFile: server-side copy between buckets
//   - CreatePresignedURL: temporary GET link (30s by default)
//   - EmptyBucket / DeleteBucketRecursive: bulk cleanup
//
// Every failure is logged, journaled and returned as an *OpError whose Kind
// tells callers whether the target was missing, conflicting, forbidden,
// malformed or the store was unreachable.
//
// # HTTP Endpoints
//
//   - PUT /buckets/:bucket : Create bucket.
//   - DELETE /buckets/:bucket : Delete bucket (supports ?recursive=true).
//   - PUT /buckets/:bucket/public-access-block : Block public access.
//   - GET /buckets/:bucket/objects : List keys.
//   - PUT|GET|DELETE /buckets/:bucket/objects/* : Upload, download, delete an object.
//   - GET /buckets/:bucket/presign/* : Presigned GET URL.
//   - POST /copy : Copy an object.
package facade
