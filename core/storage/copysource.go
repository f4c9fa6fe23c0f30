package storage

import (
	"net/url"
	"strings"
)

// CopySource returns the percent-encoded "bucket/key" value expected by the
// S3 CopyObject x-amz-copy-source header. Each path segment is escaped on its
// own so the separators survive.
func CopySource(src ObjectRef) string {
	segments := strings.Split(src.Key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return url.PathEscape(src.Bucket) + "/" + strings.Join(segments, "/")
}
