// Package tour runs the demonstration sequence against a storage facade:
// create a transient bucket, lock it down, upload, copy from the primary
// bucket, list, download, presign and finally tear the bucket down again.
package tour
