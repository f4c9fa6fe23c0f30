package tour

import (
	"context"
	"fmt"
	"io"
	"strings"

	"storage-facade/feature/facade"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Step is the outcome of one stage of the tour.
type Step struct {
	Name string
	Err  error
}

// Report summarizes a tour run.
type Report struct {
	Bucket       string
	Keys         []string
	PresignedURL facade.PresignedURL
	Steps        []Step
}

// Failed returns the steps that did not succeed.
func (r *Report) Failed() []Step {
	var failed []Step
	for _, s := range r.Steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Err returns an error naming every failed step, or nil.
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	names := make([]string, len(failed))
	for i, s := range failed {
		names[i] = s.Name
	}
	return fmt.Errorf("tour finished with %d failed step(s): %s", len(failed), strings.Join(names, ", "))
}

// Runner walks through every facade operation against a throwaway bucket.
type Runner struct {
	svc    *facade.Service
	cfg    Config
	out    io.Writer
	logger *zap.Logger
}

// NewRunner creates a tour runner printing progress to out.
func NewRunner(svc *facade.Service, cfg Config, out io.Writer, logger *zap.Logger) *Runner {
	return &Runner{svc: svc, cfg: cfg, out: out, logger: logger}
}

// TransientBucketName returns the configured transient bucket or a fresh random one.
func TransientBucketName(cfg Config) string {
	if cfg.TransientBucket != "" {
		return cfg.TransientBucket
	}
	return "tour-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Run executes the sequence. A failed step is recorded and the tour moves
// on; cleanup always runs and only deletes the bucket once it is empty.
func (r *Runner) Run(ctx context.Context) *Report {
	bucket := TransientBucketName(r.cfg)
	report := &Report{Bucket: bucket}

	step := func(name string, err error) {
		report.Steps = append(report.Steps, Step{Name: name, Err: err})
		if err != nil {
			fmt.Fprintf(r.out, "✗ %s: %v\n", name, err)
			return
		}
		fmt.Fprintf(r.out, "✓ %s\n", name)
	}

	r.logger.Info("Starting tour", zap.String("primary", r.cfg.PrimaryBucket), zap.String("transient", bucket))

	step("create bucket "+bucket, r.svc.CreateBucket(ctx, bucket))
	step("block public access", r.svc.BlockPublicAccess(ctx, bucket))
	step("upload "+r.cfg.UploadFile, r.svc.UploadFile(ctx, bucket, r.cfg.UploadFile, r.cfg.UploadDir, r.cfg.UploadFile))
	step("copy "+r.cfg.CopyFile, r.svc.CopyFile(ctx, r.cfg.PrimaryBucket, bucket, r.cfg.CopyFile, r.cfg.CopyFile))

	keys, err := r.svc.ListFiles(ctx, bucket)
	step("list "+bucket, err)
	report.Keys = keys
	if err == nil {
		fmt.Fprintln(r.out, "These are the files in the transient bucket")
		for _, k := range keys {
			fmt.Fprintf(r.out, "  %s\n", k)
		}
	}

	step("download "+r.cfg.CopyFile, r.svc.DownloadFile(ctx, r.cfg.PrimaryBucket, r.cfg.CopyFile, r.cfg.DownloadDir, r.cfg.CopyFile))

	presigned, err := r.svc.CreatePresignedURL(ctx, bucket, r.cfg.CopyFile)
	step("presign "+r.cfg.CopyFile, err)
	if err == nil {
		report.PresignedURL = presigned
		fmt.Fprintf(r.out, "  %s (expires %s)\n", presigned.URL, presigned.ExpiresAt.Format("15:04:05"))
	}

	step("delete bucket "+bucket, r.svc.DeleteBucketRecursive(ctx, bucket))

	if err := report.Err(); err != nil {
		r.logger.Warn("Tour finished with failures", zap.Int("failed", len(report.Failed())))
	} else {
		r.logger.Info("Tour finished", zap.Int("steps", len(report.Steps)))
	}
	return report
}
