package storage

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/minio/minio-go/v7"
)

// Error classes returned by every backend. Provider errors are wrapped, so
// both errors.Is against these and errors.As against the SDK types work.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrDenied   = errors.New("access denied")
	ErrInvalid  = errors.New("invalid request")

	ErrBucketNotFound = fmt.Errorf("bucket %w", ErrNotFound)
	ErrObjectNotFound = fmt.Errorf("object %w", ErrNotFound)
)

// classifyCode maps an S3 error code to one of the error classes.
func classifyCode(code string) error {
	switch code {
	case "NoSuchKey":
		return ErrObjectNotFound
	case "NotFound":
		return ErrNotFound
	case "NoSuchBucket":
		return ErrBucketNotFound
	case "BucketAlreadyExists", "BucketAlreadyOwnedByYou", "BucketNotEmpty", "OperationAborted":
		return ErrConflict
	case "AccessDenied", "Forbidden", "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken", "InvalidToken", "AllAccessDisabled":
		return ErrDenied
	case "InvalidBucketName", "InvalidArgument", "KeyTooLongError", "EntityTooLarge", "InvalidObjectName", "XMinioInvalidObjectName":
		return ErrInvalid
	default:
		return nil
	}
}

func wrapClass(class, err error) error {
	if class == nil {
		return err
	}
	return fmt.Errorf("%w: %w", class, err)
}

// wrapMinioError attaches an error class to a MinIO client error.
func wrapMinioError(err error) error {
	if err == nil {
		return nil
	}
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return err
	}
	return wrapClass(classifyCode(resp.Code), err)
}

// wrapS3Error attaches an error class to an AWS SDK error.
func wrapS3Error(err error) error {
	if err == nil {
		return nil
	}

	var noKey *types.NoSuchKey
	var noBucket *types.NoSuchBucket
	var notFound *types.NotFound
	var owned *types.BucketAlreadyOwnedByYou
	var exists *types.BucketAlreadyExists
	var apiErr smithy.APIError

	switch {
	case errors.As(err, &noKey):
		return wrapClass(ErrObjectNotFound, err)
	case errors.As(err, &noBucket):
		return wrapClass(ErrBucketNotFound, err)
	case errors.As(err, &notFound):
		return wrapClass(ErrNotFound, err)
	case errors.As(err, &owned), errors.As(err, &exists):
		return wrapClass(ErrConflict, err)
	case errors.As(err, &apiErr):
		return wrapClass(classifyCode(apiErr.ErrorCode()), err)
	default:
		return err
	}
}
