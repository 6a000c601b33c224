package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

// MaxUploadBytes caps ticket attachment size at 2 MiB.
const MaxUploadBytes = 2 * 1024 * 1024

const urlTTL = time.Hour

// PresignedUpload is a time-limited URL plus the storage key it writes to.
type PresignedUpload struct {
	URL string
	Key string
}

// ObjectStore issues presigned upload and download URLs.
type ObjectStore interface {
	PresignUpload(ctx context.Context, fileName, fileType string, fileSize int64) (*PresignedUpload, error)
	PresignDownload(ctx context.Context, key string) (string, error)
}

// S3Store issues presigned URLs against a single bucket.
type S3Store struct {
	presigner *s3.PresignClient
	bucket    string
	now       func() time.Time
}

// NewS3Store constructs the store.
func NewS3Store(client *s3.Client, bucket string) *S3Store {
	return &S3Store{
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		now:       time.Now,
	}
}

// PresignUpload validates the size cap and returns a one-hour upload URL.
// Keys are namespaced under tickets/ with a millisecond prefix.
func (s *S3Store) PresignUpload(ctx context.Context, fileName, fileType string, fileSize int64) (*PresignedUpload, error) {
	if fileSize > MaxUploadBytes {
		return nil, apperrors.NewValidationError("file size exceeds 2MB limit", nil)
	}

	key := fmt.Sprintf("tickets/%d-%s", s.now().UnixMilli(), fileName)
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}, s3.WithPresignExpires(urlTTL))
	if err != nil {
		return nil, apperrors.NewExternalServiceError("s3", err)
	}
	return &PresignedUpload{URL: req.URL, Key: key}, nil
}

// PresignDownload returns a one-hour download URL for a stored object.
func (s *S3Store) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(urlTTL))
	if err != nil {
		return "", apperrors.NewExternalServiceError("s3", err)
	}
	return req.URL, nil
}
