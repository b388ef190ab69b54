// Package storage keeps contact-form attachments in S3-compatible object
// storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Simplici0/studio/internal/config"
)

// DownloadURLTTL is how long attachment links in notification emails stay valid.
const DownloadURLTTL = 7 * 24 * time.Hour

const defaultRegion = "us-east-1"

// Object is a stored file.
type Object struct {
	Key string
	URL string
}

// Uploader stores files.
type Uploader interface {
	Upload(ctx context.Context, folder, fileName, contentType string, r io.Reader, size int64) (Object, error)
}

// S3Uploader stores files in a single bucket through the MinIO client.
type S3Uploader struct {
	client *minio.Client
	bucket string
}

// NewS3Uploader creates a client for cfg. It does not contact the server.
func NewS3Uploader(cfg config.StorageConfig) (*S3Uploader, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("object storage is not configured")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: defaultRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("create object storage client: %w", err)
	}

	return &S3Uploader{client: client, bucket: cfg.Bucket}, nil
}

// EnsureBucket creates the bucket if it does not exist.
func (s *S3Uploader) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: defaultRegion}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *S3Uploader) Upload(ctx context.Context, folder, fileName, contentType string, r io.Reader, size int64) (Object, error) {
	key := objectKey(folder, fileName)

	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return Object{}, fmt.Errorf("upload %s: %w", key, err)
	}

	link, err := s.DownloadURL(ctx, key)
	if err != nil {
		return Object{Key: key}, err
	}
	return Object{Key: key, URL: link}, nil
}

// DownloadURL returns a presigned link to key.
func (s *S3Uploader) DownloadURL(ctx context.Context, key string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, DownloadURLTTL, nil)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return u.String(), nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// objectKey builds a collision-free key that keeps the original name readable.
func objectKey(folder, fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, `\`, "/"))
	ext := path.Ext(name)
	base := unsafeChars.ReplaceAllString(strings.TrimSuffix(name, ext), "-")
	base = strings.Trim(base, "-.")
	if base == "" {
		base = "file"
	}
	ext = unsafeChars.ReplaceAllString(ext, "")

	return path.Join(folder, fmt.Sprintf("%s_%s%s", base, uuid.New().String()[:8], ext))
}
