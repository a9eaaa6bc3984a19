// Package storage provides the S3-compatible object store used for
// enquiry attachments.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"bhavesh/backend/internal/config"
)

// MinioStore implements the upload service's ObjectStore against a
// MinIO (or any S3-compatible) endpoint.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioStore connects to the configured endpoint and ensures the
// attachment bucket exists.
func NewMinioStore(ctx context.Context, cfg config.Config) (*MinioStore, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageSecure,
	})
	if err != nil {
		return nil, fmt.Errorf("create object storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.StorageBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.StorageBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	publicURL := strings.TrimSuffix(cfg.StoragePublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.StorageSecure {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.StorageEndpoint)
	}

	return &MinioStore{
		client:    client,
		bucket:    cfg.StorageBucket,
		publicURL: publicURL,
	}, nil
}

func (s *MinioStore) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key)
}
