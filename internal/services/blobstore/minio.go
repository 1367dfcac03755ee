package blobstore

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig describes an S3 compatible endpoint.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Secure    bool
}

// MinioDownloader reads objects from an S3 compatible bucket.
type MinioDownloader struct {
	client *minio.Client
	bucket string
}

func NewMinioDownloader(cfg MinioConfig) (*MinioDownloader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &MinioDownloader{client: client, bucket: cfg.Bucket}, nil
}

func (m *MinioDownloader) Download(ctx context.Context, blobName string, w io.Writer) error {
	obj, err := m.client.GetObject(ctx, m.bucket, blobName, minio.GetObjectOptions{})
	if err != nil {
		return err
	}
	defer obj.Close() //nolint:errcheck

	_, err = io.Copy(w, obj)
	return err
}
