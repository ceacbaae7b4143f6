package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const noSuchKeyCode = "NoSuchKey"

// MinIODocumentStore implements DocumentStore on MinIO/S3-compatible storage.
type MinIODocumentStore struct {
	client *minio.Client
	bucket string
}

func NewMinIODocumentStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinIODocumentStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &MinIODocumentStore{client: client, bucket: bucket}, nil
}

// EnsureBucket creates the bucket if it does not exist. Called once at
// startup rather than per operation.
func (s *MinIODocumentStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}
	return nil
}

func (s *MinIODocumentStore) Read(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// GetObject is lazy: a missing key surfaces here on first read.
		if minio.ToErrorResponse(err).Code == noSuchKeyCode {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("read document %s: %w", key, err)
	}
	return data, nil
}

func (s *MinIODocumentStore) Write(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("write document %s: %w", key, err)
	}
	return nil
}

func (s *MinIODocumentStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete document %s: %w", key, err)
	}
	return nil
}
