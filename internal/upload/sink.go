// Package upload pushes scenario artifacts to S3-compatible object storage.
package upload

import (
	"context"
	"fmt"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Sink stores a local file under a bucket/key pair. The file stays on disk;
// upload is an additional destination, not a move.
type Sink interface {
	Put(ctx context.Context, localPath, bucket, key string) error
}

// S3Sink uploads to any S3-compatible endpoint.
type S3Sink struct {
	client *minio.Client
}

// NewS3Sink connects to an S3-compatible endpoint with static credentials.
func NewS3Sink(endpoint, accessKey, secretKey string, useSSL bool) (*S3Sink, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to object store %s: %w", endpoint, err)
	}
	return &S3Sink{client: client}, nil
}

// Put uploads one file.
func (s *S3Sink) Put(ctx context.Context, localPath, bucket, key string) error {
	_, err := s.client.FPutObject(ctx, bucket, key, localPath, minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("upload %s to %s/%s: %w", localPath, bucket, key, err)
	}
	return nil
}

// ObjectKey builds the object key for a scenario artifact, mirroring the
// local layout so local and remote trees stay interchangeable.
func ObjectKey(scenarioID, filename string) string {
	return path.Join("scenario", scenarioID, filename)
}
