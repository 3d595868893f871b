package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"kinovzor/internal/config"
	"kinovzor/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

var client *minio.Client

// Init creates the MinIO client and ensures the poster bucket exists with
// public-read access, so poster URLs work without presigning.
func Init(cfg *config.MinIOConfig) error {
	var err error
	client, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.PosterBucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", cfg.PosterBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.PosterBucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", cfg.PosterBucket, err)
		}
		logger.Info("MinIO bucket created", zap.String("bucket", cfg.PosterBucket))
	}

	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, cfg.PosterBucket)
	if err := client.SetBucketPolicy(ctx, cfg.PosterBucket, policy); err != nil {
		return fmt.Errorf("failed to set public policy for %s: %w", cfg.PosterBucket, err)
	}

	logger.Info("MinIO connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("poster_bucket", cfg.PosterBucket),
	)

	return nil
}

// Get returns the MinIO client.
func Get() *minio.Client {
	return client
}

// UploadFile uploads an object and returns its object name.
func UploadFile(ctx context.Context, bucket, objectName string, reader io.Reader, fileSize int64, contentType string) (string, error) {
	_, err := client.PutObject(ctx, bucket, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}
	return objectName, nil
}

// PublicURL builds the public access URL for an object in a public-read bucket.
func PublicURL(endpoint string, useSSL bool, bucket, objectName string) string {
	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, endpoint, bucket, objectName)
}
