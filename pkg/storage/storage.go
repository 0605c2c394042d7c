// Package storage abstracts the object stores the site writes photos to:
// Google Cloud Storage in production, any S3-compatible endpoint (MinIO) for
// self-hosted setups, and the local filesystem for development.
package storage

import (
	"context"
	"io"
	"os"
)

// Backend is one logical bucket. Upload returns the public URL the stored
// object is reachable at.
type Backend interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// NewFromEnv selects a backend the same way the deployment environment does:
// Google Cloud when its credentials (or Cloud Run) are present, an
// S3-compatible endpoint when S3_ENDPOINT is set, local disk otherwise.
func NewFromEnv(ctx context.Context, bucket string) (Backend, error) {
	useGCS := os.Getenv("USE_GCS") == "true" ||
		os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" ||
		os.Getenv("K_SERVICE") != "" // Cloud Run indicator
	if useGCS {
		return NewGCS(ctx, bucket)
	}

	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		return NewS3(S3Config{
			Endpoint:  endpoint,
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Bucket:    bucket,
			UseSSL:    os.Getenv("S3_USE_SSL") == "true",
			PublicURL: os.Getenv("S3_PUBLIC_URL"),
		})
	}

	base := os.Getenv("PUBLIC_BASE_URL")
	return NewLocal("./uploads", bucket, base), nil
}
