package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"lumina-storefront/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// MinIOStorage stores uploaded images (covers, author portrait)
type MinIOStorage struct {
	client  *minio.Client
	bucket  string
	baseURL string // <scheme>://<host>/<bucket>/
}

// NewMinIOStorage connects and makes sure the bucket exists
func NewMinIOStorage(ctx context.Context, cfg config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Info().Str("bucket", cfg.Bucket).Msg("[MinIO] Bucket created")
	}

	endpoint := client.EndpointURL()
	return &MinIOStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: fmt.Sprintf("%s://%s/%s/", endpoint.Scheme, endpoint.Host, cfg.Bucket),
	}, nil
}

// Upload stores data under key and returns its public URL
func (s *MinIOStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	return s.baseURL + key, nil
}

// Delete removes one object
func (s *MinIOStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// KeyFromURL returns the object key when url points into our bucket
func (s *MinIOStorage) KeyFromURL(url string) (string, bool) {
	return keyFromURL(s.baseURL, url)
}

// DeleteByURL removes the object behind url. Foreign URLs are ignored.
func (s *MinIOStorage) DeleteByURL(ctx context.Context, url string) error {
	key, ok := s.KeyFromURL(url)
	if !ok {
		return nil
	}
	return s.Delete(ctx, key)
}

func keyFromURL(baseURL, url string) (string, bool) {
	if baseURL == "" || !strings.HasPrefix(url, baseURL) {
		return "", false
	}
	key := strings.TrimPrefix(url, baseURL)
	if key == "" {
		return "", false
	}
	return key, true
}
