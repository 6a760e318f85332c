package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"attendance-backend/config"
)

// OSSBlobStore uploads photos to an Alibaba Cloud OSS bucket and returns the
// public object URL.
type OSSBlobStore struct {
	bucket    *oss.Bucket
	publicURL string
}

func NewOSSBlobStoreFromEnv() (*OSSBlobStore, error) {
	endpoint := config.GetEnv("OSS_ENDPOINT", "")
	keyID := config.GetEnv("OSS_ACCESS_KEY_ID", "")
	keySecret := config.GetEnv("OSS_ACCESS_KEY_SECRET", "")
	bucketName := config.GetEnv("OSS_BUCKET", "")

	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("oss: OSS_ENDPOINT, OSS_ACCESS_KEY_ID, OSS_ACCESS_KEY_SECRET and OSS_BUCKET are required")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}

	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}

	publicURL := config.GetEnv("OSS_PUBLIC_URL", fmt.Sprintf("https://%s.%s", bucketName, endpoint))
	return &OSSBlobStore{bucket: bucket, publicURL: publicURL}, nil
}

func (s *OSSBlobStore) Upload(ctx context.Context, dir string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s%s", dir, uuid.NewString(), extensionFor(contentType))
	err := s.bucket.PutObject(key, bytes.NewReader(data), oss.ContentType(contentType))
	if err != nil {
		return "", fmt.Errorf("oss put object: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}
