package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalBlobStore writes photos under a base directory that the API serves
// statically at /uploads.
type LocalBlobStore struct {
	baseDir string
}

func NewLocalBlobStore(baseDir string) *LocalBlobStore {
	return &LocalBlobStore{baseDir: baseDir}
}

func (s *LocalBlobStore) Upload(ctx context.Context, dir string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target := filepath.Join(s.baseDir, filepath.FromSlash(dir))
	if err := os.MkdirAll(target, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + extensionFor(contentType)
	if err := os.WriteFile(filepath.Join(target, name), data, 0644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}

	return fmt.Sprintf("/uploads/%s/%s", dir, name), nil
}
