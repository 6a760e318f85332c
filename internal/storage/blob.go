package storage

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"attendance-backend/config"
)

// BlobStore stores a verification photo and returns a retrievable URL.
type BlobStore interface {
	Upload(ctx context.Context, dir string, data []byte, contentType string) (string, error)
}

// NewFromEnv picks the OSS backend when OSS credentials are configured and
// falls back to local disk otherwise.
func NewFromEnv() BlobStore {
	if config.GetEnv("OSS_BUCKET", "") != "" {
		store, err := NewOSSBlobStoreFromEnv()
		if err != nil {
			log.Fatal().Err(err).Msg("oss blob store init failed")
		}
		log.Info().Str("bucket", config.GetEnv("OSS_BUCKET", "")).Msg("using oss blob store")
		return store
	}
	return NewLocalBlobStore(config.GetEnv("UPLOAD_DIR", "./uploads"))
}

func extensionFor(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
