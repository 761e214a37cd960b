package imagestore

import (
	"context"
	"fmt"

	"github.com/gmaschi/go-recipes-api/pkg/config/env"
)

// RecipeDir is the key prefix for recipe images
const RecipeDir = "uploads/recipe"

// Storer persists uploaded images and resolves their public location
type Storer interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// New builds the Storer selected by media.Backend
func New(ctx context.Context, media env.MediaConfig, s3Config env.S3Config) (Storer, error) {
	switch media.Backend {
	case env.MediaBackendLocal:
		return NewLocalFileStorer(media.Root, media.URLPrefix), nil
	case env.MediaBackendS3:
		return NewS3Storer(ctx, s3Config)
	default:
		return nil, fmt.Errorf("unsupported media backend %q", media.Backend)
	}
}
