package imagestore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalFileStorer keeps images on the local file system under basePath.
// The router serves basePath under urlPrefix.
type LocalFileStorer struct {
	basePath  string
	urlPrefix string
}

func NewLocalFileStorer(basePath, urlPrefix string) *LocalFileStorer {
	return &LocalFileStorer{
		basePath:  basePath,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
	}
}

func (lfs *LocalFileStorer) Put(_ context.Context, key string, data []byte, _ string) error {
	fullPath, err := lfs.fullPath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	slog.Debug("image stored", slog.String("path", fullPath))
	return nil
}

func (lfs *LocalFileStorer) Delete(_ context.Context, key string) error {
	fullPath, err := lfs.fullPath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

func (lfs *LocalFileStorer) URL(key string) string {
	return path.Join(lfs.urlPrefix, key)
}

// BasePath is the directory to expose under the URL prefix
func (lfs *LocalFileStorer) BasePath() string {
	return lfs.basePath
}

// URLPrefix is the route the base path is served under
func (lfs *LocalFileStorer) URLPrefix() string {
	return lfs.urlPrefix
}

func (lfs *LocalFileStorer) fullPath(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(lfs.basePath, filepath.FromSlash(clean)), nil
}
