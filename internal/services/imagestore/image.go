package imagestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"path"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// MaxImagePixels bounds width*height of an upload so decoding cannot exhaust memory
const MaxImagePixels = 89478485

var (
	// ErrInvalidImage is returned when an upload cannot be decoded as an image
	ErrInvalidImage = errors.New("upload a valid image. the file you uploaded was either not an image or a corrupted image")

	// ErrTooManyPixels is an ErrInvalidImage whose declared dimensions exceed MaxImagePixels
	ErrTooManyPixels = fmt.Errorf("%w: image exceeds %d pixels", ErrInvalidImage, MaxImagePixels)
)

var formats = map[string]struct {
	ext         string
	format      imaging.Format
	contentType string
}{
	"jpeg": {ext: "jpg", format: imaging.JPEG, contentType: "image/jpeg"},
	"png":  {ext: "png", format: imaging.PNG, contentType: "image/png"},
	"gif":  {ext: "gif", format: imaging.GIF, contentType: "image/gif"},
	"bmp":  {ext: "bmp", format: imaging.BMP, contentType: "image/bmp"},
	"tiff": {ext: "tiff", format: imaging.TIFF, contentType: "image/tiff"},
}

// Save decodes src, re-encodes it in its own format and stores it under dir with a random name.
// It returns the storage key of the new file.
func Save(ctx context.Context, storer Storer, dir string, src io.Reader) (string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", ErrInvalidImage
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return "", ErrTooManyPixels
	}
	f, ok := formats[name]
	if !ok {
		return "", ErrInvalidImage
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrInvalidImage
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, f.format); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	key := path.Join(dir, uuid.NewString()+"."+f.ext)
	if err := storer.Put(ctx, key, buf.Bytes(), f.contentType); err != nil {
		return "", err
	}
	return key, nil
}
