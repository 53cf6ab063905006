package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-chat-cipher/internal/logger"
)

// ImageURLPrefix is the public path under which stored images are served.
const ImageURLPrefix = "/images/"

// imageFileStorage keeps uploaded images as files in one directory. File
// names are generated UUIDv7 values plus the original extension.
type imageFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewImageFileStorage creates dir if needed and returns an [ImageStorage]
// writing into it.
func NewImageFileStorage(dir string, log *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create image dir: %w", ErrStoreUnavailable, err)
	}

	return &imageFileStorage{dir: dir, logger: log}, nil
}

func (s *imageFileStorage) Save(ctx context.Context, fileName string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("%w: generate image name: %w", ErrStoreUnavailable, err)
	}
	name := id.String() + imageExt(fileName)

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		log.Err(err).Str("func", "imageFileStorage.Save").Msg("failed to create image file")
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	defer f.Close()

	if _, err = io.Copy(f, r); err != nil {
		log.Err(err).Str("func", "imageFileStorage.Save").Str("image", name).Msg("failed to write image file")
		os.Remove(f.Name())
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return ImageURLPrefix + name, nil
}

func (s *imageFileStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, ErrInvalidImageName
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrImageNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "imageFileStorage.Open").Str("image", name).Msg("failed to open image file")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return f, nil
}

// imageExt keeps a short alphanumeric extension of the uploaded name.
func imageExt(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if len(ext) < 2 || len(ext) > 6 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}

	return ext
}
