package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chat-cipher/internal/logger"
)

func TestImageFileStorage_SaveAndOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	storage, err := NewImageFileStorage(dir, logger.Nop())
	require.NoError(t, err)

	url, err := storage.Save(context.Background(), "cat.PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, ImageURLPrefix))
	assert.True(t, strings.HasSuffix(url, ".png"))

	name := strings.TrimPrefix(url, ImageURLPrefix)
	rc, err := storage.Open(context.Background(), name)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestImageFileStorage_Open(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewImageFileStorage(dir, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o600))

	tests := []struct {
		name    string
		image   string
		wantErr error
	}{
		{name: "empty", image: "", wantErr: ErrInvalidImageName},
		{name: "traversal", image: "../secret", wantErr: ErrInvalidImageName},
		{name: "dot file", image: ".hidden", wantErr: ErrInvalidImageName},
		{name: "missing", image: "nope.png", wantErr: ErrImageNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := storage.Open(context.Background(), tt.image)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestImageExt(t *testing.T) {
	assert.Equal(t, ".jpg", imageExt("photo.JPG"))
	assert.Equal(t, ".webp", imageExt("a.b.webp"))
	assert.Empty(t, imageExt("noext"))
	assert.Empty(t, imageExt("weird.p/ng"))
	assert.Empty(t, imageExt("long.extension"))
}
