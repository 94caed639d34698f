package service

import (
	"context"
	"course_backend/internal/config"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalUploadWritesFile(t *testing.T) {
	dir := t.TempDir()
	p := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}

	url, err := p.Upload(context.Background(), "courses/1/notes.txt", strings.NewReader("hello"), 5, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/courses/1/notes.txt", url)

	data, err := os.ReadFile(filepath.Join(dir, "courses", "1", "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestLocalUploadRemovesPartialFile(t *testing.T) {
	dir := t.TempDir()
	p := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}

	broken := io.MultiReader(strings.NewReader("partial"), iotest.ErrReader(errors.New("connection reset")))
	_, err := p.Upload(context.Background(), "courses/1/video.mp4", broken, 100, "video/mp4")
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "courses", "1", "video.mp4"))
	assert.True(t, os.IsNotExist(statErr))
}
