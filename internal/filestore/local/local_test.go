package local

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stashd/stashd/internal/filestore"
)

func newTestStore(t *testing.T) (*LocalFileStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewLocalFileStore(dir)
	require.NoError(t, err)
	return s, dir
}

func TestSaveAndOpen(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	path, err := s.Save(ctx, "a.jpg", strings.NewReader("file contents"))
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", path)

	// The bytes land under the base directory.
	onDisk, err := os.ReadFile(filepath.Join(dir, "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "file contents", string(onDisk))

	f, err := s.Open(ctx, path)
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "file contents", string(data))
}

func TestOpen_NotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Open(context.Background(), "missing.jpg")
	assert.ErrorIs(t, err, filestore.ErrNotFound)
}

func TestDelete(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	path, err := s.Save(ctx, "a.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, path))
	_, err = os.Stat(filepath.Join(dir, "a.jpg"))
	assert.True(t, os.IsNotExist(err))

	// Deleting again reports not-found.
	assert.ErrorIs(t, s.Delete(ctx, path), filestore.ErrNotFound)
}

func TestRejectsTraversal(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, "../escape.jpg", strings.NewReader("x"))
	assert.Error(t, err)

	_, err = s.Open(ctx, "../../etc/passwd")
	assert.Error(t, err)

	assert.Error(t, s.Delete(ctx, "../escape.jpg"))
}

func TestNewLocalFileStoreCreatesDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocalFileStore(base)
	require.NoError(t, err)

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
