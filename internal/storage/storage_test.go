package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) (*LocalStorage, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: dir})
	require.NoError(t, err)
	return s, dir
}

func TestLocalStorage_SaveGetDelete(t *testing.T) {
	s, dir := newLocal(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "a.png", strings.NewReader("image-bytes"), "image/png"))

	rc, err := s.Get(ctx, "a.png")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, s.Delete(ctx, "a.png"))
	_, err = os.Stat(filepath.Join(dir, "a.png"))
	assert.True(t, os.IsNotExist(err))

	// повторное удаление не ошибка
	assert.NoError(t, s.Delete(ctx, "a.png"))
}

func TestLocalStorage_GetMissing(t *testing.T) {
	s, _ := newLocal(t)

	_, err := s.Get(context.Background(), "missing.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorage_PathTraversalStaysInBase(t *testing.T) {
	s, dir := newLocal(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "../../escape.txt", strings.NewReader("x"), "text/plain"))

	_, err := os.Stat(filepath.Join(dir, "escape.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_NoTempLeftovers(t *testing.T) {
	s, dir := newLocal(t)
	require.NoError(t, s.Save(context.Background(), "b.jpg", strings.NewReader("b"), "image/jpeg"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b.jpg", entries[0].Name())
}

func TestNewStorage_UnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)
}

func TestNewCloudflareR2Storage_RequiresEndpoint(t *testing.T) {
	_, err := NewCloudflareR2Storage(Config{Bucket: "b"})
	assert.Error(t, err)
}

func TestNewStorage_LocalThroughInterface(t *testing.T) {
	ctx := context.Background()
	var s Storage
	s, err := NewStorage(Config{Type: "local", BasePath: t.TempDir()})
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "b.png", strings.NewReader("png"), "image/png"))
	rc, err := s.Get(ctx, "b.png")
	require.NoError(t, err)
	rc.Close()

	require.NoError(t, s.Delete(ctx, "b.png"))
	_, err = s.Get(ctx, "b.png")
	assert.ErrorIs(t, err, ErrNotFound)
}
