package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"geekku_backend/internal/auth"
	"geekku_backend/internal/services/dto"
	"geekku_backend/internal/storage"
	"geekku_backend/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// recordingPublisher запоминает отправленные события
type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *recordingPublisher) Publish(_ context.Context, key string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}

type testEnv struct {
	db        *gorm.DB
	dir       string
	publisher *recordingPublisher
	services  *ServiceContainer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	st, err := storage.NewLocalStorage(storage.Config{BasePath: dir})
	require.NoError(t, err)

	publisher := &recordingPublisher{}
	return &testEnv{
		db:        testutil.NewTestDB(t),
		dir:       dir,
		publisher: publisher,
		services: NewServiceContainer(Dependencies{
			Storage:   st,
			Publisher: publisher,
			Tokens:    auth.NewTokenManager("test-secret", 0),
			Upload: UploadConfig{
				MaxFileSize:  1 << 20,
				AllowedTypes: []string{"image/png", "image/jpeg"},
			},
		}),
	}
}

// files - имена файлов в каталоге хранилища
func (e *testEnv) files(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(e.dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func (e *testEnv) fileExists(name string) bool {
	_, err := os.Stat(filepath.Join(e.dir, name))
	return err == nil
}

func pngUpload(name, body string) *dto.FileUpload {
	return &dto.FileUpload{
		Filename:    name,
		ContentType: "image/png",
		Size:        int64(len(body)),
		Reader:      strings.NewReader(body),
	}
}
