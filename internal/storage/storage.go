package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNotFound - файла по указанному имени нет
var ErrNotFound = errors.New("file not found")

// Storage - хранилище загруженных изображений. Имена плоские (без каталогов).
type Storage interface {
	// Save stores a file under the given name
	Save(ctx context.Context, name string, reader io.Reader, contentType string) error

	// Get returns ErrNotFound when the file is absent
	Get(ctx context.Context, name string) (io.ReadCloser, error)

	// Delete is a no-op for a missing file
	Delete(ctx context.Context, name string) error
}

// Config holds storage configuration
type Config struct {
	Type      string // local, s3, cloudflare_r2
	BasePath  string // For local storage
	BaseURL   string // Public URL base
	Bucket    string // For S3/R2
	Region    string // For S3
	AccessKey string // For S3/R2
	SecretKey string // For S3/R2
	Endpoint  string // For R2 or custom S3
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
