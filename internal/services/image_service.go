package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"geekku_backend/internal/logger"
	"geekku_backend/internal/services/dto"
	"geekku_backend/internal/storage"
	"geekku_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// ImageService - побочный канал изображений: файл в хранилище,
// в строке БД только его имя.
type ImageService interface {
	// Save сохраняет файл под именем "<uuid>_<имя>" и возвращает это имя
	Save(ctx context.Context, file *dto.FileUpload) (string, error)
	// Remove удаляет файл; ошибка только логируется
	Remove(ctx context.Context, names ...string)
	// Open возвращает nil, nil если файла нет
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Replace: запись нового файла, затем update(имя), затем удаление старого
	Replace(ctx context.Context, file *dto.FileUpload, old string, update func(name string) error) (string, error)
}

type UploadConfig struct {
	MaxFileSize  int64
	AllowedTypes []string
}

type imageService struct {
	storage storage.Storage
	config  UploadConfig
}

func NewImageService(st storage.Storage, cfg UploadConfig) ImageService {
	return &imageService{storage: st, config: cfg}
}

func (s *imageService) Save(ctx context.Context, file *dto.FileUpload) (string, error) {
	if err := s.validate(file); err != nil {
		return "", err
	}

	name := uuid.NewString() + "_" + sanitizeFilename(file.Filename)
	if err := s.storage.Save(ctx, name, file.Reader, file.ContentType); err != nil {
		return "", apperrors.StorageFailure(err, "image", "Failed to store image")
	}

	logger.CtxDebug(ctx, "Image stored", "name", name, "size", file.Size)
	return name, nil
}

func (s *imageService) Remove(ctx context.Context, names ...string) {
	for _, name := range names {
		if name == "" {
			continue
		}
		if err := s.storage.Delete(ctx, filepath.Base(name)); err != nil {
			logger.CtxWithError(ctx, "Failed to delete image", err, "name", name)
		}
	}
}

func (s *imageService) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	name = filepath.Base(name)
	if name == "." || name == "/" {
		return nil, nil
	}

	rc, err := s.storage.Get(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, apperrors.StorageFailure(err, "image", "Failed to read image")
	}
	return rc, nil
}

func (s *imageService) Replace(ctx context.Context, file *dto.FileUpload, old string, update func(name string) error) (string, error) {
	name, err := s.Save(ctx, file)
	if err != nil {
		return "", err
	}

	if err := update(name); err != nil {
		// строка не обновилась - новый файл никому не нужен
		s.Remove(ctx, name)
		return "", err
	}

	s.Remove(ctx, old)
	return name, nil
}

func (s *imageService) validate(file *dto.FileUpload) error {
	if file == nil || file.Reader == nil || file.Size == 0 {
		return apperrors.InvalidInput("image", "Uploaded file is empty")
	}
	if s.config.MaxFileSize > 0 && file.Size > s.config.MaxFileSize {
		return apperrors.InvalidInput("image", fmt.Sprintf("File is larger than %d bytes", s.config.MaxFileSize))
	}
	if len(s.config.AllowedTypes) > 0 && !contains(s.config.AllowedTypes, baseContentType(file.ContentType)) {
		return apperrors.InvalidInput("image", "Unsupported file type: "+file.ContentType)
	}
	return nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch r {
		case ',', '/', '\\', 0:
			return '_'
		}
		return r
	}, name)
	if name == "." || name == "/" || name == "" {
		return "image"
	}
	return name
}

func baseContentType(ct string) string {
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(strings.ToLower(ct))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
