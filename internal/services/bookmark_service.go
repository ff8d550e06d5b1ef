package services

import (
	"context"

	"geekku_backend/internal/logger"
	"geekku_backend/internal/models"
	"geekku_backend/internal/repositories"
	"geekku_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// toggleAttempts - первая попытка и один повтор после гонки по уникальному индексу
const toggleAttempts = 2

type BookmarkService interface {
	// Toggle возвращает true, если закладка поставлена, false - если снята
	Toggle(ctx context.Context, db *gorm.DB, kind models.BookmarkKind, userID string, target int) (bool, error)
	IsBookmarked(ctx context.Context, db *gorm.DB, kind models.BookmarkKind, userID string, target int) (bool, error)
}

type bookmarkService struct {
	bookmarkRepo repositories.BookmarkRepository
}

func NewBookmarkService(bookmarkRepo repositories.BookmarkRepository) BookmarkService {
	return &bookmarkService{bookmarkRepo: bookmarkRepo}
}

func (s *bookmarkService) Toggle(ctx context.Context, db *gorm.DB, kind models.BookmarkKind, userID string, target int) (bool, error) {
	if userID == "" {
		return false, apperrors.InvalidInput("bookmark", "userId is required")
	}

	db = db.WithContext(ctx)
	exists, err := s.bookmarkRepo.TargetExists(db, kind, target)
	if err != nil {
		return false, apperrors.StorageFailure(err, "bookmark", "Failed to check bookmark target")
	}
	if !exists {
		return false, apperrors.NotFound(repositories.ErrTargetNotFound, "bookmark", "Bookmark target not found")
	}

	var lastErr error
	for attempt := 1; attempt <= toggleAttempts; attempt++ {
		added, err := s.toggleOnce(db, kind, userID, target)
		if err == nil {
			return added, nil
		}
		if !repositories.IsUniqueViolation(err) {
			return false, apperrors.StorageFailure(err, "bookmark", "Failed to toggle bookmark")
		}
		lastErr = err
		logger.CtxWarn(ctx, "Bookmark toggle raced, retrying",
			"kind", kind, "target", target, "attempt", attempt)
	}

	return false, apperrors.Conflict(lastErr, "bookmark", "Bookmark was changed concurrently")
}

// toggleOnce: delete по (user, target); ничего не удалили - вставка.
// Вставка защищена уникальным индексом, проигравшая гонку транзакция откатывается.
func (s *bookmarkService) toggleOnce(db *gorm.DB, kind models.BookmarkKind, userID string, target int) (bool, error) {
	var added bool
	err := db.Transaction(func(tx *gorm.DB) error {
		deleted, err := s.bookmarkRepo.Delete(tx, kind, userID, target)
		if err != nil {
			return err
		}
		if deleted > 0 {
			added = false
			return nil
		}
		added = true
		return s.bookmarkRepo.Create(tx, kind, userID, target)
	})
	return added, err
}

func (s *bookmarkService) IsBookmarked(ctx context.Context, db *gorm.DB, kind models.BookmarkKind, userID string, target int) (bool, error) {
	if userID == "" {
		return false, nil
	}
	ok, err := s.bookmarkRepo.Exists(db.WithContext(ctx), kind, userID, target)
	if err != nil {
		return false, apperrors.StorageFailure(err, "bookmark", "Failed to read bookmark")
	}
	return ok, nil
}
