package repositories

import (
	"geekku_backend/internal/models"

	"gorm.io/gorm"
)

// BookmarkRepository работает со всеми тремя таблицами закладок
type BookmarkRepository interface {
	Exists(db *gorm.DB, kind models.BookmarkKind, userID string, target int) (bool, error)
	Create(db *gorm.DB, kind models.BookmarkKind, userID string, target int) error
	// Delete возвращает число удаленных строк (0 или 1)
	Delete(db *gorm.DB, kind models.BookmarkKind, userID string, target int) (int64, error)
	DeleteByTarget(db *gorm.DB, kind models.BookmarkKind, target int) error
	TargetExists(db *gorm.DB, kind models.BookmarkKind, target int) (bool, error)
	Count(db *gorm.DB, kind models.BookmarkKind, userID string, target int) (int64, error)
}

type BookmarkRepositoryImpl struct{}

func NewBookmarkRepository() BookmarkRepository {
	return &BookmarkRepositoryImpl{}
}

func (r *BookmarkRepositoryImpl) Exists(db *gorm.DB, kind models.BookmarkKind, userID string, target int) (bool, error) {
	count, err := r.Count(db, kind, userID, target)
	return count > 0, err
}

func (r *BookmarkRepositoryImpl) Count(db *gorm.DB, kind models.BookmarkKind, userID string, target int) (int64, error) {
	model, err := kind.Model()
	if err != nil {
		return 0, err
	}
	var count int64
	err = db.Model(model).
		Where("user_id = ?", userID).
		Where(kind.TargetColumn()+" = ?", target).
		Count(&count).Error
	return count, err
}

func (r *BookmarkRepositoryImpl) Create(db *gorm.DB, kind models.BookmarkKind, userID string, target int) error {
	row, err := models.NewBookmark(kind, userID, target)
	if err != nil {
		return err
	}
	return db.Create(row).Error
}

func (r *BookmarkRepositoryImpl) Delete(db *gorm.DB, kind models.BookmarkKind, userID string, target int) (int64, error) {
	model, err := kind.Model()
	if err != nil {
		return 0, err
	}
	result := db.Where("user_id = ?", userID).
		Where(kind.TargetColumn()+" = ?", target).
		Delete(model)
	return result.RowsAffected, result.Error
}

func (r *BookmarkRepositoryImpl) DeleteByTarget(db *gorm.DB, kind models.BookmarkKind, target int) error {
	model, err := kind.Model()
	if err != nil {
		return err
	}
	return db.Where(kind.TargetColumn()+" = ?", target).Delete(model).Error
}

func (r *BookmarkRepositoryImpl) TargetExists(db *gorm.DB, kind models.BookmarkKind, target int) (bool, error) {
	model, pk, err := kind.TargetModel()
	if err != nil {
		return false, err
	}
	return existsBy(db, model, pk, target)
}
