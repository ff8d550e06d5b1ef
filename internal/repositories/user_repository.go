package repositories

import (
	"geekku_backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, userID string) (*models.User, error)
	FindByUsername(db *gorm.DB, username string) (*models.User, error)
	FindByNickname(db *gorm.DB, nickname string) (*models.User, error)
	FindByProvider(db *gorm.DB, provider, providerID string) (*models.User, error)
	FindByPhone(db *gorm.DB, phone string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, userID string) (*models.User, error) {
	return r.findOne(db, "user_id = ?", userID)
}

func (r *UserRepositoryImpl) FindByUsername(db *gorm.DB, username string) (*models.User, error) {
	return r.findOne(db, "username = ?", username)
}

func (r *UserRepositoryImpl) FindByNickname(db *gorm.DB, nickname string) (*models.User, error) {
	return r.findOne(db, "nickname = ?", nickname)
}

func (r *UserRepositoryImpl) FindByProvider(db *gorm.DB, provider, providerID string) (*models.User, error) {
	return r.findOne(db, "provider = ? AND provider_id = ?", provider, providerID)
}

func (r *UserRepositoryImpl) FindByPhone(db *gorm.DB, phone string) (*models.User, error) {
	return r.findOne(db, "phone = ?", phone)
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	return r.findOne(db, "email = ?", email)
}

func (r *UserRepositoryImpl) findOne(db *gorm.DB, query string, args ...interface{}) (*models.User, error) {
	var user models.User
	if err := db.Where(query, args...).First(&user).Error; err != nil {
		return nil, mapNotFound(err, ErrUserNotFound)
	}
	return &user, nil
}
