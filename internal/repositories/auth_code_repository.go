package repositories

import (
	"time"

	"geekku_backend/internal/models"

	"gorm.io/gorm"
)

// AuthCodeRepository - выданные коды подтверждения
type AuthCodeRepository interface {
	Create(db *gorm.DB, code *models.Auth) error
	// FindLatest ищет последний код по телефону или, если телефон пуст, по email
	FindLatest(db *gorm.DB, phone, email string) (*models.Auth, error)
	Delete(db *gorm.DB, authNum int) error
	DeleteFor(db *gorm.DB, phone, email string) error
	DeleteCreatedBefore(db *gorm.DB, before time.Time) (int64, error)
}

type AuthCodeRepositoryImpl struct{}

func NewAuthCodeRepository() AuthCodeRepository {
	return &AuthCodeRepositoryImpl{}
}

func (r *AuthCodeRepositoryImpl) Create(db *gorm.DB, code *models.Auth) error {
	return db.Create(code).Error
}

func (r *AuthCodeRepositoryImpl) FindLatest(db *gorm.DB, phone, email string) (*models.Auth, error) {
	var code models.Auth
	if err := byRecipient(db, phone, email).Order("auth_num DESC").First(&code).Error; err != nil {
		return nil, mapNotFound(err, ErrAuthCodeNotFound)
	}
	return &code, nil
}

func (r *AuthCodeRepositoryImpl) Delete(db *gorm.DB, authNum int) error {
	return db.Where("auth_num = ?", authNum).Delete(&models.Auth{}).Error
}

// DeleteFor удаляет ранее выданные коды получателя
func (r *AuthCodeRepositoryImpl) DeleteFor(db *gorm.DB, phone, email string) error {
	return byRecipient(db, phone, email).Delete(&models.Auth{}).Error
}

func (r *AuthCodeRepositoryImpl) DeleteCreatedBefore(db *gorm.DB, before time.Time) (int64, error) {
	res := db.Where("created_at < ?", before).Delete(&models.Auth{})
	return res.RowsAffected, res.Error
}

func byRecipient(db *gorm.DB, phone, email string) *gorm.DB {
	if phone != "" {
		return db.Where("phone = ?", phone)
	}
	return db.Where("email = ?", email)
}
