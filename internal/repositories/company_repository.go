package repositories

import (
	"geekku_backend/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(db *gorm.DB, company *models.Company) error
	FindByID(db *gorm.DB, companyID string) (*models.Company, error)
	FindByUsername(db *gorm.DB, username string) (*models.Company, error)
	FindByIDs(db *gorm.DB, ids []string) (map[string]*models.Company, error)
	Update(db *gorm.DB, companyID string, updates map[string]interface{}) error
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

func (r *CompanyRepositoryImpl) Create(db *gorm.DB, company *models.Company) error {
	return db.Create(company).Error
}

func (r *CompanyRepositoryImpl) FindByID(db *gorm.DB, companyID string) (*models.Company, error) {
	var company models.Company
	if err := db.Where("company_id = ?", companyID).First(&company).Error; err != nil {
		return nil, mapNotFound(err, ErrCompanyNotFound)
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByUsername(db *gorm.DB, username string) (*models.Company, error) {
	var company models.Company
	if err := db.Where("username = ?", username).First(&company).Error; err != nil {
		return nil, mapNotFound(err, ErrCompanyNotFound)
	}
	return &company, nil
}

// FindByIDs загружает компании пачкой, вместо ленивых связей у ответов
func (r *CompanyRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) (map[string]*models.Company, error) {
	result := make(map[string]*models.Company, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var companies []models.Company
	if err := db.Where("company_id IN ?", uniqueStrings(ids)).Find(&companies).Error; err != nil {
		return nil, err
	}
	for i := range companies {
		result[companies[i].CompanyID] = &companies[i]
	}
	return result, nil
}

func (r *CompanyRepositoryImpl) Update(db *gorm.DB, companyID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := db.Model(&models.Company{}).Where("company_id = ?", companyID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
