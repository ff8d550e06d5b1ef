package repositories

import (
	"geekku_backend/internal/models"

	"gorm.io/gorm"
)

type EstateRepository interface {
	Create(db *gorm.DB, estate *models.Estate) error
	FindByNum(db *gorm.DB, estateNum int) (*models.Estate, error)
	List(db *gorm.DB, estateType, keyword string, page, pageSize int) ([]models.Estate, int64, error)
	ListByCompany(db *gorm.DB, companyID string, page, pageSize int) ([]models.Estate, int64, error)
	FindAllByCompany(db *gorm.DB, companyID string) ([]models.Estate, error)
	Latest(db *gorm.DB, limit int) ([]models.Estate, error)
	Delete(db *gorm.DB, estateNum int) error
}

type EstateRepositoryImpl struct{}

func NewEstateRepository() EstateRepository {
	return &EstateRepositoryImpl{}
}

func (r *EstateRepositoryImpl) Create(db *gorm.DB, estate *models.Estate) error {
	return db.Create(estate).Error
}

func (r *EstateRepositoryImpl) FindByNum(db *gorm.DB, estateNum int) (*models.Estate, error) {
	var estate models.Estate
	if err := db.Where("estate_num = ?", estateNum).First(&estate).Error; err != nil {
		return nil, mapNotFound(err, ErrEstateNotFound)
	}
	return &estate, nil
}

// List - тип по равенству, keyword ищется в заголовке и адресе
func (r *EstateRepositoryImpl) List(db *gorm.DB, estateType, keyword string, page, pageSize int) ([]models.Estate, int64, error) {
	scope := func(q *gorm.DB) *gorm.DB {
		if estateType != "" {
			q = q.Where("type = ?", estateType)
		}
		if keyword != "" {
			like := "%" + keyword + "%"
			q = q.Where("(title LIKE ? OR address1 LIKE ? OR jibun_address LIKE ?)", like, like, like)
		}
		return q
	}
	return findPage[models.Estate](db, scope, Newest("estate_num"), Paginate(page, pageSize))
}

func (r *EstateRepositoryImpl) ListByCompany(db *gorm.DB, companyID string, page, pageSize int) ([]models.Estate, int64, error) {
	scope := func(q *gorm.DB) *gorm.DB {
		return q.Where("company_id = ?", companyID)
	}
	return findPage[models.Estate](db, scope, Newest("estate_num"), Paginate(page, pageSize))
}

func (r *EstateRepositoryImpl) FindAllByCompany(db *gorm.DB, companyID string) ([]models.Estate, error) {
	estates := make([]models.Estate, 0)
	err := db.Where("company_id = ?", companyID).Scopes(Newest("estate_num")).Find(&estates).Error
	return estates, err
}

func (r *EstateRepositoryImpl) Latest(db *gorm.DB, limit int) ([]models.Estate, error) {
	estates := make([]models.Estate, 0, limit)
	err := db.Scopes(Newest("estate_num")).Limit(limit).Find(&estates).Error
	return estates, err
}

func (r *EstateRepositoryImpl) Delete(db *gorm.DB, estateNum int) error {
	result := db.Where("estate_num = ?", estateNum).Delete(&models.Estate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEstateNotFound
	}
	return nil
}
