package repositories

import (
	"geekku_backend/internal/models"

	"gorm.io/gorm"
)

// AnswerRepository - ответы компаний на заявки house, onestop и interiorAll
type AnswerRepository interface {
	CreateHouseAnswer(db *gorm.DB, answer *models.HouseAnswer) error
	CreateOnestopAnswer(db *gorm.DB, answer *models.OnestopAnswer) error
	CreateInteriorAllAnswer(db *gorm.DB, answer *models.InteriorAllAnswer) error

	HouseAnswersByCompany(db *gorm.DB, companyID string, page, pageSize int) ([]models.HouseAnswer, int64, error)
	OnestopAnswersByCompany(db *gorm.DB, companyID string, page, pageSize int) ([]models.OnestopAnswer, int64, error)
	InteriorAllAnswersByRequest(db *gorm.DB, requestAllNum int) ([]models.InteriorAllAnswer, error)

	// RequestExists проверяет, что заявка, на которую отвечают, существует
	RequestExists(db *gorm.DB, model interface{}, pk string, num int) (bool, error)
}

type AnswerRepositoryImpl struct{}

func NewAnswerRepository() AnswerRepository {
	return &AnswerRepositoryImpl{}
}

func (r *AnswerRepositoryImpl) CreateHouseAnswer(db *gorm.DB, answer *models.HouseAnswer) error {
	return db.Create(answer).Error
}

func (r *AnswerRepositoryImpl) CreateOnestopAnswer(db *gorm.DB, answer *models.OnestopAnswer) error {
	return db.Create(answer).Error
}

func (r *AnswerRepositoryImpl) CreateInteriorAllAnswer(db *gorm.DB, answer *models.InteriorAllAnswer) error {
	return db.Create(answer).Error
}

func (r *AnswerRepositoryImpl) HouseAnswersByCompany(db *gorm.DB, companyID string, page, pageSize int) ([]models.HouseAnswer, int64, error) {
	scope := func(q *gorm.DB) *gorm.DB { return q.Where("company_id = ?", companyID) }
	return findPage[models.HouseAnswer](db, scope, Newest("answer_house_num"), PaginateZero(page, pageSize))
}

func (r *AnswerRepositoryImpl) OnestopAnswersByCompany(db *gorm.DB, companyID string, page, pageSize int) ([]models.OnestopAnswer, int64, error) {
	scope := func(q *gorm.DB) *gorm.DB { return q.Where("company_id = ?", companyID) }
	return findPage[models.OnestopAnswer](db, scope, Newest("answer_onestop_num"), PaginateZero(page, pageSize))
}

func (r *AnswerRepositoryImpl) InteriorAllAnswersByRequest(db *gorm.DB, requestAllNum int) ([]models.InteriorAllAnswer, error) {
	answers := make([]models.InteriorAllAnswer, 0)
	err := db.Where("request_all_num = ?", requestAllNum).Order("answer_all_num ASC").Find(&answers).Error
	return answers, err
}

func (r *AnswerRepositoryImpl) RequestExists(db *gorm.DB, model interface{}, pk string, num int) (bool, error) {
	return existsBy(db, model, pk, num)
}

func existsBy(db *gorm.DB, model interface{}, column string, value interface{}) (bool, error) {
	var count int64
	err := db.Model(model).Where(column+" = ?", value).Count(&count).Error
	return count > 0, err
}
