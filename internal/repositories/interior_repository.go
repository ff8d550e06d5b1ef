package repositories

import (
	"geekku_backend/internal/models"

	"gorm.io/gorm"
)

type InteriorRepository interface {
	FindByNum(db *gorm.DB, interiorNum int) (*models.Interior, error)
	Latest(db *gorm.DB, limit int) ([]models.Interior, error)
	LatestSamples(db *gorm.DB, limit int) ([]models.InteriorSample, error)
	ListByLocation(db *gorm.DB, location string) ([]models.Interior, int64, error)

	ListSamples(db *gorm.DB, filter ListingFilter, page, pageSize int) ([]models.InteriorSample, int64, error)
	ListSamplesByCompany(db *gorm.DB, companyID string, page, pageSize int) ([]models.InteriorSample, int64, error)

	CreateReview(db *gorm.DB, review *models.InteriorReview) error
	ListReviews(db *gorm.DB, interiorNum int) ([]models.InteriorReview, error)

	ListRequestsByUser(db *gorm.DB, userID string, page, pageSize int) ([]models.InteriorRequest, int64, error)
}

type InteriorRepositoryImpl struct{}

func NewInteriorRepository() InteriorRepository {
	return &InteriorRepositoryImpl{}
}

func (r *InteriorRepositoryImpl) FindByNum(db *gorm.DB, interiorNum int) (*models.Interior, error) {
	var interior models.Interior
	if err := db.Where("interior_num = ?", interiorNum).First(&interior).Error; err != nil {
		return nil, mapNotFound(err, ErrInteriorNotFound)
	}
	return &interior, nil
}

func (r *InteriorRepositoryImpl) Latest(db *gorm.DB, limit int) ([]models.Interior, error) {
	interiors := make([]models.Interior, 0, limit)
	err := db.Scopes(Newest("interior_num")).Limit(limit).Find(&interiors).Error
	return interiors, err
}

func (r *InteriorRepositoryImpl) LatestSamples(db *gorm.DB, limit int) ([]models.InteriorSample, error) {
	samples := make([]models.InteriorSample, 0, limit)
	err := db.Scopes(Newest("sample_num")).Limit(limit).Find(&samples).Error
	return samples, err
}

// ListByLocation - пустая локация означает все компании
func (r *InteriorRepositoryImpl) ListByLocation(db *gorm.DB, location string) ([]models.Interior, int64, error) {
	scope := func(q *gorm.DB) *gorm.DB {
		if location != "" {
			q = q.Where("possible_location = ?", location)
		}
		return q
	}

	var total int64
	if err := db.Model(&models.Interior{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	interiors := make([]models.Interior, 0)
	if err := db.Scopes(scope, Newest("interior_num")).Find(&interiors).Error; err != nil {
		return nil, 0, err
	}
	return interiors, total, nil
}

func (r *InteriorRepositoryImpl) ListSamples(db *gorm.DB, filter ListingFilter, page, pageSize int) ([]models.InteriorSample, int64, error) {
	scope := func(q *gorm.DB) *gorm.DB { return ApplyListingFilter(q, filter) }
	order := func(q *gorm.DB) *gorm.DB { return ApplySort(q, filter.Sort, "sample_num") }
	return findPage[models.InteriorSample](db, scope, order, Paginate(page, pageSize))
}

func (r *InteriorRepositoryImpl) ListSamplesByCompany(db *gorm.DB, companyID string, page, pageSize int) ([]models.InteriorSample, int64, error) {
	scope := func(q *gorm.DB) *gorm.DB { return q.Where("company_id = ?", companyID) }
	return findPage[models.InteriorSample](db, scope, Newest("sample_num"), Paginate(page, pageSize))
}

func (r *InteriorRepositoryImpl) CreateReview(db *gorm.DB, review *models.InteriorReview) error {
	return db.Create(review).Error
}

func (r *InteriorRepositoryImpl) ListReviews(db *gorm.DB, interiorNum int) ([]models.InteriorReview, error) {
	reviews := make([]models.InteriorReview, 0)
	err := db.Where("interior_num = ?", interiorNum).Scopes(Newest("review_num")).Find(&reviews).Error
	return reviews, err
}

// ListRequestsByUser - 0-based страница
func (r *InteriorRepositoryImpl) ListRequestsByUser(db *gorm.DB, userID string, page, pageSize int) ([]models.InteriorRequest, int64, error) {
	scope := func(q *gorm.DB) *gorm.DB { return q.Where("user_id = ?", userID) }
	return findPage[models.InteriorRequest](db, scope, Newest("request_num"), PaginateZero(page, pageSize))
}
