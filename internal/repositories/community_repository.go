package repositories

import (
	"geekku_backend/internal/models"

	"gorm.io/gorm"
)

type CommunityRepository interface {
	Create(db *gorm.DB, community *models.Community) error
	FindByNum(db *gorm.DB, communityNum int) (*models.Community, error)
	Save(db *gorm.DB, community *models.Community) error
	IncrementViewCount(db *gorm.DB, communityNum int) error
	ListPaged(db *gorm.DB, page, pageSize int) ([]models.Community, int64, error)
	ListFiltered(db *gorm.DB, filter ListingFilter, page, pageSize int) ([]models.Community, int64, error)
	ListByUser(db *gorm.DB, userID string) ([]models.Community, error)
	TopByViewCount(db *gorm.DB, limit int) ([]models.Community, error)

	CreateComment(db *gorm.DB, comment *models.CommunityComment) error
	FindComment(db *gorm.DB, commentNum int) (*models.CommunityComment, error)
	DeleteComment(db *gorm.DB, commentNum int) error
	ListComments(db *gorm.DB, communityNum int) ([]models.CommunityComment, error)
}

type CommunityRepositoryImpl struct{}

func NewCommunityRepository() CommunityRepository {
	return &CommunityRepositoryImpl{}
}

func (r *CommunityRepositoryImpl) Create(db *gorm.DB, community *models.Community) error {
	return db.Create(community).Error
}

func (r *CommunityRepositoryImpl) FindByNum(db *gorm.DB, communityNum int) (*models.Community, error) {
	var community models.Community
	if err := db.Where("community_num = ?", communityNum).First(&community).Error; err != nil {
		return nil, mapNotFound(err, ErrCommunityNotFound)
	}
	return &community, nil
}

func (r *CommunityRepositoryImpl) Save(db *gorm.DB, community *models.Community) error {
	return db.Save(community).Error
}

// IncrementViewCount - атомарный инкремент на стороне БД
func (r *CommunityRepositoryImpl) IncrementViewCount(db *gorm.DB, communityNum int) error {
	result := db.Model(&models.Community{}).
		Where("community_num = ?", communityNum).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommunityNotFound
	}
	return nil
}

// ListPaged - 0-based страница, сначала новые
func (r *CommunityRepositoryImpl) ListPaged(db *gorm.DB, page, pageSize int) ([]models.Community, int64, error) {
	return findPage[models.Community](db, noScope, Newest("community_num"), PaginateZero(page, pageSize))
}

func (r *CommunityRepositoryImpl) ListFiltered(db *gorm.DB, filter ListingFilter, page, pageSize int) ([]models.Community, int64, error) {
	scope := func(q *gorm.DB) *gorm.DB { return ApplyListingFilter(q, filter) }
	order := func(q *gorm.DB) *gorm.DB { return ApplySort(q, filter.Sort, "community_num") }
	return findPage[models.Community](db, scope, order, Paginate(page, pageSize))
}

func (r *CommunityRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.Community, error) {
	communities := make([]models.Community, 0)
	err := db.Where("user_id = ?", userID).Scopes(Newest("community_num")).Find(&communities).Error
	return communities, err
}

func (r *CommunityRepositoryImpl) TopByViewCount(db *gorm.DB, limit int) ([]models.Community, error) {
	communities := make([]models.Community, 0, limit)
	err := db.Order("view_count DESC").Order("community_num DESC").Limit(limit).Find(&communities).Error
	return communities, err
}

func (r *CommunityRepositoryImpl) CreateComment(db *gorm.DB, comment *models.CommunityComment) error {
	return db.Create(comment).Error
}

func (r *CommunityRepositoryImpl) FindComment(db *gorm.DB, commentNum int) (*models.CommunityComment, error) {
	var comment models.CommunityComment
	if err := db.Where("comment_num = ?", commentNum).First(&comment).Error; err != nil {
		return nil, mapNotFound(err, ErrCommentNotFound)
	}
	return &comment, nil
}

func (r *CommunityRepositoryImpl) DeleteComment(db *gorm.DB, commentNum int) error {
	result := db.Where("comment_num = ?", commentNum).Delete(&models.CommunityComment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (r *CommunityRepositoryImpl) ListComments(db *gorm.DB, communityNum int) ([]models.CommunityComment, error) {
	comments := make([]models.CommunityComment, 0)
	err := db.Where("community_num = ?", communityNum).Order("comment_num ASC").Find(&comments).Error
	return comments, err
}
