package services

import (
	"context"
	"errors"
	"time"

	"geekku_backend/internal/events"
	"geekku_backend/internal/logger"
	"geekku_backend/internal/models"
	"geekku_backend/internal/repositories"
	"geekku_backend/internal/services/dto"
	"geekku_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const communitiesForMain = 3

type CommunityService interface {
	List(ctx context.Context, db *gorm.DB, page int) (*dto.Page[dto.CommunityDto], error)
	ListFiltered(ctx context.Context, db *gorm.DB, filter repositories.ListingFilter, page int) (*dto.CommunityListResponse, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CommunityDto) (int, error)
	// CreateWithCover: обложка обязательна, сначала файл, потом строка
	CreateWithCover(ctx context.Context, db *gorm.DB, req *dto.CommunityDto, cover *dto.FileUpload) (int, error)
	// Detail увеличивает счетчик просмотров
	Detail(ctx context.Context, db *gorm.DB, communityNum int, userID string) (*dto.CommunityDetailResponse, error)
	Update(ctx context.Context, db *gorm.DB, communityNum int, req *dto.UpdateCommunityRequest, cover *dto.FileUpload) error
	ToggleBookmark(ctx context.Context, db *gorm.DB, userID string, communityNum int) (bool, error)
	AddComment(ctx context.Context, db *gorm.DB, communityNum int, req *dto.CommentRequest) (*dto.CommentDto, error)
	DeleteComment(ctx context.Context, db *gorm.DB, commentNum int) error
	UserCommunities(ctx context.Context, db *gorm.DB, userID string) ([]dto.CommunitySummary, error)
	ListForMain(ctx context.Context, db *gorm.DB) ([]dto.CommunityDto, error)
}

type communityService struct {
	communityRepo repositories.CommunityRepository
	userRepo      repositories.UserRepository
	bookmarks     BookmarkService
	images        ImageService
	publisher     events.Publisher
}

func NewCommunityService(
	communityRepo repositories.CommunityRepository,
	userRepo repositories.UserRepository,
	bookmarks BookmarkService,
	images ImageService,
	publisher events.Publisher,
) CommunityService {
	return &communityService{
		communityRepo: communityRepo,
		userRepo:      userRepo,
		bookmarks:     bookmarks,
		images:        images,
		publisher:     publisher,
	}
}

func (s *communityService) List(ctx context.Context, db *gorm.DB, page int) (*dto.Page[dto.CommunityDto], error) {
	communities, total, err := s.communityRepo.ListPaged(db.WithContext(ctx), page, dto.DefaultPageSize)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "community", "Failed to list communities")
	}
	return dto.NewPage(dto.MapSlice(communities, dto.FromCommunity), page, dto.DefaultPageSize, total), nil
}

func (s *communityService) ListFiltered(ctx context.Context, db *gorm.DB, filter repositories.ListingFilter, page int) (*dto.CommunityListResponse, error) {
	communities, total, err := s.communityRepo.ListFiltered(db.WithContext(ctx), filter, page, dto.DefaultPageSize)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "community", "Failed to list communities")
	}
	return &dto.CommunityListResponse{
		CommunityList: dto.MapSlice(communities, dto.FromCommunity),
		PageInfo:      dto.NewPageInfo(page, dto.DefaultPageSize, total),
	}, nil
}

func (s *communityService) Create(ctx context.Context, db *gorm.DB, req *dto.CommunityDto) (int, error) {
	db = db.WithContext(ctx)
	if err := s.requireUser(db, req.UserID); err != nil {
		return 0, err
	}

	community := req.ToEntity()
	community.CommunityNum = 0
	community.ViewCount = 0
	if err := s.communityRepo.Create(db, community); err != nil {
		return 0, apperrors.StorageFailure(err, "community", "Failed to create community")
	}

	s.publishCreated(ctx, community)
	return community.CommunityNum, nil
}

func (s *communityService) CreateWithCover(ctx context.Context, db *gorm.DB, req *dto.CommunityDto, cover *dto.FileUpload) (int, error) {
	db = db.WithContext(ctx)
	if err := s.requireUser(db, req.UserID); err != nil {
		return 0, err
	}

	name, err := s.images.Save(ctx, cover)
	if err != nil {
		return 0, err
	}

	community := req.ToEntity()
	community.CommunityNum = 0
	community.ViewCount = 0
	community.CoverImage = name
	if err := s.communityRepo.Create(db, community); err != nil {
		s.images.Remove(ctx, name)
		return 0, apperrors.StorageFailure(err, "community", "Failed to create community")
	}

	s.publishCreated(ctx, community)
	return community.CommunityNum, nil
}

func (s *communityService) Detail(ctx context.Context, db *gorm.DB, communityNum int, userID string) (*dto.CommunityDetailResponse, error) {
	db = db.WithContext(ctx)

	if err := s.communityRepo.IncrementViewCount(db, communityNum); err != nil {
		return nil, communityLookupError(err)
	}
	community, err := s.communityRepo.FindByNum(db, communityNum)
	if err != nil {
		return nil, communityLookupError(err)
	}

	comments, err := s.communityRepo.ListComments(db, communityNum)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "community", "Failed to load comments")
	}

	res := &dto.CommunityDetailResponse{
		Community: dto.FromCommunity(community),
		Comments:  dto.MapSlice(comments, dto.FromComment),
	}
	if user, err := s.userRepo.FindByID(db, community.UserID); err == nil {
		res.Community.Nickname = user.Nickname
	}
	if userID != "" {
		bookmarked, err := s.bookmarks.IsBookmarked(ctx, db, models.BookmarkCommunity, userID, communityNum)
		if err != nil {
			return nil, err
		}
		res.Bookmark = &bookmarked
	}
	return res, nil
}

func (s *communityService) Update(ctx context.Context, db *gorm.DB, communityNum int, req *dto.UpdateCommunityRequest, cover *dto.FileUpload) error {
	db = db.WithContext(ctx)

	community, err := s.communityRepo.FindByNum(db, communityNum)
	if err != nil {
		return communityLookupError(err)
	}

	community.Title = req.Title
	community.Content = req.Content
	community.Type = req.Type
	community.Style = req.Style
	community.Size = req.Size
	community.Location = req.Location

	if cover == nil {
		if err := s.communityRepo.Save(db, community); err != nil {
			return apperrors.StorageFailure(err, "community", "Failed to update community")
		}
		return nil
	}

	_, err = s.images.Replace(ctx, cover, community.CoverImage, func(name string) error {
		community.CoverImage = name
		if err := s.communityRepo.Save(db, community); err != nil {
			return apperrors.StorageFailure(err, "community", "Failed to update community")
		}
		return nil
	})
	return err
}

func (s *communityService) ToggleBookmark(ctx context.Context, db *gorm.DB, userID string, communityNum int) (bool, error) {
	return s.bookmarks.Toggle(ctx, db, models.BookmarkCommunity, userID, communityNum)
}

func (s *communityService) AddComment(ctx context.Context, db *gorm.DB, communityNum int, req *dto.CommentRequest) (*dto.CommentDto, error) {
	db = db.WithContext(ctx)

	if _, err := s.communityRepo.FindByNum(db, communityNum); err != nil {
		return nil, communityLookupError(err)
	}
	if err := s.requireUser(db, req.UserID); err != nil {
		return nil, err
	}

	comment := &models.CommunityComment{
		CommunityNum: communityNum,
		UserID:       req.UserID,
		Content:      req.Content,
	}
	if err := s.communityRepo.CreateComment(db, comment); err != nil {
		return nil, apperrors.StorageFailure(err, "comment", "Failed to create comment")
	}
	result := dto.FromComment(comment)
	return &result, nil
}

func (s *communityService) DeleteComment(ctx context.Context, db *gorm.DB, commentNum int) error {
	if err := s.communityRepo.DeleteComment(db.WithContext(ctx), commentNum); err != nil {
		if errors.Is(err, repositories.ErrCommentNotFound) {
			return apperrors.NotFound(err, "comment", "Comment not found")
		}
		return apperrors.StorageFailure(err, "comment", "Failed to delete comment")
	}
	return nil
}

func (s *communityService) UserCommunities(ctx context.Context, db *gorm.DB, userID string) ([]dto.CommunitySummary, error) {
	communities, err := s.communityRepo.ListByUser(db.WithContext(ctx), userID)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "community", "Failed to list communities")
	}
	return dto.MapSlice(communities, func(c *models.Community) dto.CommunitySummary {
		return dto.CommunitySummary{CommunityNum: c.CommunityNum, Title: c.Title, ViewCount: c.ViewCount}
	}), nil
}

func (s *communityService) ListForMain(ctx context.Context, db *gorm.DB) ([]dto.CommunityDto, error) {
	communities, err := s.communityRepo.TopByViewCount(db.WithContext(ctx), communitiesForMain)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "community", "Failed to list communities")
	}
	return dto.MapSlice(communities, dto.FromCommunity), nil
}

func (s *communityService) requireUser(db *gorm.DB, userID string) error {
	if userID == "" {
		return apperrors.InvalidInput("user", "userId is required")
	}
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NotFound(err, "user", "User not found")
		}
		return apperrors.StorageFailure(err, "user", "Failed to load user")
	}
	return nil
}

func (s *communityService) publishCreated(ctx context.Context, c *models.Community) {
	logger.CtxInfo(ctx, "Community created", "community_num", c.CommunityNum)
	events.PublishOrLog(ctx, s.publisher, events.CommunityCreated, events.CommunityEvent{
		CommunityNum: c.CommunityNum,
		UserID:       c.UserID,
		Title:        c.Title,
		OccurredAt:   time.Now(),
	})
}

func communityLookupError(err error) error {
	if errors.Is(err, repositories.ErrCommunityNotFound) {
		return apperrors.NotFound(err, "community", "Community not found")
	}
	return apperrors.StorageFailure(err, "community", "Community storage failure")
}
