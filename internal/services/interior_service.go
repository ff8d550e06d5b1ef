package services

import (
	"context"
	"errors"

	"geekku_backend/internal/models"
	"geekku_backend/internal/repositories"
	"geekku_backend/internal/services/dto"
	"geekku_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const interiorsForMain = 9

type InteriorService interface {
	ListForMain(ctx context.Context, db *gorm.DB) ([]dto.InteriorDto, error)
	SampleListForMain(ctx context.Context, db *gorm.DB) ([]dto.SampleDto, error)
	List(ctx context.Context, db *gorm.DB, possibleLocation string) (*dto.InteriorListResponse, error)
	Detail(ctx context.Context, db *gorm.DB, interiorNum int, userID string) (*dto.InteriorDetailResponse, error)
	ToggleBookmark(ctx context.Context, db *gorm.DB, userID string, interiorNum int) (bool, error)
	SampleList(ctx context.Context, db *gorm.DB, filter repositories.ListingFilter, page int) (*dto.SampleListResponse, error)
	MypageSampleList(ctx context.Context, db *gorm.DB, companyID string, page int) (*dto.SampleListResponse, error)
	WriteReview(ctx context.Context, db *gorm.DB, req *dto.ReviewDto) (int, error)
	Reviews(ctx context.Context, db *gorm.DB, interiorNum int) ([]dto.ReviewDto, error)
	MypageRequests(ctx context.Context, db *gorm.DB, userID string, page int) (*dto.Page[dto.InteriorRequestDto], error)
}

type interiorService struct {
	interiorRepo repositories.InteriorRepository
	companyRepo  repositories.CompanyRepository
	userRepo     repositories.UserRepository
	bookmarks    BookmarkService
}

func NewInteriorService(
	interiorRepo repositories.InteriorRepository,
	companyRepo repositories.CompanyRepository,
	userRepo repositories.UserRepository,
	bookmarks BookmarkService,
) InteriorService {
	return &interiorService{
		interiorRepo: interiorRepo,
		companyRepo:  companyRepo,
		userRepo:     userRepo,
		bookmarks:    bookmarks,
	}
}

func (s *interiorService) ListForMain(ctx context.Context, db *gorm.DB) ([]dto.InteriorDto, error) {
	db = db.WithContext(ctx)
	interiors, err := s.interiorRepo.Latest(db, interiorsForMain)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "interior", "Failed to list interiors")
	}
	return s.withCompanyNames(db, interiors)
}

func (s *interiorService) SampleListForMain(ctx context.Context, db *gorm.DB) ([]dto.SampleDto, error) {
	samples, err := s.interiorRepo.LatestSamples(db.WithContext(ctx), interiorsForMain)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "sample", "Failed to list samples")
	}
	return dto.MapSlice(samples, dto.FromSample), nil
}

func (s *interiorService) List(ctx context.Context, db *gorm.DB, possibleLocation string) (*dto.InteriorListResponse, error) {
	db = db.WithContext(ctx)
	interiors, total, err := s.interiorRepo.ListByLocation(db, possibleLocation)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "interior", "Failed to list interiors")
	}
	list, err := s.withCompanyNames(db, interiors)
	if err != nil {
		return nil, err
	}
	return &dto.InteriorListResponse{InteriorList: list, InteriorCount: total}, nil
}

func (s *interiorService) Detail(ctx context.Context, db *gorm.DB, interiorNum int, userID string) (*dto.InteriorDetailResponse, error) {
	db = db.WithContext(ctx)

	interior, err := s.interiorRepo.FindByNum(db, interiorNum)
	if err != nil {
		return nil, interiorLookupError(err)
	}

	res := &dto.InteriorDetailResponse{Interior: dto.FromInterior(interior)}
	if company, err := s.companyRepo.FindByID(db, interior.CompanyID); err == nil {
		res.Interior.CompanyName = company.CompanyName
	}
	if userID != "" {
		bookmarked, err := s.bookmarks.IsBookmarked(ctx, db, models.BookmarkInterior, userID, interiorNum)
		if err != nil {
			return nil, err
		}
		res.Bookmark = &bookmarked
	}
	return res, nil
}

func (s *interiorService) ToggleBookmark(ctx context.Context, db *gorm.DB, userID string, interiorNum int) (bool, error) {
	return s.bookmarks.Toggle(ctx, db, models.BookmarkInterior, userID, interiorNum)
}

func (s *interiorService) SampleList(ctx context.Context, db *gorm.DB, filter repositories.ListingFilter, page int) (*dto.SampleListResponse, error) {
	samples, total, err := s.interiorRepo.ListSamples(db.WithContext(ctx), filter, page, dto.DefaultPageSize)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "sample", "Failed to list samples")
	}
	return &dto.SampleListResponse{
		SampleList: dto.MapSlice(samples, dto.FromSample),
		PageInfo:   dto.NewPageInfo(page, dto.DefaultPageSize, total),
	}, nil
}

func (s *interiorService) MypageSampleList(ctx context.Context, db *gorm.DB, companyID string, page int) (*dto.SampleListResponse, error) {
	if companyID == "" {
		return nil, apperrors.InvalidInput("sample", "companyId is required")
	}
	samples, total, err := s.interiorRepo.ListSamplesByCompany(db.WithContext(ctx), companyID, page, dto.DefaultPageSize)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "sample", "Failed to list samples")
	}
	return &dto.SampleListResponse{
		SampleList: dto.MapSlice(samples, dto.FromSample),
		PageInfo:   dto.NewPageInfo(page, dto.DefaultPageSize, total),
	}, nil
}

func (s *interiorService) WriteReview(ctx context.Context, db *gorm.DB, req *dto.ReviewDto) (int, error) {
	db = db.WithContext(ctx)

	if _, err := s.interiorRepo.FindByNum(db, req.InteriorNum); err != nil {
		return 0, interiorLookupError(err)
	}
	if _, err := s.userRepo.FindByID(db, req.UserID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return 0, apperrors.NotFound(err, "user", "User not found")
		}
		return 0, apperrors.StorageFailure(err, "user", "Failed to load user")
	}

	review := req.ToEntity()
	review.ReviewNum = 0
	if err := s.interiorRepo.CreateReview(db, review); err != nil {
		return 0, apperrors.StorageFailure(err, "review", "Failed to create review")
	}
	return review.ReviewNum, nil
}

func (s *interiorService) Reviews(ctx context.Context, db *gorm.DB, interiorNum int) ([]dto.ReviewDto, error) {
	reviews, err := s.interiorRepo.ListReviews(db.WithContext(ctx), interiorNum)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "review", "Failed to list reviews")
	}
	return dto.MapSlice(reviews, dto.FromReview), nil
}

func (s *interiorService) MypageRequests(ctx context.Context, db *gorm.DB, userID string, page int) (*dto.Page[dto.InteriorRequestDto], error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("request", "userId is required")
	}
	requests, total, err := s.interiorRepo.ListRequestsByUser(db.WithContext(ctx), userID, page, dto.DefaultPageSize)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "request", "Failed to list requests")
	}
	return dto.NewPage(dto.MapSlice(requests, dto.FromInteriorRequest), page, dto.DefaultPageSize, total), nil
}

// withCompanyNames подгружает компании одним запросом вместо ленивых связей
func (s *interiorService) withCompanyNames(db *gorm.DB, interiors []models.Interior) ([]dto.InteriorDto, error) {
	ids := make([]string, 0, len(interiors))
	for _, i := range interiors {
		ids = append(ids, i.CompanyID)
	}
	companies, err := s.companyRepo.FindByIDs(db, ids)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "company", "Failed to load companies")
	}

	return dto.MapSlice(interiors, func(i *models.Interior) dto.InteriorDto {
		d := dto.FromInterior(i)
		if c, ok := companies[i.CompanyID]; ok {
			d.CompanyName = c.CompanyName
		}
		return d
	}), nil
}

func interiorLookupError(err error) error {
	if errors.Is(err, repositories.ErrInteriorNotFound) {
		return apperrors.NotFound(err, "interior", "Interior not found")
	}
	return apperrors.StorageFailure(err, "interior", "Interior storage failure")
}
