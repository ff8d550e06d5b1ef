package services

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"geekku_backend/internal/events"
	"geekku_backend/internal/logger"
	"geekku_backend/internal/models"
	"geekku_backend/internal/repositories"
	"geekku_backend/internal/services/dto"
	"geekku_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const estatesForMain = 3

type EstateService interface {
	// Write сохраняет изображения, затем строку. Возвращает номер объявления.
	Write(ctx context.Context, db *gorm.DB, req *dto.EstateDto, images []*dto.FileUpload) (int, error)
	Detail(ctx context.Context, db *gorm.DB, estateNum int, userID string) (*dto.EstateDetailResponse, error)
	List(ctx context.Context, db *gorm.DB, page int, estateType, keyword string) (*dto.EstateListResponse, error)
	ListForMain(ctx context.Context, db *gorm.DB) ([]dto.EstateDto, error)
	ListForMypage(ctx context.Context, db *gorm.DB, companyID string, page int) (*dto.EstateListResponse, error)
	// Delete удаляет строку, закладки и файлы изображений
	Delete(ctx context.Context, db *gorm.DB, estateNum int) error
	ToggleBookmark(ctx context.Context, db *gorm.DB, userID string, estateNum int) (bool, error)
	// OpenImage возвращает nil, nil если файла нет
	OpenImage(ctx context.Context, name string) (io.ReadCloser, error)
}

type estateService struct {
	estateRepo   repositories.EstateRepository
	companyRepo  repositories.CompanyRepository
	bookmarkRepo repositories.BookmarkRepository
	bookmarks    BookmarkService
	images       ImageService
	publisher    events.Publisher
}

func NewEstateService(
	estateRepo repositories.EstateRepository,
	companyRepo repositories.CompanyRepository,
	bookmarkRepo repositories.BookmarkRepository,
	bookmarks BookmarkService,
	images ImageService,
	publisher events.Publisher,
) EstateService {
	return &estateService{
		estateRepo:   estateRepo,
		companyRepo:  companyRepo,
		bookmarkRepo: bookmarkRepo,
		bookmarks:    bookmarks,
		images:       images,
		publisher:    publisher,
	}
}

func (s *estateService) Write(ctx context.Context, db *gorm.DB, req *dto.EstateDto, images []*dto.FileUpload) (int, error) {
	db = db.WithContext(ctx)

	if _, err := s.companyRepo.FindByID(db, req.CompanyID); err != nil {
		return 0, companyLookupError(err)
	}

	names := make([]string, 0, len(images))
	for _, img := range images {
		name, err := s.images.Save(ctx, img)
		if err != nil {
			s.images.Remove(ctx, names...)
			return 0, err
		}
		names = append(names, name)
	}

	estate := req.ToEntity()
	estate.EstateNum = 0
	estate.ImageNums = strings.Join(names, ",")

	if err := s.estateRepo.Create(db, estate); err != nil {
		s.images.Remove(ctx, names...)
		return 0, apperrors.StorageFailure(err, "estate", "Failed to create estate")
	}

	logger.CtxInfo(ctx, "Estate created", "estate_num", estate.EstateNum, "images", len(names))
	events.PublishOrLog(ctx, s.publisher, events.EstateCreated, events.EstateEvent{
		EstateNum:  estate.EstateNum,
		CompanyID:  estate.CompanyID,
		Type:       estate.Type,
		Title:      estate.Title,
		OccurredAt: time.Now(),
	})
	return estate.EstateNum, nil
}

func (s *estateService) Detail(ctx context.Context, db *gorm.DB, estateNum int, userID string) (*dto.EstateDetailResponse, error) {
	db = db.WithContext(ctx)

	estate, err := s.estateRepo.FindByNum(db, estateNum)
	if err != nil {
		return nil, estateLookupError(err)
	}

	company, err := s.companyRepo.FindByID(db, estate.CompanyID)
	if err != nil && !errors.Is(err, repositories.ErrCompanyNotFound) {
		return nil, apperrors.StorageFailure(err, "company", "Failed to load company")
	}

	res := &dto.EstateDetailResponse{Estate: dto.FromEstate(estate).WithCompany(company)}
	if userID != "" {
		bookmarked, err := s.bookmarks.IsBookmarked(ctx, db, models.BookmarkEstate, userID, estateNum)
		if err != nil {
			return nil, err
		}
		res.Bookmark = &bookmarked
	}
	return res, nil
}

func (s *estateService) List(ctx context.Context, db *gorm.DB, page int, estateType, keyword string) (*dto.EstateListResponse, error) {
	estates, total, err := s.estateRepo.List(db.WithContext(ctx), estateType, strings.TrimSpace(keyword), page, dto.DefaultPageSize)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "estate", "Failed to list estates")
	}
	return &dto.EstateListResponse{
		EstateList: dto.MapSlice(estates, dto.FromEstate),
		PageInfo:   dto.NewPageInfo(page, dto.DefaultPageSize, total),
	}, nil
}

func (s *estateService) ListForMain(ctx context.Context, db *gorm.DB) ([]dto.EstateDto, error) {
	estates, err := s.estateRepo.Latest(db.WithContext(ctx), estatesForMain)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "estate", "Failed to list estates")
	}
	return dto.MapSlice(estates, dto.FromEstate), nil
}

func (s *estateService) ListForMypage(ctx context.Context, db *gorm.DB, companyID string, page int) (*dto.EstateListResponse, error) {
	if companyID == "" {
		return nil, apperrors.InvalidInput("estate", "companyId is required")
	}
	estates, total, err := s.estateRepo.ListByCompany(db.WithContext(ctx), companyID, page, dto.DefaultPageSize)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "estate", "Failed to list estates")
	}
	return &dto.EstateListResponse{
		EstateList: dto.MapSlice(estates, dto.FromEstate),
		PageInfo:   dto.NewPageInfo(page, dto.DefaultPageSize, total),
	}, nil
}

func (s *estateService) Delete(ctx context.Context, db *gorm.DB, estateNum int) error {
	var estate *models.Estate
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		estate, err = s.estateRepo.FindByNum(tx, estateNum)
		if err != nil {
			return err
		}
		if err := s.bookmarkRepo.DeleteByTarget(tx, models.BookmarkEstate, estateNum); err != nil {
			return err
		}
		return s.estateRepo.Delete(tx, estateNum)
	})
	if err != nil {
		return estateLookupError(err)
	}

	// файлы удаляются после коммита: сбой оставит лишний файл, но не битую ссылку
	s.images.Remove(ctx, dto.ImageNames(estate.ImageNums)...)

	logger.CtxInfo(ctx, "Estate deleted", "estate_num", estateNum)
	events.PublishOrLog(ctx, s.publisher, events.EstateDeleted, events.EstateEvent{
		EstateNum:  estate.EstateNum,
		CompanyID:  estate.CompanyID,
		OccurredAt: time.Now(),
	})
	return nil
}

func (s *estateService) ToggleBookmark(ctx context.Context, db *gorm.DB, userID string, estateNum int) (bool, error) {
	return s.bookmarks.Toggle(ctx, db, models.BookmarkEstate, userID, estateNum)
}

func (s *estateService) OpenImage(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.images.Open(ctx, name)
}

func estateLookupError(err error) error {
	if errors.Is(err, repositories.ErrEstateNotFound) {
		return apperrors.NotFound(err, "estate", "Estate not found")
	}
	return apperrors.StorageFailure(err, "estate", "Estate storage failure")
}

// ParseEstateNum разбирает номер объявления из строки (estateDetail присылает строку)
func ParseEstateNum(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, apperrors.InvalidInput("estate", "Invalid estate number")
	}
	return n, nil
}
