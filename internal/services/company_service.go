package services

import (
	"context"
	"errors"
	"io"

	"geekku_backend/internal/auth"
	"geekku_backend/internal/logger"
	"geekku_backend/internal/models"
	"geekku_backend/internal/repositories"
	"geekku_backend/internal/services/dto"
	"geekku_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// maxProfileImage - профиль компании хранится в БД, поэтому лимит меньше
const maxProfileImage = 2 << 20

var ErrInvalidCompanyType = errors.New("company type must be estate or interior")

type CompanyService interface {
	Join(ctx context.Context, db *gorm.DB, req *dto.JoinCompanyRequest, profile *dto.FileUpload) (*dto.CompanyDto, error)
	GetProfile(ctx context.Context, db *gorm.DB, companyID string) (*dto.CompanyDto, error)
	UpdateInfo(ctx context.Context, db *gorm.DB, companyID string, req *dto.UpdateCompanyRequest) error
	EstatesByCompany(ctx context.Context, db *gorm.DB, companyID string) ([]dto.EstateDto, error)
	HouseAnswers(ctx context.Context, db *gorm.DB, companyID string, page int) (*dto.Page[dto.HouseAnswerDto], error)
	OnestopAnswers(ctx context.Context, db *gorm.DB, companyID string, page int) (*dto.Page[dto.OnestopAnswerDto], error)
}

type companyService struct {
	companyRepo repositories.CompanyRepository
	estateRepo  repositories.EstateRepository
	answerRepo  repositories.AnswerRepository
}

func NewCompanyService(
	companyRepo repositories.CompanyRepository,
	estateRepo repositories.EstateRepository,
	answerRepo repositories.AnswerRepository,
) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
		estateRepo:  estateRepo,
		answerRepo:  answerRepo,
	}
}

func (s *companyService) Join(ctx context.Context, db *gorm.DB, req *dto.JoinCompanyRequest, profile *dto.FileUpload) (*dto.CompanyDto, error) {
	companyType := models.CompanyType(req.Type)
	if !companyType.Valid() {
		return nil, apperrors.Wrap(ErrInvalidCompanyType, apperrors.CodeInvalidInput, "company", "Invalid company type")
	}

	company := req.ToEntity()
	company.Role = models.RoleCompany

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	company.Password = hash

	if profile != nil && profile.Reader != nil && profile.Size > 0 {
		if profile.Size > maxProfileImage {
			return nil, apperrors.InvalidInput("company", "Profile image is too large")
		}
		data, err := io.ReadAll(io.LimitReader(profile.Reader, maxProfileImage+1))
		if err != nil {
			return nil, apperrors.InvalidInput("company", "Failed to read profile image")
		}
		company.ProfileImage = data
	}

	if err := s.companyRepo.Create(db.WithContext(ctx), company); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, apperrors.Conflict(err, "company", "Username already exists")
		}
		return nil, apperrors.StorageFailure(err, "company", "Failed to create company")
	}

	logger.CtxInfo(ctx, "Company registered", "company_id", company.CompanyID, "type", company.Type)
	result := dto.FromCompany(company)
	return &result, nil
}

func (s *companyService) GetProfile(ctx context.Context, db *gorm.DB, companyID string) (*dto.CompanyDto, error) {
	company, err := s.companyRepo.FindByID(db.WithContext(ctx), companyID)
	if err != nil {
		return nil, companyLookupError(err)
	}
	result := dto.FromCompany(company)
	return &result, nil
}

func (s *companyService) UpdateInfo(ctx context.Context, db *gorm.DB, companyID string, req *dto.UpdateCompanyRequest) error {
	updates := req.Updates()
	if req.Password != nil && *req.Password != "" {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return apperrors.InternalError(err)
		}
		updates["password"] = hash
	}

	if err := s.companyRepo.Update(db.WithContext(ctx), companyID, updates); err != nil {
		return companyLookupError(err)
	}
	return nil
}

func (s *companyService) EstatesByCompany(ctx context.Context, db *gorm.DB, companyID string) ([]dto.EstateDto, error) {
	db = db.WithContext(ctx)
	company, err := s.companyRepo.FindByID(db, companyID)
	if err != nil {
		return nil, companyLookupError(err)
	}

	estates, err := s.estateRepo.FindAllByCompany(db, companyID)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "estate", "Failed to load estates")
	}
	return dto.MapSlice(estates, func(e *models.Estate) dto.EstateDto {
		return dto.FromEstate(e).WithCompany(company)
	}), nil
}

func (s *companyService) HouseAnswers(ctx context.Context, db *gorm.DB, companyID string, page int) (*dto.Page[dto.HouseAnswerDto], error) {
	db = db.WithContext(ctx)
	company, err := s.companyRepo.FindByID(db, companyID)
	if err != nil {
		return nil, companyLookupError(err)
	}

	answers, total, err := s.answerRepo.HouseAnswersByCompany(db, companyID, page, dto.DefaultPageSize)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "answer", "Failed to load answers")
	}
	content := dto.MapSlice(answers, func(a *models.HouseAnswer) dto.HouseAnswerDto {
		return dto.FromHouseAnswer(a, company)
	})
	return dto.NewPage(content, page, dto.DefaultPageSize, total), nil
}

func (s *companyService) OnestopAnswers(ctx context.Context, db *gorm.DB, companyID string, page int) (*dto.Page[dto.OnestopAnswerDto], error) {
	db = db.WithContext(ctx)
	company, err := s.companyRepo.FindByID(db, companyID)
	if err != nil {
		return nil, companyLookupError(err)
	}

	answers, total, err := s.answerRepo.OnestopAnswersByCompany(db, companyID, page, dto.DefaultPageSize)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "answer", "Failed to load answers")
	}
	content := dto.MapSlice(answers, func(a *models.OnestopAnswer) dto.OnestopAnswerDto {
		return dto.FromOnestopAnswer(a, company)
	})
	return dto.NewPage(content, page, dto.DefaultPageSize, total), nil
}

func companyLookupError(err error) error {
	if errors.Is(err, repositories.ErrCompanyNotFound) {
		return apperrors.NotFound(err, "company", "Company not found")
	}
	return apperrors.StorageFailure(err, "company", "Failed to load company")
}
