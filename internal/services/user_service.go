package services

import (
	"context"
	"errors"

	"geekku_backend/internal/auth"
	"geekku_backend/internal/logger"
	"geekku_backend/internal/models"
	"geekku_backend/internal/repositories"
	"geekku_backend/internal/services/dto"
	"geekku_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	Join(ctx context.Context, db *gorm.DB, req *dto.JoinUserRequest) (*dto.UserDto, error)
	// Login проверяет пароль пользователя или компании и выдает JWT
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(ctx context.Context, db *gorm.DB, userID string) (*dto.UserDto, error)
}

type userService struct {
	userRepo    repositories.UserRepository
	companyRepo repositories.CompanyRepository
	tokens      *auth.TokenManager
}

func NewUserService(
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	tokens *auth.TokenManager,
) UserService {
	return &userService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		tokens:      tokens,
	}
}

func (s *userService) Join(ctx context.Context, db *gorm.DB, req *dto.JoinUserRequest) (*dto.UserDto, error) {
	user := req.ToEntity()
	user.Role = models.RoleUser

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.Password = hash

	if err := s.userRepo.Create(db.WithContext(ctx), user); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, apperrors.Conflict(err, "user", "Username already exists")
		}
		return nil, apperrors.StorageFailure(err, "user", "Failed to create user")
	}

	logger.CtxInfo(ctx, "User registered", "user_id", user.UserID)
	result := dto.FromUser(user)
	return &result, nil
}

func (s *userService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	db = db.WithContext(ctx)

	var (
		id            string
		hash          string
		role          models.Role
		principalType models.PrincipalType
	)

	if models.PrincipalType(req.Type) == models.PrincipalCompany {
		company, err := s.companyRepo.FindByUsername(db, req.Username)
		if err != nil {
			return nil, loginLookupError(err, repositories.ErrCompanyNotFound, req.Password)
		}
		id, hash, role, principalType = company.CompanyID, company.Password, company.Role, models.PrincipalCompany
	} else {
		user, err := s.userRepo.FindByUsername(db, req.Username)
		if err != nil {
			return nil, loginLookupError(err, repositories.ErrUserNotFound, req.Password)
		}
		id, hash, role, principalType = user.UserID, user.Password, user.Role, models.PrincipalUser
	}

	if !auth.CheckPasswordHash(req.Password, hash) {
		logger.CtxWarn(ctx, "Login failed: wrong password", "username", req.Username, "type", principalType)
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(id, role, principalType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		Role:  string(role),
		ID:    id,
		Type:  string(principalType),
	}, nil
}

func (s *userService) GetProfile(ctx context.Context, db *gorm.DB, userID string) (*dto.UserDto, error) {
	user, err := s.userRepo.FindByID(db.WithContext(ctx), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound(err, "user", "User not found")
		}
		return nil, apperrors.StorageFailure(err, "user", "Failed to load user")
	}
	result := dto.FromUser(user)
	return &result, nil
}

// loginLookupError не раскрывает, существует ли логин
func loginLookupError(err, notFound error, password string) error {
	if errors.Is(err, notFound) {
		auth.CheckMissingAccount(password)
		return apperrors.ErrInvalidCredentials
	}
	return apperrors.StorageFailure(err, "auth", "Failed to load account")
}
