package services

import (
	"geekku_backend/internal/auth"
	"geekku_backend/internal/events"
	"geekku_backend/internal/repositories"
	"geekku_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	CompanyService       CompanyService
	UserService          UserService
	EstateService        EstateService
	CommunityService     CommunityService
	InteriorService      InteriorService
	AnswerService        AnswerService
	BookmarkService      BookmarkService
	ImageService         ImageService
	RegistryService      RegistryService
	CertificationService CertificationService
	Tokens               *auth.TokenManager
}

// Dependencies - внешние зависимости, которые собирает app
type Dependencies struct {
	Storage   storage.Storage
	Publisher events.Publisher
	Tokens    *auth.TokenManager
	Upload    UploadConfig
	Registry  RegistryConfig
	SMS       CodeSender
	Email     CodeSender
}

// NewServiceContainer создает репозитории и сервисы
func NewServiceContainer(deps Dependencies) *ServiceContainer {
	if deps.Publisher == nil {
		deps.Publisher = events.NoopPublisher{}
	}

	companyRepo := repositories.NewCompanyRepository()
	userRepo := repositories.NewUserRepository()
	estateRepo := repositories.NewEstateRepository()
	communityRepo := repositories.NewCommunityRepository()
	interiorRepo := repositories.NewInteriorRepository()
	answerRepo := repositories.NewAnswerRepository()
	bookmarkRepo := repositories.NewBookmarkRepository()
	authCodeRepo := repositories.NewAuthCodeRepository()

	imageService := NewImageService(deps.Storage, deps.Upload)
	bookmarkService := NewBookmarkService(bookmarkRepo)

	return &ServiceContainer{
		CompanyService:       NewCompanyService(companyRepo, estateRepo, answerRepo),
		UserService:          NewUserService(userRepo, companyRepo, deps.Tokens),
		EstateService:        NewEstateService(estateRepo, companyRepo, bookmarkRepo, bookmarkService, imageService, deps.Publisher),
		CommunityService:     NewCommunityService(communityRepo, userRepo, bookmarkService, imageService, deps.Publisher),
		InteriorService:      NewInteriorService(interiorRepo, companyRepo, userRepo, bookmarkService),
		AnswerService:        NewAnswerService(answerRepo, companyRepo),
		BookmarkService:      bookmarkService,
		ImageService:         imageService,
		RegistryService:      NewRegistryService(deps.Registry),
		CertificationService: NewCertificationService(authCodeRepo, deps.SMS, deps.Email),
		Tokens:               deps.Tokens,
	}
}
