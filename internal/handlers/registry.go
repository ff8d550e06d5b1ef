package handlers

import (
	"geekku_backend/internal/services"
	"geekku_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	CompanyHandler       *CompanyHandler
	UserHandler          *UserHandler
	EstateHandler        *EstateHandler
	CommunityHandler     *CommunityHandler
	InteriorHandler      *InteriorHandler
	CertificationHandler *CertificationHandler
	HealthHandler        *HealthHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v, sc.Tokens)
	return &AppHandlers{
		CompanyHandler:       NewCompanyHandler(base, sc.CompanyService, sc.EstateService, sc.RegistryService),
		UserHandler:          NewUserHandler(base, sc.UserService),
		EstateHandler:        NewEstateHandler(base, sc.EstateService),
		CommunityHandler:     NewCommunityHandler(base, sc.CommunityService),
		InteriorHandler:      NewInteriorHandler(base, sc.InteriorService, sc.AnswerService),
		CertificationHandler: NewCertificationHandler(base, sc.CertificationService),
		HealthHandler:        NewHealthHandler(base),
	}
}

// RegisterRoutes регистрирует маршруты всех хэндлеров в группе
func (h *AppHandlers) RegisterRoutes(r *gin.RouterGroup) {
	h.HealthHandler.RegisterRoutes(r)
	h.CompanyHandler.RegisterRoutes(r)
	h.UserHandler.RegisterRoutes(r)
	h.EstateHandler.RegisterRoutes(r)
	h.CommunityHandler.RegisterRoutes(r)
	h.InteriorHandler.RegisterRoutes(r)
	h.CertificationHandler.RegisterRoutes(r)
}
