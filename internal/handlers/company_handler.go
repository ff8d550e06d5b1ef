package handlers

import (
	"errors"
	"net/http"

	"geekku_backend/internal/auth"
	"geekku_backend/internal/logger"
	"geekku_backend/internal/middleware"
	"geekku_backend/internal/services"
	"geekku_backend/internal/services/dto"
	"geekku_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidCompanyType = "사업자 타입 오류"
	msgCompanyJoined      = "기업회원 가입 성공"
	msgJoinFailed         = "회원가입 실패"
	msgLookupFailed       = "조회할 수 없습니다"
	msgProfileNotFound    = "유저 정보를 찾을 수 없습니다."
	msgCompanyPostsFailed = "중개업자가 작성한 게시글을 찾을 수 없습니다."
	msgPostDeleted        = "게시글 삭제 완료"
	msgInfoUpdated        = "회원정보 수정 완료"
	msgInfoUpdateFailed   = "회원정보 수정 실패"
)

type CompanyHandler struct {
	*BaseHandler
	companyService  services.CompanyService
	estateService   services.EstateService
	registryService services.RegistryService
}

func NewCompanyHandler(
	base *BaseHandler,
	companyService services.CompanyService,
	estateService services.EstateService,
	registryService services.RegistryService,
) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:     base,
		companyService:  companyService,
		estateService:   estateService,
		registryService: registryService,
	}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/joinCompany", h.JoinCompany)
	r.GET("/searchEstate", h.SearchEstate)
	r.GET("/estateProfile/:companyId", h.EstateProfile)
	r.GET("/estateCommunities/:companyId", h.EstateCommunities)
	r.DELETE("/estateCommunityDelete/:estateId", h.EstateCommunityDelete)
	r.GET("/estateAnswered/:companyId", h.EstateAnswered)
	r.GET("/onestopAnswered/:companyId", h.OnestopAnswered)

	company := r.Group("/company")
	company.Use(h.RequireAuth(), middleware.RequirePermission(auth.PermCompanyUpdate))
	{
		company.GET("/companyInfo", h.CompanyInfo)
		company.PUT("/updateCompanyInfo", h.UpdateCompanyInfo)
	}
}

// JoinCompany godoc
// @Summary Регистрация компании
// @Tags company
// @Accept multipart/form-data
// @Produce plain
// @Param type formData string true "estate | interior"
// @Param file formData file false "profile image"
// @Success 200 {string} string
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /joinCompany [post]
func (h *CompanyHandler) JoinCompany(c *gin.Context) {
	var req dto.JoinCompanyRequest
	if err := h.BindForm(c, &req); err != nil {
		h.RespondError(c, err, msgJoinFailed)
		return
	}
	if err := h.Validate(&req); err != nil {
		if isInvalidTypeField(err) {
			h.RespondError(c, err, msgInvalidCompanyType)
			return
		}
		h.RespondError(c, err, msgJoinFailed)
		return
	}

	profile, closeFile, err := FormFile(c, "file")
	if err != nil {
		h.RespondError(c, err, msgJoinFailed)
		return
	}
	defer closeFile()

	if _, err := h.companyService.Join(c.Request.Context(), h.GetDB(c), &req, profile); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCompanyType):
			h.RespondError(c, err, msgInvalidCompanyType)
		case apperrors.CodeOf(err) == apperrors.CodeConflict:
			logger.CtxWarn(c.Request.Context(), "Company username taken", "username", req.Username)
			h.RespondError(c, apperrors.Wrap(err, apperrors.CodeInvalidInput, "company", "Username already exists"), msgJoinFailed)
		default:
			h.RespondError(c, err, msgJoinFailed)
		}
		return
	}

	c.String(http.StatusOK, msgCompanyJoined)
}

// SearchEstate отдает ответ реестра брокеров как есть
func (h *CompanyHandler) SearchEstate(c *gin.Context) {
	var q dto.RegistryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.RespondError(c, apperrors.NewBadRequestError(err.Error()), msgLookupFailed)
		return
	}

	body, err := h.registryService.SearchBroker(c.Request.Context(), &q)
	if err != nil {
		// реестр недоступен или ответил ошибкой - для клиента это 400
		h.RespondError(c, apperrors.Wrap(err, apperrors.CodeInvalidInput, "registry", "Registry lookup failed"), msgLookupFailed)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *CompanyHandler) EstateProfile(c *gin.Context) {
	profile, err := h.companyService.GetProfile(c.Request.Context(), h.GetDB(c), c.Param("companyId"))
	if err != nil {
		h.RespondError(c, err, msgProfileNotFound)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *CompanyHandler) EstateCommunities(c *gin.Context) {
	estates, err := h.companyService.EstatesByCompany(c.Request.Context(), h.GetDB(c), c.Param("companyId"))
	if err != nil {
		h.RespondError(c, err, msgCompanyPostsFailed)
		return
	}
	c.JSON(http.StatusOK, estates)
}

func (h *CompanyHandler) EstateCommunityDelete(c *gin.Context) {
	estateNum, err := ParseParamInt(c, "estateId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if err := h.estateService.Delete(c.Request.Context(), h.GetDB(c), estateNum); err != nil {
		h.RespondError(c, err, msgCompanyPostsFailed)
		return
	}
	c.String(http.StatusOK, msgPostDeleted)
}

func (h *CompanyHandler) EstateAnswered(c *gin.Context) {
	page, err := ParsePage(c, 0)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	answers, err := h.companyService.HouseAnswers(c.Request.Context(), h.GetDB(c), c.Param("companyId"), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, answers)
}

func (h *CompanyHandler) OnestopAnswered(c *gin.Context) {
	page, err := ParsePage(c, 0)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	answers, err := h.companyService.OnestopAnswers(c.Request.Context(), h.GetDB(c), c.Param("companyId"), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, answers)
}

func (h *CompanyHandler) CompanyInfo(c *gin.Context) {
	profile, err := h.companyService.GetProfile(c.Request.Context(), h.GetDB(c), middleware.GetPrincipalID(c))
	if err != nil {
		h.RespondError(c, err, msgProfileNotFound)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *CompanyHandler) UpdateCompanyInfo(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	if err := h.companyService.UpdateInfo(c.Request.Context(), h.GetDB(c), middleware.GetPrincipalID(c), &req); err != nil {
		h.RespondError(c, err, msgInfoUpdateFailed)
		return
	}
	c.String(http.StatusOK, msgInfoUpdated)
}

func isInvalidTypeField(err error) bool {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		return false
	}
	details, ok := appErr.Details.(map[string]string)
	if !ok {
		return false
	}
	_, bad := details["type"]
	return bad
}
