package handlers

import (
	"net/http"

	"geekku_backend/internal/services"
	"geekku_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

const msgCodeSent = "인증번호 발송 완료"

type CertificationHandler struct {
	*BaseHandler
	certificationService services.CertificationService
}

func NewCertificationHandler(base *BaseHandler, certificationService services.CertificationService) *CertificationHandler {
	return &CertificationHandler{
		BaseHandler:          base,
		certificationService: certificationService,
	}
}

func (h *CertificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/sendCertificationCode", h.SendCode)
	r.POST("/checkCertificationCode", h.CheckCode)
}

func (h *CertificationHandler) SendCode(c *gin.Context) {
	var req dto.SendCodeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	if err := h.certificationService.Send(c.Request.Context(), h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.String(http.StatusOK, msgCodeSent)
}

func (h *CertificationHandler) CheckCode(c *gin.Context) {
	var req dto.CheckCodeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	ok, err := h.certificationService.Check(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ok)
}
