package handlers

import (
	"net/http"

	"geekku_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.Health)
}

// Health godoc
// @Summary Проверка БД
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	sqlDB, err := h.GetDB(c).DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		h.HandleServiceError(c, apperrors.StorageFailure(err, "health", "Database is unavailable"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
