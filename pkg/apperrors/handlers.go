package apperrors

import (
	"geekku_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError пишет ответ по таблице кодов. Детали системных ошибок
// клиенту не отдаются.
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	status := appErr.HTTPCode
	if status == 0 {
		status = StatusFor(appErr.Code)
	}

	if status >= 500 {
		cause := error(appErr)
		if appErr.Err != nil {
			cause = appErr.Err
		}
		logger.CtxWithError(c.Request.Context(), "server error", cause, "code", appErr.Code, "path", c.Request.URL.Path)
		if !h.Debug {
			appErr = &AppError{Code: appErr.Code, Domain: appErr.Domain, Message: appErr.Message, HTTPCode: status}
		}
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Error: appErr})
}

var defaultHandler = &GinErrorHandler{}

// SetDebug включает отдачу деталей 5xx ошибок (только для development)
func SetDebug(debug bool) {
	defaultHandler = &GinErrorHandler{Debug: debug}
}

// HandleError - функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}
