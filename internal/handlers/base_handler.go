package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"geekku_backend/internal/auth"
	"geekku_backend/internal/logger"
	"geekku_backend/internal/middleware"
	"geekku_backend/internal/models"
	"geekku_backend/internal/repositories"
	"geekku_backend/internal/services/dto"
	"geekku_backend/internal/validator"
	"geekku_backend/pkg/apperrors"
	"geekku_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ============================================================================
// 1. Базовая структура обработчика
// ============================================================================

type BaseHandler struct {
	validator *validator.Validator
	tokens    *auth.TokenManager
}

func NewBaseHandler(v *validator.Validator, tokens *auth.TokenManager) *BaseHandler {
	return &BaseHandler{
		validator: v,
		tokens:    tokens,
	}
}

// RequireAuth - JWT middleware с менеджером токенов приложения
func (h *BaseHandler) RequireAuth() gin.HandlerFunc {
	return middleware.AuthMiddleware(h.tokens)
}

// OptionalAuth подставляет principal, если токен передан
func (h *BaseHandler) OptionalAuth() gin.HandlerFunc {
	return middleware.OptionalAuthMiddleware(h.tokens)
}

// GetDB извлекает *gorm.DB (пул или транзакцию) из gin.Context
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

// ============================================================================
// 2. Привязка и валидация
// ============================================================================

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

// BindForm разбирает multipart/urlencoded форму без валидации
func (h *BaseHandler) BindForm(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind form", err, "path", c.Request.URL.Path)
		return apperrors.NewBadRequestError("Invalid form: " + err.Error())
	}
	return nil
}

func (h *BaseHandler) BindAndValidate_Form(c *gin.Context, obj interface{}) bool {
	if err := h.BindForm(c, obj); err != nil {
		apperrors.HandleError(c, err)
		return false
	}
	return h.validate(c, obj)
}

// Validate возвращает ошибку вместо ответа, чтобы хендлер мог подменить сообщение
func (h *BaseHandler) Validate(obj interface{}) error {
	err := h.validator.Validate(obj)
	if err == nil {
		return nil
	}
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		return apperrors.ValidationError(vErr.Errors)
	}
	return apperrors.InternalError(err)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	if err := h.Validate(obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "Validation failed", "error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, err)
		return false
	}
	return true
}

// ============================================================================
// 3. Обработчики ошибок
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		if StatusOf(appErr) < http.StatusInternalServerError {
			logger.CtxWarn(ctx, "Service error",
				"error", appErr.Message,
				"details", appErr.Details,
				"path", c.Request.URL.Path,
			)
		}
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// RespondError - вид ошибки и статус сохраняются, клиент видит фиксированное сообщение
func (h *BaseHandler) RespondError(c *gin.Context, err error, message string) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.InternalError(err)
	}
	h.HandleServiceError(c, appErr.WithMessage(message))
}

// RespondErr пишет {"err": message}; статус берется из вида ошибки
func (h *BaseHandler) RespondErr(c *gin.Context, err error, message string) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.InternalError(err)
	}
	status := StatusOf(appErr)
	if status >= http.StatusInternalServerError {
		logger.CtxWithError(c.Request.Context(), "server error", err, "path", c.Request.URL.Path)
	} else {
		logger.CtxWarn(c.Request.Context(), "Request failed", "error", err, "path", c.Request.URL.Path)
	}
	c.AbortWithStatusJSON(status, gin.H{"err": message})
}

func StatusOf(appErr *apperrors.AppError) int {
	if appErr.HTTPCode != 0 {
		return appErr.HTTPCode
	}
	return apperrors.StatusFor(appErr.Code)
}

// ============================================================================
// 4. Функции парсинга
// ============================================================================

// ParsePage - отсутствующий page дает defaultPage, нечисловой - InvalidParameter
func ParsePage(c *gin.Context, defaultPage int) (int, error) {
	raw := strings.TrimSpace(c.Query("page"))
	if raw == "" {
		return defaultPage, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0, apperrors.InvalidParameter("page")
	}
	if defaultPage > 0 && page == 0 {
		page = 1
	}
	return page, nil
}

// ParseListingFilter собирает фильтры type/style/size/location/date.
// Пустой параметр означает "без фильтра".
func ParseListingFilter(c *gin.Context) (repositories.ListingFilter, error) {
	var f repositories.ListingFilter
	if v, ok := queryValue(c, "type"); ok {
		f.Type = &v
	}
	if v, ok := queryValue(c, "style"); ok {
		f.Style = &v
	}
	if v, ok := queryValue(c, "location"); ok {
		f.Location = &v
	}
	if v, ok := queryValue(c, "size"); ok {
		size, err := strconv.Atoi(v)
		if err != nil {
			return f, apperrors.InvalidParameter("size")
		}
		f.Size = &size
	}
	f.Sort = models.ParseSortOrder(c.Query("date"))
	return f, nil
}

func ParseParamInt(c *gin.Context, key string) (int, error) {
	valueStr := c.Param(key)
	if valueStr == "" {
		return 0, apperrors.NewBadRequestError("Missing required path parameter: " + key)
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, apperrors.InvalidParameter(key)
	}
	return value, nil
}

func ParseQueryInt(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, apperrors.NewBadRequestError("Missing required query parameter: " + key)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.InvalidParameter(key)
	}
	return value, nil
}

// FormFile открывает файл из multipart формы; nil, nil если поля нет
func FormFile(c *gin.Context, field string) (*dto.FileUpload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		return nil, func() {}, apperrors.NewBadRequestError("Invalid multipart form")
	}
	return openUpload(fh)
}

// FormFiles открывает все файлы поля (images, images[])
func FormFiles(c *gin.Context, fields ...string) ([]*dto.FileUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, func() {}, apperrors.NewBadRequestError("Invalid multipart form")
	}

	var (
		uploads []*dto.FileUpload
		closers []func()
	)
	closeAll := func() {
		for _, fn := range closers {
			fn()
		}
	}
	for _, field := range fields {
		for _, fh := range form.File[field] {
			upload, closeFn, err := openUpload(fh)
			if err != nil {
				closeAll()
				return nil, func() {}, err
			}
			uploads = append(uploads, upload)
			closers = append(closers, closeFn)
		}
	}
	return uploads, closeAll, nil
}

func queryValue(c *gin.Context, key string) (string, bool) {
	v := strings.TrimSpace(c.Query(key))
	return v, v != ""
}

// bookmarkUserID - principal из JWT, иначе userId из запроса
func bookmarkUserID(c *gin.Context) string {
	if id := middleware.GetPrincipalID(c); id != "" {
		return id
	}
	return strings.TrimSpace(c.Query("userId"))
}
