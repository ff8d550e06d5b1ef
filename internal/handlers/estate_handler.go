package handlers

import (
	"io"
	"net/http"
	"strconv"

	"geekku_backend/internal/logger"
	"geekku_backend/internal/services"
	"geekku_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

const (
	msgEstateWriteFailed    = "매물 등록 오류"
	msgEstateDetailFailed   = "매물 상세보기 오류"
	msgEstateDeleteFailed   = "매물 삭제 오류"
	msgEstateBookmarkFailed = "매물 북마크 실패"
)

type EstateHandler struct {
	*BaseHandler
	estateService services.EstateService
}

func NewEstateHandler(base *BaseHandler, estateService services.EstateService) *EstateHandler {
	return &EstateHandler{
		BaseHandler:   base,
		estateService: estateService,
	}
}

func (h *EstateHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/estateWrite", h.EstateWrite)
	r.GET("/estateImage/:num", h.EstateImage)
	r.POST("/estateDetail", h.EstateDetail)
	r.GET("/estateList", h.EstateList)
	r.GET("/estateListForMain", h.EstateListForMain)
	r.POST("/estateDelete", h.EstateDelete)
	r.POST("/estateBookmark/:estateNum", h.OptionalAuth(), h.EstateBookmark)
	r.GET("/mypageEstateList", h.MypageEstateList)
}

// EstateWrite godoc
// @Summary Новое объявление с изображениями
// @Tags estate
// @Accept multipart/form-data
// @Produce plain
// @Param images formData file false "images"
// @Success 200 {string} string "estateNum"
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /estateWrite [post]
func (h *EstateHandler) EstateWrite(c *gin.Context) {
	var req dto.EstateDto
	if err := h.BindForm(c, &req); err != nil {
		h.RespondError(c, err, msgEstateWriteFailed)
		return
	}
	if err := h.Validate(&req); err != nil {
		h.RespondError(c, err, msgEstateWriteFailed)
		return
	}

	images, closeFiles, err := FormFiles(c, "images", "images[]")
	if err != nil {
		h.RespondError(c, err, msgEstateWriteFailed)
		return
	}
	defer closeFiles()

	num, err := h.estateService.Write(c.Request.Context(), h.GetDB(c), &req, images)
	if err != nil {
		h.RespondError(c, err, msgEstateWriteFailed)
		return
	}
	c.String(http.StatusOK, strconv.Itoa(num))
}

// EstateImage отдает файл как есть; если файла нет - пустой 200
func (h *EstateHandler) EstateImage(c *gin.Context) {
	ctx := c.Request.Context()
	rc, err := h.estateService.OpenImage(ctx, c.Param("num"))
	if err != nil {
		logger.CtxWithError(ctx, "Failed to open estate image", err, "name", c.Param("num"))
		c.Status(http.StatusOK)
		return
	}
	if rc == nil {
		c.Status(http.StatusOK)
		return
	}
	defer rc.Close()

	c.Status(http.StatusOK)
	c.Header("Content-Type", "application/octet-stream")
	if _, err := io.Copy(c.Writer, rc); err != nil {
		logger.CtxWithError(ctx, "Failed to stream estate image", err, "name", c.Param("num"))
	}
}

func (h *EstateHandler) EstateDetail(c *gin.Context) {
	var req dto.EstateDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"err": msgEstateDetailFailed})
		return
	}
	estateNum, err := services.ParseEstateNum(req.EstateNum)
	if err != nil {
		h.RespondErr(c, err, msgEstateDetailFailed)
		return
	}

	res, err := h.estateService.Detail(c.Request.Context(), h.GetDB(c), estateNum, req.UserID)
	if err != nil {
		h.RespondErr(c, err, msgEstateDetailFailed)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *EstateHandler) EstateList(c *gin.Context) {
	page, err := ParsePage(c, 1)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	res, err := h.estateService.List(c.Request.Context(), h.GetDB(c), page, c.Query("type"), c.Query("keyword"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *EstateHandler) EstateListForMain(c *gin.Context) {
	estates, err := h.estateService.ListForMain(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, estates)
}

func (h *EstateHandler) EstateDelete(c *gin.Context) {
	estateNum, err := ParseQueryInt(c, "estateNum")
	if err != nil {
		h.RespondError(c, err, msgEstateDeleteFailed)
		return
	}
	if err := h.estateService.Delete(c.Request.Context(), h.GetDB(c), estateNum); err != nil {
		h.RespondError(c, err, msgEstateDeleteFailed)
		return
	}
	c.JSON(http.StatusOK, true)
}

func (h *EstateHandler) EstateBookmark(c *gin.Context) {
	estateNum, err := ParseParamInt(c, "estateNum")
	if err != nil {
		h.RespondError(c, err, msgEstateBookmarkFailed)
		return
	}
	added, err := h.estateService.ToggleBookmark(c.Request.Context(), h.GetDB(c), bookmarkUserID(c), estateNum)
	if err != nil {
		h.RespondError(c, err, msgEstateBookmarkFailed)
		return
	}
	c.JSON(http.StatusOK, added)
}

func (h *EstateHandler) MypageEstateList(c *gin.Context) {
	page, err := ParsePage(c, 1)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	res, err := h.estateService.ListForMypage(c.Request.Context(), h.GetDB(c), c.Query("companyId"), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
