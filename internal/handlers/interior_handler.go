package handlers

import (
	"net/http"

	"geekku_backend/internal/auth"
	"geekku_backend/internal/middleware"
	"geekku_backend/internal/services"
	"geekku_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InteriorHandler struct {
	*BaseHandler
	interiorService services.InteriorService
	answerService   services.AnswerService
}

func NewInteriorHandler(base *BaseHandler, interiorService services.InteriorService, answerService services.AnswerService) *InteriorHandler {
	return &InteriorHandler{
		BaseHandler:     base,
		interiorService: interiorService,
		answerService:   answerService,
	}
}

func (h *InteriorHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/interiorListForMain", h.ListForMain)
	r.GET("/sampleListForMain", h.SampleListForMain)
	r.GET("/interiorList", h.List)
	r.GET("/interiorDetail/:num", h.Detail)
	r.POST("/interiorBookmark/:num", h.OptionalAuth(), h.Bookmark)
	r.GET("/sampleList", h.SampleList)
	r.GET("/mypageSampleList", h.MypageSampleList)
	r.POST("/interiorReviewWrite", h.WriteReview)
	r.GET("/interiorReviewList/:interiorNum", h.Reviews)
	r.GET("/mypageInteriorRequestList", h.MypageRequests)
	r.GET("/interiorAllAnswerList/:requestAllNum", h.InteriorAllAnswers)

	answers := r.Group("")
	answers.Use(h.RequireAuth(), middleware.RequirePermission(auth.PermAnswerWrite))
	{
		answers.POST("/houseAnswerWrite", h.WriteHouseAnswer)
		answers.POST("/onestopAnswerWrite", h.WriteOnestopAnswer)
		answers.POST("/interiorAllAnswerWrite", h.WriteInteriorAllAnswer)
	}
}

func (h *InteriorHandler) ListForMain(c *gin.Context) {
	res, err := h.interiorService.ListForMain(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *InteriorHandler) SampleListForMain(c *gin.Context) {
	res, err := h.interiorService.SampleListForMain(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *InteriorHandler) List(c *gin.Context) {
	res, err := h.interiorService.List(c.Request.Context(), h.GetDB(c), c.Query("possibleLocation"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *InteriorHandler) Detail(c *gin.Context) {
	num, err := ParseParamInt(c, "num")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	res, err := h.interiorService.Detail(c.Request.Context(), h.GetDB(c), num, bookmarkUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *InteriorHandler) Bookmark(c *gin.Context) {
	num, err := ParseParamInt(c, "num")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	added, err := h.interiorService.ToggleBookmark(c.Request.Context(), h.GetDB(c), bookmarkUserID(c), num)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, added)
}

// SampleList godoc
// @Summary Примеры работ с фильтрами
// @Tags interior
// @Produce json
// @Param type query string false "type"
// @Param style query string false "style"
// @Param size query int false "size"
// @Param location query string false "location"
// @Param date query string false "latest | oldest"
// @Param page query int false "1-based page"
// @Success 200 {object} dto.SampleListResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /sampleList [get]
func (h *InteriorHandler) SampleList(c *gin.Context) {
	filter, err := ParseListingFilter(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	page, err := ParsePage(c, 1)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	res, err := h.interiorService.SampleList(c.Request.Context(), h.GetDB(c), filter, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *InteriorHandler) MypageSampleList(c *gin.Context) {
	page, err := ParsePage(c, 1)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	res, err := h.interiorService.MypageSampleList(c.Request.Context(), h.GetDB(c), c.Query("companyId"), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *InteriorHandler) WriteReview(c *gin.Context) {
	var req dto.ReviewDto
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	num, err := h.interiorService.WriteReview(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, num)
}

func (h *InteriorHandler) Reviews(c *gin.Context) {
	num, err := ParseParamInt(c, "interiorNum")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	res, err := h.interiorService.Reviews(c.Request.Context(), h.GetDB(c), num)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *InteriorHandler) MypageRequests(c *gin.Context) {
	page, err := ParsePage(c, 0)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	res, err := h.interiorService.MypageRequests(c.Request.Context(), h.GetDB(c), c.Query("userId"), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *InteriorHandler) InteriorAllAnswers(c *gin.Context) {
	num, err := ParseParamInt(c, "requestAllNum")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	res, err := h.answerService.InteriorAllAnswers(c.Request.Context(), h.GetDB(c), num)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *InteriorHandler) WriteHouseAnswer(c *gin.Context) {
	var req dto.HouseAnswerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	num, err := h.answerService.WriteHouseAnswer(c.Request.Context(), h.GetDB(c), middleware.GetPrincipalID(c), req.ToWrite())
	h.respondNum(c, num, err)
}

func (h *InteriorHandler) WriteOnestopAnswer(c *gin.Context) {
	var req dto.OnestopAnswerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	num, err := h.answerService.WriteOnestopAnswer(c.Request.Context(), h.GetDB(c), middleware.GetPrincipalID(c), req.ToWrite())
	h.respondNum(c, num, err)
}

func (h *InteriorHandler) WriteInteriorAllAnswer(c *gin.Context) {
	var req dto.InteriorAllAnswerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	num, err := h.answerService.WriteInteriorAllAnswer(c.Request.Context(), h.GetDB(c), middleware.GetPrincipalID(c), req.ToWrite())
	h.respondNum(c, num, err)
}

func (h *InteriorHandler) respondNum(c *gin.Context, num int, err error) {
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, num)
}
