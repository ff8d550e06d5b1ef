package handlers

import (
	"net/http"

	"geekku_backend/internal/services"
	"geekku_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	*BaseHandler
	communityService services.CommunityService
}

func NewCommunityHandler(base *BaseHandler, communityService services.CommunityService) *CommunityHandler {
	return &CommunityHandler{
		BaseHandler:      base,
		communityService: communityService,
	}
}

func (h *CommunityHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/communityList", h.List)
	r.GET("/communityList/filter", h.ListFiltered)
	r.GET("/communityListForMain", h.ListForMain)
	r.POST("/communityCreate", h.Create)
	r.POST("/communityCreateWithCover", h.CreateWithCover)
	r.GET("/communityDetail/:num", h.Detail)
	r.PUT("/communityUpdate/:num", h.Update)
	r.POST("/communityBookmark/:num", h.OptionalAuth(), h.Bookmark)
	r.POST("/communityComment/:num", h.AddComment)
	r.DELETE("/communityComment/:num", h.DeleteComment)
	r.GET("/userCommunities/:userId", h.UserCommunities)
}

func (h *CommunityHandler) List(c *gin.Context) {
	page, err := ParsePage(c, 0)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	res, err := h.communityService.List(c.Request.Context(), h.GetDB(c), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListFiltered godoc
// @Summary Посты с фильтрами
// @Tags community
// @Produce json
// @Param type query string false "type"
// @Param style query string false "style"
// @Param size query int false "size"
// @Param location query string false "location"
// @Param date query string false "latest | oldest"
// @Param page query int false "1-based page"
// @Success 200 {object} dto.CommunityListResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /communityList/filter [get]
func (h *CommunityHandler) ListFiltered(c *gin.Context) {
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
	res, err := h.communityService.ListFiltered(c.Request.Context(), h.GetDB(c), filter, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CommunityHandler) ListForMain(c *gin.Context) {
	res, err := h.communityService.ListForMain(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CommunityHandler) Create(c *gin.Context) {
	var req dto.CommunityDto
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	num, err := h.communityService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, num)
}

func (h *CommunityHandler) CreateWithCover(c *gin.Context) {
	var req dto.CommunityDto
	if !h.BindAndValidate_Form(c, &req) {
		return
	}
	cover, closeFile, err := FormFile(c, "coverImage")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer closeFile()

	num, err := h.communityService.CreateWithCover(c.Request.Context(), h.GetDB(c), &req, cover)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, num)
}

func (h *CommunityHandler) Detail(c *gin.Context) {
	num, err := ParseParamInt(c, "num")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	res, err := h.communityService.Detail(c.Request.Context(), h.GetDB(c), num, bookmarkUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CommunityHandler) Update(c *gin.Context) {
	num, err := ParseParamInt(c, "num")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	var req dto.UpdateCommunityRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}
	cover, closeFile, err := FormFile(c, "coverImage")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer closeFile()

	if err := h.communityService.Update(c.Request.Context(), h.GetDB(c), num, &req, cover); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, num)
}

func (h *CommunityHandler) Bookmark(c *gin.Context) {
	num, err := ParseParamInt(c, "num")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	added, err := h.communityService.ToggleBookmark(c.Request.Context(), h.GetDB(c), bookmarkUserID(c), num)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, added)
}

func (h *CommunityHandler) AddComment(c *gin.Context) {
	num, err := ParseParamInt(c, "num")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	var req dto.CommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	comment, err := h.communityService.AddComment(c.Request.Context(), h.GetDB(c), num, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommunityHandler) DeleteComment(c *gin.Context) {
	num, err := ParseParamInt(c, "num")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if err := h.communityService.DeleteComment(c.Request.Context(), h.GetDB(c), num); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}

func (h *CommunityHandler) UserCommunities(c *gin.Context) {
	res, err := h.communityService.UserCommunities(c.Request.Context(), h.GetDB(c), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
