package handlers

import (
	"net/http"

	"geekku_backend/internal/services"
	"geekku_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

const msgUserJoined = "회원가입 성공"

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/joinUser", h.JoinUser)
	r.POST("/login", h.Login)
	r.GET("/userProfile/:userId", h.UserProfile)
}

func (h *UserHandler) JoinUser(c *gin.Context) {
	var req dto.JoinUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	if _, err := h.userService.Join(c.Request.Context(), h.GetDB(c), &req); err != nil {
		h.RespondError(c, err, msgJoinFailed)
		return
	}
	c.String(http.StatusOK, msgUserJoined)
}

// Login godoc
// @Summary Вход пользователя или компании
// @Tags user
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	res, err := h.userService.Login(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *UserHandler) UserProfile(c *gin.Context) {
	profile, err := h.userService.GetProfile(c.Request.Context(), h.GetDB(c), c.Param("userId"))
	if err != nil {
		h.RespondError(c, err, msgProfileNotFound)
		return
	}
	c.JSON(http.StatusOK, profile)
}
