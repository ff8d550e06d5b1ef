package middleware

import (
	"strings"

	"geekku_backend/internal/auth"
	"geekku_backend/internal/logger"
	"geekku_backend/internal/models"
	"geekku_backend/pkg/apperrors"
	"geekku_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware проверяет Bearer JWT и кладет principal в контекст
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, tokens)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}
		setPrincipal(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware: без токена запрос проходит анонимно,
// с неверным токеном отклоняется
func OptionalAuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		claims, ok := parseBearer(c, tokens)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}
		setPrincipal(c, claims)
		c.Next()
	}
}

// RequirePermission проверяет право по таблице auth.Permissions
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.HasPermission(GetRole(c), permission) {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: missing permission "+permission))
			return
		}
		c.Next()
	}
}

// GetPrincipalID - id пользователя или компании из JWT, пусто для анонимов
func GetPrincipalID(c *gin.Context) string {
	return c.GetString(string(contextkeys.PrincipalIDKey))
}

func GetRole(c *gin.Context) models.Role {
	role, _ := c.Get(string(contextkeys.RoleKey))
	r, _ := role.(models.Role)
	return r
}

func parseBearer(c *gin.Context, tokens *auth.TokenManager) (*auth.Claims, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		logger.CtxDebug(c.Request.Context(), "Token rejected", "error", err)
		return nil, false
	}
	return claims, true
}

func setPrincipal(c *gin.Context, claims *auth.Claims) {
	c.Set(string(contextkeys.PrincipalIDKey), claims.PrincipalID)
	c.Set(string(contextkeys.RoleKey), claims.Role)
	c.Set(string(contextkeys.PrincipalTypeKey), claims.Type)
	c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.PrincipalID))
}
