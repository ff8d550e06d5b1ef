package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"geekku_backend/internal/auth"
	"geekku_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, "%s|%s", GetPrincipalID(c), GetRole(c))
	})
	return r
}

func call(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("mw-secret", time.Hour)
	token, err := tokens.Generate("company-7", models.RoleCompany, models.PrincipalCompany)
	require.NoError(t, err)

	r := newEngine(AuthMiddleware(tokens))

	assert.Equal(t, http.StatusUnauthorized, call(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, "garbage").Code)

	w := call(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "company-7|ROLE_COMPANY", w.Body.String())
}

func TestOptionalAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("mw-secret", time.Hour)
	token, err := tokens.Generate("user-3", models.RoleUser, models.PrincipalUser)
	require.NoError(t, err)

	r := newEngine(OptionalAuthMiddleware(tokens))

	w := call(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "|", w.Body.String())

	w = call(r, token)
	assert.Equal(t, "user-3|ROLE_USER", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, call(r, "broken").Code)
}

func TestRequirePermission(t *testing.T) {
	tokens := auth.NewTokenManager("mw-secret", time.Hour)
	userToken, err := tokens.Generate("u", models.RoleUser, models.PrincipalUser)
	require.NoError(t, err)
	companyToken, err := tokens.Generate("c", models.RoleCompany, models.PrincipalCompany)
	require.NoError(t, err)

	r := newEngine(AuthMiddleware(tokens), RequirePermission(auth.PermAnswerWrite))

	assert.Equal(t, http.StatusForbidden, call(r, userToken).Code)
	assert.Equal(t, http.StatusOK, call(r, companyToken).Code)
}

func TestTimeoutMiddlewareSetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TimeoutMiddleware(time.Minute))
	r.GET("/deadline", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		c.JSON(http.StatusOK, gin.H{"deadline": ok})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deadline", nil))
	assert.JSONEq(t, `{"deadline":true}`, w.Body.String())
}
