package apperrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := map[ErrorCode]int{
		CodeInvalidInput:     http.StatusBadRequest,
		CodeInvalidParameter: http.StatusBadRequest,
		CodeNotFound:         http.StatusNotFound,
		CodeConflict:         http.StatusConflict,
		CodeStorageFailure:   http.StatusInternalServerError,
		ErrorCode("UNKNOWN"): http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, StatusFor(code), code)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := StorageFailure(cause, "image", "failed to save")

	assert.True(t, Is(err, cause))
	assert.Equal(t, CodeStorageFailure, CodeOf(err))
	assert.Equal(t, CodeInternalError, CodeOf(cause))
}

func TestWithMessageDoesNotMutate(t *testing.T) {
	base := InvalidInput("company", "bad type")
	changed := base.WithMessage("사업자 타입 오류")

	assert.Equal(t, "bad type", base.Message)
	assert.Equal(t, "사업자 타입 오류", changed.Message)
	assert.Equal(t, base.HTTPCode, changed.HTTPCode)
}

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("app error keeps status", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

		HandleError(c, NotFound(errors.New("record not found"), "estate", "not found"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)
		assert.NotContains(t, w.Body.String(), "record not found")
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

		HandleError(c, errors.New("boom"))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"INTERNAL_ERROR"`)
	})
}
