package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"geekku_backend/internal/services/dto"
	"geekku_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySearchBrokerPassesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "api-key", q.Get("key"))
		assert.Equal(t, "geekku.kr", q.Get("domain"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "긱쿠", q.Get("bsnmCmpnm"))
		assert.False(t, q.Has("brkrNm"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"EDBrokers":{"field":[]}}`))
	}))
	defer srv.Close()

	svc := NewRegistryService(RegistryConfig{BaseURL: srv.URL, Key: "api-key", Domain: "geekku.kr"})
	body, err := svc.SearchBroker(context.Background(), &dto.RegistryQuery{BsnmCmpnm: "긱쿠"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"EDBrokers":{"field":[]}}`, string(body))
}

func TestRegistrySearchBrokerUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewRegistryService(RegistryConfig{BaseURL: srv.URL})
	_, err := svc.SearchBroker(context.Background(), &dto.RegistryQuery{BrkrNm: "홍길동"})
	assert.Equal(t, apperrors.CodeExternalServiceError, apperrors.CodeOf(err))
}

func TestRegistrySearchBrokerRequiresParameter(t *testing.T) {
	svc := NewRegistryService(RegistryConfig{BaseURL: "http://unused"})
	_, err := svc.SearchBroker(context.Background(), &dto.RegistryQuery{})
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.CodeOf(err))
}
