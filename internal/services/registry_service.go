package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"geekku_backend/internal/logger"
	"geekku_backend/internal/services/dto"
	"geekku_backend/pkg/apperrors"
)

const maxRegistryResponse = 1 << 20

// RegistryService ищет брокера в реестре vworld и отдает тело ответа как есть
type RegistryService interface {
	SearchBroker(ctx context.Context, q *dto.RegistryQuery) ([]byte, error)
}

type RegistryConfig struct {
	BaseURL string
	Key     string
	Domain  string
	Timeout time.Duration
}

type registryService struct {
	cfg    RegistryConfig
	client *http.Client
}

func NewRegistryService(cfg RegistryConfig) RegistryService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &registryService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *registryService) SearchBroker(ctx context.Context, q *dto.RegistryQuery) ([]byte, error) {
	if q.BsnmCmpnm == "" && q.BrkrNm == "" && q.Jurirno == "" {
		return nil, apperrors.InvalidInput("registry", "At least one search parameter is required")
	}

	u, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("registry base url: %w", err))
	}

	params := url.Values{}
	params.Set("key", s.cfg.Key)
	params.Set("domain", s.cfg.Domain)
	params.Set("format", "json")
	params.Set("numOfRows", "10")
	params.Set("pageNo", "1")
	setIfNotEmpty(params, "bsnmCmpnm", q.BsnmCmpnm)
	setIfNotEmpty(params, "brkrNm", q.BrkrNm)
	setIfNotEmpty(params, "jurirno", q.Jurirno)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.ExternalFailure(err, "registry", "Registry request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRegistryResponse))
	if err != nil {
		return nil, apperrors.ExternalFailure(err, "registry", "Failed to read registry response")
	}

	logger.CtxDebug(ctx, "Registry lookup", "status", resp.StatusCode, "duration", time.Since(start))
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ExternalFailure(
			fmt.Errorf("registry returned status %d", resp.StatusCode),
			"registry", "Registry lookup failed")
	}
	return body, nil
}

func setIfNotEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
