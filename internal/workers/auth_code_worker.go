package workers

import (
	"context"
	"time"

	"geekku_backend/internal/logger"
	"geekku_backend/internal/repositories"

	"gorm.io/gorm"
)

// AuthCodeWorker периодически удаляет просроченные коды подтверждения
type AuthCodeWorker struct {
	db       *gorm.DB
	repo     repositories.AuthCodeRepository
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
}

func NewAuthCodeWorker(db *gorm.DB, repo repositories.AuthCodeRepository, ttl, interval time.Duration) *AuthCodeWorker {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &AuthCodeWorker{db: db, repo: repo, ttl: ttl, interval: interval, now: time.Now}
}

// Start запускает очистку в фоне до отмены ctx
func (w *AuthCodeWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *AuthCodeWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Auth code worker stopped")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep удаляет коды старше ttl и возвращает число удаленных
func (w *AuthCodeWorker) Sweep(ctx context.Context) int64 {
	removed, err := w.repo.DeleteCreatedBefore(w.db.WithContext(ctx), w.now().Add(-w.ttl))
	if err != nil {
		logger.Error("Error purging expired auth codes", "error", err)
		return 0
	}
	if removed > 0 {
		logger.Info("Purged expired auth codes", "count", removed)
	}
	return removed
}
