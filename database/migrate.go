package database

import (
	"fmt"
	"time"

	"geekku_backend/internal/logger"
	"geekku_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	start := time.Now()
	err := db.AutoMigrate(models.All()...)
	logger.DBLog("auto_migrate", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
