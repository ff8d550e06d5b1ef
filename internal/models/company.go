package models

import (
	"time"

	"gorm.io/gorm"
)

// Company - бизнес-аккаунт (риелтор или интерьерная компания)
type Company struct {
	CompanyID      string      `gorm:"primaryKey;type:varchar(36)"`
	Username       string      `gorm:"size:50;uniqueIndex;not null"`
	Password       string      `gorm:"not null"`
	Type           CompanyType `gorm:"type:varchar(20);not null;index"`
	Role           Role        `gorm:"type:varchar(20);not null"`
	CompanyName    string      `gorm:"size:100"`
	CeoName        string      `gorm:"size:50"`
	CompanyNumber  string      `gorm:"size:20"` // номер регистрации бизнеса
	EstateNumber   string      `gorm:"size:30"` // номер лицензии риелтора
	CompanyAddress string
	Phone          string `gorm:"size:20"`
	Email          string `gorm:"size:100"`
	ProfileImage   []byte
	CreatedAt      time.Time
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	ensureUUID(&c.CompanyID)
	return nil
}
