package models

import "time"

// Auth - выданный код подтверждения (телефон или email)
type Auth struct {
	AuthNum          int    `gorm:"primaryKey;autoIncrement"`
	Phone            string `gorm:"size:20;index"`
	Email            string `gorm:"size:100;index"`
	CertificationNum int    `gorm:"not null"`
	CreatedAt        time.Time
}
