package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	UserID       string `gorm:"primaryKey;type:varchar(36)"`
	Username     string `gorm:"size:50;uniqueIndex;not null"`
	Password     string
	Name         string `gorm:"size:50"`
	Nickname     string `gorm:"size:50;index"`
	Phone        string `gorm:"size:20;index"`
	Email        string `gorm:"size:100;index"`
	Role         Role   `gorm:"type:varchar(20);not null"`
	Provider     string `gorm:"size:20;index:idx_user_provider"`
	ProviderID   string `gorm:"size:100;index:idx_user_provider"`
	ProfileImage []byte
	CreatedAt    time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureUUID(&u.UserID)
	return nil
}
