package models

import "time"

// Onestop - комплексная заявка (жилье + интерьер)
type Onestop struct {
	OnestopNum int    `gorm:"primaryKey;autoIncrement"`
	UserID     string `gorm:"type:varchar(36);not null;index"`
	Title      string `gorm:"size:200"`
	Type       string `gorm:"size:20"`
	Size       int
	Address    string
	Budget     int
	Content    string `gorm:"type:text"`
	CreatedAt  time.Time

	User *User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type OnestopAnswer struct {
	AnswerOnestopNum int    `gorm:"primaryKey;autoIncrement"`
	OnestopNum       int    `gorm:"not null;index"`
	CompanyID        string `gorm:"type:varchar(36);not null;index"`
	Content          string `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"index"`

	Onestop *Onestop `gorm:"foreignKey:OnestopNum;references:OnestopNum;constraint:OnDelete:CASCADE" json:"-"`
	Company *Company `gorm:"foreignKey:CompanyID;references:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
}
