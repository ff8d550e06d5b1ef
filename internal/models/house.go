package models

import "time"

// House - заявка пользователя "найти жилье"
type House struct {
	HouseNum  int    `gorm:"primaryKey;autoIncrement"`
	UserID    string `gorm:"type:varchar(36);not null;index"`
	Title     string `gorm:"size:200"`
	Type      string `gorm:"size:20"`
	Size      int
	Address   string
	Content   string `gorm:"type:text"`
	CreatedAt time.Time

	User *User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// HouseAnswer - ответ компании на заявку House
type HouseAnswer struct {
	AnswerHouseNum int    `gorm:"primaryKey;autoIncrement"`
	HouseNum       int    `gorm:"not null;index"`
	CompanyID      string `gorm:"type:varchar(36);not null;index"`
	Content        string `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"index"`

	House   *House   `gorm:"foreignKey:HouseNum;references:HouseNum;constraint:OnDelete:CASCADE" json:"-"`
	Company *Company `gorm:"foreignKey:CompanyID;references:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
}
