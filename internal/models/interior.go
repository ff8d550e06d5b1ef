package models

import (
	"time"

	"gorm.io/datatypes"
)

// Interior - профиль интерьерной компании
type Interior struct {
	InteriorNum      int    `gorm:"primaryKey;autoIncrement"`
	CompanyID        string `gorm:"type:varchar(36);not null;uniqueIndex"`
	PossibleLocation string `gorm:"size:50;index"`
	PossiblePart     bool
	Period           int
	RecentCount      int
	RepairDate       int
	Styles           datatypes.JSON
	Intro            string `gorm:"size:500"`
	Content          string `gorm:"type:text"`
	CoverImage       string
	CreatedAt        time.Time `gorm:"index"`

	Company *Company `gorm:"foreignKey:CompanyID;references:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
}

// InteriorSample - пример работ (фильтруемый список)
type InteriorSample struct {
	SampleNum  int    `gorm:"primaryKey;autoIncrement"`
	CompanyID  string `gorm:"type:varchar(36);not null;index"`
	Title      string `gorm:"size:200"`
	Type       string `gorm:"size:30;index"`
	Style      string `gorm:"size:30;index"`
	Size       int    `gorm:"index"`
	Location   string `gorm:"size:50;index"`
	Content    string `gorm:"type:text"`
	CoverImage string
	CreatedAt  time.Time `gorm:"index"`

	Company *Company `gorm:"foreignKey:CompanyID;references:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
}

type InteriorReview struct {
	ReviewNum   int    `gorm:"primaryKey;autoIncrement"`
	UserID      string `gorm:"type:varchar(36);not null;index"`
	InteriorNum int    `gorm:"not null;index"`
	CompanyName string `gorm:"size:100"`
	Type        string `gorm:"size:30"`
	Style       string `gorm:"size:30"`
	Size        int
	Location    string `gorm:"size:50"`
	ImageNums   string
	Content     string `gorm:"type:text"`
	CreatedAt   time.Time

	User     *User     `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Interior *Interior `gorm:"foreignKey:InteriorNum;references:InteriorNum;constraint:OnDelete:CASCADE" json:"-"`
}

// InteriorRequest - заявка пользователя конкретной компании
type InteriorRequest struct {
	RequestNum  int    `gorm:"primaryKey;autoIncrement"`
	UserID      string `gorm:"type:varchar(36);not null;index"`
	InteriorNum int    `gorm:"not null;index"`
	Name        string `gorm:"size:50"`
	Phone       string `gorm:"size:20"`
	Type        string `gorm:"size:30"`
	Size        int
	Address     string
	Content     string `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`

	User     *User     `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Interior *Interior `gorm:"foreignKey:InteriorNum;references:InteriorNum;constraint:OnDelete:CASCADE" json:"-"`
}

// InteriorAllRequest - заявка всем интерьерным компаниям сразу
type InteriorAllRequest struct {
	RequestAllNum int    `gorm:"primaryKey;autoIncrement"`
	UserID        string `gorm:"type:varchar(36);not null;index"`
	Title         string `gorm:"size:200"`
	Type          string `gorm:"size:30"`
	Size          int
	Location      string `gorm:"size:50"`
	Budget        int
	Content       string `gorm:"type:text"`
	CreatedAt     time.Time

	User *User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type InteriorAllAnswer struct {
	AnswerAllNum  int    `gorm:"primaryKey;autoIncrement"`
	RequestAllNum int    `gorm:"not null;index"`
	CompanyID     string `gorm:"type:varchar(36);not null;index"`
	Content       string `gorm:"type:text"`
	CreatedAt     time.Time

	InteriorAllRequest *InteriorAllRequest `gorm:"foreignKey:RequestAllNum;references:RequestAllNum;constraint:OnDelete:CASCADE" json:"-"`
	Company            *Company            `gorm:"foreignKey:CompanyID;references:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
}
