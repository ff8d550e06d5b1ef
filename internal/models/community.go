package models

import "time"

// Community - пост пользователя с необязательной обложкой
type Community struct {
	CommunityNum int    `gorm:"primaryKey;autoIncrement"`
	UserID       string `gorm:"type:varchar(36);not null;index"`
	Title        string `gorm:"size:200;not null"`
	Content      string `gorm:"type:text"`
	Type         string `gorm:"size:30;index"`
	Style        string `gorm:"size:30;index"`
	Size         int    `gorm:"index"`
	Location     string `gorm:"size:50;index"`
	CoverImage   string
	ViewCount    int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"index"`

	User *User `gorm:"foreignKey:UserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

type CommunityComment struct {
	CommentNum   int    `gorm:"primaryKey;autoIncrement"`
	CommunityNum int    `gorm:"not null;index"`
	UserID       string `gorm:"type:varchar(36);not null;index"`
	Content      string `gorm:"type:text;not null"`
	CreatedAt    time.Time

	Community *Community `gorm:"foreignKey:CommunityNum;references:CommunityNum;constraint:OnDelete:CASCADE" json:"-"`
	User      *User      `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
