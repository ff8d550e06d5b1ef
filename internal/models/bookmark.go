package models

import (
	"fmt"
	"time"
)

// Наличие строки и есть признак "в закладках". Пара (user, target)
// уникальна на уровне БД.

type EstateBookmark struct {
	BookmarkEstateNum int    `gorm:"primaryKey;autoIncrement"`
	UserID            string `gorm:"type:varchar(36);not null;uniqueIndex:idx_estate_bookmark_user_target"`
	EstateNum         int    `gorm:"not null;uniqueIndex:idx_estate_bookmark_user_target;index"`
	CreatedAt         time.Time

	User   *User   `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Estate *Estate `gorm:"foreignKey:EstateNum;references:EstateNum;constraint:OnDelete:CASCADE" json:"-"`
}

type CommunityBookmark struct {
	BookmarkCommunityNum int    `gorm:"primaryKey;autoIncrement"`
	UserID               string `gorm:"type:varchar(36);not null;uniqueIndex:idx_community_bookmark_user_target"`
	CommunityNum         int    `gorm:"not null;uniqueIndex:idx_community_bookmark_user_target;index"`
	CreatedAt            time.Time

	User      *User      `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Community *Community `gorm:"foreignKey:CommunityNum;references:CommunityNum;constraint:OnDelete:CASCADE" json:"-"`
}

type InteriorBookmark struct {
	BookmarkInteriorNum int    `gorm:"primaryKey;autoIncrement"`
	UserID              string `gorm:"type:varchar(36);not null;uniqueIndex:idx_interior_bookmark_user_target"`
	InteriorNum         int    `gorm:"not null;uniqueIndex:idx_interior_bookmark_user_target;index"`
	CreatedAt           time.Time

	User     *User     `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Interior *Interior `gorm:"foreignKey:InteriorNum;references:InteriorNum;constraint:OnDelete:CASCADE" json:"-"`
}

// BookmarkKind - на что ставится закладка
type BookmarkKind string

const (
	BookmarkEstate    BookmarkKind = "estate"
	BookmarkCommunity BookmarkKind = "community"
	BookmarkInterior  BookmarkKind = "interior"
)

// TargetColumn - колонка id цели в таблице закладок
func (k BookmarkKind) TargetColumn() string {
	switch k {
	case BookmarkEstate:
		return "estate_num"
	case BookmarkCommunity:
		return "community_num"
	case BookmarkInterior:
		return "interior_num"
	}
	return ""
}

// Model - пустая модель таблицы закладок для запросов
func (k BookmarkKind) Model() (interface{}, error) {
	switch k {
	case BookmarkEstate:
		return &EstateBookmark{}, nil
	case BookmarkCommunity:
		return &CommunityBookmark{}, nil
	case BookmarkInterior:
		return &InteriorBookmark{}, nil
	}
	return nil, fmt.Errorf("unknown bookmark kind: %q", k)
}

// TargetModel - модель цели и имя ее первичного ключа
func (k BookmarkKind) TargetModel() (interface{}, string, error) {
	switch k {
	case BookmarkEstate:
		return &Estate{}, "estate_num", nil
	case BookmarkCommunity:
		return &Community{}, "community_num", nil
	case BookmarkInterior:
		return &Interior{}, "interior_num", nil
	}
	return nil, "", fmt.Errorf("unknown bookmark kind: %q", k)
}

// NewBookmark строит строку закладки нужного типа
func NewBookmark(kind BookmarkKind, userID string, target int) (interface{}, error) {
	switch kind {
	case BookmarkEstate:
		return &EstateBookmark{UserID: userID, EstateNum: target}, nil
	case BookmarkCommunity:
		return &CommunityBookmark{UserID: userID, CommunityNum: target}, nil
	case BookmarkInterior:
		return &InteriorBookmark{UserID: userID, InteriorNum: target}, nil
	}
	return nil, fmt.Errorf("unknown bookmark kind: %q", kind)
}
