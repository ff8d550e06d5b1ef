package dto

import (
	"time"

	"geekku_backend/internal/models"
)

type CommunityDto struct {
	CommunityNum int       `json:"communityNum"`
	UserID       string    `form:"userId" json:"userId" validate:"required"`
	Title        string    `form:"title" json:"title" validate:"required,max=200"`
	Content      string    `form:"content" json:"content"`
	Type         string    `form:"type" json:"type" validate:"max=30"`
	Style        string    `form:"style" json:"style" validate:"max=30"`
	Size         int       `form:"size" json:"size"`
	Location     string    `form:"location" json:"location" validate:"max=50"`
	CoverImage   string    `json:"coverImage"`
	ViewCount    int       `json:"viewCount"`
	Nickname     string    `json:"nickname,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (d *CommunityDto) ToEntity() *models.Community {
	return &models.Community{
		CommunityNum: d.CommunityNum,
		UserID:       d.UserID,
		Title:        d.Title,
		Content:      d.Content,
		Type:         d.Type,
		Style:        d.Style,
		Size:         d.Size,
		Location:     d.Location,
		CoverImage:   d.CoverImage,
		ViewCount:    d.ViewCount,
	}
}

func FromCommunity(c *models.Community) CommunityDto {
	return CommunityDto{
		CommunityNum: c.CommunityNum,
		UserID:       c.UserID,
		Title:        c.Title,
		Content:      c.Content,
		Type:         c.Type,
		Style:        c.Style,
		Size:         c.Size,
		Location:     c.Location,
		CoverImage:   c.CoverImage,
		ViewCount:    c.ViewCount,
		CreatedAt:    c.CreatedAt,
	}
}

// UpdateCommunityRequest - поля формы communityUpdate
type UpdateCommunityRequest struct {
	Title    string `form:"title" validate:"required,max=200"`
	Content  string `form:"content"`
	Type     string `form:"type" validate:"max=30"`
	Style    string `form:"style" validate:"max=30"`
	Size     int    `form:"size"`
	Location string `form:"location" validate:"max=50"`
}

type CommunityDetailResponse struct {
	Community CommunityDto `json:"community"`
	Comments  []CommentDto `json:"comments"`
	Bookmark  *bool        `json:"bookmark,omitempty"`
}

type CommunityListResponse struct {
	CommunityList []CommunityDto `json:"communityList"`
	PageInfo      PageInfo       `json:"pageInfo"`
}

// CommunitySummary - заголовок и просмотры (список постов пользователя)
type CommunitySummary struct {
	CommunityNum int    `json:"communityNum"`
	Title        string `json:"title"`
	ViewCount    int    `json:"viewCount"`
}

type CommentRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Content string `json:"content" validate:"required,max=1000"`
}

type CommentDto struct {
	CommentNum   int       `json:"commentNum"`
	CommunityNum int       `json:"communityNum"`
	UserID       string    `json:"userId"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromComment(c *models.CommunityComment) CommentDto {
	return CommentDto{
		CommentNum:   c.CommentNum,
		CommunityNum: c.CommunityNum,
		UserID:       c.UserID,
		Content:      c.Content,
		CreatedAt:    c.CreatedAt,
	}
}
