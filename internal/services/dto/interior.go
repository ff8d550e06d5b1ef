package dto

import (
	"encoding/json"
	"time"

	"geekku_backend/internal/models"
)

type InteriorDto struct {
	InteriorNum      int       `json:"interiorNum"`
	CompanyID        string    `json:"companyId"`
	CompanyName      string    `json:"companyName,omitempty"`
	PossibleLocation string    `json:"possibleLocation"`
	PossiblePart     bool      `json:"possiblePart"`
	Period           int       `json:"period"`
	RecentCount      int       `json:"recentCount"`
	RepairDate       int       `json:"repairDate"`
	Styles           []string  `json:"styles"`
	Intro            string    `json:"intro"`
	Content          string    `json:"content"`
	CoverImage       string    `json:"coverImage"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromInterior(i *models.Interior) InteriorDto {
	d := InteriorDto{
		InteriorNum:      i.InteriorNum,
		CompanyID:        i.CompanyID,
		PossibleLocation: i.PossibleLocation,
		PossiblePart:     i.PossiblePart,
		Period:           i.Period,
		RecentCount:      i.RecentCount,
		RepairDate:       i.RepairDate,
		Styles:           []string{},
		Intro:            i.Intro,
		Content:          i.Content,
		CoverImage:       i.CoverImage,
		CreatedAt:        i.CreatedAt,
	}
	if len(i.Styles) > 0 {
		_ = json.Unmarshal(i.Styles, &d.Styles)
	}
	return d
}

type InteriorListResponse struct {
	InteriorList  []InteriorDto `json:"interiorList"`
	InteriorCount int64         `json:"interiorCount"`
}

type InteriorDetailResponse struct {
	Interior InteriorDto `json:"interior"`
	Bookmark *bool       `json:"bookmark,omitempty"`
}

type SampleDto struct {
	SampleNum  int       `json:"sampleNum"`
	CompanyID  string    `json:"companyId"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	Style      string    `json:"style"`
	Size       int       `json:"size"`
	Location   string    `json:"location"`
	Content    string    `json:"content"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromSample(s *models.InteriorSample) SampleDto {
	return SampleDto{
		SampleNum:  s.SampleNum,
		CompanyID:  s.CompanyID,
		Title:      s.Title,
		Type:       s.Type,
		Style:      s.Style,
		Size:       s.Size,
		Location:   s.Location,
		Content:    s.Content,
		CoverImage: s.CoverImage,
		CreatedAt:  s.CreatedAt,
	}
}

type SampleListResponse struct {
	SampleList []SampleDto `json:"sampleList"`
	PageInfo   PageInfo    `json:"pageInfo"`
}

type ReviewDto struct {
	ReviewNum   int       `json:"reviewNum"`
	UserID      string    `json:"userId" validate:"required"`
	CompanyName string    `json:"companyName" validate:"max=100"`
	Type        string    `json:"type" validate:"max=30"`
	Style       string    `json:"style" validate:"max=30"`
	Size        int       `json:"size" validate:"min=0"`
	Location    string    `json:"location" validate:"max=50"`
	ImageNums   string    `json:"imageNums"`
	Content     string    `json:"content" validate:"required"`
	CreatedAt   time.Time `json:"createdAt"`
	InteriorNum int       `json:"interiorNum" validate:"required"`
}

func (d *ReviewDto) ToEntity() *models.InteriorReview {
	return &models.InteriorReview{
		ReviewNum:   d.ReviewNum,
		UserID:      d.UserID,
		InteriorNum: d.InteriorNum,
		CompanyName: d.CompanyName,
		Type:        d.Type,
		Style:       d.Style,
		Size:        d.Size,
		Location:    d.Location,
		ImageNums:   d.ImageNums,
		Content:     d.Content,
	}
}

func FromReview(r *models.InteriorReview) ReviewDto {
	return ReviewDto{
		ReviewNum:   r.ReviewNum,
		UserID:      r.UserID,
		CompanyName: r.CompanyName,
		Type:        r.Type,
		Style:       r.Style,
		Size:        r.Size,
		Location:    r.Location,
		ImageNums:   r.ImageNums,
		Content:     r.Content,
		CreatedAt:   r.CreatedAt,
		InteriorNum: r.InteriorNum,
	}
}

type InteriorRequestDto struct {
	RequestNum  int       `json:"requestNum"`
	UserID      string    `json:"userId"`
	InteriorNum int       `json:"interiorNum"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Type        string    `json:"type"`
	Size        int       `json:"size"`
	Address     string    `json:"address"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromInteriorRequest(r *models.InteriorRequest) InteriorRequestDto {
	return InteriorRequestDto{
		RequestNum:  r.RequestNum,
		UserID:      r.UserID,
		InteriorNum: r.InteriorNum,
		Name:        r.Name,
		Phone:       r.Phone,
		Type:        r.Type,
		Size:        r.Size,
		Address:     r.Address,
		Content:     r.Content,
		CreatedAt:   r.CreatedAt,
	}
}
