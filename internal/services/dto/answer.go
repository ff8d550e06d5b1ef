package dto

import (
	"time"

	"geekku_backend/internal/models"
)

// AnswerWriteRequest - ответ компании на заявку (house, onestop, interiorAll)
type AnswerWriteRequest struct {
	TargetNum int    `json:"targetNum" validate:"required,min=1"`
	Content   string `json:"content" validate:"required"`
}

type HouseAnswerRequest struct {
	HouseNum int    `json:"houseNum" validate:"required,min=1"`
	Content  string `json:"content" validate:"required"`
}

func (r *HouseAnswerRequest) ToWrite() *AnswerWriteRequest {
	return &AnswerWriteRequest{TargetNum: r.HouseNum, Content: r.Content}
}

type OnestopAnswerRequest struct {
	OnestopNum int    `json:"onestopNum" validate:"required,min=1"`
	Content    string `json:"content" validate:"required"`
}

func (r *OnestopAnswerRequest) ToWrite() *AnswerWriteRequest {
	return &AnswerWriteRequest{TargetNum: r.OnestopNum, Content: r.Content}
}

type InteriorAllAnswerRequest struct {
	RequestAllNum int    `json:"requestAllNum" validate:"required,min=1"`
	Content       string `json:"content" validate:"required"`
}

func (r *InteriorAllAnswerRequest) ToWrite() *AnswerWriteRequest {
	return &AnswerWriteRequest{TargetNum: r.RequestAllNum, Content: r.Content}
}

// companyInfo - поля компании, которые встраиваются в ответы
type companyInfo struct {
	CompanyID           string `json:"companyId"`
	CompanyName         string `json:"companyName"`
	CompanyPhone        string `json:"companyPhone"`
	CompanyAddress      string `json:"companyAddress,omitempty"`
	CompanyProfileImage string `json:"companyProfileImage,omitempty"`
}

func newCompanyInfo(companyID string, c *models.Company) companyInfo {
	info := companyInfo{CompanyID: companyID}
	if c != nil {
		info.CompanyName = c.CompanyName
		info.CompanyPhone = c.Phone
		info.CompanyAddress = c.CompanyAddress
		info.CompanyProfileImage = EncodeImage(c.ProfileImage)
	}
	return info
}

type HouseAnswerDto struct {
	AnswerHouseNum int       `json:"answerHouseNum"`
	HouseNum       int       `json:"houseNum"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	companyInfo
}

func FromHouseAnswer(a *models.HouseAnswer, c *models.Company) HouseAnswerDto {
	return HouseAnswerDto{
		AnswerHouseNum: a.AnswerHouseNum,
		HouseNum:       a.HouseNum,
		Content:        a.Content,
		CreatedAt:      a.CreatedAt,
		companyInfo:    newCompanyInfo(a.CompanyID, c),
	}
}

type OnestopAnswerDto struct {
	AnswerOnestopNum int       `json:"answerOnestopNum"`
	OnestopNum       int       `json:"onestopNum"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"createdAt"`
	companyInfo
}

func FromOnestopAnswer(a *models.OnestopAnswer, c *models.Company) OnestopAnswerDto {
	return OnestopAnswerDto{
		AnswerOnestopNum: a.AnswerOnestopNum,
		OnestopNum:       a.OnestopNum,
		Content:          a.Content,
		CreatedAt:        a.CreatedAt,
		companyInfo:      newCompanyInfo(a.CompanyID, c),
	}
}

type InteriorAnswerDto struct {
	AnswerAllNum  int       `json:"answerAllNum"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
	RequestAllNum int       `json:"requestAllNum"`
	companyInfo
}

func (d *InteriorAnswerDto) ToEntity() *models.InteriorAllAnswer {
	return &models.InteriorAllAnswer{
		AnswerAllNum:  d.AnswerAllNum,
		RequestAllNum: d.RequestAllNum,
		CompanyID:     d.CompanyID,
		Content:       d.Content,
		CreatedAt:     d.CreatedAt,
	}
}

func FromInteriorAllAnswer(a *models.InteriorAllAnswer, c *models.Company) InteriorAnswerDto {
	return InteriorAnswerDto{
		AnswerAllNum:  a.AnswerAllNum,
		Content:       a.Content,
		CreatedAt:     a.CreatedAt,
		RequestAllNum: a.RequestAllNum,
		companyInfo:   newCompanyInfo(a.CompanyID, c),
	}
}
