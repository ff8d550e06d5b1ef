package dto

import (
	"time"

	"geekku_backend/internal/models"
)

// JoinCompanyRequest - multipart форма регистрации компании
type JoinCompanyRequest struct {
	Username       string `form:"username" json:"username" validate:"required,min=4,max=50"`
	Password       string `form:"password" json:"password" validate:"required,min=4,max=100"`
	Type           string `form:"type" json:"type" validate:"required,company_type"`
	CompanyName    string `form:"companyName" json:"companyName" validate:"required,max=100"`
	CeoName        string `form:"ceoName" json:"ceoName" validate:"max=50"`
	CompanyNumber  string `form:"companyNumber" json:"companyNumber" validate:"max=20"`
	EstateNumber   string `form:"estateNumber" json:"estateNumber" validate:"max=30"`
	CompanyAddress string `form:"companyAddress" json:"companyAddress"`
	Phone          string `form:"phone" json:"phone" validate:"omitempty,phone"`
	Email          string `form:"email" json:"email" validate:"omitempty,email"`
}

// ToEntity - пароль и роль проставляет сервис
func (r *JoinCompanyRequest) ToEntity() *models.Company {
	return &models.Company{
		Username:       r.Username,
		Type:           models.CompanyType(r.Type),
		CompanyName:    r.CompanyName,
		CeoName:        r.CeoName,
		CompanyNumber:  r.CompanyNumber,
		EstateNumber:   r.EstateNumber,
		CompanyAddress: r.CompanyAddress,
		Phone:          r.Phone,
		Email:          r.Email,
	}
}

type UpdateCompanyRequest struct {
	CompanyName    *string `json:"companyName" validate:"omitempty,max=100"`
	CeoName        *string `json:"ceoName" validate:"omitempty,max=50"`
	CompanyAddress *string `json:"companyAddress"`
	Phone          *string `json:"phone" validate:"omitempty,max=20"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Password       *string `json:"password" validate:"omitempty,min=4,max=100"`
}

// Updates возвращает только заданные поля (пароль хеширует сервис)
func (r *UpdateCompanyRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.CompanyName != nil {
		updates["company_name"] = *r.CompanyName
	}
	if r.CeoName != nil {
		updates["ceo_name"] = *r.CeoName
	}
	if r.CompanyAddress != nil {
		updates["company_address"] = *r.CompanyAddress
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	return updates
}

type CompanyDto struct {
	CompanyID      string    `json:"companyId"`
	Username       string    `json:"username"`
	Type           string    `json:"type"`
	Role           string    `json:"role"`
	CompanyName    string    `json:"companyName"`
	CeoName        string    `json:"ceoName"`
	CompanyNumber  string    `json:"companyNumber"`
	EstateNumber   string    `json:"estateNumber"`
	CompanyAddress string    `json:"companyAddress"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	ProfileImage   string    `json:"profileImageStr,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromCompany(c *models.Company) CompanyDto {
	return CompanyDto{
		CompanyID:      c.CompanyID,
		Username:       c.Username,
		Type:           string(c.Type),
		Role:           string(c.Role),
		CompanyName:    c.CompanyName,
		CeoName:        c.CeoName,
		CompanyNumber:  c.CompanyNumber,
		EstateNumber:   c.EstateNumber,
		CompanyAddress: c.CompanyAddress,
		Phone:          c.Phone,
		Email:          c.Email,
		ProfileImage:   EncodeImage(c.ProfileImage),
		CreatedAt:      c.CreatedAt,
	}
}

// RegistryQuery - параметры поиска брокера в реестре vworld
type RegistryQuery struct {
	BsnmCmpnm string `form:"bsnmCmpnm"` // название офиса
	BrkrNm    string `form:"brkrNm"`    // имя брокера
	Jurirno   string `form:"jurirno"`   // номер регистрации
}
