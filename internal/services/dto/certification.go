package dto

type SendCodeRequest struct {
	Phone string `json:"phone" validate:"required_without=Email,omitempty,phone"`
	Email string `json:"email" validate:"required_without=Phone,omitempty,email"`
}

type CheckCodeRequest struct {
	Phone            string `json:"phone" validate:"required_without=Email,omitempty,phone"`
	Email            string `json:"email" validate:"required_without=Phone,omitempty,email"`
	CertificationNum int    `json:"certificationNum" validate:"required,min=100000,max=999999"`
}
