package dto

import (
	"time"

	"geekku_backend/internal/models"
)

type JoinUserRequest struct {
	Username string `json:"username" validate:"required,min=4,max=50"`
	Password string `json:"password" validate:"required,min=4,max=100"`
	Name     string `json:"name" validate:"required,max=50"`
	Nickname string `json:"nickname" validate:"required,max=50"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func (r *JoinUserRequest) ToEntity() *models.User {
	return &models.User{
		Username: r.Username,
		Name:     r.Name,
		Nickname: r.Nickname,
		Phone:    r.Phone,
		Email:    r.Email,
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Type     string `json:"type" validate:"omitempty,oneof=user company"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	ID    string `json:"id"`
	Type  string `json:"type"`
}

type UserDto struct {
	UserID       string    `json:"userId"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Nickname     string    `json:"nickname"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Provider     string    `json:"provider,omitempty"`
	ProfileImage string    `json:"profileImageStr,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromUser(u *models.User) UserDto {
	return UserDto{
		UserID:       u.UserID,
		Username:     u.Username,
		Name:         u.Name,
		Nickname:     u.Nickname,
		Phone:        u.Phone,
		Email:        u.Email,
		Role:         string(u.Role),
		Provider:     u.Provider,
		ProfileImage: EncodeImage(u.ProfileImage),
		CreatedAt:    u.CreatedAt,
	}
}
