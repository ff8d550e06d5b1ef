package auth

import "geekku_backend/internal/models"

// Разрешения на запись по ролям
const (
	PermEstateWrite   = "estate:write"
	PermAnswerWrite   = "answer:write"
	PermCompanyUpdate = "company:write:self"
	PermCommunity     = "community:write"
	PermBookmark      = "bookmark:write"
	PermReviewWrite   = "review:write"
	PermSystemAdmin   = "system:admin"
)

// Permissions список разрешений
var Permissions = map[models.Role][]string{
	models.RoleAdmin: {
		PermEstateWrite,
		PermAnswerWrite,
		PermCompanyUpdate,
		PermCommunity,
		PermBookmark,
		PermReviewWrite,
		PermSystemAdmin,
	},
	models.RoleCompany: {
		PermEstateWrite,
		PermAnswerWrite,
		PermCompanyUpdate,
	},
	models.RoleUser: {
		PermCommunity,
		PermBookmark,
		PermReviewWrite,
	},
}

// HasPermission проверяет есть ли у роли указанное разрешение
func HasPermission(role models.Role, permission string) bool {
	for _, p := range Permissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// IsAdmin проверяет является ли субъект администратором
func IsAdmin(claims *Claims) bool {
	return claims != nil && claims.Role == models.RoleAdmin
}

// IsCompany - токен выдан компании
func IsCompany(claims *Claims) bool {
	return claims != nil && claims.Type == models.PrincipalCompany
}
