package models

import "strings"

type Role string
type CompanyType string
type SortOrder string
type PrincipalType string

const (
	RoleUser    Role = "ROLE_USER"
	RoleCompany Role = "ROLE_COMPANY"
	RoleAdmin   Role = "ROLE_ADMIN"

	CompanyTypeEstate   CompanyType = "estate"
	CompanyTypeInterior CompanyType = "interior"

	SortLatest SortOrder = "latest"
	SortOldest SortOrder = "oldest"

	PrincipalUser    PrincipalType = "user"
	PrincipalCompany PrincipalType = "company"
)

// Valid - тип компании из закрытого набора {estate, interior}
func (t CompanyType) Valid() bool {
	switch t {
	case CompanyTypeEstate, CompanyTypeInterior:
		return true
	default:
		return false
	}
}

// ParseSortOrder сравнивает без учета регистра. Все, что не latest/oldest,
// дает пустой порядок (порядок по первичному ключу).
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortLatest:
		return SortLatest
	case SortOldest:
		return SortOldest
	default:
		return ""
	}
}
