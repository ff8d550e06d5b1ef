package repositories

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrEstateNotFound    = errors.New("estate not found")
	ErrCommunityNotFound = errors.New("community not found")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrInteriorNotFound  = errors.New("interior not found")
	ErrTargetNotFound    = errors.New("target not found")
	ErrAuthCodeNotFound  = errors.New("certification code not found")
)

// IsUniqueViolation - нарушение уникального индекса в любом из драйверов
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	// sqlite без транслятора ошибок
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// mapNotFound заменяет gorm.ErrRecordNotFound на доменную ошибку
func mapNotFound(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
