package testutil

import (
	"fmt"
	"testing"
	"time"

	"geekku_backend/database"
	"geekku_backend/internal/auth"
	"geekku_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB открывает отдельную in-memory sqlite и накатывает схему.
// Одно соединение: sqlite сериализует запись, а тесты гонок не ловят "database is locked".
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := database.Open(database.Options{Driver: "sqlite", DSN: dsn, MaxOpenConns: 1})
	require.NoError(t, err, "open test db")
	require.NoError(t, database.AutoMigrate(db), "migrate test db")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateCompany создает компанию; пароль хешируется, если задан в открытом виде
func CreateCompany(t *testing.T, db *gorm.DB, c *models.Company) *models.Company {
	t.Helper()
	if c.Username == "" {
		c.Username = "company_" + uuid.NewString()[:8]
	}
	if c.Type == "" {
		c.Type = models.CompanyTypeEstate
	}
	if c.Role == "" {
		c.Role = models.RoleCompany
	}
	c.Password = hashIfPlain(t, c.Password)
	require.NoError(t, db.Create(c).Error, "create company")
	return c
}

func CreateUser(t *testing.T, db *gorm.DB, u *models.User) *models.User {
	t.Helper()
	if u.Username == "" {
		u.Username = "user_" + uuid.NewString()[:8]
	}
	if u.Nickname == "" {
		u.Nickname = u.Username
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	u.Password = hashIfPlain(t, u.Password)
	require.NoError(t, db.Create(u).Error, "create user")
	return u
}

func CreateEstate(t *testing.T, db *gorm.DB, e *models.Estate) *models.Estate {
	t.Helper()
	if e.Title == "" {
		e.Title = "estate"
	}
	require.NoError(t, db.Create(e).Error, "create estate")
	return e
}

func CreateCommunity(t *testing.T, db *gorm.DB, c *models.Community) *models.Community {
	t.Helper()
	if c.Title == "" {
		c.Title = "community"
	}
	require.NoError(t, db.Create(c).Error, "create community")
	return c
}

func CreateInterior(t *testing.T, db *gorm.DB, i *models.Interior) *models.Interior {
	t.Helper()
	require.NoError(t, db.Create(i).Error, "create interior")
	return i
}

func CreateSample(t *testing.T, db *gorm.DB, s *models.InteriorSample) *models.InteriorSample {
	t.Helper()
	require.NoError(t, db.Create(s).Error, "create sample")
	return s
}

// At - фиксированное время создания для проверок сортировки
func At(minutes int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(minutes) * time.Minute)
}

func StrPtr(s string) *string { return &s }

func IntPtr(i int) *int { return &i }

func hashIfPlain(t *testing.T, password string) string {
	if password == "" || len(password) == 60 {
		return password
	}
	hash, err := auth.HashPassword(password)
	require.NoError(t, err, "hash password")
	return hash
}
