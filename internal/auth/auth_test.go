package auth

import (
	"strings"
	"testing"
	"time"

	"geekku_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret-1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-1", hash)
	assert.True(t, CheckPasswordHash("secret-1", hash))
	assert.False(t, CheckPasswordHash("secret-2", hash))

	// соль: одинаковый пароль дает разные хеши
	other, err := HashPassword("secret-1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestPasswordTooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestCheckMissingAccountNeverMatches(t *testing.T) {
	assert.False(t, CheckMissingAccount(""))
	assert.False(t, CheckMissingAccount("geekku-missing-account"))
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Generate("company-1", models.RoleCompany, models.PrincipalCompany)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "company-1", claims.PrincipalID)
	assert.Equal(t, models.RoleCompany, claims.Role)
	assert.True(t, IsCompany(claims))
	assert.False(t, IsAdmin(claims))
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("a", time.Hour).Generate("u", models.RoleUser, models.PrincipalUser)
	require.NoError(t, err)

	_, err = NewTokenManager("b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("s", time.Hour)
	m.ttl = -time.Minute

	token, err := m.Generate("u", models.RoleUser, models.PrincipalUser)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(models.RoleCompany, PermEstateWrite))
	assert.False(t, HasPermission(models.RoleUser, PermEstateWrite))
	assert.True(t, HasPermission(models.RoleUser, PermBookmark))
	assert.True(t, HasPermission(models.RoleAdmin, PermSystemAdmin))
	assert.False(t, HasPermission(models.Role("ROLE_GUEST"), PermBookmark))
}
