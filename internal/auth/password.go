package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost - стоимость bcrypt для паролей пользователей и компаний
const PasswordCost = bcrypt.DefaultCost

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// HashPassword создает bcrypt хеш пароля.
// Пароли длиннее 72 байт bcrypt отклоняет (bcrypt.ErrPasswordTooLong).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash проверяет пароль против хеша
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckMissingAccount тратит на сравнение столько же, сколько CheckPasswordHash,
// когда аккаунта с таким логином нет. Всегда false.
func CheckMissingAccount(password string) bool {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("geekku-missing-account"), PasswordCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
	return false
}
