package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// DBContextKey - ключ, по которому хранится *gorm.DB (пул или транзакция)
	DBContextKey = contextKey("db")
	// PrincipalIDKey - id пользователя или компании из JWT
	PrincipalIDKey = contextKey("principal_id")
	// RoleKey - роль из JWT
	RoleKey = contextKey("role")
	// PrincipalTypeKey - "user" или "company"
	PrincipalTypeKey = contextKey("principal_type")
)
