package apperrors

import "net/http"

// ErrorCode - тип для кодов ошибок
type ErrorCode string

const (
	// Ошибки клиента
	CodeInvalidInput     ErrorCode = "INVALID_INPUT"
	CodeInvalidParameter ErrorCode = "INVALID_PARAMETER"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"

	// Системные ошибки
	CodeStorageFailure       ErrorCode = "STORAGE_FAILURE"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"

	// Аутентификация и авторизация
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
)

// statusByCode - таблица соответствия вида ошибки и HTTP статуса
var statusByCode = map[ErrorCode]int{
	CodeInvalidInput:         http.StatusBadRequest,
	CodeInvalidParameter:     http.StatusBadRequest,
	CodeNotFound:             http.StatusNotFound,
	CodeConflict:             http.StatusConflict,
	CodeStorageFailure:       http.StatusInternalServerError,
	CodeExternalServiceError: http.StatusBadGateway,
	CodeInternalError:        http.StatusInternalServerError,
	CodeUnauthorized:         http.StatusUnauthorized,
	CodeForbidden:            http.StatusForbidden,
	CodeInvalidCredentials:   http.StatusUnauthorized,
	CodeInvalidToken:         http.StatusUnauthorized,
}

// StatusFor возвращает HTTP статус для кода ошибки.
// Неизвестный код считается внутренней ошибкой.
func StatusFor(code ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
