package apperrors

/*
Фабрики для видов ошибок, которые возвращают сервисы.
Хендлер сам решает, какое сообщение увидит клиент.
*/

// InvalidInput - неверное значение в запросе (тип компании, пустой файл, id)
func InvalidInput(domain, message string) *AppError {
	return New(CodeInvalidInput, domain, message)
}

// InvalidParameter - параметр запроса не удалось разобрать (например, page=abc)
func InvalidParameter(name string) *AppError {
	return New(CodeInvalidParameter, "request", "Invalid parameter: "+name).
		WithDetails(map[string]string{"parameter": name})
}

// NotFound оборачивает ошибку репозитория в 404
func NotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message)
}

// Conflict - гонка по уникальному ключу
func Conflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message)
}

// StorageFailure - ошибка записи в БД или файловое хранилище
func StorageFailure(err error, domain, message string) *AppError {
	return Wrap(err, CodeStorageFailure, domain, message)
}

// ExternalFailure - ошибка внешнего сервиса (реестр, SMS, почта)
func ExternalFailure(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message)
}

// InternalError оборачивает неизвестную системную ошибку
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error")
}

// ValidationError создает ошибку валидации с деталями
func ValidationError(details interface{}) *AppError {
	return New(CodeInvalidInput, "validation", "Validation failed").WithDetails(details)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, "auth", message)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeInvalidInput, "request", message)
}

var ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid username or password")

var ErrInvalidToken = New(CodeInvalidToken, "auth", "Invalid or expired token")
