package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/lmittmann/tint"
)

var log *slog.Logger

// Options - настройки логгера
type Options struct {
	// Env: "development" или "production"
	Env string
	// Writer - куда писать логи. По умолчанию os.Stdout
	Writer io.Writer
	// Fluent - если задан, каждая запись дублируется в Fluent Bit
	Fluent *fluent.Fluent
}

// Init инициализирует глобальный логгер
func Init(opts Options) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	level := slog.LevelInfo
	var handler slog.Handler

	if opts.Env == "development" {
		// Development: цветной текстовый формат
		level = slog.LevelDebug
		handler = tint.NewHandler(opts.Writer, &tint.Options{
			Level:      level,
			AddSource:  true,
			TimeFormat: "2006-01-02 15:04:05",
		})
	} else {
		// Production: JSON формат для парсинга
		handler = slog.NewJSONHandler(opts.Writer, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})
	}

	if opts.Fluent != nil {
		handler = newFanoutHandler(handler, newFluentHandler(opts.Fluent, level))
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger возвращает глобальный логгер
func GetLogger() *slog.Logger {
	if log == nil {
		Init(Options{Env: "development"})
	}
	return log
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal логирует ошибку и завершает программу
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With создает новый логгер с дополнительными полями
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}

// WithError создает логгер с полем error
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}

// DBLog логирует database операцию
func DBLog(operation string, duration time.Duration, err error) {
	fields := []any{
		"operation", operation,
		"duration_ms", duration.Milliseconds(),
	}

	if err != nil {
		fields = append(fields, "error", err.Error())
		GetLogger().Error("database operation failed", fields...)
	} else {
		GetLogger().Debug("database operation", fields...)
	}
}
