package logger

import (
	"context"
	"log/slog"
)

type fieldsKey struct{}

// requestFields - поля запроса, которые попадают в каждую Ctx* запись
type requestFields struct {
	requestID string
	userID    string
}

func fieldsFrom(ctx context.Context) requestFields {
	if ctx == nil {
		return requestFields{}
	}
	f, _ := ctx.Value(fieldsKey{}).(requestFields)
	return f
}

// WithRequestID кладет id запроса в context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	f := fieldsFrom(ctx)
	f.requestID = requestID
	return context.WithValue(ctx, fieldsKey{}, f)
}

// WithUserID кладет id principal (пользователь или компания) в context
func WithUserID(ctx context.Context, userID string) context.Context {
	f := fieldsFrom(ctx)
	f.userID = userID
	return context.WithValue(ctx, fieldsKey{}, f)
}

func GetRequestID(ctx context.Context) string { return fieldsFrom(ctx).requestID }

func GetUserID(ctx context.Context) string { return fieldsFrom(ctx).userID }

// FromContext - глобальный логгер с request_id и user_id, если они есть
func FromContext(ctx context.Context) *slog.Logger {
	l := GetLogger()
	f := fieldsFrom(ctx)

	attrs := make([]any, 0, 2)
	if f.requestID != "" {
		attrs = append(attrs, slog.String("request_id", f.requestID))
	}
	if f.userID != "" {
		attrs = append(attrs, slog.String("user_id", f.userID))
	}
	if len(attrs) == 0 {
		return l
	}
	return l.With(attrs...)
}

func CtxDebug(ctx context.Context, msg string, args ...any) { FromContext(ctx).Debug(msg, args...) }

func CtxInfo(ctx context.Context, msg string, args ...any) { FromContext(ctx).Info(msg, args...) }

func CtxWarn(ctx context.Context, msg string, args ...any) { FromContext(ctx).Warn(msg, args...) }

func CtxError(ctx context.Context, msg string, args ...any) { FromContext(ctx).Error(msg, args...) }

// CtxWithError пишет Error с полем error; nil err допустим
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{slog.String("error", err.Error())}, args...)
	}
	FromContext(ctx).Error(msg, args...)
}
