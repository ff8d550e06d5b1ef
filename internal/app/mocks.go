package app

import (
	"context"

	"geekku_backend/internal/logger"
)

// LoggingCodeSender пишет код в лог вместо отправки. Для локальной разработки.
type LoggingCodeSender struct {
	Channel string
}

func (s LoggingCodeSender) SendCode(ctx context.Context, to string, code int) error {
	logger.CtxInfo(ctx, "Certification code (not sent)", "channel", s.Channel, "to", to, "code", code)
	return nil
}
