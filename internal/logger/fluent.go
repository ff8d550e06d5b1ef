package logger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// FluentConfig хранит настройки подключения к Fluent Bit
type FluentConfig struct {
	Host      string
	Port      int
	TagPrefix string
}

// NewFluentClient создает клиента Fluent Bit. Пинга нет: ошибки
// соединения появятся при первой отправке.
func NewFluentClient(cfg FluentConfig) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, fmt.Errorf("fluent tag prefix is required")
	}
	client, err := fluent.New(fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		TagPrefix:  cfg.TagPrefix,
		Async:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluent logger: %w", err)
	}
	return client, nil
}

// poster - то, что нужно от fluent клиента (подменяется в тестах)
type poster interface {
	Post(tag string, message interface{}) error
}

// fluentHandler - slog.Handler, отправляющий записи в Fluent Bit как map
type fluentHandler struct {
	client poster
	level  slog.Leveler
	attrs  []slog.Attr
	prefix string
}

func newFluentHandler(client poster, level slog.Leveler) *fluentHandler {
	return &fluentHandler{client: client, level: level}
}

func (h *fluentHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *fluentHandler) Handle(_ context.Context, r slog.Record) error {
	record := make(map[string]interface{}, r.NumAttrs()+len(h.attrs)+2)
	record["msg"] = r.Message
	record["time"] = r.Time.Format("2006-01-02T15:04:05.000Z07:00")

	for _, a := range h.attrs {
		addAttr(record, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(record, h.prefix, a)
		return true
	})

	return h.client.Post(strings.ToLower(r.Level.String()), record)
}

func (h *fluentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

func (h *fluentHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func addAttr(record map[string]interface{}, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			addAttr(record, prefix+a.Key+".", ga)
		}
		return
	}
	record[prefix+a.Key] = a.Value.Any()
}

// fanoutHandler пишет запись во все обработчики
type fanoutHandler struct {
	handlers []slog.Handler
}

func newFanoutHandler(handlers ...slog.Handler) *fanoutHandler {
	return &fanoutHandler{handlers: handlers}
}

func (f *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		next[i] = h.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: next}
}

func (f *fanoutHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		next[i] = h.WithGroup(name)
	}
	return &fanoutHandler{handlers: next}
}
