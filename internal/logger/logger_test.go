package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoster struct {
	mu    sync.Mutex
	tags  []string
	posts []map[string]interface{}
}

func (p *fakePoster) Post(tag string, message interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tags = append(p.tags, tag)
	p.posts = append(p.posts, message.(map[string]interface{}))
	return nil
}

func TestFromContextAddsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Env: "production", Writer: &buf})

	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "user-9")
	CtxInfo(ctx, "estate created", "estate_num", 7)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "user-9", line["user_id"])
	assert.Equal(t, float64(7), line["estate_num"])
}

func TestCtxWithErrorAcceptsNil(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Env: "production", Writer: &buf})

	ctx := WithRequestID(context.Background(), "req-2")
	CtxWithError(ctx, "no error", nil)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-2", line["request_id"])
	assert.NotContains(t, line, "error")
	assert.Empty(t, GetUserID(ctx))
}

func TestFluentHandlerPostsRecords(t *testing.T) {
	fp := &fakePoster{}
	var buf bytes.Buffer
	handler := newFanoutHandler(slog.NewJSONHandler(&buf, nil), newFluentHandler(fp, slog.LevelInfo))
	l := slog.New(handler).With("service", "geekku").WithGroup("http")

	l.Info("request", "status", 200)
	l.Debug("skipped")

	require.Len(t, fp.posts, 1)
	assert.Equal(t, "info", fp.tags[0])
	assert.Equal(t, "request", fp.posts[0]["msg"])
	assert.Equal(t, "geekku", fp.posts[0]["service"])
	assert.Equal(t, int64(200), fp.posts[0]["http.status"])
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestNewFluentClientRequiresPrefix(t *testing.T) {
	_, err := NewFluentClient(FluentConfig{Host: "127.0.0.1", Port: 24224})
	assert.Error(t, err)
}
