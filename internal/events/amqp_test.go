package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"geekku_backend/internal/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange string
	key      string
	msgs     []amqp.Publishing
	err      error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchange = exchange
	f.key = key
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeChannel) Close() error { return nil }

func TestAMQPPublisher_PublishesJSON(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch, exchange: "geekku.events"}

	ctx := logger.WithRequestID(context.Background(), "req-1")
	err := p.Publish(ctx, EstateCreated, EstateEvent{EstateNum: 7, CompanyID: "c-1"})
	require.NoError(t, err)

	require.Len(t, ch.msgs, 1)
	assert.Equal(t, "geekku.events", ch.exchange)
	assert.Equal(t, EstateCreated, ch.key)

	msg := ch.msgs[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "req-1", msg.CorrelationId)
	assert.NotEmpty(t, msg.MessageId)

	var got EstateEvent
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, 7, got.EstateNum)
	assert.Equal(t, "c-1", got.CompanyID)
}

func TestAMQPPublisher_PublishError(t *testing.T) {
	p := &AMQPPublisher{ch: &fakeChannel{err: errors.New("closed")}, exchange: "x"}

	err := p.Publish(context.Background(), EstateDeleted, EstateEvent{EstateNum: 1})
	assert.Error(t, err)
}

func TestPublishOrLog_SwallowsErrors(t *testing.T) {
	p := &AMQPPublisher{ch: &fakeChannel{err: errors.New("closed")}, exchange: "x"}

	assert.NotPanics(t, func() {
		PublishOrLog(context.Background(), p, CommunityCreated, CommunityEvent{CommunityNum: 1})
		PublishOrLog(context.Background(), nil, CommunityCreated, nil)
	})
}

func TestNewAMQPPublisher_RequiresExchange(t *testing.T) {
	_, err := NewAMQPPublisher("amqp://localhost", "")
	assert.Error(t, err)
}
