package events

import (
	"context"
	"time"
)

// Ключи маршрутизации доменных событий
const (
	EstateCreated    = "estate.created"
	EstateDeleted    = "estate.deleted"
	CommunityCreated = "community.created"
)

// Publisher публикует доменные события после коммита
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

type EstateEvent struct {
	EstateNum  int       `json:"estateNum"`
	CompanyID  string    `json:"companyId"`
	Type       string    `json:"type,omitempty"`
	Title      string    `json:"title,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type CommunityEvent struct {
	CommunityNum int       `json:"communityNum"`
	UserID       string    `json:"userId"`
	Title        string    `json:"title"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// NoopPublisher используется, когда брокер не настроен
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }

func (NoopPublisher) Close() error { return nil }
