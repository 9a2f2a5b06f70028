// Package events publishes notification events to a message broker.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// NotificationEvent is published once for every newly stored notification.
type NotificationEvent struct {
	NotificationID uint      `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Message        string    `json:"message"`
	UniqueKey      string    `json:"unique_key"`
	CreatedAt      time.Time `json:"created_at"`
}

func (e NotificationEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

type Publisher interface {
	Publish(ctx context.Context, e NotificationEvent) error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, NotificationEvent) error { return nil }
