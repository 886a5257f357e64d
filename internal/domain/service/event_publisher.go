package service

import (
	"context"
	"time"
)

// NotificationEvent mirrors an ingested notification to systems outside this process.
type NotificationEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	Event          string    `json:"event"`                // One of the Event* constants.
	NotificationID int64     `json:"notification_id"`
	WorkingGroupID int64     `json:"working_group_id"`
	Name           string    `json:"name"`
	Amount         float64   `json:"amount"`
	SecurityCode   string    `json:"security_code"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message broker.
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event.
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
