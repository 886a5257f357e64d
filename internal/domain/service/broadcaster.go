package service

import (
	"context"
	"time"
)

// Event types pushed to streaming clients.
const (
	EventNotificationCreated       = "notification.created"
	EventNotificationStatusChanged = "notification.status_changed"
	EventDeliveryRegistered        = "delivery.registered"
)

// Event is the envelope of every server-pushed message.
type Event struct {
	Type           string    `json:"event"`
	WorkingGroupID int64     `json:"working_group_id"`
	Data           any       `json:"data"`
	SentAt         time.Time `json:"sent_at"`
}

// BroadcastResult summarizes one fan-out.
type BroadcastResult struct {
	Delivered int
	Failed    int
}

// Broadcaster fans events out to the live connections of a tenant.
type Broadcaster interface {
	// Broadcast sends a pre-serialized message to every connection of the tenant.
	Broadcast(ctx context.Context, tenantID int64, message []byte) BroadcastResult

	// Publish encodes the event and broadcasts it to event.WorkingGroupID.
	Publish(ctx context.Context, event Event) (BroadcastResult, error)
}
