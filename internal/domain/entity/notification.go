// Package entity contains the core business objects of the project.
package entity

import "time"

// NotificationStatus is the lifecycle state of an ingested event.
type NotificationStatus string

const (
	// NotificationStatusReceived is the initial state after ingestion.
	NotificationStatusReceived NotificationStatus = "received"
	// NotificationStatusSent marks an event that was relayed to the group.
	NotificationStatusSent NotificationStatus = "sent"
)

// IsValid checks if the status is a known value.
func (s NotificationStatus) IsValid() bool {
	switch s {
	case NotificationStatusReceived, NotificationStatusSent:
		return true
	default:
		return false
	}
}

// Notification is a payment event captured by a client and stored under one working group.
type Notification struct {
	ID                    int64              `json:"id"`
	WorkingGroupID        int64              `json:"working_group_id"`
	RawNotification       string             `json:"raw_notification"`       // Text exactly as captured.
	Name                  string             `json:"name"`                   // Payer name extracted from the raw text.
	Amount                float64            `json:"amount"`                 // Non-negative amount.
	SecurityCode          string             `json:"security_code"`          // Upstream dedup hint.
	Status                NotificationStatus `json:"status"`                 // received or sent.
	NotificationTimestamp time.Time          `json:"notification_timestamp"` // Client-observed time.
	CreatedAt             time.Time          `json:"created_at"`             // Server-observed time.
}

// DeliveryRecord proves that one delivery of a notification to a (device, user) pair was registered.
// At most one record exists per (notification, device, user).
type DeliveryRecord struct {
	ID             int64     `json:"id"`
	NotificationID int64     `json:"notification_id"`
	DeviceID       int64     `json:"device_id"`
	UserID         int64     `json:"user_id"`
	IsActive       bool      `json:"is_active"`
	SentAt         time.Time `json:"sent_at"`
}
