package usecase

import (
	"context"
	"time"

	"workgroup/internal/domain/entity"
)

// SubmitEventInput is a payment event captured by a client.
type SubmitEventInput struct {
	RawNotification       string    `json:"raw_notification" validate:"required"`
	Name                  string    `json:"name" validate:"required,max=255"`
	Amount                float64   `json:"amount" validate:"gte=0"`
	SecurityCode          string    `json:"security_code" validate:"max=255"`
	NotificationTimestamp time.Time `json:"notification_timestamp" validate:"required"`
}

// UpdateStatusInput moves a notification through its lifecycle.
type UpdateStatusInput struct {
	Status entity.NotificationStatus `json:"status" validate:"required,oneof=received sent"`
}

// RegisterDeliveryInput records that a notification reached a (device, user) pair.
type RegisterDeliveryInput struct {
	NotificationID int64 `json:"notification_id" validate:"required,gt=0"`
	DeviceID       int64 `json:"device_id" validate:"required,gt=0"`
	UserID         int64 `json:"user_id" validate:"required,gt=0"`
}

// Page is an offset window over a list.
type Page struct {
	Skip  int
	Limit int
}

// NotificationUsecase ingests notifications and records their deliveries.
type NotificationUsecase interface {
	// SubmitEvent stores the event under the caller's active tenant, then fans it out.
	SubmitEvent(ctx context.Context, principal entity.Principal, input *SubmitEventInput) (*entity.Notification, error)
	UpdateStatus(ctx context.Context, principal entity.Principal, notificationID int64, status entity.NotificationStatus) (*entity.Notification, error)
	// RegisterDelivery inserts the delivery record; a second registration of the same triple fails as a duplicate.
	RegisterDelivery(ctx context.Context, principal entity.Principal, input *RegisterDeliveryInput) (*entity.DeliveryRecord, error)
	GetNotification(ctx context.Context, principal entity.Principal, notificationID int64) (*entity.Notification, error)
	ListForGroup(ctx context.Context, principal entity.Principal, groupID int64, page Page) ([]*entity.Notification, error)
	ListDeliveries(ctx context.Context, principal entity.Principal, notificationID int64) ([]*entity.DeliveryRecord, error)
}
