package repository

import (
	"context"

	"workgroup/internal/domain/entity"
	"workgroup/internal/errors"
)

var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrDuplicateDelivery is returned when a delivery record already exists for the
	// (notification, device, user) triple.
	ErrDuplicateDelivery = errors.New("delivery record already exists")
)

// NotificationRepository persists ingested notifications and their delivery records.
type NotificationRepository interface {
	// Create persists a new notification and fills in its ID and CreatedAt.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by ID.
	FindByID(ctx context.Context, id int64) (*entity.Notification, error)

	// ListByGroup retrieves the notifications of a group, newest first.
	ListByGroup(ctx context.Context, groupID int64, offset, limit int) ([]*entity.Notification, error)

	// UpdateStatus sets the status of a notification.
	UpdateStatus(ctx context.Context, id int64, status entity.NotificationStatus) error

	// CreateDeliveryRecord inserts a delivery record. The store enforces uniqueness of the
	// (notification, device, user) triple; a violation returns ErrDuplicateDelivery.
	CreateDeliveryRecord(ctx context.Context, record *entity.DeliveryRecord) error

	// ListDeliveryRecords retrieves the delivery records of a notification.
	ListDeliveryRecords(ctx context.Context, notificationID int64) ([]*entity.DeliveryRecord, error)
}
