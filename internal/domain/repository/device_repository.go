package repository

import (
	"context"
	"time"

	"workgroup/internal/domain/entity"
	"workgroup/internal/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device with a uid that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
	// ErrAssignmentNotFound is returned when a device-user association is not found.
	ErrAssignmentNotFound = errors.New("device assignment not found")
	// ErrDuplicateAssignment is returned when the user is already linked to the device.
	ErrDuplicateAssignment = errors.New("device assignment already exists")
)

// DeviceRepository defines the interface for device and device-user association persistence.
type DeviceRepository interface {
	// Create persists a new device.
	Create(ctx context.Context, device *entity.Device) error

	// FindByID retrieves a device by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Device, error)

	// ListByGroup retrieves all devices of a working group (including inactive).
	ListByGroup(ctx context.Context, groupID int64) ([]*entity.Device, error)

	// Update overwrites the mutable fields of a device.
	Update(ctx context.Context, device *entity.Device) error

	// TouchHeartbeat records the time and address of the last device contact.
	TouchHeartbeat(ctx context.Context, id int64, seenAt time.Time, ipAddress string) error

	// CreateAssignment links a user to a device.
	CreateAssignment(ctx context.Context, assignment *entity.DeviceUser) error

	// FindAssignmentByID retrieves an association by its ID.
	FindAssignmentByID(ctx context.Context, id int64) (*entity.DeviceUser, error)

	// ListAssignmentsByDevice retrieves the associations of a device.
	ListAssignmentsByDevice(ctx context.Context, deviceID int64) ([]*entity.DeviceUser, error)

	// DeleteAssignment removes an association.
	DeleteAssignment(ctx context.Context, id int64) error
}
