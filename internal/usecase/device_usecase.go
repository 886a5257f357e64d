package usecase

import (
	"context"

	"workgroup/internal/domain/entity"
)

// CreateDeviceInput registers a device in a working group.
type CreateDeviceInput struct {
	WorkingGroupID int64  `json:"working_group_id" validate:"required,gt=0"`
	DeviceUID      string `json:"device_uid" validate:"required,min=3,max=100"`
	Alias          string `json:"alias" validate:"max=100"`
	Description    string `json:"description" validate:"max=1000"`
}

// UpdateDeviceInput is a partial update of a device.
type UpdateDeviceInput struct {
	Alias       *string `json:"alias,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// AssignUserInput links a user to a device.
type AssignUserInput struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// DeviceUsecase manages devices and their user associations.
type DeviceUsecase interface {
	Create(ctx context.Context, principal entity.Principal, input *CreateDeviceInput) (*entity.Device, error)
	Get(ctx context.Context, principal entity.Principal, deviceID int64) (*entity.Device, error)
	ListByGroup(ctx context.Context, principal entity.Principal, groupID int64) ([]*entity.Device, error)
	Update(ctx context.Context, principal entity.Principal, deviceID int64, input *UpdateDeviceInput) (*entity.Device, error)
	Deactivate(ctx context.Context, principal entity.Principal, deviceID int64) error

	AssignUser(ctx context.Context, principal entity.Principal, deviceID int64, input *AssignUserInput) (*entity.DeviceUser, error)
	AssignedUsers(ctx context.Context, principal entity.Principal, deviceID int64) ([]*entity.DeviceUser, error)
	RemoveAssignment(ctx context.Context, principal entity.Principal, assignmentID int64) error

	// ProvisioningQR returns a PNG provisioning code for the device.
	ProvisioningQR(ctx context.Context, principal entity.Principal, deviceID int64) ([]byte, error)
	// Heartbeat records that the device is alive, as seen from ipAddress.
	Heartbeat(ctx context.Context, principal entity.Principal, deviceID int64, ipAddress string) (*entity.Device, error)
}
