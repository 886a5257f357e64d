package postgres

import (
	"context"
	"time"

	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/domain/repository"
	"workgroup/internal/errors"
	"workgroup/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
var (
	deviceDuplicates     = map[string]error{deviceUIDIndex: repository.ErrDuplicateDevice}
	assignmentDuplicates = map[string]error{deviceUserPairIndex: repository.ErrDuplicateAssignment}
)

type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Create persists a new device. A taken device_uid maps to ErrDuplicateDevice.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if mapped, ok := uniqueViolation(err, deviceDuplicates); ok {
			return mapped
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid working group reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindByID(ctx context.Context, id int64) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// ListByGroup retrieves all devices of a group, active or not.
func (repo *deviceRepository) ListByGroup(ctx context.Context, groupID int64) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("working_group_id = ?", groupID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by group")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

func (repo *deviceRepository) Update(ctx context.Context, device *entity.Device) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", device.ID).
		Updates(map[string]any{
			"device_uid":  device.DeviceUID,
			"alias":       device.Alias,
			"description": device.Description,
			"is_active":   device.IsActive,
		})

	if result.Error != nil {
		if mapped, ok := uniqueViolation(result.Error, deviceDuplicates); ok {
			return mapped
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// TouchHeartbeat updates last_seen and last_ip_address without bumping updated_at.
func (repo *deviceRepository) TouchHeartbeat(ctx context.Context, id int64, seenAt time.Time, ipAddress string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"last_seen":       seenAt,
			"last_ip_address": ipAddress,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record device heartbeat")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// CreateAssignment links a user to a device. idx_device_users_pair rejects a second link.
func (repo *deviceRepository) CreateAssignment(ctx context.Context, assignment *entity.DeviceUser) error {
	assignmentM := &model.DeviceUserModel{
		DeviceID: assignment.DeviceID,
		UserID:   assignment.UserID,
		IsActive: true,
	}

	if err := repo.db.WithContext(ctx).Create(assignmentM).Error; err != nil {
		if mapped, ok := uniqueViolation(err, assignmentDuplicates); ok {
			return mapped
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid device or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device assignment")
	}

	assignment.ID = assignmentM.ID
	assignment.IsActive = assignmentM.IsActive
	assignment.CreatedAt = assignmentM.CreatedAt

	return nil
}

func (repo *deviceRepository) FindAssignmentByID(ctx context.Context, id int64) (*entity.DeviceUser, error) {
	var assignmentM model.DeviceUserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&assignmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssignmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find device assignment")
	}

	return toDeviceUserDomain(&assignmentM), nil
}

func (repo *deviceRepository) ListAssignmentsByDevice(ctx context.Context, deviceID int64) ([]*entity.DeviceUser, error) {
	var assignmentModels []*model.DeviceUserModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at ASC").
		Find(&assignmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list device assignments")
	}

	assignments := make([]*entity.DeviceUser, 0, len(assignmentModels))
	for _, assignmentM := range assignmentModels {
		assignments = append(assignments, toDeviceUserDomain(assignmentM))
	}

	return assignments, nil
}

// DeleteAssignment removes the association row.
func (repo *deviceRepository) DeleteAssignment(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeviceUserModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device assignment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssignmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:             data.ID,
		WorkingGroupID: data.WorkingGroupID,
		DeviceUID:      data.DeviceUID,
		Alias:          data.Alias,
		Description:    data.Description,
		IsActive:       data.IsActive,
		LastSeen:       data.LastSeen,
		LastIPAddress:  data.LastIPAddress,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:             data.ID,
		WorkingGroupID: data.WorkingGroupID,
		DeviceUID:      data.DeviceUID,
		Alias:          data.Alias,
		Description:    data.Description,
		IsActive:       data.IsActive,
		LastSeen:       data.LastSeen,
		LastIPAddress:  data.LastIPAddress,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toDeviceUserDomain(data *model.DeviceUserModel) *entity.DeviceUser {
	return &entity.DeviceUser{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		UserID:    data.UserID,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
	}
}
