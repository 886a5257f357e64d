package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "workgroup/internal/delivery/context"
	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/domain/repository"
	"workgroup/internal/domain/service"
	"workgroup/internal/errors"
	"workgroup/internal/usecase"

	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	txManager  repository.TransactionManager
	groupRepo  repository.WorkingGroupRepository
	userRepo   repository.UserRepository
	deviceRepo repository.DeviceRepository
	qrCode     service.QRCodeService
	logger     *slog.Logger
	now        func() time.Time
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	GroupRepo  repository.WorkingGroupRepository
	UserRepo   repository.UserRepository
	DeviceRepo repository.DeviceRepository
	QRCode     service.QRCodeService
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		txManager:  params.TxManager,
		groupRepo:  params.GroupRepo,
		userRepo:   params.UserRepo,
		deviceRepo: params.DeviceRepo,
		qrCode:     params.QRCode,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a device in the admin's working group.
func (srv *deviceService) Create(ctx context.Context, principal entity.Principal, input *usecase.CreateDeviceInput) (*entity.Device, error) {
	if err := requireTenantAdmin(principal, input.WorkingGroupID); err != nil {
		return nil, err
	}
	if err := requireActiveGroup(ctx, srv.groupRepo, input.WorkingGroupID); err != nil {
		return nil, err
	}

	device := &entity.Device{
		WorkingGroupID: input.WorkingGroupID,
		DeviceUID:      input.DeviceUID,
		Alias:          input.Alias,
		Description:    input.Description,
		IsActive:       true,
	}
	if err := srv.deviceRepo.Create(ctx, device); err != nil {
		return nil, translate(err, "failed to create device")
	}

	srv.log(ctx).Info("Device registered",
		slog.Int64("deviceID", device.ID),
		slog.String("deviceUID", device.DeviceUID),
		slog.Int64("groupID", device.WorkingGroupID),
	)

	return device, nil
}

// Get returns a device of the caller's tenant.
func (srv *deviceService) Get(ctx context.Context, principal entity.Principal, deviceID int64) (*entity.Device, error) {
	return srv.findForMember(ctx, principal, deviceID)
}

// ListByGroup lists the devices of the caller's tenant.
func (srv *deviceService) ListByGroup(ctx context.Context, principal entity.Principal, groupID int64) ([]*entity.Device, error) {
	if err := requireTenantMember(principal, groupID); err != nil {
		return nil, err
	}

	devices, err := srv.deviceRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, translate(err, "failed to list devices")
	}

	return devices, nil
}

// Update applies a partial update to a device.
func (srv *deviceService) Update(ctx context.Context, principal entity.Principal, deviceID int64, input *usecase.UpdateDeviceInput) (*entity.Device, error) {
	device, err := srv.findForAdmin(ctx, principal, deviceID)
	if err != nil {
		return nil, err
	}

	setIfPresent(&device.Alias, input.Alias)
	setIfPresent(&device.Description, input.Description)
	setIfPresent(&device.IsActive, input.IsActive)
	if err := srv.deviceRepo.Update(ctx, device); err != nil {
		return nil, translate(err, "failed to update device")
	}

	return device, nil
}

// Deactivate soft-deletes a device.
func (srv *deviceService) Deactivate(ctx context.Context, principal entity.Principal, deviceID int64) error {
	device, err := srv.findForAdmin(ctx, principal, deviceID)
	if err != nil {
		return err
	}
	if !device.IsActive {
		return nil
	}

	device.IsActive = false
	if err := srv.deviceRepo.Update(ctx, device); err != nil {
		return translate(err, "failed to deactivate device")
	}

	srv.log(ctx).Info("Device deactivated", slog.Int64("deviceID", deviceID))

	return nil
}

// AssignUser links a user to a device and makes sure the user is a member of the device's group.
func (srv *deviceService) AssignUser(
	ctx context.Context,
	principal entity.Principal,
	deviceID int64,
	input *usecase.AssignUserInput,
) (*entity.DeviceUser, error) {
	device, err := srv.findForAdmin(ctx, principal, deviceID)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, translate(err, "failed to find user")
	}

	assignment := &entity.DeviceUser{DeviceID: device.ID, UserID: user.ID, IsActive: true}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.MembershipRepo().Ensure(ctx, &entity.Membership{
			WorkingGroupID: device.WorkingGroupID,
			UserID:         user.ID,
			Role:           entity.RoleMember,
			IsActive:       true,
		}); err != nil {
			return errors.Wrap(err, "failed to ensure membership")
		}

		return errors.Wrap(repoFactory.DeviceRepo().CreateAssignment(ctx, assignment), "failed to create assignment")
	})
	if err != nil {
		return nil, translate(err, "failed to assign user to device")
	}

	srv.log(ctx).Info("User assigned to device", slog.Int64("deviceID", device.ID), slog.Int64("userID", user.ID))

	return assignment, nil
}

// AssignedUsers lists the associations of a device.
func (srv *deviceService) AssignedUsers(ctx context.Context, principal entity.Principal, deviceID int64) ([]*entity.DeviceUser, error) {
	if _, err := srv.findForMember(ctx, principal, deviceID); err != nil {
		return nil, err
	}

	assignments, err := srv.deviceRepo.ListAssignmentsByDevice(ctx, deviceID)
	if err != nil {
		return nil, translate(err, "failed to list assignments")
	}

	return assignments, nil
}

// RemoveAssignment deletes an association of a device in the admin's tenant.
func (srv *deviceService) RemoveAssignment(ctx context.Context, principal entity.Principal, assignmentID int64) error {
	assignment, err := srv.deviceRepo.FindAssignmentByID(ctx, assignmentID)
	if err != nil {
		return translate(err, "failed to find assignment")
	}
	if _, err := srv.findForAdmin(ctx, principal, assignment.DeviceID); err != nil {
		return err
	}

	if err := srv.deviceRepo.DeleteAssignment(ctx, assignmentID); err != nil {
		return translate(err, "failed to remove assignment")
	}

	return nil
}

// ProvisioningQR renders the provisioning code of a device.
func (srv *deviceService) ProvisioningQR(ctx context.Context, principal entity.Principal, deviceID int64) ([]byte, error) {
	device, err := srv.findForAdmin(ctx, principal, deviceID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateProvisioningQR(device.DeviceUID, device.WorkingGroupID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate provisioning code")
	}

	return png, nil
}

// Heartbeat records the last contact of a device.
func (srv *deviceService) Heartbeat(ctx context.Context, principal entity.Principal, deviceID int64, ipAddress string) (*entity.Device, error) {
	device, err := srv.findForMember(ctx, principal, deviceID)
	if err != nil {
		return nil, err
	}

	seenAt := srv.now().UTC()
	if err := srv.deviceRepo.TouchHeartbeat(ctx, device.ID, seenAt, ipAddress); err != nil {
		return nil, translate(err, "failed to record heartbeat")
	}

	device.LastSeen = &seenAt
	device.LastIPAddress = ipAddress

	return device, nil
}

func (srv *deviceService) findForMember(ctx context.Context, principal entity.Principal, deviceID int64) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		return nil, translate(err, "failed to find device")
	}
	if err := requireTenantMember(principal, device.WorkingGroupID); err != nil {
		return nil, err
	}

	return device, nil
}

func (srv *deviceService) findForAdmin(ctx context.Context, principal entity.Principal, deviceID int64) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		return nil, translate(err, "failed to find device")
	}
	if err := requireTenantAdmin(principal, device.WorkingGroupID); err != nil {
		return nil, err
	}

	return device, nil
}

// requireActiveGroup fails with a not-found error unless the group exists and is active.
func requireActiveGroup(ctx context.Context, groups repository.WorkingGroupRepository, groupID int64) error {
	group, err := groups.FindByID(ctx, groupID)
	if err != nil {
		return translate(err, "failed to find working group")
	}
	if !group.IsActive {
		return errors.Wrap(domainerrors.ErrGroupInactive, "working group is deactivated")
	}

	return nil
}
