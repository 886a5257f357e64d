package impl

import (
	"context"
	"log/slog"

	deliverycontext "workgroup/internal/delivery/context"
	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/domain/repository"
	"workgroup/internal/errors"
	"workgroup/internal/usecase"

	"go.uber.org/fx"
)

type scheduleService struct {
	scheduleRepo   repository.ScheduleRepository
	deviceRepo     repository.DeviceRepository
	membershipRepo repository.MembershipRepository
	logger         *slog.Logger
}

// ScheduleServiceParams holds dependencies for ScheduleService, injected by Fx.
type ScheduleServiceParams struct {
	fx.In

	ScheduleRepo   repository.ScheduleRepository
	DeviceRepo     repository.DeviceRepository
	MembershipRepo repository.MembershipRepository
	Logger         *slog.Logger
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(params ScheduleServiceParams) usecase.ScheduleUsecase {
	return &scheduleService{
		scheduleRepo:   params.ScheduleRepo,
		deviceRepo:     params.DeviceRepo,
		membershipRepo: params.MembershipRepo,
		logger:         params.Logger,
	}
}

func (srv *scheduleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validWindow(in usecase.TimeWindowInput) (entity.TimeWindow, error) {
	window := in.Window()
	if !window.Valid() {
		return entity.TimeWindow{}, domainerrors.ErrValidationFailed.WithDetails("end_time must be after start_time")
	}

	return window, nil
}

// CreateGroupSchedule adds an access window that applies to every member of the group.
func (srv *scheduleService) CreateGroupSchedule(
	ctx context.Context,
	principal entity.Principal,
	groupID int64,
	input *usecase.GroupScheduleInput,
) (*entity.GroupSchedule, error) {
	if err := requireTenantAdmin(principal, groupID); err != nil {
		return nil, err
	}

	window, err := validWindow(input.TimeWindowInput)
	if err != nil {
		return nil, err
	}

	schedule := &entity.GroupSchedule{WorkingGroupID: groupID, TimeWindow: window, IsActive: true}
	setIfPresent(&schedule.IsActive, input.IsActive)
	if err := srv.scheduleRepo.CreateGroupSchedule(ctx, schedule); err != nil {
		return nil, translate(err, "failed to create group schedule")
	}

	srv.log(ctx).Debug("Group schedule created", slog.Int64("scheduleID", schedule.ID), slog.Int64("groupID", groupID))

	return schedule, nil
}

// ListGroupSchedules lists the group schedules of the caller's tenant.
func (srv *scheduleService) ListGroupSchedules(ctx context.Context, principal entity.Principal, groupID int64) ([]*entity.GroupSchedule, error) {
	if err := requireTenantMember(principal, groupID); err != nil {
		return nil, err
	}

	schedules, err := srv.scheduleRepo.ListGroupSchedules(ctx, groupID)
	if err != nil {
		return nil, translate(err, "failed to list group schedules")
	}

	return schedules, nil
}

// UpdateGroupSchedule replaces the window of a group schedule.
func (srv *scheduleService) UpdateGroupSchedule(
	ctx context.Context,
	principal entity.Principal,
	scheduleID int64,
	input *usecase.GroupScheduleInput,
) (*entity.GroupSchedule, error) {
	schedule, err := srv.findGroupScheduleForAdmin(ctx, principal, scheduleID)
	if err != nil {
		return nil, err
	}

	window, err := validWindow(input.TimeWindowInput)
	if err != nil {
		return nil, err
	}

	schedule.TimeWindow = window
	setIfPresent(&schedule.IsActive, input.IsActive)
	if err := srv.scheduleRepo.UpdateGroupSchedule(ctx, schedule); err != nil {
		return nil, translate(err, "failed to update group schedule")
	}

	return schedule, nil
}

// DeleteGroupSchedule removes a group schedule.
func (srv *scheduleService) DeleteGroupSchedule(ctx context.Context, principal entity.Principal, scheduleID int64) error {
	if _, err := srv.findGroupScheduleForAdmin(ctx, principal, scheduleID); err != nil {
		return err
	}

	return translate(srv.scheduleRepo.DeleteGroupSchedule(ctx, scheduleID), "failed to delete group schedule")
}

func (srv *scheduleService) findGroupScheduleForAdmin(ctx context.Context, principal entity.Principal, scheduleID int64) (*entity.GroupSchedule, error) {
	schedule, err := srv.scheduleRepo.FindGroupScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, translate(err, "failed to find group schedule")
	}
	if err := requireTenantAdmin(principal, schedule.WorkingGroupID); err != nil {
		return nil, err
	}

	return schedule, nil
}

// CreateIndividualSchedule adds an access window for an association, a device or a user.
func (srv *scheduleService) CreateIndividualSchedule(
	ctx context.Context,
	principal entity.Principal,
	input *usecase.IndividualScheduleInput,
) (*entity.IndividualSchedule, error) {
	schedule := &entity.IndividualSchedule{
		DeviceUserID: input.DeviceUserID,
		DeviceID:     input.DeviceID,
		UserID:       input.UserID,
		IsActive:     true,
	}
	if err := srv.fillIndividual(ctx, principal, schedule, input); err != nil {
		return nil, err
	}

	if err := srv.scheduleRepo.CreateIndividualSchedule(ctx, schedule); err != nil {
		return nil, translate(err, "failed to create individual schedule")
	}

	srv.log(ctx).Debug("Individual schedule created", slog.Int64("scheduleID", schedule.ID), slog.Int64("by", principal.UserID))

	return schedule, nil
}

// GetIndividualSchedule returns a schedule to the tenant admin or to the user it targets.
func (srv *scheduleService) GetIndividualSchedule(ctx context.Context, principal entity.Principal, scheduleID int64) (*entity.IndividualSchedule, error) {
	return srv.findIndividualForReader(ctx, principal, scheduleID)
}

// UpdateIndividualSchedule replaces the targets and window of an individual schedule.
func (srv *scheduleService) UpdateIndividualSchedule(
	ctx context.Context,
	principal entity.Principal,
	scheduleID int64,
	input *usecase.IndividualScheduleInput,
) (*entity.IndividualSchedule, error) {
	schedule, err := srv.findIndividualForReader(ctx, principal, scheduleID)
	if err != nil {
		return nil, err
	}

	schedule.DeviceUserID = input.DeviceUserID
	schedule.DeviceID = input.DeviceID
	schedule.UserID = input.UserID
	if err := srv.fillIndividual(ctx, principal, schedule, input); err != nil {
		return nil, err
	}

	if err := srv.scheduleRepo.UpdateIndividualSchedule(ctx, schedule); err != nil {
		return nil, translate(err, "failed to update individual schedule")
	}

	return schedule, nil
}

// DeleteIndividualSchedule removes an individual schedule.
func (srv *scheduleService) DeleteIndividualSchedule(ctx context.Context, principal entity.Principal, scheduleID int64) error {
	if _, err := srv.findIndividualForReader(ctx, principal, scheduleID); err != nil {
		return err
	}

	return translate(srv.scheduleRepo.DeleteIndividualSchedule(ctx, scheduleID), "failed to delete individual schedule")
}

// ListSchedulesByUser lists the schedules that apply to a user.
func (srv *scheduleService) ListSchedulesByUser(ctx context.Context, principal entity.Principal, userID int64) ([]*entity.IndividualSchedule, error) {
	if principal.UserID != userID {
		tenantID, err := activeTenant(principal)
		if err != nil {
			return nil, err
		}
		if err := requireTenantAdmin(principal, tenantID); err != nil {
			return nil, err
		}
		if err := srv.requireMember(ctx, tenantID, userID); err != nil {
			return nil, err
		}
	}

	schedules, err := srv.scheduleRepo.ListIndividualSchedulesByUser(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to list schedules by user")
	}

	return schedules, nil
}

// ListSchedulesByDevice lists the schedules of a device. Members only see their own.
func (srv *scheduleService) ListSchedulesByDevice(ctx context.Context, principal entity.Principal, deviceID int64) ([]*entity.IndividualSchedule, error) {
	device, err := srv.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		return nil, translate(err, "failed to find device")
	}
	if err := requireTenantMember(principal, device.WorkingGroupID); err != nil {
		return nil, err
	}

	schedules, err := srv.scheduleRepo.ListIndividualSchedulesByDevice(ctx, deviceID)
	if err != nil {
		return nil, translate(err, "failed to list schedules by device")
	}
	if principal.IsAdminOf(device.WorkingGroupID) {
		return schedules, nil
	}

	own := make([]*entity.IndividualSchedule, 0, len(schedules))
	for _, s := range schedules {
		owner, err := srv.ownerOf(ctx, s)
		if err != nil {
			return nil, err
		}
		if owner == principal.UserID {
			own = append(own, s)
		}
	}

	return own, nil
}

// fillIndividual validates the targets against the caller's permissions and sets the window.
func (srv *scheduleService) fillIndividual(
	ctx context.Context,
	principal entity.Principal,
	schedule *entity.IndividualSchedule,
	input *usecase.IndividualScheduleInput,
) error {
	if !schedule.HasTarget() {
		return domainerrors.ErrValidationFailed.WithDetails("one of device_user_id, device_id or user_id is required")
	}

	window, err := validWindow(input.TimeWindowInput)
	if err != nil {
		return err
	}
	schedule.TimeWindow = window
	setIfPresent(&schedule.IsActive, input.IsActive)

	tenantID, err := activeTenant(principal)
	if err != nil {
		return err
	}
	if principal.IsAdminOf(tenantID) {
		return srv.requireTargetsInTenant(ctx, tenantID, schedule)
	}

	selfOnly := schedule.DeviceUserID == nil && schedule.DeviceID == nil &&
		schedule.UserID != nil && *schedule.UserID == principal.UserID
	if !selfOnly {
		return errors.Wrap(domainerrors.ErrForbidden, "members can only schedule themselves")
	}

	return nil
}

func (srv *scheduleService) requireTargetsInTenant(ctx context.Context, tenantID int64, schedule *entity.IndividualSchedule) error {
	if schedule.DeviceUserID != nil {
		assignment, err := srv.deviceRepo.FindAssignmentByID(ctx, *schedule.DeviceUserID)
		if err != nil {
			return translate(err, "failed to find assignment")
		}
		if err := srv.requireDeviceInTenant(ctx, tenantID, assignment.DeviceID); err != nil {
			return err
		}
	}
	if schedule.DeviceID != nil {
		if err := srv.requireDeviceInTenant(ctx, tenantID, *schedule.DeviceID); err != nil {
			return err
		}
	}
	if schedule.UserID != nil {
		return srv.requireMember(ctx, tenantID, *schedule.UserID)
	}

	return nil
}

func (srv *scheduleService) requireDeviceInTenant(ctx context.Context, tenantID, deviceID int64) error {
	device, err := srv.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		return translate(err, "failed to find device")
	}
	if device.WorkingGroupID != tenantID {
		return errors.Wrap(domainerrors.ErrForbidden, "device belongs to another working group")
	}

	return nil
}

func (srv *scheduleService) requireMember(ctx context.Context, tenantID, userID int64) error {
	membership, err := srv.membershipRepo.Find(ctx, tenantID, userID)
	if err != nil {
		return translate(err, "user is not a member of the working group")
	}
	if !membership.IsActive {
		return errors.Wrap(domainerrors.ErrForbidden, "user membership is inactive")
	}

	return nil
}

// ownerOf returns the user a schedule targets, or zero for device-only schedules.
func (srv *scheduleService) ownerOf(ctx context.Context, schedule *entity.IndividualSchedule) (int64, error) {
	if schedule.UserID != nil {
		return *schedule.UserID, nil
	}
	if schedule.DeviceUserID != nil {
		assignment, err := srv.deviceRepo.FindAssignmentByID(ctx, *schedule.DeviceUserID)
		if err != nil {
			return 0, translate(err, "failed to find assignment")
		}

		return assignment.UserID, nil
	}

	return 0, nil
}

func (srv *scheduleService) findIndividualForReader(ctx context.Context, principal entity.Principal, scheduleID int64) (*entity.IndividualSchedule, error) {
	schedule, err := srv.scheduleRepo.FindIndividualScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, translate(err, "failed to find individual schedule")
	}

	owner, err := srv.ownerOf(ctx, schedule)
	if err != nil {
		return nil, err
	}
	if owner == principal.UserID {
		return schedule, nil
	}

	tenantID, err := activeTenant(principal)
	if err != nil {
		return nil, err
	}
	if err := requireTenantAdmin(principal, tenantID); err != nil {
		return nil, err
	}
	if err := srv.requireTargetsInTenant(ctx, tenantID, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}
