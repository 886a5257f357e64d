package usecase

import (
	"context"
	"time"

	"workgroup/internal/domain/entity"
)

// TimeWindowInput is the access window shared by schedule inputs.
type TimeWindowInput struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
	AllDay    bool      `json:"all_day"`
}

// Window converts the input into a normalized entity.TimeWindow.
func (in TimeWindowInput) Window() entity.TimeWindow {
	return entity.TimeWindow{StartTime: in.StartTime, EndTime: in.EndTime, AllDay: in.AllDay}.Normalize()
}

// GroupScheduleInput creates or replaces a group schedule.
type GroupScheduleInput struct {
	TimeWindowInput
	IsActive *bool `json:"is_active,omitempty"`
}

// IndividualScheduleInput creates or replaces an individual schedule. At least one target is required.
type IndividualScheduleInput struct {
	DeviceUserID *int64 `json:"device_user_id,omitempty" validate:"omitempty,gt=0"`
	DeviceID     *int64 `json:"device_id,omitempty" validate:"omitempty,gt=0"`
	UserID       *int64 `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	TimeWindowInput
	IsActive *bool `json:"is_active,omitempty"`
}

// ScheduleUsecase manages group and individual access windows.
type ScheduleUsecase interface {
	CreateGroupSchedule(ctx context.Context, principal entity.Principal, groupID int64, input *GroupScheduleInput) (*entity.GroupSchedule, error)
	ListGroupSchedules(ctx context.Context, principal entity.Principal, groupID int64) ([]*entity.GroupSchedule, error)
	UpdateGroupSchedule(ctx context.Context, principal entity.Principal, scheduleID int64, input *GroupScheduleInput) (*entity.GroupSchedule, error)
	DeleteGroupSchedule(ctx context.Context, principal entity.Principal, scheduleID int64) error

	CreateIndividualSchedule(ctx context.Context, principal entity.Principal, input *IndividualScheduleInput) (*entity.IndividualSchedule, error)
	GetIndividualSchedule(ctx context.Context, principal entity.Principal, scheduleID int64) (*entity.IndividualSchedule, error)
	UpdateIndividualSchedule(ctx context.Context, principal entity.Principal, scheduleID int64, input *IndividualScheduleInput) (*entity.IndividualSchedule, error)
	DeleteIndividualSchedule(ctx context.Context, principal entity.Principal, scheduleID int64) error
	ListSchedulesByUser(ctx context.Context, principal entity.Principal, userID int64) ([]*entity.IndividualSchedule, error)
	ListSchedulesByDevice(ctx context.Context, principal entity.Principal, deviceID int64) ([]*entity.IndividualSchedule, error)
}
