package repository

import (
	"context"

	"workgroup/internal/domain/entity"
	"workgroup/internal/errors"
)

// ErrScheduleNotFound is returned when a schedule is not found.
var ErrScheduleNotFound = errors.New("schedule not found")

// ScheduleRepository persists group and individual schedules.
type ScheduleRepository interface {
	CreateGroupSchedule(ctx context.Context, schedule *entity.GroupSchedule) error
	FindGroupScheduleByID(ctx context.Context, id int64) (*entity.GroupSchedule, error)
	ListGroupSchedules(ctx context.Context, groupID int64) ([]*entity.GroupSchedule, error)
	UpdateGroupSchedule(ctx context.Context, schedule *entity.GroupSchedule) error
	DeleteGroupSchedule(ctx context.Context, id int64) error

	CreateIndividualSchedule(ctx context.Context, schedule *entity.IndividualSchedule) error
	FindIndividualScheduleByID(ctx context.Context, id int64) (*entity.IndividualSchedule, error)
	ListIndividualSchedulesByUser(ctx context.Context, userID int64) ([]*entity.IndividualSchedule, error)
	ListIndividualSchedulesByDevice(ctx context.Context, deviceID int64) ([]*entity.IndividualSchedule, error)
	UpdateIndividualSchedule(ctx context.Context, schedule *entity.IndividualSchedule) error
	DeleteIndividualSchedule(ctx context.Context, id int64) error
}
