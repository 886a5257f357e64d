package postgres

import (
	"context"

	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/domain/repository"
	"workgroup/internal/errors"
	"workgroup/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (repo *scheduleRepository) CreateGroupSchedule(ctx context.Context, schedule *entity.GroupSchedule) error {
	scheduleM := fromGroupScheduleDomain(schedule)

	if err := repo.db.WithContext(ctx).Create(scheduleM).Error; err != nil {
		return translateScheduleWriteError(err, "failed to create group schedule")
	}

	schedule.ID = scheduleM.ID
	schedule.CreatedAt = scheduleM.CreatedAt
	schedule.UpdatedAt = scheduleM.UpdatedAt

	return nil
}

func (repo *scheduleRepository) FindGroupScheduleByID(ctx context.Context, id int64) (*entity.GroupSchedule, error) {
	var scheduleM model.GroupScheduleModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&scheduleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScheduleNotFound
		}

		return nil, errors.Wrap(err, "failed to find group schedule")
	}

	return toGroupScheduleDomain(&scheduleM), nil
}

func (repo *scheduleRepository) ListGroupSchedules(ctx context.Context, groupID int64) ([]*entity.GroupSchedule, error) {
	var scheduleModels []*model.GroupScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("working_group_id = ?", groupID).
		Order("start_time ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list group schedules")
	}

	schedules := make([]*entity.GroupSchedule, 0, len(scheduleModels))
	for _, scheduleM := range scheduleModels {
		schedules = append(schedules, toGroupScheduleDomain(scheduleM))
	}

	return schedules, nil
}

func (repo *scheduleRepository) UpdateGroupSchedule(ctx context.Context, schedule *entity.GroupSchedule) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GroupScheduleModel{}).
		Where("id = ?", schedule.ID).
		Updates(map[string]any{
			"start_time": schedule.StartTime,
			"end_time":   schedule.EndTime,
			"all_day":    schedule.AllDay,
			"is_active":  schedule.IsActive,
		})

	return rowsOrNotFound(result, "failed to update group schedule")
}

func (repo *scheduleRepository) DeleteGroupSchedule(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GroupScheduleModel{})

	return rowsOrNotFound(result, "failed to delete group schedule")
}

func (repo *scheduleRepository) CreateIndividualSchedule(ctx context.Context, schedule *entity.IndividualSchedule) error {
	scheduleM := fromIndividualScheduleDomain(schedule)

	if err := repo.db.WithContext(ctx).Create(scheduleM).Error; err != nil {
		return translateScheduleWriteError(err, "failed to create individual schedule")
	}

	schedule.ID = scheduleM.ID
	schedule.CreatedAt = scheduleM.CreatedAt
	schedule.UpdatedAt = scheduleM.UpdatedAt

	return nil
}

func (repo *scheduleRepository) FindIndividualScheduleByID(ctx context.Context, id int64) (*entity.IndividualSchedule, error) {
	var scheduleM model.IndividualScheduleModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&scheduleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScheduleNotFound
		}

		return nil, errors.Wrap(err, "failed to find individual schedule")
	}

	return toIndividualScheduleDomain(&scheduleM), nil
}

// ListIndividualSchedulesByUser also returns schedules that target the user through an association.
func (repo *scheduleRepository) ListIndividualSchedulesByUser(ctx context.Context, userID int64) ([]*entity.IndividualSchedule, error) {
	return repo.listIndividual(ctx,
		repo.db.Where("user_id = ?", userID).
			Or("device_user_id IN (?)", repo.db.Model(&model.DeviceUserModel{}).Select("id").Where("user_id = ?", userID)),
	)
}

func (repo *scheduleRepository) ListIndividualSchedulesByDevice(ctx context.Context, deviceID int64) ([]*entity.IndividualSchedule, error) {
	return repo.listIndividual(ctx,
		repo.db.Where("device_id = ?", deviceID).
			Or("device_user_id IN (?)", repo.db.Model(&model.DeviceUserModel{}).Select("id").Where("device_id = ?", deviceID)),
	)
}

func (repo *scheduleRepository) listIndividual(ctx context.Context, filter *gorm.DB) ([]*entity.IndividualSchedule, error) {
	var scheduleModels []*model.IndividualScheduleModel

	if err := repo.db.WithContext(ctx).
		Where(filter).
		Order("start_time ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list individual schedules")
	}

	schedules := make([]*entity.IndividualSchedule, 0, len(scheduleModels))
	for _, scheduleM := range scheduleModels {
		schedules = append(schedules, toIndividualScheduleDomain(scheduleM))
	}

	return schedules, nil
}

func (repo *scheduleRepository) UpdateIndividualSchedule(ctx context.Context, schedule *entity.IndividualSchedule) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IndividualScheduleModel{}).
		Where("id = ?", schedule.ID).
		Updates(map[string]any{
			"device_user_id": schedule.DeviceUserID,
			"device_id":      schedule.DeviceID,
			"user_id":        schedule.UserID,
			"start_time":     schedule.StartTime,
			"end_time":       schedule.EndTime,
			"all_day":        schedule.AllDay,
			"is_active":      schedule.IsActive,
		})

	return rowsOrNotFound(result, "failed to update individual schedule")
}

func (repo *scheduleRepository) DeleteIndividualSchedule(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.IndividualScheduleModel{})

	return rowsOrNotFound(result, "failed to delete individual schedule")
}

func translateScheduleWriteError(err error, details string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("schedule references an unknown target")
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("individual schedule needs at least one target")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func rowsOrNotFound(result *gorm.DB, details string) error {
	if result.Error != nil {
		return translateScheduleWriteError(result.Error, details)
	}
	if result.RowsAffected == 0 {
		return repository.ErrScheduleNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toGroupScheduleDomain(data *model.GroupScheduleModel) *entity.GroupSchedule {
	return &entity.GroupSchedule{
		ID:             data.ID,
		WorkingGroupID: data.WorkingGroupID,
		TimeWindow: entity.TimeWindow{
			StartTime: data.StartTime,
			EndTime:   data.EndTime,
			AllDay:    data.AllDay,
		},
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromGroupScheduleDomain(data *entity.GroupSchedule) *model.GroupScheduleModel {
	return &model.GroupScheduleModel{
		ID:             data.ID,
		WorkingGroupID: data.WorkingGroupID,
		StartTime:      data.StartTime,
		EndTime:        data.EndTime,
		AllDay:         data.AllDay,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toIndividualScheduleDomain(data *model.IndividualScheduleModel) *entity.IndividualSchedule {
	return &entity.IndividualSchedule{
		ID:           data.ID,
		DeviceUserID: data.DeviceUserID,
		DeviceID:     data.DeviceID,
		UserID:       data.UserID,
		TimeWindow: entity.TimeWindow{
			StartTime: data.StartTime,
			EndTime:   data.EndTime,
			AllDay:    data.AllDay,
		},
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromIndividualScheduleDomain(data *entity.IndividualSchedule) *model.IndividualScheduleModel {
	return &model.IndividualScheduleModel{
		ID:           data.ID,
		DeviceUserID: data.DeviceUserID,
		DeviceID:     data.DeviceID,
		UserID:       data.UserID,
		StartTime:    data.StartTime,
		EndTime:      data.EndTime,
		AllDay:       data.AllDay,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
