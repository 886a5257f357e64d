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

// workingGroupRepository implements repository.WorkingGroupRepository.
var groupDuplicates = map[string]error{groupNameIndex: repository.ErrDuplicateGroup}

type workingGroupRepository struct {
	db *gorm.DB
}

// NewWorkingGroupRepository is the constructor for workingGroupRepository.
func NewWorkingGroupRepository(db *gorm.DB) repository.WorkingGroupRepository {
	return &workingGroupRepository{db: db}
}

func (repo *workingGroupRepository) Create(ctx context.Context, group *entity.WorkingGroup) error {
	groupM := fromWorkingGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		if mapped, ok := uniqueViolation(err, groupDuplicates); ok {
			return mapped
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create working group")
	}

	group.ID = groupM.ID
	group.CreatedAt = groupM.CreatedAt
	group.UpdatedAt = groupM.UpdatedAt

	return nil
}

func (repo *workingGroupRepository) FindByID(ctx context.Context, id int64) (*entity.WorkingGroup, error) {
	var groupM model.WorkingGroupModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find working group by id")
	}

	return toWorkingGroupDomain(&groupM), nil
}

func (repo *workingGroupRepository) FindByName(ctx context.Context, name string) (*entity.WorkingGroup, error) {
	var groupM model.WorkingGroupModel

	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find working group by name")
	}

	return toWorkingGroupDomain(&groupM), nil
}

// ListByUser joins through memberships; only active memberships count.
func (repo *workingGroupRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.WorkingGroup, error) {
	var groupModels []*model.WorkingGroupModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.working_group_id = working_groups.id").
		Where("memberships.user_id = ? AND memberships.is_active = ?", userID, true).
		Order("memberships.created_at ASC").
		Find(&groupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list working groups by user")
	}

	groups := make([]*entity.WorkingGroup, 0, len(groupModels))
	for _, groupM := range groupModels {
		groups = append(groups, toWorkingGroupDomain(groupM))
	}

	return groups, nil
}

func (repo *workingGroupRepository) Update(ctx context.Context, group *entity.WorkingGroup) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkingGroupModel{}).
		Where("id = ?", group.ID).
		Updates(map[string]any{
			"name":        group.Name,
			"description": group.Description,
			"creator_id":  nullableID(group.CreatorID),
			"is_active":   group.IsActive,
		})
	if result.Error != nil {
		if mapped, ok := uniqueViolation(result.Error, groupDuplicates); ok {
			return mapped
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update working group")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toWorkingGroupDomain(data *model.WorkingGroupModel) *entity.WorkingGroup {
	if data == nil {
		return nil
	}

	group := &entity.WorkingGroup{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.CreatorID != nil {
		group.CreatorID = *data.CreatorID
	}

	return group
}

func fromWorkingGroupDomain(data *entity.WorkingGroup) *model.WorkingGroupModel {
	if data == nil {
		return nil
	}

	return &model.WorkingGroupModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatorID:   nullableID(data.CreatorID),
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// nullableID maps the zero ID to SQL NULL.
func nullableID(id int64) *int64 {
	if id == 0 {
		return nil
	}

	return &id
}
