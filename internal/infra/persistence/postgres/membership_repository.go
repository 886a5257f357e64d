package postgres

import (
	"context"

	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/domain/repository"
	"workgroup/internal/errors"
	"workgroup/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

// Ensure upserts on idx_memberships_group_user, so concurrent calls converge on one row.
// An existing row keeps its role.
func (repo *membershipRepository) Ensure(ctx context.Context, membership *entity.Membership) error {
	membershipM := &model.MembershipModel{
		WorkingGroupID: membership.WorkingGroupID,
		UserID:         membership.UserID,
		Role:           membership.Role.String(),
		IsActive:       true,
	}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "working_group_id"}, {Name: "user_id"}},
				DoUpdates: clause.Assignments(map[string]any{"is_active": true}),
			},
			clause.Returning{},
		).
		Create(membershipM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid group or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to ensure membership")
	}

	membership.ID = membershipM.ID
	membership.Role = entity.Role(membershipM.Role)
	membership.IsActive = true
	membership.CreatedAt = membershipM.CreatedAt

	return nil
}

func (repo *membershipRepository) Find(ctx context.Context, groupID, userID int64) (*entity.Membership, error) {
	var membershipM model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Where("working_group_id = ? AND user_id = ?", groupID, userID).
		First(&membershipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership")
	}

	return toMembershipDomain(&membershipM), nil
}

func (repo *membershipRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Membership, error) {
	var membershipModels []*model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC, id ASC").
		Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list memberships by user")
	}

	memberships := make([]*entity.Membership, 0, len(membershipModels))
	for _, membershipM := range membershipModels {
		memberships = append(memberships, toMembershipDomain(membershipM))
	}

	return memberships, nil
}

func toMembershipDomain(data *model.MembershipModel) *entity.Membership {
	return &entity.Membership{
		ID:             data.ID,
		WorkingGroupID: data.WorkingGroupID,
		UserID:         data.UserID,
		Role:           entity.Role(data.Role),
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
	}
}
