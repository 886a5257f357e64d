package usecase

import (
	"context"

	"workgroup/internal/domain/entity"
)

// CreateGroupInput creates a new working group owned by the caller.
type CreateGroupInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// UpdateGroupInput is a partial update of a working group.
type UpdateGroupInput struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// GroupUsecase manages working groups.
type GroupUsecase interface {
	Create(ctx context.Context, principal entity.Principal, input *CreateGroupInput) (*entity.WorkingGroup, error)
	Get(ctx context.Context, principal entity.Principal, groupID int64) (*entity.WorkingGroup, error)
	MyGroups(ctx context.Context, principal entity.Principal) ([]*entity.WorkingGroup, error)
	Update(ctx context.Context, principal entity.Principal, groupID int64, input *UpdateGroupInput) (*entity.WorkingGroup, error)
	Deactivate(ctx context.Context, principal entity.Principal, groupID int64) error
}
