// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"workgroup/internal/domain/entity"
	"workgroup/internal/errors"
)

// Domain-specific errors for working group persistence.
var (
	// ErrGroupNotFound is returned when a working group is not found.
	ErrGroupNotFound = errors.New("working group not found")
	// ErrDuplicateGroup is returned when the group name is already taken.
	ErrDuplicateGroup = errors.New("working group already exists")
)

// WorkingGroupRepository defines the persistence operations for tenants.
type WorkingGroupRepository interface {
	// Create persists a new group and fills in its generated fields.
	Create(ctx context.Context, group *entity.WorkingGroup) error

	// FindByID retrieves a group by its primary key.
	FindByID(ctx context.Context, id int64) (*entity.WorkingGroup, error)

	// FindByName retrieves a group by its unique name.
	FindByName(ctx context.Context, name string) (*entity.WorkingGroup, error)

	// ListByUser retrieves the groups in which the user holds an active membership.
	ListByUser(ctx context.Context, userID int64) ([]*entity.WorkingGroup, error)

	// Update overwrites the mutable fields of a group.
	Update(ctx context.Context, group *entity.WorkingGroup) error
}
