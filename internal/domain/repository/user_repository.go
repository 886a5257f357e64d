package repository

import (
	"context"

	"workgroup/internal/domain/entity"
	"workgroup/internal/errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the username is already registered.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrDuplicateDNI is returned when another user holds the same DNI.
	ErrDuplicateDNI = errors.New("dni already registered")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ListByGroup retrieves the users holding an active membership in the group.
	ListByGroup(ctx context.Context, groupID int64) ([]*entity.User, error)

	// Update overwrites the mutable fields of a user.
	Update(ctx context.Context, user *entity.User) error
}
