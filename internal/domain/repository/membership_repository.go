package repository

import (
	"context"

	"workgroup/internal/domain/entity"
	"workgroup/internal/errors"
)

// ErrMembershipNotFound is returned when the user is not a member of the group.
var ErrMembershipNotFound = errors.New("membership not found")

// MembershipRepository persists the explicit (group, user) tenant relation.
type MembershipRepository interface {
	// Ensure creates the membership when it is missing and reactivates it otherwise.
	// It is safe to call concurrently for the same pair.
	Ensure(ctx context.Context, membership *entity.Membership) error

	// Find retrieves the membership of a user in a group, active or not.
	Find(ctx context.Context, groupID, userID int64) (*entity.Membership, error)

	// ListByUser retrieves the active memberships of a user, oldest first.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Membership, error)
}
