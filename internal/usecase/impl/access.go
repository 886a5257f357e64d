// Package impl contains the implementation of the application's business logic.
package impl

import (
	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/domain/repository"
	"workgroup/internal/errors"
)

// activeTenant returns the principal's active tenant or ErrNoActiveGroup.
func activeTenant(principal entity.Principal) (int64, error) {
	tenantID, ok := principal.TenantID()
	if !ok {
		return 0, domainerrors.ErrNoActiveGroup
	}

	return tenantID, nil
}

// requireTenantMember fails unless tenantID is the principal's active tenant.
func requireTenantMember(principal entity.Principal, tenantID int64) error {
	if _, err := activeTenant(principal); err != nil {
		return err
	}
	if !principal.InTenant(tenantID) {
		return errors.Wrap(domainerrors.ErrForbidden, "resource belongs to another working group")
	}

	return nil
}

// requireTenantAdmin fails unless the principal is an admin acting inside tenantID.
func requireTenantAdmin(principal entity.Principal, tenantID int64) error {
	if err := requireTenantMember(principal, tenantID); err != nil {
		return err
	}
	if principal.Role != entity.RoleAdmin {
		return errors.Wrap(domainerrors.ErrForbidden, "admin role required")
	}

	return nil
}

// repoErrors maps persistence sentinels onto the error taxonomy.
//
//nolint:gochecknoglobals
var repoErrors = []struct {
	from error
	to   *domainerrors.BaseError
}{
	{repository.ErrGroupNotFound, domainerrors.ErrGroupNotFound},
	{repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
	{repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound},
	{repository.ErrAssignmentNotFound, domainerrors.ErrAssignmentNotFound},
	{repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound},
	{repository.ErrScheduleNotFound, domainerrors.ErrScheduleNotFound},
	{repository.ErrMembershipNotFound, domainerrors.ErrForbidden},
	{repository.ErrDuplicateGroup, domainerrors.ErrDuplicateGroup},
	{repository.ErrDuplicateUser, domainerrors.ErrDuplicateUsername},
	{repository.ErrDuplicateDNI, domainerrors.ErrDuplicateDNI},
	{repository.ErrDuplicateDevice, domainerrors.ErrDuplicateDevice},
	{repository.ErrDuplicateAssignment, domainerrors.ErrDuplicateAssignment},
	{repository.ErrDuplicateDelivery, domainerrors.ErrDuplicateDelivery},
}

// translate converts a repository error into an AppError, keeping the original chain for logging.
// Errors already carrying an AppError pass through with the message added.
func translate(err error, message string) error {
	if err == nil {
		return nil
	}

	for _, m := range repoErrors {
		if errors.Is(err, m.from) {
			return errors.Wrap(errors.Join(m.to, err), message)
		}
	}

	return errors.Wrap(err, message)
}
