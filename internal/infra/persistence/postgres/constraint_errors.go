package postgres

import (
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Unique indexes declared by the models.
const (
	groupNameIndex      = "idx_working_groups_name"
	usernameIndex       = "idx_users_username"
	dniIndex            = "idx_users_dni"
	deviceUIDIndex      = "idx_devices_uid"
	deviceUserPairIndex = "idx_device_users_pair"
	deliveryTripleIndex = "idx_delivery_triple"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateNotNullViolation    = "23502"
	sqlStateCheckViolation      = "23514"
)

// pgCode returns the SQLSTATE of a driver error, or "" when err is not a *pgconn.PgError.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// pgConstraint returns the violated constraint name, if any.
func pgConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}

// isUniqueConstraintViolation accepts both translated and raw driver errors.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgCode(err) == sqlStateUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgCode(err) == sqlStateForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgCode(err) == sqlStateNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgCode(err) == sqlStateCheckViolation
}

// uniqueViolation maps a unique violation to the sentinel registered for its index.
// ok is false when err is not a unique violation. A violation on an index missing
// from byIndex is reported as a DatabaseExecuteError.
func uniqueViolation(err error, byIndex map[string]error) (mapped error, ok bool) {
	if !isUniqueConstraintViolation(err) {
		return nil, false
	}

	name := pgConstraint(err)
	if sentinel, found := byIndex[name]; found {
		return sentinel, true
	}

	return domainerrors.NewDatabaseExecuteError(err, "unexpected unique violation on "+name), true
}
