package errors

import (
	"net/http"

	"workgroup/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy still matches the
// original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Generic errors, one per taxonomy class.
var (
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrDuplicate = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource already exists",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"too many requests",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// Entity-specific errors.
var (
	ErrGroupNotFound = NewBaseError(
		http.StatusNotFound,
		"GROUP_NOT_FOUND",
		"working group not found",
		"",
	)

	ErrGroupInactive = NewBaseError(
		http.StatusNotFound,
		"GROUP_INACTIVE",
		"working group is not active",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"device not found",
		"",
	)

	ErrAssignmentNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSIGNMENT_NOT_FOUND",
		"device assignment not found",
		"",
	)

	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"notification not found",
		"",
	)

	ErrScheduleNotFound = NewBaseError(
		http.StatusNotFound,
		"SCHEDULE_NOT_FOUND",
		"schedule not found",
		"",
	)

	ErrDuplicateGroup = NewBaseError(
		http.StatusConflict,
		"GROUP_ALREADY_EXISTS",
		"working group name is already in use",
		"",
	)

	ErrDuplicateUsername = NewBaseError(
		http.StatusConflict,
		"USERNAME_ALREADY_EXISTS",
		"username is already registered",
		"",
	)

	ErrDuplicateDNI = NewBaseError(
		http.StatusConflict,
		"DNI_ALREADY_EXISTS",
		"dni is already registered",
		"",
	)

	ErrDuplicateDevice = NewBaseError(
		http.StatusConflict,
		"DEVICE_ALREADY_EXISTS",
		"a device with this uid already exists",
		"",
	)

	ErrDuplicateAssignment = NewBaseError(
		http.StatusConflict,
		"ASSIGNMENT_ALREADY_EXISTS",
		"user is already assigned to this device",
		"",
	)

	ErrDuplicateDelivery = NewBaseError(
		http.StatusConflict,
		"DELIVERY_ALREADY_REGISTERED",
		"delivery already registered for this notification, device and user",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"username or password is incorrect",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"invalid or expired token",
		"",
	)

	ErrNoActiveGroup = NewBaseError(
		http.StatusForbidden,
		"NO_ACTIVE_GROUP",
		"the authenticated user is not associated with a working group",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
