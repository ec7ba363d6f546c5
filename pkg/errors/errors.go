package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Capability errors
	ErrProbeFailed ErrorCode = "PROBE_FAILED"

	// Materialization errors
	ErrBackupFailed  ErrorCode = "BACKUP_FAILED"
	ErrPathResolve   ErrorCode = "PATH_RESOLVE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrFileCopy      ErrorCode = "FILE_COPY"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Verification errors
	ErrVerifyFailed ErrorCode = "VERIFY_FAILED"
)

// ContextHubError represents a structured error with code and details
type ContextHubError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ContextHubError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ContextHubError) Unwrap() error {
	return e.Wrapped
}

// Is matches any ContextHubError carrying the same code
func (e *ContextHubError) Is(target error) bool {
	var targetErr *ContextHubError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ContextHubError with the given code and message
func New(code ErrorCode, message string) *ContextHubError {
	return &ContextHubError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ContextHubError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ContextHubError {
	return &ContextHubError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *ContextHubError {
	if err == nil {
		return nil
	}
	return &ContextHubError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ContextHubError {
	if err == nil {
		return nil
	}
	return &ContextHubError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ContextHubError) WithDetail(key string, value interface{}) *ContextHubError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var chErr *ContextHubError
	if errors.As(err, &chErr) {
		return chErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if it is
// not a ContextHubError
func GetErrorCode(err error) ErrorCode {
	var chErr *ContextHubError
	if errors.As(err, &chErr) {
		return chErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil
func GetErrorDetails(err error) map[string]interface{} {
	var chErr *ContextHubError
	if errors.As(err, &chErr) {
		return chErr.Details
	}
	return nil
}
