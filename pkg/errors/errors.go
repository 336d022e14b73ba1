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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileMove      ErrorCode = "FILE_MOVE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"

	// Repository errors. Each code names the pull phase that failed.
	ErrRepositoryNotFound   ErrorCode = "REPOSITORY_NOT_FOUND"
	ErrRemoteNotFound       ErrorCode = "REMOTE_NOT_FOUND"
	ErrFetchFailed          ErrorCode = "FETCH_FAILED"
	ErrUnsupportedTransport ErrorCode = "UNSUPPORTED_TRANSPORT"
	ErrReferenceNotFound    ErrorCode = "REFERENCE_NOT_FOUND"
	ErrRebaseStart          ErrorCode = "REBASE_START_FAILED"
	ErrRebaseInProgress     ErrorCode = "REBASE_IN_PROGRESS"
	ErrRebaseConflict       ErrorCode = "REBASE_CONFLICT"
	ErrRebaseCommit         ErrorCode = "REBASE_COMMIT_FAILED"
	ErrRebaseFinish         ErrorCode = "REBASE_FINISH_FAILED"
)

// SavesyncError represents a structured error with code and details
type SavesyncError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SavesyncError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SavesyncError) Unwrap() error {
	return e.Wrapped
}

// Is matches any SavesyncError carrying the same code
func (e *SavesyncError) Is(target error) bool {
	var targetErr *SavesyncError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SavesyncError with the given code and message
func New(code ErrorCode, message string) *SavesyncError {
	return &SavesyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SavesyncError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SavesyncError {
	return &SavesyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SavesyncError
func Wrap(err error, code ErrorCode, message string) *SavesyncError {
	if err == nil {
		return nil
	}
	return &SavesyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SavesyncError {
	if err == nil {
		return nil
	}
	return &SavesyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SavesyncError) WithDetail(key string, value interface{}) *SavesyncError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sErr *SavesyncError
	if errors.As(err, &sErr) {
		return sErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SavesyncError
func GetErrorCode(err error) ErrorCode {
	var sErr *SavesyncError
	if errors.As(err, &sErr) {
		return sErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SavesyncError
func GetErrorDetails(err error) map[string]interface{} {
	var sErr *SavesyncError
	if errors.As(err, &sErr) {
		return sErr.Details
	}
	return nil
}
