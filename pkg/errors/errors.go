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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Interpreter errors
	ErrVersionParse ErrorCode = "VERSION_PARSE"
	ErrVersionQuery ErrorCode = "VERSION_QUERY"
	ErrVersionGate  ErrorCode = "VERSION_GATE"

	// Filesystem errors
	ErrFileAccess     ErrorCode = "FILE_ACCESS"
	ErrDirCreate      ErrorCode = "DIR_CREATE"
	ErrFSQuery        ErrorCode = "FS_QUERY"
	ErrSymlinkReplace ErrorCode = "SYMLINK_REPLACE"
	ErrEnvRelocate    ErrorCode = "ENV_RELOCATE"

	// Git errors
	ErrGitConfigQuery ErrorCode = "GIT_CONFIG_QUERY"
)

// DevupError represents a structured error with code and details
type DevupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DevupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DevupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DevupError) Is(target error) bool {
	var targetErr *DevupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DevupError with the given code and message
func New(code ErrorCode, message string) *DevupError {
	return &DevupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DevupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DevupError {
	return &DevupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DevupError
func Wrap(err error, code ErrorCode, message string) *DevupError {
	if err == nil {
		return nil
	}
	return &DevupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DevupError {
	if err == nil {
		return nil
	}
	return &DevupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DevupError) WithDetail(key string, value interface{}) *DevupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var devupErr *DevupError
	if errors.As(err, &devupErr) {
		return devupErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DevupError
func GetErrorCode(err error) ErrorCode {
	var devupErr *DevupError
	if errors.As(err, &devupErr) {
		return devupErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DevupError
func GetErrorDetails(err error) map[string]interface{} {
	var devupErr *DevupError
	if errors.As(err, &devupErr) {
		return devupErr.Details
	}
	return nil
}
