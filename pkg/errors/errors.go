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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Container errors
	ErrServiceNotFound   ErrorCode = "SERVICE_NOT_FOUND"
	ErrParameterNotFound ErrorCode = "PARAMETER_NOT_FOUND"

	// Resolution errors
	ErrMissingAttribute ErrorCode = "MISSING_ATTRIBUTE"
	ErrInvalidAttribute ErrorCode = "INVALID_ATTRIBUTE"
	ErrUnknownExtension ErrorCode = "UNKNOWN_EXTENSION"

	// Type catalog errors
	ErrTypeInvalid ErrorCode = "TYPE_INVALID"
)

// AdminextError represents a structured error with code and details
type AdminextError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AdminextError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AdminextError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AdminextError) Is(target error) bool {
	var targetErr *AdminextError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AdminextError with the given code and message
func New(code ErrorCode, message string) *AdminextError {
	return &AdminextError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AdminextError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AdminextError {
	return &AdminextError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AdminextError
func Wrap(err error, code ErrorCode, message string) *AdminextError {
	if err == nil {
		return nil
	}
	return &AdminextError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AdminextError {
	if err == nil {
		return nil
	}
	return &AdminextError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AdminextError) WithDetail(key string, value interface{}) *AdminextError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *AdminextError) WithDetails(details map[string]interface{}) *AdminextError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var adminextErr *AdminextError
	if errors.As(err, &adminextErr) {
		return adminextErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AdminextError
func GetErrorCode(err error) ErrorCode {
	var adminextErr *AdminextError
	if errors.As(err, &adminextErr) {
		return adminextErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an AdminextError
func GetErrorDetails(err error) map[string]interface{} {
	var adminextErr *AdminextError
	if errors.As(err, &adminextErr) {
		return adminextErr.Details
	}
	return nil
}
