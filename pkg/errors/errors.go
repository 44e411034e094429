package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Client-side errors - detected before anything is dispatched to the remote API
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation

	// Remote API errors - classified failures of a gateway call
	ErrorTypeNotFound
	ErrorTypeTimeout
	ErrorTypeServer
	ErrorTypeExternalAPI

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeTimeout:
		return "TIMEOUT_ERROR"
	case ErrorTypeServer:
		return "SERVER_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used throughout the codebase
const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	TimeoutError       = ErrorTypeTimeout
	ServerError        = ErrorTypeServer
	ExternalAPIError   = ErrorTypeExternalAPI
	ConfigurationError = ErrorTypeConfiguration
)

// AppError is the single error type crossing package boundaries.
// Detail carries a human readable message supplied by the remote API, if any.
type AppError struct {
	Type    ErrorType
	Message string
	Detail  string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail attaches the remote API's detail message and returns the same error
func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail
	return e
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Client-side Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

// Remote API Error Constructors
func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewTimeoutError(message string, cause error) *AppError {
	return Wrap(TimeoutError, message, cause)
}

func NewServerError(message string, cause error) *AppError {
	return Wrap(ServerError, message, cause)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in err's chain
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// DetailOf returns the remote API detail message carried by err, if any
func DetailOf(err error) (string, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) && appErr.Detail != "" {
		return appErr.Detail, true
	}
	return "", false
}

// Helper functions for error type checking
func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsTimeoutError(err error) bool {
	return TypeOf(err) == TimeoutError
}

func IsServerError(err error) bool {
	return TypeOf(err) == ServerError
}

func IsExternalAPIError(err error) bool {
	return TypeOf(err) == ExternalAPIError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
