package errors

import (
	"net/http"

	"tasktrack/internal/errors"
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

// Predefined error types
var (
	// Signup and login
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_REGISTERED",
		"Email already registered",
		"",
	)

	ErrPasswordRequired = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_REQUIRED",
		"Password is required for signup",
		"",
	)

	ErrExternalSignupUnsupported = NewBaseError(
		http.StatusBadRequest,
		"EXTERNAL_SIGNUP_UNSUPPORTED",
		"Google accounts must sign in through Google login",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Failed to issue session token",
		"",
	)

	// Authorization guard
	ErrNoAuthToken = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"No authentication token found",
		"",
	)

	ErrInvalidAuthToken = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Invalid authentication token",
		"",
	)

	// External identity
	ErrAuthProviderFailed = NewBaseError(
		http.StatusInternalServerError,
		"AUTH_PROVIDER_ERROR",
		"Google login failed",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusUnauthorized,
		"EMAIL_NOT_VERIFIED",
		"Google email not verified",
		"",
	)

	ErrProviderRejected = NewBaseError(
		http.StatusUnauthorized,
		"PROVIDER_REJECTED",
		"Invalid Google access token",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"Invalid or expired OAuth state",
		"",
	)

	// Tasks
	ErrTaskNotFound = NewBaseError(
		http.StatusNotFound,
		"TASK_NOT_FOUND",
		"Task not found or unauthorized",
		"",
	)

	ErrTaskTitleConflict = NewBaseError(
		http.StatusConflict,
		"TASK_TITLE_CONFLICT",
		"Task with the same title already exists",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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

// Unwrap exposes the driver error for errors.Is checks.
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
	return "Internal server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// AuthProviderError collapses every failure of the Google login flow into one
// client-facing error while keeping the real cause reachable for logs.
type AuthProviderError struct {
	stage string
	cause error
}

// NewAuthProviderError records which stage of the external login failed.
func NewAuthProviderError(stage string, cause error) AppError {
	return &AuthProviderError{stage: stage, cause: cause}
}

// Error implements the error interface
func (e *AuthProviderError) Error() string {
	if e.cause == nil {
		return "google login failed at " + e.stage
	}

	return "google login failed at " + e.stage + ": " + e.cause.Error()
}

// Unwrap returns the underlying cause.
func (e *AuthProviderError) Unwrap() error {
	return e.cause
}

// Is matches ErrAuthProviderFailed so callers can test for the collapsed error.
func (e *AuthProviderError) Is(target error) bool {
	return target == ErrAuthProviderFailed
}

// Stage returns the step that failed (verify, profile, lookup, create, token).
func (e *AuthProviderError) Stage() string {
	return e.stage
}

// HTTPCode returns the HTTP status code
func (e *AuthProviderError) HTTPCode() int {
	return ErrAuthProviderFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (e *AuthProviderError) ErrorCode() string {
	return ErrAuthProviderFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *AuthProviderError) Message() string {
	return ErrAuthProviderFailed.Message()
}

// Details is always empty; the cause never reaches the client.
func (e *AuthProviderError) Details() string {
	return ""
}
