package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionRead     ErrorCode = "SESSION-001"
	ErrCodeSessionWrite    ErrorCode = "SESSION-002"
	ErrCodeSessionNotFound ErrorCode = "SESSION-003"

	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthLoginFailed   ErrorCode = "AUTH-001"
	ErrCodeAuthNotLoggedIn   ErrorCode = "AUTH-002"
	ErrCodeAuthNoTenant      ErrorCode = "AUTH-003"
	ErrCodeAuthUnknownTenant ErrorCode = "AUTH-004"

	// API errors (API-001 to API-099)
	ErrCodeAPIRequest  ErrorCode = "API-001"
	ErrCodeAPIResponse ErrorCode = "API-002"
	ErrCodeAPIDecode   ErrorCode = "API-003"

	// Form validation errors (FORM-001 to FORM-099)
	ErrCodeFormPasswordMismatch ErrorCode = "FORM-001"
	ErrCodeFormAvatarTooLarge   ErrorCode = "FORM-002"
	ErrCodeFormFieldRequired    ErrorCode = "FORM-003"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigRead    ErrorCode = "CONFIG-001"
	ErrCodeConfigWrite   ErrorCode = "CONFIG-002"
	ErrCodeConfigInvalid ErrorCode = "CONFIG-003"
)

// PantryError represents an enhanced error with code, suggestions, and a cause
type PantryError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *PantryError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *PantryError) Unwrap() error {
	return e.Cause
}

// New creates a new PantryError
func New(code ErrorCode, message string) *PantryError {
	return &PantryError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new PantryError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *PantryError {
	return &PantryError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *PantryError) WithSuggestion(suggestion string) *PantryError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *PantryError) WithSuggestions(suggestions ...string) *PantryError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors for frequently used errors

// NewNotLoggedInError creates an error for commands that require a session
func NewNotLoggedInError() *PantryError {
	return New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'pantry login' to authenticate")
}

// NewNoTenantError creates an error for requests issued without a workspace
func NewNoTenantError() *PantryError {
	return New(ErrCodeAuthNoTenant, "no workspace selected").
		WithSuggestion("Run 'pantry login --tenant melmo' or 'pantry login --tenant tearaja'")
}

// NewUnknownTenantError creates an error for a tenant id outside the fixed set
func NewUnknownTenantError(id string) *PantryError {
	return New(ErrCodeAuthUnknownTenant, fmt.Sprintf("unknown workspace: %s", id)).
		WithSuggestion("Use one of: melmo, tearaja")
}

// NewPasswordMismatchError creates the inline error shown when the password
// confirmation does not match. The message is part of the UI contract.
func NewPasswordMismatchError() *PantryError {
	return New(ErrCodeFormPasswordMismatch, "New passwords do not match")
}

// NewAvatarTooLargeError creates the inline error shown when a selected avatar
// file exceeds the upload limit. The message is part of the UI contract.
func NewAvatarTooLargeError() *PantryError {
	return New(ErrCodeFormAvatarTooLarge, "File size too large. Please use an image under 500KB.")
}

// NewFieldRequiredError creates an error for an empty required form field
func NewFieldRequiredError(field string) *PantryError {
	return New(ErrCodeFormFieldRequired, fmt.Sprintf("%s is required", field))
}

// NewSessionReadError creates an error for a failed session file read
func NewSessionReadError(path string, cause error) *PantryError {
	return Wrap(ErrCodeSessionRead, fmt.Sprintf("failed to read session file: %s", path), cause).
		WithSuggestion("Check file permissions on the session file").
		WithSuggestion("Run 'pantry login' to create a fresh session")
}

// NewSessionWriteError creates an error for a failed session file write
func NewSessionWriteError(path string, cause error) *PantryError {
	return Wrap(ErrCodeSessionWrite, fmt.Sprintf("failed to write session file: %s", path), cause).
		WithSuggestion("Check that the directory exists and is writable")
}

// NewConfigReadError creates an error for a failed config load
func NewConfigReadError(path string, cause error) *PantryError {
	return Wrap(ErrCodeConfigRead, fmt.Sprintf("failed to read config file: %s", path), cause).
		WithSuggestion("Run 'pantry config path' to locate the config file").
		WithSuggestion("Delete the file to regenerate defaults")
}
