package models

import (
	"fmt"
	"net/http"
)

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Recipe-specific errors
	ErrRecipeNotFound    = "RECIPE_NOT_FOUND"
	ErrUnknownAttributes = "UNKNOWN_ATTRIBUTES"

	// Account errors
	ErrUserExists         = "USER_ALREADY_EXISTS"
	ErrInvalidCredentials = "INVALID_CREDENTIALS"

	// OAuth/Auth errors (maintain RFC 6749 compatibility)
	ErrInvalidRequest       = "invalid_request"
	ErrInvalidClient        = "invalid_client"
	ErrInvalidGrant         = "invalid_grant"
	ErrUnauthorizedClient   = "unauthorized_client"
	ErrUnsupportedGrantType = "unsupported_grant_type"
	ErrInvalidScope         = "invalid_scope"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// Error is returned by the service layer. Controllers turn it into an APIError
// and pick the status from Status.
type Error struct {
	Code    string
	Message string
	Status  int
	Details map[string]interface{}
}

func (e *Error) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Details)
}

// Is matches on the code so callers can compare against the sentinel values below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// APIError converts e into its wire representation
func (e *Error) APIError() APIError {
	return NewAPIError(e.Code, e.Message, e.Details)
}

// Sentinels for errors.Is
var (
	ErrNotFoundError   = &Error{Code: ErrNotFound}
	ErrValidationError = &Error{Code: ErrValidationFailed}
	ErrConflictError   = &Error{Code: ErrConflict}
)

// ValidationError reports field-level problems; fields maps json field name to message.
func ValidationError(message string, fields map[string]string) *Error {
	details := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		details[k] = v
	}
	return &Error{
		Code:    ErrValidationFailed,
		Message: message,
		Status:  http.StatusBadRequest,
		Details: details,
	}
}

// NotFoundError reports that what was asked for is not visible to the caller
func NotFoundError(message string) *Error {
	return &Error{Code: ErrNotFound, Message: message, Status: http.StatusNotFound}
}

// ConflictError reports a uniqueness violation
func ConflictError(message string) *Error {
	return &Error{Code: ErrConflict, Message: message, Status: http.StatusConflict}
}

// OAuth2Error represents an OAuth2 error response (RFC 6749)
type OAuth2Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

// NewOAuth2Error creates a new OAuth2 error response
func NewOAuth2Error(error, description string) OAuth2Error {
	return OAuth2Error{
		Error:            error,
		ErrorDescription: description,
	}
}
