package food

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrValidation indicates a call argument violated a documented limit.
	// It is raised before any network call.
	ErrValidation = errors.New("validation failed")

	// ErrAPI indicates the API reported an error other than rate limiting
	// or an invalid key.
	ErrAPI = errors.New("fdc api error")

	// ErrRateLimited indicates the API key exceeded its rate limit.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidCredentials indicates the API key was rejected.
	ErrInvalidCredentials = errors.New("invalid api key")

	// ErrTransport indicates the HTTP exchange itself failed.
	ErrTransport = errors.New("transport failure")

	// ErrMapping indicates a response did not match the documented shape.
	ErrMapping = errors.New("response mapping failed")
)

// API error codes with dedicated error kinds.
const (
	CodeOverRateLimit  = "OVER_RATE_LIMIT"
	CodeAPIKeyInvalid  = "API_KEY_INVALID"
	apiKeySignupURL    = "https://fdc.nal.usda.gov/api-key-signup.html"
	rateLimitMessage   = "API rate limit has been exceeded."
	invalidKeyTemplate = "A invalid Data.gov API key has been supplied. Get one at %s"
)

// ValidationError provides context for local validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// APIError is an error reported in the API's error envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("%d: %s: %s", e.StatusCode, e.Code, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%d: %s", e.StatusCode, e.Code)
	}
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *APIError) Unwrap() error {
	return ErrAPI
}

// NewAPIError creates an API error.
func NewAPIError(status int, code, message string) error {
	return &APIError{StatusCode: status, Code: code, Message: message}
}

// RateLimitError is returned when the API reports OVER_RATE_LIMIT.
type RateLimitError struct {
	StatusCode int
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	return rateLimitMessage
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}

// InvalidCredentialsError is returned when the API reports API_KEY_INVALID.
type InvalidCredentialsError struct {
	StatusCode int
}

// Error implements the error interface.
func (e *InvalidCredentialsError) Error() string {
	return fmt.Sprintf(invalidKeyTemplate, apiKeySignupURL)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *InvalidCredentialsError) Unwrap() error {
	return ErrInvalidCredentials
}

// TransportError wraps a failed HTTP exchange. StatusCode is zero when no
// response was received.
type TransportError struct {
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("transport failure: HTTP %d: %v", e.StatusCode, e.Err)
	}

	return fmt.Sprintf("transport failure: %v", e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause, so
// errors.As still finds a *url.Error or net.Error.
func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}

	return []error{ErrTransport, e.Err}
}

// NewTransportError creates a transport error.
func NewTransportError(status int, err error) error {
	return &TransportError{StatusCode: status, Err: err}
}

// MappingError reports a payload that violates the documented response shape.
type MappingError struct {
	Entity string
	Key    string
	Reason string
}

// Error implements the error interface.
func (e *MappingError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("mapping %s: key %q: %s", e.Entity, e.Key, e.Reason)
	}

	return fmt.Sprintf("mapping %s: %s", e.Entity, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *MappingError) Unwrap() error {
	return ErrMapping
}

// NewMissingKeyError reports an absent required key.
func NewMissingKeyError(entity, key string) error {
	return &MappingError{Entity: entity, Key: key, Reason: "required key is missing"}
}

// NewMappingError creates a mapping error with a free-form reason.
func NewMappingError(entity, reason string) error {
	return &MappingError{Entity: entity, Reason: reason}
}

// ErrorForCode maps an envelope code to its error kind.
func ErrorForCode(status int, code, message string) error {
	switch code {
	case CodeOverRateLimit:
		return &RateLimitError{StatusCode: status}
	case CodeAPIKeyInvalid:
		return &InvalidCredentialsError{StatusCode: status}
	default:
		return NewAPIError(status, code, message)
	}
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsAPIError checks if an error is a generic API error.
func IsAPIError(err error) bool {
	return errors.Is(err, ErrAPI)
}

// IsRateLimited checks if an error is a rate limit error.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsInvalidCredentials checks if an error is an invalid key error.
func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsMapping checks if an error is a mapping error.
func IsMapping(err error) bool {
	return errors.Is(err, ErrMapping)
}
