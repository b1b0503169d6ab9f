// Package errors provides centralized error definitions and error handling
// utilities for the PowerTrack client. It defines domain-specific errors,
// semantic error types, and error classification helpers used by the API
// client and the worksheet wizard.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Session-related sentinel errors
var (
	// ErrNoToken indicates that no token is stored; the user must log in.
	ErrNoToken = New("not authenticated")
	// ErrTokenMalformed indicates that the stored token could not be decoded.
	ErrTokenMalformed = New("token malformed")
	// ErrAuthRejected indicates the backend rejected the token (401/422).
	ErrAuthRejected = New("authentication rejected")
)

// Worksheet-related sentinel errors
var (
	// ErrVehicleNotFound indicates a plate lookup matched no vehicle.
	// This is a first-class outcome for the wizard, not a failure.
	ErrVehicleNotFound = New("vehicle not found")
	// ErrPaymentLocked indicates the payment method cannot change while the
	// vehicle's billing plan is active.
	ErrPaymentLocked = New("payment method locked to plan")
)

// ValidationError represents invalid input or a failed step guard.
// Validation errors are always user-facing and never involve a network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// APIError represents a non-2xx response from the backend. Body carries the
// parsed error payload when the backend returned one.
type APIError struct {
	Status int
	Path   string
	Body   map[string]any
}

func (e *APIError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("api: %s: %d: %s", e.Path, e.Status, msg)
	}
	return fmt.Sprintf("api: %s: %d", e.Path, e.Status)
}

// Message extracts a human-readable message from the error body, checking
// the keys the backend has been observed to use.
func (e *APIError) Message() string {
	for _, key := range []string{"msg", "message", "error", "detail"} {
		if v, ok := e.Body[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// NewAPIError creates an APIError for a response status and parsed body.
func NewAPIError(path string, status int, body map[string]any) *APIError {
	return &APIError{Status: status, Path: path, Body: body}
}

// TransportError wraps a network-level failure (connection refused, DNS,
// timeout). The request never produced an HTTP response.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NewTransportError wraps err as a transport failure for path.
func NewTransportError(path string, err error) *TransportError {
	return &TransportError{Path: path, Err: err}
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return As(err, &ve)
}

// IsAuthFailure reports whether err represents an authentication failure
// that forces a logout (401/422, or the auth sentinels).
func IsAuthFailure(err error) bool {
	if Is(err, ErrAuthRejected) || Is(err, ErrNoToken) {
		return true
	}
	var ae *APIError
	if As(err, &ae) {
		return ae.Status == http.StatusUnauthorized || ae.Status == http.StatusUnprocessableEntity
	}
	return false
}

// IsNotFound reports whether err is an HTTP 404 or the vehicle-not-found
// sentinel.
func IsNotFound(err error) bool {
	if Is(err, ErrVehicleNotFound) {
		return true
	}
	var ae *APIError
	if As(err, &ae) {
		return ae.Status == http.StatusNotFound
	}
	return false
}

// IsUserFacing reports whether err is safe to surface verbatim in the UI.
// Validation failures and backend messages are user-facing; raw transport
// errors are logged and replaced with a generic notice.
func IsUserFacing(err error) bool {
	if IsValidation(err) {
		return true
	}
	var ae *APIError
	if As(err, &ae) {
		return ae.Message() != ""
	}
	return false
}
