package errors

import (
	"net/http"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("plate", "must not be empty")
	want := "validation failed: plate: must not be empty"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !IsValidation(err) {
		t.Error("IsValidation should be true for a ValidationError")
	}
	if IsValidation(New("other")) {
		t.Error("IsValidation should be false for a plain error")
	}
}

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
		want string
	}{
		{
			name: "msg key",
			body: map[string]any{"msg": "passwords do not match"},
			want: "passwords do not match",
		},
		{
			name: "message key",
			body: map[string]any{"message": "plan requires signature"},
			want: "plan requires signature",
		},
		{
			name: "error key",
			body: map[string]any{"error": "bad request"},
			want: "bad request",
		},
		{
			name: "no recognized key",
			body: map[string]any{"code": 17},
			want: "",
		},
		{
			name: "nil body",
			body: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPIError("/api/test", http.StatusBadRequest, tt.body)
			if got := err.Message(); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAuthFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"401 response", NewAPIError("/api/staff", http.StatusUnauthorized, nil), true},
		{"422 response", NewAPIError("/api/staff", http.StatusUnprocessableEntity, nil), true},
		{"auth sentinel", ErrAuthRejected, true},
		{"no token sentinel", ErrNoToken, true},
		{"500 response", NewAPIError("/api/staff", http.StatusInternalServerError, nil), false},
		{"plain error", New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthFailure(tt.err); got != tt.want {
				t.Errorf("IsAuthFailure(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(ErrVehicleNotFound) {
		t.Error("IsNotFound should be true for ErrVehicleNotFound")
	}
	if !IsNotFound(NewAPIError("/api/vehicles/lookup", http.StatusNotFound, nil)) {
		t.Error("IsNotFound should be true for a 404 APIError")
	}
	if IsNotFound(NewAPIError("/api/vehicles/lookup", http.StatusBadGateway, nil)) {
		t.Error("IsNotFound should be false for a 502 APIError")
	}
}

func TestIsUserFacing(t *testing.T) {
	if !IsUserFacing(NewValidationError("", "select at least one staff member")) {
		t.Error("validation errors are user-facing")
	}
	if !IsUserFacing(NewAPIError("/api/plans/create", 400, map[string]any{"msg": "signature required"})) {
		t.Error("API errors with backend messages are user-facing")
	}
	if IsUserFacing(NewTransportError("/api/staff", New("connection refused"))) {
		t.Error("transport errors are not user-facing")
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	base := New("dial tcp: connection refused")
	err := NewTransportError("/api/services/active", base)
	if !Is(err, base) {
		t.Error("TransportError should unwrap to the underlying error")
	}
}
