package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"NotFound", ErrorTypeNotFound, "not_found"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Internal", ErrorTypeInternal, "internal"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.errorType.String()
			if result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "Error without cause",
			appError: &AppError{
				Type:    ErrorTypeNotFound,
				Message: "task 'Ghost' not found",
			},
			expected: "not_found: task 'Ghost' not found",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeInternal,
				Message: "script failed",
				Cause:   errors.New("boom"),
			},
			expected: "internal: script failed (caused by: boom)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	appError := &AppError{
		Type:    ErrorTypeInternal,
		Message: "wrapped error",
		Cause:   cause,
	}

	if appError.Unwrap() != cause {
		t.Errorf("AppError.Unwrap() = %v, want %v", appError.Unwrap(), cause)
	}
	if !errors.Is(appError, cause) {
		t.Errorf("errors.Is should find the cause through Unwrap")
	}
}

func TestAppError_Is(t *testing.T) {
	notFound1 := &AppError{Type: ErrorTypeNotFound, Code: CodeTaskNotFound}
	notFound2 := &AppError{Type: ErrorTypeNotFound, Code: CodeTaskNotFound}
	genericNotFound := &AppError{Type: ErrorTypeNotFound, Code: CodeNotFound}
	invalid := &AppError{Type: ErrorTypeInvalidInput, Code: CodeInvalidInput}
	regularError := errors.New("regular error")

	tests := []struct {
		name     string
		err      *AppError
		target   error
		expected bool
	}{
		{"Same type and code", notFound1, notFound2, true},
		{"Same type different code", notFound1, genericNotFound, false},
		{"Different type", notFound1, invalid, false},
		{"Regular error", notFound1, regularError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Is(tt.target)
			if result != tt.expected {
				t.Errorf("AppError.Is() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_IsType(t *testing.T) {
	appError := &AppError{
		Type:    ErrorTypeNotFound,
		Message: "test error",
	}

	if !appError.IsType(ErrorTypeNotFound) {
		t.Errorf("AppError.IsType() = false, want true for matching type")
	}

	if appError.IsType(ErrorTypeInternal) {
		t.Errorf("AppError.IsType() = true, want false for different type")
	}
}

func TestAppError_WithContext(t *testing.T) {
	appError := &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: "test error",
	}

	result := appError.WithContext("step", 3)

	if result != appError {
		t.Errorf("WithContext should return the same instance")
	}
	if appError.Context["step"] != 3 {
		t.Errorf("Context should contain the added key-value pair")
	}
}

func TestAppError_GetContext(t *testing.T) {
	appError := &AppError{
		Type:    ErrorTypeNotFound,
		Message: "test error",
		Context: map[string]interface{}{
			"identifier": "Ghost",
		},
	}

	value, exists := appError.GetContext("identifier")
	if !exists || value != "Ghost" {
		t.Errorf("GetContext should return the stored value")
	}

	_, exists = appError.GetContext("nonexistent")
	if exists {
		t.Errorf("GetContext should return false for non-existing key")
	}

	appError.Context = nil
	_, exists = appError.GetContext("identifier")
	if exists {
		t.Errorf("GetContext should return false when context is nil")
	}
}
