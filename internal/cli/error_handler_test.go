package cli

import (
	"errors"
	"testing"

	apperrors "task-manager/internal/errors"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Task not found",
			operation: "update task",
			err:       apperrors.NewTaskNotFoundError("Ghost"),
			expected:  "failed to update task: task 'Ghost' not found",
		},
		{
			name:      "Invalid input",
			operation: "load script",
			err:       apperrors.NewInvalidInputError("op", "jump", "unknown operation"),
			expected:  "failed to load script: invalid input for op: unknown operation",
		},
		{
			name:      "Internal error",
			operation: "run",
			err:       apperrors.WrapError(errors.New("boom"), apperrors.ErrorTypeInternal, "boom"),
			expected:  "failed to run: An unexpected error occurred. Please try again.",
		},
		{
			name:      "Regular error",
			operation: "process",
			err:       errors.New("regular error"),
			expected:  "failed to process: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_HandleWrapsRegularErrors(t *testing.T) {
	cause := errors.New("regular error")

	result := NewErrorHandler().Handle("process", cause)

	if !errors.Is(result, cause) {
		t.Errorf("Handle should keep regular errors unwrappable")
	}
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Task not found", apperrors.NewTaskNotFoundError("Ghost"), "task 'Ghost' not found"},
		{"Regular error", errors.New("regular error"), "regular error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.HandleSimple(tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.HandleSimple() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()
	notFound := apperrors.NewTaskNotFoundError("Ghost")
	invalid := apperrors.NewInvalidInputError("op", "x", "bad")

	if !eh.IsNotFoundError(notFound) || eh.IsNotFoundError(invalid) {
		t.Errorf("IsNotFoundError misclassified")
	}
	if !eh.IsInvalidInputError(invalid) || eh.IsInvalidInputError(notFound) {
		t.Errorf("IsInvalidInputError misclassified")
	}
	if eh.GetErrorCode(notFound) != apperrors.CodeTaskNotFound {
		t.Errorf("GetErrorCode() = %v, want %v", eh.GetErrorCode(notFound), apperrors.CodeTaskNotFound)
	}
}
