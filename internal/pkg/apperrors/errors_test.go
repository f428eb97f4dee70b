package apperrors

import (
	"errors"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "With Code",
			appError: &AppError{
				Code:    "STORE_ERROR",
				Message: "insert failed",
			},
			expected: "[STORE_ERROR] insert failed",
		},
		{
			name: "Without Code",
			appError: &AppError{
				Message: "insert failed",
			},
			expected: "insert failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestValidationErrorError(t *testing.T) {
	withField := &ValidationError{Field: "amount", Message: "must be greater than zero"}
	if got := withField.Error(); got != "validation failed for field 'amount': must be greater than zero" {
		t.Errorf("unexpected message: %q", got)
	}

	withoutField := &ValidationError{Message: "bad payload"}
	if got := withoutField.Error(); got != "validation failed: bad payload" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestNewValidationErrorWrapsSentinel(t *testing.T) {
	err := NewValidationError("commission_rate", "must be between 0 and 100")
	if !errors.Is(err, ErrValidation) {
		t.Error("expected error to wrap ErrValidation")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("expected error to unwrap to *ValidationError")
	}
	if ve.Field != "commission_rate" {
		t.Errorf("expected field commission_rate, got %q", ve.Field)
	}
}

func TestNewReferenceErrorWrapsSentinel(t *testing.T) {
	err := NewReferenceError("customer_id", "invalid customer_id format")
	if !errors.Is(err, ErrReference) {
		t.Error("expected error to wrap ErrReference")
	}
	if errors.Is(err, ErrValidation) {
		t.Error("reference errors must stay distinct from validation errors")
	}
}

func TestWrapStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := WrapStoreError(cause, "failed to insert loan")

	if !errors.Is(err, ErrStore) {
		t.Error("expected error to wrap ErrStore")
	}
	if !errors.Is(err, cause) {
		t.Error("expected error to wrap original cause")
	}
}
