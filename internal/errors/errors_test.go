package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "job application not found",
			},
			want: "job application not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeInternal,
				Message: "failed to reorder",
				Cause:   errors.New("underlying error"),
			},
			want: "failed to reorder: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &AppError{
		Code:    ErrCodeInternal,
		Message: "wrapped error",
		Cause:   cause,
	}

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantCode ErrorCode
		wantMsg  string
	}{
		{"NotFound", NotFound("missing"), ErrCodeNotFound, "missing"},
		{"NotFoundf", NotFoundf("no job application with id %s", "abc"), ErrCodeNotFound, "no job application with id abc"},
		{"Conflict", Conflict("dup"), ErrCodeConflict, "dup"},
		{"Conflictf", Conflictf("order %d taken", 3), ErrCodeConflict, "order 3 taken"},
		{"Validation", Validation("bad"), ErrCodeValidation, "bad"},
		{"Validationf", Validationf("duplicate id %s", "x"), ErrCodeValidation, "duplicate id x"},
		{"ForeignKey", ForeignKey("ref"), ErrCodeForeignKey, "ref"},
		{"Internal", Internal("boom"), ErrCodeInternal, "boom"},
		{"Internalf", Internalf("boom %d", 2), ErrCodeInternal, "boom 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("title", "is required")
	if err.Code != ErrCodeValidation {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeValidation)
	}
	if err.Field != "title" {
		t.Errorf("Field = %q, want %q", err.Field, "title")
	}
	if GetField(err) != "title" {
		t.Errorf("GetField() = %q, want %q", GetField(err), "title")
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("db down")
	err := Wrap(cause, ErrCodeInternal, "persisting status change")
	if err.Code != ErrCodeInternal {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInternal)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}

	if got := Wrap(nil, ErrCodeInternal, "never"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}
	if got := Wrapf(nil, ErrCodeInternal, "never %d", 1); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}
}

func TestPredicates(t *testing.T) {
	checks := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"IsNotFound", NotFound("x"), IsNotFound},
		{"IsConflict", Conflict("x"), IsConflict},
		{"IsValidation", Validation("x"), IsValidation},
		{"IsForeignKey", ForeignKey("x"), IsForeignKey},
		{"IsInternal", Internal("x"), IsInternal},
	}

	for _, tt := range checks {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.pred(tt.err) {
				t.Errorf("%s should report true for its own code", tt.name)
			}
			// Predicates see through wrapping.
			wrapped := fmt.Errorf("outer: %w", tt.err)
			if !tt.pred(wrapped) {
				t.Errorf("%s should report true through fmt.Errorf wrapping", tt.name)
			}
			if tt.pred(errors.New("plain")) {
				t.Errorf("%s should report false for a plain error", tt.name)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(Validation("x")); got != ErrCodeValidation {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeValidation)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}
