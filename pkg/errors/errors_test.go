package errors

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "basic error without underlying",
			err:      &Error{Code: ExitCodeGeneral, Message: "test error"},
			expected: "test error",
		},
		{
			name:     "error with underlying",
			err:      &Error{Code: ExitCodeConfig, Message: "config error", Underlying: errors.New("file not found")},
			expected: "config error: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{
		Code:       ExitCodeGeneral,
		Message:    "test error",
		Underlying: underlying,
	}

	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should see through *Error")
	}
}

func TestNewWithError(t *testing.T) {
	underlying := errors.New("disk full")
	err := NewWithError(ExitCodeFileOperation, "write failed", underlying)

	if err.Code != ExitCodeFileOperation {
		t.Errorf("Code = %d, want %d", err.Code, ExitCodeFileOperation)
	}
	if err.Message != "write failed" {
		t.Errorf("Message = %q, want %q", err.Message, "write failed")
	}
	if err.Underlying != underlying {
		t.Errorf("Underlying = %v, want %v", err.Underlying, underlying)
	}
}

func TestIsExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ExitCode
		want bool
	}{
		{"nil error", nil, ExitCodeGeneral, false},
		{"matching code", New(ExitCodeNotFound, "x"), ExitCodeNotFound, true},
		{"different code", New(ExitCodeNotFound, "x"), ExitCodeConfig, false},
		{"plain error", errors.New("x"), ExitCodeGeneral, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsExitCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsExitCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandleReturn(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name     string
		err      error
		wantCode ExitCode
		wantOut  []string
	}{
		{
			name:     "nil",
			err:      nil,
			wantCode: ExitCodeSuccess,
		},
		{
			name:     "plain error",
			err:      errors.New("something broke"),
			wantCode: ExitCodeGeneral,
			wantOut:  []string{"Error: something broke"},
		},
		{
			name:     "step not found with suggestions",
			err:      StepNotFoundError("9", []string{"1", "2"}),
			wantCode: ExitCodeNotFound,
			wantOut:  []string{"Error: Step '9' not found", "Suggestion: Available steps:", "  - 1", "  - 2"},
		},
		{
			name:     "underlying error is shown",
			err:      FileError(ErrMsgScriptWriteFailed, errors.New("permission denied")),
			wantCode: ExitCodeFileOperation,
			wantOut:  []string{"Failed to write script file: permission denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := handleTo(&buf, tt.err)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestHelperFunctions(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		wantCode ExitCode
	}{
		{"ConfigError", ConfigError("bad"), ExitCodeConfig},
		{"ValidationError", ValidationError("bad"), ExitCodeValidation},
		{"NoCodeSampleError", NoCodeSampleError("3"), ExitCodeNotFound},
		{"CancelledError", CancelledError("write"), ExitCodeCancellation},
		{"ClipboardUnavailableError", ClipboardUnavailableError(), ExitCodeClipboard},
		{"StepNotFoundError", StepNotFoundError("7", nil), ExitCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message == "" {
				t.Error("Message should not be empty")
			}
		})
	}
}
