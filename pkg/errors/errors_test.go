// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/savesync/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "remote_not_found",
			code:    errors.ErrRemoteNotFound,
			message: "remote origin not found",
			wantStr: "[REMOTE_NOT_FOUND] remote origin not found",
		},
		{
			name:    "config_invalid",
			code:    errors.ErrConfigValid,
			message: "general.repo is required",
			wantStr: "[CONFIG_INVALID] general.repo is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrRebaseConflict, "commit %s does not apply", "abc1234")
	if err.Message != "commit abc1234 does not apply" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("connection refused")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFetchFailed, "fetch origin/main")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[FETCH_FAILED] fetch origin/main: connection refused"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrFileMove, "move %s", "/a")
		if err.Message != "move /a" {
			t.Errorf("Wrapf() message = %q", err.Message)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrRebaseConflict, "conflict").
		WithDetail("commit", "abc1234").
		WithDetail("step", 2)

	details := errors.GetErrorDetails(err)
	if details["commit"] != "abc1234" {
		t.Errorf("detail commit = %v", details["commit"])
	}
	if details["step"] != 2 {
		t.Errorf("detail step = %v", details["step"])
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for standard errors")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrFetchFailed, "error 1")
	err2 := errors.New(errors.ErrFetchFailed, "error 2")
	err3 := errors.New(errors.ErrRemoteNotFound, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match the same code")
	}
	if stderrors.Is(err1, err3) {
		t.Error("errors.Is() should not match different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrRebaseFinish, "finish"),
			code:     errors.ErrRebaseFinish,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrRebaseFinish, "finish"),
			code:     errors.ErrRebaseStart,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrSymlinkCreate, "denied"),
			code:     errors.ErrSymlinkCreate,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrInternal,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrRepositoryNotFound, "x")); got != errors.ErrRepositoryNotFound {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("x")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
		t.Error("top level should have ErrConfigLoad code")
	}

	var middle *errors.SavesyncError
	if !stderrors.As(configErr.Unwrap(), &middle) || middle.Code != errors.ErrFileAccess {
		t.Error("middle error should have ErrFileAccess code")
	}

	if !stderrors.Is(configErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}
