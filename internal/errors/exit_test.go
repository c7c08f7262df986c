package errors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			wantCode: ExitSuccess,
		},
		{
			name:     "explicit exit error",
			err:      NewExitError(errors.New("boom"), ExitValidationError),
			wantCode: ExitValidationError,
		},
		{
			name:     "template not found",
			err:      &TemplateNotFoundError{Name: "x"},
			wantCode: ExitNotFound,
		},
		{
			name:     "missing output name",
			err:      &MissingOutputNameError{Name: "x"},
			wantCode: ExitValidationError,
		},
		{
			name:     "io error",
			err:      &IOError{Op: "read", Path: "x", Err: errors.New("disk on fire")},
			wantCode: ExitIOError,
		},
		{
			name:     "io error caused by permission",
			err:      &IOError{Op: "write", Path: "x", Err: fs.ErrPermission},
			wantCode: ExitPermissionDenied,
		},
		{
			name:     "input closed",
			err:      &InputClosedError{Key: "x"},
			wantCode: ExitInputClosed,
		},
		{
			name:     "wrapped validation error",
			err:      Wrap(ErrValidation, "bad --set value"),
			wantCode: ExitValidationError,
		},
		{
			name:     "unknown error returns general error",
			err:      errors.New("unknown error"),
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitGeneralError)
	assert.Equal(t, 2, ExitValidationError)
	assert.Equal(t, 3, ExitIOError)
	assert.Equal(t, 4, ExitPermissionDenied)
	assert.Equal(t, 5, ExitNotFound)
	assert.Equal(t, 6, ExitInputClosed)
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Input Closed", ExitCodeName(ExitInputClosed))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
