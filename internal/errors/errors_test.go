//nolint:revive // Package name matches the package it tests
package errors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrIO, ErrInputClosed)
	assert.NotEqual(t, ErrMissingOutputName, ErrValidation)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "not found",
		Message:  "template directory does not exist",
		Location: "/home/me/.ptt_templates",
		Context:  map[string]string{"Source": "default"},
		Hint:     "Create the directory and add some .txt templates",
	}

	out := detail.Error()

	assert.Contains(t, out, "Error: not found")
	assert.Contains(t, out, "Location: /home/me/.ptt_templates")
	assert.Contains(t, out, "Source: default")
	assert.Contains(t, out, "template directory does not exist")
	assert.Contains(t, out, "Hint: Create the directory")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("missing", "/tmp/x", "create it")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "not found", detail.Type)
	assert.Equal(t, "/tmp/x", detail.Location)
	assert.Equal(t, "create it", detail.Hint)
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "bad flag")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "bad flag")
}

func TestTemplateErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{
			name:     "template not found",
			err:      &TemplateNotFoundError{Name: "log", Dir: "/tpl"},
			sentinel: ErrNotFound,
			contains: `"log"`,
		},
		{
			name:     "missing output name",
			err:      &MissingOutputNameError{Name: "note"},
			sentinel: ErrMissingOutputName,
			contains: "output filename is required",
		},
		{
			name:     "io error",
			err:      &IOError{Op: "read", Path: "/tpl/a.txt", Err: fs.ErrNotExist},
			sentinel: ErrIO,
			contains: "read /tpl/a.txt",
		},
		{
			name:     "input closed",
			err:      &InputClosedError{Key: "title", Err: io.EOF},
			sentinel: ErrInputClosed,
			contains: `"title"`,
		},
		{
			name:     "unresolved placeholder",
			err:      &UnresolvedError{Key: "who"},
			sentinel: ErrValidation,
			contains: `"who"`,
		},
		{
			name:     "output exists",
			err:      &OutputExistsError{Path: "x.txt"},
			sentinel: ErrValidation,
			contains: "--force",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.Contains(t, tt.err.Error(), tt.contains)
		})
	}
}

func TestIOError_ExposesCause(t *testing.T) {
	err := fmt.Errorf("invoking: %w", &IOError{Op: "write", Path: "out.txt", Err: fs.ErrPermission})

	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrPermission)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "write", ioErr.Op)
}

func TestInputClosedError_WithoutCause(t *testing.T) {
	err := &InputClosedError{Key: "name"}

	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Contains(t, err.Error(), "input closed")
}

func TestInputClosedError_Cancelled(t *testing.T) {
	err := &InputClosedError{Err: context.Canceled}

	assert.ErrorIs(t, err, ErrInputClosed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ExitInputClosed, ExitCodeFromError(err))
	assert.Equal(t, "reading placeholder values: context canceled", err.Error())
}
