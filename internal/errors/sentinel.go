package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a template, directory, or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrMissingOutputName indicates an undated template was used without a filename.
	ErrMissingOutputName = errors.New("missing output filename")

	// ErrIO indicates a template read or output write failed.
	ErrIO = errors.New("i/o failure")

	// ErrInputClosed indicates the prompt input stream ended before all answers were read.
	ErrInputClosed = errors.New("input stream closed")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")
)
