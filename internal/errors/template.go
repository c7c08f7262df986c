package errors

import "fmt"

// TemplateNotFoundError reports that neither the dated nor the undated
// file exists for a template name.
type TemplateNotFoundError struct {
	Name string
	Dir  string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("couldn't find template %q in %s, with DATE- or without", e.Name, e.Dir)
}

func (e *TemplateNotFoundError) Unwrap() error { return ErrNotFound }

// MissingOutputNameError reports that an undated template was used
// without any filename fragments.
type MissingOutputNameError struct {
	Name string
}

func (e *MissingOutputNameError) Error() string {
	return fmt.Sprintf("template %q is not dated, so an output filename is required", e.Name)
}

func (e *MissingOutputNameError) Unwrap() error { return ErrMissingOutputName }

// IOError reports a failed filesystem operation.
type IOError struct {
	// Op names the failed operation, for example "read" or "write".
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrIO and the underlying cause, so callers can test
// for either (for example fs.ErrPermission).
func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }

// InputClosedError reports that the prompt input ended before an answer
// for Key was read. Key is empty when the run was cancelled after every
// answer had been read.
type InputClosedError struct {
	Key string
	Err error
}

func (e *InputClosedError) Error() string {
	if e.Key == "" {
		if e.Err != nil {
			return fmt.Sprintf("reading placeholder values: %v", e.Err)
		}
		return "reading placeholder values: input closed"
	}
	if e.Err != nil {
		return fmt.Sprintf("reading value for %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("reading value for %q: input closed", e.Key)
}

func (e *InputClosedError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInputClosed}
	}
	return []error{ErrInputClosed, e.Err}
}

// UnresolvedError reports a placeholder that a non-interactive resolver
// had no value for.
type UnresolvedError struct {
	Key string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("no value for placeholder %q", e.Key)
}

func (e *UnresolvedError) Unwrap() error { return ErrValidation }

// InvalidDateFormatError reports a date format pattern that cannot be compiled.
type InvalidDateFormatError struct {
	Format string
	Err    error
}

func (e *InvalidDateFormatError) Error() string {
	return fmt.Sprintf("invalid date format %q: %v", e.Format, e.Err)
}

func (e *InvalidDateFormatError) Unwrap() []error { return []error{ErrValidation, e.Err} }

// OutputExistsError reports an output file that already exists when
// overwriting was not allowed.
type OutputExistsError struct {
	Path string
}

func (e *OutputExistsError) Error() string {
	return fmt.Sprintf("output file %s already exists (use --force to overwrite)", e.Path)
}

func (e *OutputExistsError) Unwrap() error { return ErrValidation }
