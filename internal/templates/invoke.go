package templates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/afero"

	perrors "github.com/ChrisDavison/ptt/internal/errors"
	"github.com/ChrisDavison/ptt/internal/output"
	"github.com/ChrisDavison/ptt/internal/placeholder"
)

// InvokerOption configures an Invoker.
type InvokerOption func(*Invoker)

// WithOutputDir sets the directory output files are written to.
// The default is the working directory.
func WithOutputDir(dir string) InvokerOption {
	return func(iv *Invoker) {
		iv.outputDir = dir
	}
}

// WithDateFormat sets the strftime pattern for dated output names.
func WithDateFormat(format string) InvokerOption {
	return func(iv *Invoker) {
		iv.dateFormat = format
	}
}

// WithClock sets the time source used for dated output names.
func WithClock(now func() time.Time) InvokerOption {
	return func(iv *Invoker) {
		iv.now = now
	}
}

// WithEcho makes Invoke print the raw template to w before prompting.
func WithEcho(w io.Writer) InvokerOption {
	return func(iv *Invoker) {
		iv.echo = w
	}
}

// WithForce controls whether an existing output file may be replaced.
func WithForce(force bool) InvokerOption {
	return func(iv *Invoker) {
		iv.force = force
	}
}

// Invoker instantiates resolved templates into output files.
type Invoker struct {
	fs         afero.Fs
	resolver   placeholder.Resolver
	outputDir  string
	dateFormat string
	now        func() time.Time
	echo       io.Writer
	force      bool
}

// NewInvoker creates an Invoker that reads and writes through fsys and
// resolves placeholders with r.
func NewInvoker(fsys afero.Fs, r placeholder.Resolver, opts ...InvokerOption) *Invoker {
	iv := &Invoker{
		fs:         fsys,
		resolver:   r,
		outputDir:  ".",
		dateFormat: DefaultDateFormat,
		now:        func() time.Time { return time.Now().UTC() },
		force:      true,
	}
	for _, opt := range opts {
		opt(iv)
	}
	return iv
}

// Invoke reads tpl, fills its placeholders, and writes the result to the
// computed output name inside the output directory. It returns the path
// written. Exactly one file is created on success and none on failure.
func (iv *Invoker) Invoke(ctx context.Context, tpl Template, fragments []string) (string, error) {
	log := output.TemplateLogger(tpl.Name)

	content, err := afero.ReadFile(iv.fs, tpl.Path)
	if err != nil {
		return "", &perrors.IOError{Op: "read", Path: tpl.Path, Err: err}
	}
	log.Debug("template read", "path", tpl.Path, "bytes", len(content))

	name, err := OutputName(tpl, fragments, iv.dateFormat, iv.now())
	if err != nil {
		return "", err
	}
	target := filepath.Join(iv.outputDir, name)

	if !iv.force {
		if exists, err := afero.Exists(iv.fs, target); err != nil {
			return "", &perrors.IOError{Op: "stat", Path: target, Err: err}
		} else if exists {
			return "", &perrors.OutputExistsError{Path: target}
		}
	}

	if iv.echo != nil {
		if _, err := fmt.Fprintln(iv.echo, string(content)); err != nil {
			return "", &perrors.IOError{Op: "echo", Path: tpl.Path, Err: err}
		}
	}

	rendered, err := placeholder.Apply(ctx, string(content), iv.resolver)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", &perrors.InputClosedError{Err: err}
	}

	if err := writeAtomic(iv.fs, target, []byte(rendered)); err != nil {
		return "", err
	}
	log.Debug("output written", "path", target, "bytes", len(rendered))

	return target, nil
}

// writeAtomic writes data to a temporary file next to target and renames it
// into place, so target either appears complete or not at all.
func writeAtomic(fsys afero.Fs, target string, data []byte) (err error) {
	dir := filepath.Dir(target)

	tmp, err := createTemp(fsys, dir)
	if err != nil {
		return &perrors.IOError{Op: "write", Path: target, Err: err}
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = fsys.Remove(tmpName)
		}
	}()

	if _, werr := tmp.Write(data); werr != nil {
		_ = tmp.Close()
		return &perrors.IOError{Op: "write", Path: target, Err: werr}
	}
	if cerr := tmp.Close(); cerr != nil {
		return &perrors.IOError{Op: "write", Path: target, Err: cerr}
	}
	if rerr := fsys.Rename(tmpName, target); rerr != nil {
		return &perrors.IOError{Op: "write", Path: target, Err: rerr}
	}
	return nil
}

// createTemp creates a hidden temporary file in dir. The file is opened with
// mode 0666 so the process umask decides its final permissions, the same as
// a plain create would.
func createTemp(fsys afero.Fs, dir string) (afero.File, error) {
	for range 100 {
		name := filepath.Join(dir, ".ptt-"+strconv.FormatUint(rand.Uint64(), 36)+".tmp")
		f, err := fsys.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return f, err
	}
	return nil, &fs.PathError{Op: "createtemp", Path: dir, Err: fs.ErrExist}
}
