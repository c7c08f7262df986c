package templates

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	perrors "github.com/ChrisDavison/ptt/internal/errors"
	"github.com/ChrisDavison/ptt/internal/output"
)

// Candidates returns the dated and undated paths for name inside dir, in
// lookup order.
func Candidates(dir, name string) (dated, plain string) {
	return filepath.Join(dir, DatedPrefix+name+Ext), filepath.Join(dir, name+Ext)
}

// Resolve finds the file backing name in dir. DATE-<name>.txt is checked
// first and wins when both variants exist; otherwise <name>.txt is used.
// When neither exists the error is a *errors.TemplateNotFoundError.
func Resolve(fsys afero.Fs, dir, name string) (Template, error) {
	if name == "" {
		return Template{}, &perrors.TemplateNotFoundError{Name: name, Dir: dir}
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return Template{}, &perrors.IOError{Op: "resolve", Path: dir, Err: err}
	}

	dated, plain := Candidates(absDir, name)
	for _, c := range []struct {
		path  string
		dated bool
	}{
		{dated, true},
		{plain, false},
	} {
		ok, err := isFile(fsys, c.path)
		if err != nil {
			return Template{}, &perrors.IOError{Op: "stat", Path: c.path, Err: err}
		}
		if ok {
			output.Debug("template resolved", "name", name, "path", c.path, "dated", c.dated)
			return Template{Name: name, Path: c.path, Dated: c.dated}, nil
		}
	}

	return Template{}, &perrors.TemplateNotFoundError{Name: name, Dir: absDir}
}

// isFile reports whether path exists and is not a directory. A missing path
// is not an error.
func isFile(fsys afero.Fs, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
