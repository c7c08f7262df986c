package templates

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	perrors "github.com/ChrisDavison/ptt/internal/errors"
)

// DisplayName renders a template file name for listing: the .txt suffix is
// dropped and a DATE- prefix becomes "(DATE) ".
func DisplayName(filename string) string {
	name, dated := parseFilename(filename)
	if dated {
		return "(DATE) " + name
	}
	return name
}

func parseFilename(filename string) (name string, dated bool) {
	name = strings.TrimSuffix(filename, Ext)
	if strings.HasPrefix(name, DatedPrefix) {
		return strings.TrimPrefix(name, DatedPrefix), true
	}
	return name, false
}

// List returns the templates directly inside dir, sorted by display name.
// Subdirectories are skipped; symlinks are followed.
func List(fsys afero.Fs, dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, &perrors.IOError{Op: "list", Path: dir, Err: err}
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		filename := info.Name()
		path := filepath.Join(dir, filename)
		if info.Mode()&fs.ModeSymlink != 0 {
			target, err := fsys.Stat(path)
			if err != nil {
				continue
			}
			info = target
		}
		if !info.Mode().IsRegular() {
			continue
		}

		name, dated := parseFilename(filename)
		entries = append(entries, Entry{
			Display: DisplayName(filename),
			Name:    name,
			Dated:   dated,
			Path:    path,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Display < entries[j].Display
	})
	return entries, nil
}

// DisplayNames returns only the display names from List.
func DisplayNames(fsys afero.Fs, dir string) ([]string, error) {
	entries, err := List(fsys, dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Display
	}
	return names, nil
}
