// Package fileio lists and renames directory entries through an afero.Fs so
// the same code runs against the host filesystem and in-memory test trees.
package fileio

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrTargetExists is returned by Rename when the destination name is already taken.
var ErrTargetExists = errors.New("target already exists")

// Rename moves dir/oldName to dir/newName. Unlike os.Rename it never replaces
// an existing entry.
func Rename(fsys afero.Fs, dir, oldName, newName string) error {
	oldPath := filepath.Join(dir, oldName)
	newPath := filepath.Join(dir, newName)

	// A case-only rename on a case-insensitive filesystem stats the source itself.
	if !strings.EqualFold(oldName, newName) {
		_, err := fsys.Stat(newPath)
		switch {
		case err == nil:
			return fmt.Errorf("rename %s to %s: %w", oldPath, newPath, ErrTargetExists)
		case !errors.Is(err, iofs.ErrNotExist):
			return fmt.Errorf("rename %s to %s: %w", oldPath, newPath, err)
		}
	}

	if err := fsys.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("rename %s to %s: %w", oldPath, newPath, err)
	}
	return nil
}

// ReadFileNames returns the names of the entries directly inside dir, sorted
// by name, leaving out anything the filter ignores.
func ReadFileNames(fsys afero.Fs, dir string, filter Filter) ([]string, error) {
	fileNames := make([]string, 0)
	files, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return fileNames, err
	}
	for _, f := range files {
		n := f.Name()
		if !filter.Ignored(n) {
			fileNames = append(fileNames, n)
		}
	}
	return fileNames, nil
}

// IsDir reports whether path names a directory. A path that does not exist
// is not a directory and is not an error.
func IsDir(fsys afero.Fs, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
