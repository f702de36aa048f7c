package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrTargetExists is returned when a rename would replace another file.
var ErrTargetExists = errors.New("target already exists")

// Renamer renames oldName to newName inside dir.
type Renamer interface {
	Rename(dir, oldName, newName string) error
}

// FSRenamer renames on the local filesystem. It never overwrites a
// different existing file; a target that is the same file (a case-only
// rename on a case-insensitive filesystem) is allowed.
type FSRenamer struct{}

// Rename implements [Renamer].
func (FSRenamer) Rename(dir, oldName, newName string) error {
	oldPath := filepath.Join(dir, oldName)
	newPath := filepath.Join(dir, newName)

	target, err := os.Lstat(newPath)
	switch {
	case err == nil:
		src, err := os.Lstat(oldPath)
		if err != nil {
			return err
		}
		if !os.SameFile(src, target) {
			return fmt.Errorf("%w: %s", ErrTargetExists, newName)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	return os.Rename(oldPath, newPath)
}
