package pipeline

import (
	"os"
)

// Discover lists the regular files directly inside dir, sorted by name.
// Directories, symlinks and other special files are excluded. A missing or
// unreadable dir is an error.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
