package ioutils

import (
	"fmt"
	"os"
)

// ResetDir makes path an empty directory.
//
// Whatever exists at path is removed first: a regular file, a symlink, or a
// directory with all of its contents. The directory is then created with mode
// 0755, along with any missing parents.
//
// Example:
//
//	// ./pdf may be a leftover directory from a previous run, or a stray file
//	err := ResetDir("pdf")
func ResetDir(path string) error {
	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("remove directory %s: %w", path, err)
		}
	case err == nil:
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove file %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("stat %s: %w", path, err)
	}

	return EnsureDir(path)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// ListFiles returns the names of the regular files directly inside dir.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
