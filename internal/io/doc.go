// Package ioutils provides file system utilities.
//
// This package contains functions for:
//   - Resetting the destination directory at the start of a run
//   - Directory creation
//   - Listing the files a run produced
//
// # Directory Reset
//
// ResetDir removes whatever is at the path (file or directory tree) and
// creates a fresh, empty directory:
//
//	if err := ioutils.ResetDir("pdf"); err != nil {
//	    return fmt.Errorf("init failed: %w", err)
//	}
package ioutils
