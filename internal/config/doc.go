// Package config provides configuration management for ostep-downloader.
//
// This package handles:
//   - Default configuration values (the OSTEP index and a local "pdf" directory)
//   - Loading and saving settings from JSON or YAML files
//   - Validation before a run starts
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Fetches http://pages.cs.wisc.edu/~remzi/OSTEP/
//	// Writes into ./pdf, index stored as ./pdf/data.html
//	// One download worker per CPU
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.yaml")
//	if err != nil {
//	    // File exists but could not be parsed
//	}
//
// Settings is passed explicitly into every component, so tests can point a
// run at an httptest server and a temporary directory.
package config
