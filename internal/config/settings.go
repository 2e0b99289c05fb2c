package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/handiism/ostep-downloader/internal/index"
	"gopkg.in/yaml.v3"
)

// Settings holds all configuration options.
type Settings struct {
	// Source settings
	BaseURL   string `json:"base_url" yaml:"base_url"`
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// RequestTimeout bounds a single request. Zero means no timeout.
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout"`

	// Output settings
	DestDir       string `json:"dest_dir" yaml:"dest_dir"`
	IndexFileName string `json:"index_file_name" yaml:"index_file_name"`

	// MaxConcurrentDownloads is the worker pool size. Zero means one worker per CPU.
	MaxConcurrentDownloads int `json:"max_concurrent_downloads" yaml:"max_concurrent_downloads"`

	// Extraction patterns, matched against each index line.
	// The first capture group of each is used.
	LinkPattern  string `json:"link_pattern" yaml:"link_pattern"`
	LabelPattern string `json:"label_pattern" yaml:"label_pattern"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		BaseURL:                "http://pages.cs.wisc.edu/~remzi/OSTEP/",
		UserAgent:              "ostep-downloader",
		RequestTimeout:         0,
		DestDir:                "pdf",
		IndexFileName:          "data.html",
		MaxConcurrentDownloads: 0,
		LinkPattern:            index.DefaultLinkPattern,
		LabelPattern:           index.DefaultLabelPattern,
	}
}

// Load reads settings from a JSON or YAML file.
//
// The format is chosen by extension: .yaml and .yml are parsed as YAML,
// anything else as JSON. Fields missing from the file keep their defaults,
// and a missing file yields DefaultSettings.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that the settings can drive a run.
func (s *Settings) Validate() error {
	var errs []error
	if strings.TrimSpace(s.BaseURL) == "" {
		errs = append(errs, errors.New("base_url must not be empty"))
	}
	if strings.TrimSpace(s.DestDir) == "" {
		errs = append(errs, errors.New("dest_dir must not be empty"))
	}
	if strings.TrimSpace(s.IndexFileName) == "" {
		errs = append(errs, errors.New("index_file_name must not be empty"))
	}
	if s.MaxConcurrentDownloads < 0 {
		errs = append(errs, fmt.Errorf("max_concurrent_downloads must not be negative, got %d", s.MaxConcurrentDownloads))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("request_timeout must not be negative, got %s", s.RequestTimeout))
	}
	return errors.Join(errs...)
}

// Workers returns the effective worker pool size.
func (s *Settings) Workers() int {
	if s.MaxConcurrentDownloads > 0 {
		return s.MaxConcurrentDownloads
	}
	return runtime.NumCPU()
}

// IndexPath returns where the fetched index page is stored.
func (s *Settings) IndexPath() string {
	return filepath.Join(s.DestDir, s.IndexFileName)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
