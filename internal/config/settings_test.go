package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "http://pages.cs.wisc.edu/~remzi/OSTEP/", s.BaseURL)
	assert.Equal(t, "pdf", s.DestDir)
	assert.Equal(t, "data.html", s.IndexFileName)
	assert.Equal(t, filepath.Join("pdf", "data.html"), s.IndexPath())
	assert.Zero(t, s.RequestTimeout, "default client should have no timeout")
	assert.NoError(t, s.Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"base_url": "http://localhost:8080/book/", "max_concurrent_downloads": 3}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/book/", s.BaseURL)
	assert.Equal(t, 3, s.MaxConcurrentDownloads)
	assert.Equal(t, "pdf", s.DestDir, "unset fields keep their defaults")
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "base_url: http://localhost:9000/\ndest_dir: out\nrequest_timeout: 5s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/", s.BaseURL)
	assert.Equal(t, "out", s.DestDir)
	assert.Equal(t, 5*time.Second, s.RequestTimeout)
	assert.Equal(t, "data.html", s.IndexFileName)
}

func TestLoad_InvalidContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	for _, name := range []string{"settings.json", "settings.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			s := DefaultSettings()
			s.BaseURL = "http://example.com/docs/"
			s.MaxConcurrentDownloads = 8
			require.NoError(t, s.Save(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, s, loaded)
		})
	}
}

func TestValidate(t *testing.T) {
	s := DefaultSettings()
	s.BaseURL = " "
	s.DestDir = ""
	s.MaxConcurrentDownloads = -1

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
	assert.Contains(t, err.Error(), "dest_dir")
	assert.Contains(t, err.Error(), "max_concurrent_downloads")
}

func TestWorkers(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, runtime.NumCPU(), s.Workers())

	s.MaxConcurrentDownloads = 4
	assert.Equal(t, 4, s.Workers())
}
